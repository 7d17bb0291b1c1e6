package forecast

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	engine "github.com/carson-networks/budget-forecast/internal/forecast"
	"github.com/carson-networks/budget-forecast/internal/handlers/v1/user"
	"github.com/carson-networks/budget-forecast/internal/logging"
	"github.com/carson-networks/budget-forecast/internal/service"
)

type NextMonthInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"User UUID"`
}

type NextMonthOutput struct {
	Body NextMonthForecast
}

type nextMonthForecaster interface {
	NextMonth(ctx context.Context, userID uuid.UUID) (*engine.Result, engine.Window, error)
}

// NextMonthHandler handles GET /v1/forecast/next-month.
type NextMonthHandler struct {
	ForecastService nextMonthForecaster
}

func NewNextMonthHandler(svc nextMonthForecaster) *NextMonthHandler {
	return &NextMonthHandler{ForecastService: svc}
}

func (h *NextMonthHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "next-month-forecast",
		Method:      http.MethodGet,
		Path:        "/v1/forecast/next-month",
		Summary:     "Forecast next month's spending",
		Description: "Predicts next month's spending overall and per category from a weighted average of the last three complete months.",
		Tags:        []string{"Forecast"},
	}, h.handle)
}

func (h *NextMonthHandler) handle(ctx context.Context, input *NextMonthInput) (*NextMonthOutput, error) {
	userID, err := user.ParseID(input.UserID)
	if err != nil {
		return nil, err
	}

	result, window, err := h.ForecastService.NextMonth(ctx, userID)
	if err != nil {
		return nil, ErrorToHuma(err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("insufficientHistory", result.InsufficientHistory())
	}
	return &NextMonthOutput{Body: NewNextMonthForecast(result, window)}, nil
}

// ErrorToHuma maps a forecast failure to an HTTP error. A failed history
// fetch is an upstream failure, anything else is internal.
func ErrorToHuma(err error) error {
	var fetchErr *service.DataFetchError
	if errors.As(err, &fetchErr) {
		return huma.NewError(http.StatusBadGateway, "failed to load transaction history", err)
	}
	return huma.NewError(http.StatusInternalServerError, "failed to compute forecast", err)
}
