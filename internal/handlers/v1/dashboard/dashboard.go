package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-forecast/internal/handlers/v1/forecast"
	"github.com/carson-networks/budget-forecast/internal/handlers/v1/transaction"
	"github.com/carson-networks/budget-forecast/internal/handlers/v1/user"
	"github.com/carson-networks/budget-forecast/internal/service"
)

// DashboardBody is the home screen payload.
type DashboardBody struct {
	Summary  transaction.MonthSummary   `json:"summary"`
	Recent   []transaction.Transaction  `json:"recent" doc:"Most recent transactions, newest first"`
	Forecast forecast.NextMonthForecast `json:"forecast"`
}

type DashboardInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"User UUID"`
}

type DashboardOutput struct {
	Body DashboardBody
}

type dashboardLoader interface {
	Load(ctx context.Context, userID uuid.UUID) (*service.Dashboard, error)
}

// Handler handles GET /v1/dashboard.
type Handler struct {
	DashboardService dashboardLoader
}

func NewHandler(svc dashboardLoader) *Handler {
	return &Handler{DashboardService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "dashboard",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard",
		Summary:     "Dashboard",
		Description: "Current month summary, recent transactions and next month's forecast in one response.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, input *DashboardInput) (*DashboardOutput, error) {
	userID, err := user.ParseID(input.UserID)
	if err != nil {
		return nil, err
	}

	d, err := h.DashboardService.Load(ctx, userID)
	if err != nil {
		return nil, forecast.ErrorToHuma(err)
	}

	body := DashboardBody{
		Summary:  transaction.NewMonthSummary(d.Summary),
		Recent:   make([]transaction.Transaction, len(d.Recent)),
		Forecast: forecast.NewNextMonthForecast(d.Forecast, d.Window),
	}
	for i, tx := range d.Recent {
		body.Recent[i] = transaction.NewTransaction(tx)
	}
	return &DashboardOutput{Body: body}, nil
}
