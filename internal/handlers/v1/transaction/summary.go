package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-forecast/internal/handlers/v1/user"
	"github.com/carson-networks/budget-forecast/internal/service"
)

// MonthSummary is the API model for one month's totals.
type MonthSummary struct {
	MonthStart string `json:"monthStart" format:"date" doc:"First day of the summarized month"`
	Spent      string `json:"spent" doc:"Sum of expenses"`
	Income     string `json:"income" doc:"Sum of income"`
	Net        string `json:"net" doc:"Income minus expenses"`
	Count      int    `json:"count" doc:"Number of transactions in the month"`
}

func NewMonthSummary(s *service.MonthSummary) MonthSummary {
	return MonthSummary{
		MonthStart: s.MonthStart.Format(time.DateOnly),
		Spent:      s.Spent.String(),
		Income:     s.Income.String(),
		Net:        s.Net.String(),
		Count:      s.Count,
	}
}

type SummaryInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"User UUID"`
}

type SummaryOutput struct {
	Body MonthSummary
}

type monthSummarizer interface {
	MonthSummary(ctx context.Context, userID uuid.UUID, now time.Time) (*service.MonthSummary, error)
}

// SummaryHandler handles GET /v1/transaction/summary.
type SummaryHandler struct {
	TransactionService monthSummarizer
	Now                func() time.Time
}

func NewSummaryHandler(svc monthSummarizer, now func() time.Time) *SummaryHandler {
	return &SummaryHandler{TransactionService: svc, Now: now}
}

func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transaction-summary",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/summary",
		Summary:     "Current month summary",
		Description: "Totals the user's spending and income for the current calendar month.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	userID, err := user.ParseID(input.UserID)
	if err != nil {
		return nil, err
	}

	summary, err := h.TransactionService.MonthSummary(ctx, userID, h.Now())
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to summarize transactions", err)
	}
	return &SummaryOutput{Body: NewMonthSummary(summary)}, nil
}
