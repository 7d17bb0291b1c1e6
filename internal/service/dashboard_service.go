package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/budget-forecast/internal/forecast"
)

const dashboardRecentLimit = 10

// Dashboard is everything the home screen shows in one response.
type Dashboard struct {
	Summary  *MonthSummary
	Recent   []Transaction
	Forecast *forecast.Result
	Window   forecast.Window
}

// DashboardService assembles the home screen from the other services.
type DashboardService struct {
	transactions *TransactionService
	forecasts    *ForecastService
}

func NewDashboardService(transactions *TransactionService, forecasts *ForecastService) *DashboardService {
	return &DashboardService{transactions: transactions, forecasts: forecasts}
}

// Load reads the summary, recent transactions and forecast concurrently. The
// first failure cancels the remaining reads.
func (s *DashboardService) Load(ctx context.Context, userID uuid.UUID) (*Dashboard, error) {
	dashboard := &Dashboard{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		summary, err := s.transactions.MonthSummary(gctx, userID, s.forecasts.Now())
		if err != nil {
			return err
		}
		dashboard.Summary = summary
		return nil
	})

	g.Go(func() error {
		recent, _, err := s.transactions.ListTransactions(gctx, userID, &TransactionCursor{Limit: dashboardRecentLimit})
		if err != nil {
			return err
		}
		if recent == nil {
			recent = []Transaction{}
		}
		dashboard.Recent = recent
		return nil
	})

	g.Go(func() error {
		result, window, err := s.forecasts.NextMonth(gctx, userID)
		if err != nil {
			return err
		}
		dashboard.Forecast = result
		dashboard.Window = window
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dashboard, nil
}
