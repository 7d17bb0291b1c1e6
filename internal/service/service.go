package service

import (
	"time"

	"github.com/carson-networks/budget-forecast/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Category    *CategoryService
	Forecast    *ForecastService
	Dashboard   *DashboardService
}

// NewService creates a new Service with the given storage. Writes go through op.
func NewService(store *storage.Storage, op ActionProcessor, forecastLocation *time.Location) *Service {
	forecasts := NewForecastService(store, forecastLocation)
	transactions := NewTransactionService(store, op, forecasts.Now)
	return &Service{
		Transaction: transactions,
		Category:    NewCategoryService(store, op),
		Forecast:    forecasts,
		Dashboard:   NewDashboardService(transactions, forecasts),
	}
}
