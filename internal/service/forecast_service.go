package service

import (
	"context"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-forecast/internal/forecast"
	"github.com/carson-networks/budget-forecast/internal/logging"
	"github.com/carson-networks/budget-forecast/internal/storage"
	"github.com/carson-networks/budget-forecast/internal/storage/sqlconfig"
)

// ForecastService predicts next month's spending from the last three
// complete months of a user's expenses.
type ForecastService struct {
	storage  *storage.Storage
	location *time.Location
	clock    func() time.Time
}

func NewForecastService(store *storage.Storage, location *time.Location) *ForecastService {
	if location == nil {
		location = time.UTC
	}
	return &ForecastService{
		storage:  store,
		location: location,
		clock:    time.Now,
	}
}

// WithClock replaces the time source.
func (s *ForecastService) WithClock(clock func() time.Time) *ForecastService {
	s.clock = clock
	return s
}

// Now is the current instant in the forecast location.
func (s *ForecastService) Now() time.Time {
	return s.clock().In(s.location)
}

// NextMonth forecasts the calendar month after the current one. A user with no
// expenses in the window gets an empty result, not an error.
func (s *ForecastService) NextMonth(ctx context.Context, userID uuid.UUID) (*forecast.Result, forecast.Window, error) {
	window := forecast.ResolveWindow(s.Now())

	logData := logging.GetLogData(ctx)
	var endTimer func()
	if logData != nil {
		endTimer = logData.AddTiming("forecastFetch")
	}

	start, end := window.Start(), window.End()
	expense := sqlconfig.TransactionTypeExpense
	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		UserID:      userID,
		Type:        &expense,
		SpentFrom:   &start,
		SpentBefore: &end,
	})
	if endTimer != nil {
		endTimer()
	}
	if err != nil {
		return nil, window, &DataFetchError{Op: "fetch transaction history", Err: err}
	}

	result := forecast.Compute(window, toForecastTransactions(rows))

	if logData != nil {
		logData.AddData("forecastCategories", len(result.ByCategory))
		if logData.IsLevelEnabled(logrus.DebugLevel) {
			logData.Log().Debugf("ForecastService.NextMonth.result %s", spew.Sdump(result))
		}
	}
	return &result, window, nil
}

func toForecastTransactions(rows []*sqlconfig.Transaction) []forecast.Transaction {
	txs := make([]forecast.Transaction, len(rows))
	for i, row := range rows {
		tx := forecast.Transaction{
			Amount:  decimal.NewNullDecimal(row.Amount),
			SpentAt: row.SpentAt,
			Type:    forecast.TransactionType(row.Type),
		}
		if row.CategoryName != nil {
			tx.CategoryName = *row.CategoryName
		}
		txs[i] = tx
	}
	return txs
}
