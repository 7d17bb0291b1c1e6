package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-forecast/internal/forecast"
	"github.com/carson-networks/budget-forecast/internal/operator/actions"
	"github.com/carson-networks/budget-forecast/internal/storage"
	"github.com/carson-networks/budget-forecast/internal/storage/sqlconfig"
)

const defaultLimit = 20

// ActionProcessor runs a write action inside a database transaction.
// *operator.OperatorDelegator satisfies it.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage  *storage.Storage
	operator ActionProcessor
	now      func() time.Time
}

// NewTransactionService creates a new TransactionService. now supplies the
// instant whose calendar date is used when a transaction has no SpentAt; it
// should already be in the user's location.
func NewTransactionService(store *storage.Storage, op ActionProcessor, now func() time.Time) *TransactionService {
	if now == nil {
		now = time.Now
	}
	return &TransactionService{storage: store, operator: op, now: now}
}

// CreateTransaction records a transaction for the user and returns its ID. A
// zero SpentAt becomes today's date.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID uuid.UUID, create TransactionCreate) (uuid.UUID, error) {
	if create.SpentAt.IsZero() {
		year, month, day := s.now().Date()
		create.SpentAt = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	}

	action := &actions.CreateTransaction{
		UserID:       userID,
		CategoryName: create.CategoryName,
		Amount:       create.Amount,
		Type:         sqlconfig.TransactionType(create.Type),
		Note:         create.Note,
		SpentAt:      create.SpentAt,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.CreatedID, nil
}

// GetTransaction returns one of the user's transactions.
func (s *TransactionService) GetTransaction(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, userID, id)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	tx := transactionFromStorage(row)
	return &tx, nil
}

// DeleteTransaction removes one of the user's transactions.
func (s *TransactionService) DeleteTransaction(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	err := s.operator.Process(ctx, &actions.DeleteTransaction{UserID: userID, TransactionID: id})
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return ErrTransactionNotFound
	}
	return err
}

// ListTransactions returns a page of transactions using cursor-based pagination.
func (s *TransactionService) ListTransactions(ctx context.Context, userID uuid.UUID, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = cursor.Limit
		}
		offset = cursor.Position
		if !cursor.MaxCreationTime.IsZero() {
			maxCreationTime = &cursor.MaxCreationTime
		}
	}

	filter := &sqlconfig.TransactionFilter{
		UserID:          userID,
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	}

	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := rows[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = transactionFromStorage(row)
	}

	return convertedTransactions, nextCursor, nil
}

// MonthSummary totals the user's transactions in the calendar month containing now.
func (s *TransactionService) MonthSummary(ctx context.Context, userID uuid.UUID, now time.Time) (*MonthSummary, error) {
	monthStart := forecast.ResolveWindow(now).ThisMonthStart
	monthEnd := monthStart.AddDate(0, 1, 0)

	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		UserID:      userID,
		SpentFrom:   &monthStart,
		SpentBefore: &monthEnd,
	})
	if err != nil {
		return nil, err
	}

	summary := &MonthSummary{
		MonthStart: monthStart,
		Spent:      decimal.Zero,
		Income:     decimal.Zero,
		Count:      len(rows),
	}
	for _, row := range rows {
		switch row.Type {
		case sqlconfig.TransactionTypeIncome:
			summary.Income = summary.Income.Add(row.Amount)
		default:
			summary.Spent = summary.Spent.Add(row.Amount)
		}
	}
	summary.Net = summary.Income.Sub(summary.Spent)
	return summary, nil
}
