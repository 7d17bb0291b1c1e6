package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-forecast/internal/storage/sqlconfig"
)

// TransactionType is either expense or income.
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID           uuid.UUID
	CategoryID   uuid.NullUUID
	CategoryName string
	Amount       decimal.Decimal
	Type         TransactionType
	Note         string
	SpentAt      time.Time
	CreatedAt    time.Time
}

// TransactionCreate is what a user submits to record a transaction.
type TransactionCreate struct {
	CategoryName string
	Amount       decimal.Decimal
	Type         TransactionType
	Note         string
	SpentAt      time.Time
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

// MonthSummary totals one calendar month of a user's transactions.
type MonthSummary struct {
	MonthStart time.Time
	Spent      decimal.Decimal
	Income     decimal.Decimal
	Net        decimal.Decimal
	Count      int
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	tx := Transaction{
		ID:         row.ID,
		CategoryID: row.CategoryID,
		Amount:     row.Amount,
		Type:       TransactionType(row.Type),
		Note:       row.Note,
		SpentAt:    row.SpentAt,
		CreatedAt:  row.CreatedAt,
	}
	if row.CategoryName != nil {
		tx.CategoryName = *row.CategoryName
	}
	return tx
}
