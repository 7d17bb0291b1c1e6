package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CategoryID   uuid.NullUUID
	CategoryName *string
	Amount       decimal.Decimal
	Type         TransactionType
	Note         string
	SpentAt      time.Time
	CreatedAt    time.Time
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID     uuid.UUID
	CategoryID uuid.NullUUID
	Amount     decimal.Decimal
	Type       TransactionType
	Note       string
	SpentAt    time.Time // defaults to today if zero
}

// TransactionFilter specifies filters for listing transactions.
// SpentFrom is inclusive and SpentBefore exclusive; both are calendar dates.
type TransactionFilter struct {
	UserID          uuid.UUID
	Type            *TransactionType
	SpentFrom       *time.Time
	SpentBefore     *time.Time
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output . --outpkg sqlconfig --filename mock_ITransactionTable.go --with-expecter
type ITransactionTable interface {
	FindByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}
