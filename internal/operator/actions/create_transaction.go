package actions

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-forecast/internal/storage"
	"github.com/carson-networks/budget-forecast/internal/storage/sqlconfig"
)

// CreateTransaction records an expense or income. A non-empty CategoryName is
// resolved against the user's categories and created when missing.
type CreateTransaction struct {
	UserID       uuid.UUID
	CategoryName string
	Amount       decimal.Decimal
	Type         sqlconfig.TransactionType
	Note         string
	SpentAt      time.Time

	// CreatedID is set once Perform succeeds.
	CreatedID uuid.UUID
	IAction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if t.Type != sqlconfig.TransactionTypeExpense && t.Type != sqlconfig.TransactionTypeIncome {
		return ErrInvalidType
	}
	if t.SpentAt.IsZero() {
		return ErrMissingDate
	}

	var categoryID uuid.NullUUID
	if name := strings.TrimSpace(t.CategoryName); name != "" {
		category, err := resolveCategory(ctx, writer, t.UserID, name)
		if err != nil {
			return err
		}
		categoryID = uuid.NullUUID{UUID: category.ID, Valid: true}
	}

	storageCreate := &sqlconfig.TransactionCreate{
		UserID:     t.UserID,
		CategoryID: categoryID,
		Amount:     t.Amount,
		Type:       t.Type,
		Note:       t.Note,
		SpentAt:    t.SpentAt,
	}
	id, err := writer.Transactions.Insert(ctx, storageCreate)
	if err != nil {
		return err
	}

	t.CreatedID = id
	return nil
}

func resolveCategory(ctx context.Context, writer *storage.Writer, userID uuid.UUID, name string) (*sqlconfig.Category, error) {
	category, err := writer.Categories.FindByName(ctx, userID, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, err
	}

	inserted, err := writer.Categories.InsertMany(ctx, userID, []string{name})
	if err != nil {
		return nil, err
	}
	if len(inserted) == 1 {
		return inserted[0], nil
	}
	// a concurrent insert won the unique constraint
	return writer.Categories.FindByName(ctx, userID, name)
}
