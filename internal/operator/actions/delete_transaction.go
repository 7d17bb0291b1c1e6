package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-forecast/internal/storage"
)

type DeleteTransaction struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	IAction
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transactions.Delete(ctx, d.UserID, d.TransactionID)
}
