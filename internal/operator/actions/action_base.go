package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/budget-forecast/internal/storage"
)

var (
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	ErrInvalidType   = errors.New("transaction type must be expense or income")
	ErrMissingDate   = errors.New("transaction date is required")
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
