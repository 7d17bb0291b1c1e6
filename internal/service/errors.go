package service

import (
	"errors"

	"github.com/carson-networks/budget-forecast/internal/operator/actions"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidAmount       = actions.ErrInvalidAmount
	ErrInvalidType         = actions.ErrInvalidType
	ErrMissingDate         = actions.ErrMissingDate
)

// DataFetchError reports that the transaction history behind a forecast could
// not be read. Err is the storage error, unchanged.
type DataFetchError struct {
	Op  string
	Err error
}

func (e *DataFetchError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *DataFetchError) Unwrap() error {
	return e.Err
}
