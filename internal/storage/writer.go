package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-forecast/internal/storage/sqlconfig"
)

// Committer ends a database transaction. bob.Tx satisfies it.
type Committer interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer exposes the tables bound to a single database transaction.
type Writer struct {
	tx           Committer
	Transactions sqlconfig.ITransactionTable
	Categories   sqlconfig.ICategoryTable
}

func NewWriter(tx bob.Tx) *Writer {
	return NewWriterWithTables(tx, sqlconfig.NewTransactionsTable(tx), sqlconfig.NewCategoriesTable(tx))
}

// NewWriterWithTables builds a Writer from arbitrary tables, mostly for tests.
func NewWriterWithTables(tx Committer, transactions sqlconfig.ITransactionTable, categories sqlconfig.ICategoryTable) *Writer {
	return &Writer{
		tx:           tx,
		Transactions: transactions,
		Categories:   categories,
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
