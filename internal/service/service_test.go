package service

import (
	"context"
	"testing"

	"github.com/carson-networks/budget-forecast/internal/operator/actions"
	"github.com/carson-networks/budget-forecast/internal/storage"
	"github.com/carson-networks/budget-forecast/internal/storage/sqlconfig"
)

type noopCommitter struct{}

func (noopCommitter) Commit(context.Context) error   { return nil }
func (noopCommitter) Rollback(context.Context) error { return nil }

// inlineProcessor performs actions synchronously against mocked tables.
type inlineProcessor struct {
	writer *storage.Writer
}

func (p inlineProcessor) Process(ctx context.Context, action actions.IAction) error {
	return action.Perform(ctx, p.writer)
}

type testDeps struct {
	store        *storage.Storage
	processor    inlineProcessor
	transactions *sqlconfig.MockITransactionTable
	categories   *sqlconfig.MockICategoryTable
}

func newTestDeps(t *testing.T) testDeps {
	t.Helper()
	txTable := sqlconfig.NewMockITransactionTable(t)
	catTable := sqlconfig.NewMockICategoryTable(t)
	return testDeps{
		store:        &storage.Storage{Transactions: txTable, Categories: catTable},
		processor:    inlineProcessor{writer: storage.NewWriterWithTables(noopCommitter{}, txTable, catTable)},
		transactions: txTable,
		categories:   catTable,
	}
}
