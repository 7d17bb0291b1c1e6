package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-forecast/internal/config"
	"github.com/carson-networks/budget-forecast/internal/storage/sqlconfig"
)

type Storage struct {
	SQL          *sql.DB
	DB           bob.DB
	Transactions sqlconfig.ITransactionTable
	Categories   sqlconfig.ICategoryTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	return Open(env.PostgresConnectionString())
}

// Open connects to Postgres and checks the connection is usable.
func Open(connStr string) (*Storage, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	bobDB := bob.NewDB(db)
	return &Storage{
		SQL:          db,
		DB:           bobDB,
		Transactions: sqlconfig.NewTransactionsTable(bobDB),
		Categories:   sqlconfig.NewCategoriesTable(bobDB),
	}, nil
}

// Write begins a transaction. The caller must Commit or Rollback the Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() error {
	return s.SQL.Close()
}
