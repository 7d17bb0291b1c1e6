package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const transactionsTable = "transactions"

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

type transactionRow struct {
	ID           uuid.UUID       `db:"id"`
	UserID       uuid.UUID       `db:"user_id"`
	CategoryID   uuid.NullUUID   `db:"category_id"`
	CategoryName sql.NullString  `db:"category_name"`
	Amount       decimal.Decimal `db:"amount"`
	Type         string          `db:"type"`
	Note         string          `db:"note"`
	SpentAt      time.Time       `db:"spent_at"`
	CreatedAt    time.Time       `db:"created_at"`
}

func selectTransactions(mods ...bob.Mod[*dialect.SelectQuery]) bob.BaseQuery[*dialect.SelectQuery] {
	base := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(
			psql.Quote("t", "id"),
			psql.Quote("t", "user_id"),
			psql.Quote("t", "category_id"),
			psql.Quote("c", "name").As("category_name"),
			psql.Quote("t", "amount"),
			psql.Quote("t", "type"),
			psql.Quote("t", "note"),
			psql.Quote("t", "spent_at"),
			psql.Quote("t", "created_at"),
		),
		sm.From(transactionsTable).As("t"),
		sm.LeftJoin(categoriesTable).As("c").On(
			psql.Quote("c", "id").EQ(psql.Quote("t", "category_id")),
		),
	}
	return psql.Select(append(base, mods...)...)
}

// FindByID retrieves one of the user's transactions by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*Transaction, error) {
	q := selectTransactions(
		sm.Where(psql.Quote("t", "id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("t", "user_id").EQ(psql.Arg(userID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[transactionRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rowToTransaction(row), nil
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into(transactionsTable, "user_id", "category_id", "amount", "type", "note", "spent_at"),
		im.Values(psql.Arg(
			create.UserID,
			create.CategoryID,
			create.Amount,
			string(create.Type),
			create.Note,
			create.SpentAt.Format(time.DateOnly),
		)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
}

// List returns the user's transactions matching the filter, newest first.
// When Limit is set one extra row is fetched so callers can detect a next page.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Where(psql.Quote("t", "user_id").EQ(psql.Arg(filter.UserID))),
	}
	if filter.Type != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("t", "type").EQ(psql.Arg(string(*filter.Type)))))
	}
	if filter.SpentFrom != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("t", "spent_at").GTE(psql.Arg(filter.SpentFrom.Format(time.DateOnly)))))
	}
	if filter.SpentBefore != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("t", "spent_at").LT(psql.Arg(filter.SpentBefore.Format(time.DateOnly)))))
	}
	if filter.MaxCreationTime != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("t", "created_at").LTE(psql.Arg(*filter.MaxCreationTime))))
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit+1))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("t", "created_at")).Desc(),
		sm.OrderBy(psql.Quote("t", "id")).Desc(),
	)

	rows, err := bob.All(ctx, t.exec, selectTransactions(queryMods...), scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*Transaction, len(rows))
	for i, row := range rows {
		result[i] = rowToTransaction(row)
	}
	return result, nil
}

// Delete removes one of the user's transactions.
func (t *TransactionsTable) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(transactionsTable),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func rowToTransaction(row transactionRow) *Transaction {
	tx := &Transaction{
		ID:         row.ID,
		UserID:     row.UserID,
		CategoryID: row.CategoryID,
		Amount:     row.Amount,
		Type:       TransactionType(row.Type),
		Note:       row.Note,
		SpentAt:    row.SpentAt,
		CreatedAt:  row.CreatedAt,
	}
	if row.CategoryName.Valid {
		name := row.CategoryName.String
		tx.CategoryName = &name
	}
	return tx
}
