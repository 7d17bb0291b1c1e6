package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const categoriesTable = "categories"

var categoryColumns = []any{"id", "user_id", "name", "created_at"}

// Ensure CategoriesTable implements ICategoryTable at compile time.
var _ ICategoryTable = (*CategoriesTable)(nil)

// CategoriesTable provides access to the categories table.
type CategoriesTable struct {
	exec bob.Executor
}

// NewCategoriesTable creates a CategoriesTable on the given executor.
func NewCategoriesTable(exec bob.Executor) *CategoriesTable {
	return &CategoriesTable{exec: exec}
}

type categoryRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// ListByUser returns the user's categories ordered by name.
func (t *CategoriesTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Category, error) {
	q := psql.Select(
		sm.Columns(categoryColumns...),
		sm.From(categoriesTable),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy(psql.Quote("name")).Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[categoryRow]())
	if err != nil {
		return nil, err
	}
	return rowsToCategories(rows), nil
}

// FindByName looks up one of the user's categories by exact name.
func (t *CategoriesTable) FindByName(ctx context.Context, userID uuid.UUID, name string) (*Category, error) {
	q := psql.Select(
		sm.Columns(categoryColumns...),
		sm.From(categoriesTable),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("name").EQ(psql.Arg(name))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[categoryRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rowToCategory(row), nil
}

// InsertMany creates the named categories for the user. Names the user
// already has are skipped and not returned.
func (t *CategoriesTable) InsertMany(ctx context.Context, userID uuid.UUID, names []string) ([]*Category, error) {
	if len(names) == 0 {
		return []*Category{}, nil
	}

	values := make([]bob.Mod[*dialect.InsertQuery], 0, len(names))
	for _, name := range names {
		values = append(values, im.Values(psql.Arg(userID, name)))
	}

	mods := append([]bob.Mod[*dialect.InsertQuery]{
		im.Into(categoriesTable, "user_id", "name"),
	}, values...)
	mods = append(mods,
		im.OnConflict("user_id", "name").DoNothing(),
		im.Returning(categoryColumns...),
	)

	rows, err := bob.All(ctx, t.exec, psql.Insert(mods...), scan.StructMapper[categoryRow]())
	if err != nil {
		return nil, err
	}
	return rowsToCategories(rows), nil
}

func rowToCategory(row categoryRow) *Category {
	return &Category{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}

func rowsToCategories(rows []categoryRow) []*Category {
	result := make([]*Category, len(rows))
	for i, row := range rows {
		result[i] = rowToCategory(row)
	}
	return result
}
