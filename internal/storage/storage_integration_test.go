package storage

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/carson-networks/budget-forecast/internal/storage/sqlconfig"
)

func setupPostgres(t *testing.T) *Storage {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()
	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("budget"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("testpassword"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	status, err := RunMigrations(connStr)
	require.NoError(t, err)
	assert.Equal(t, uint(0), status.PreMigrationVersion)
	assert.Equal(t, uint(2), status.PostMigrationVersion)

	store, err := Open(connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestStorage_TransactionsRoundTrip(t *testing.T) {
	store := setupPostgres(t)
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())
	otherUserID := uuid.Must(uuid.NewV4())

	writer, err := store.Write(ctx)
	require.NoError(t, err)

	categories, err := writer.Categories.InsertMany(ctx, userID, []string{"Food", "Transport"})
	require.NoError(t, err)
	require.Len(t, categories, 2)

	again, err := writer.Categories.InsertMany(ctx, userID, []string{"Food", "Gym"})
	require.NoError(t, err)
	require.Len(t, again, 1, "existing names are skipped")
	assert.Equal(t, "Gym", again[0].Name)

	food, err := writer.Categories.FindByName(ctx, userID, "Food")
	require.NoError(t, err)

	inserts := []*sqlconfig.TransactionCreate{
		{UserID: userID, CategoryID: uuid.NullUUID{UUID: food.ID, Valid: true}, Amount: decimal.RequireFromString("100.50"), Type: sqlconfig.TransactionTypeExpense, SpentAt: date(2025, 6, 3)},
		{UserID: userID, Amount: decimal.RequireFromString("20"), Type: sqlconfig.TransactionTypeExpense, SpentAt: date(2025, 4, 1)},
		{UserID: userID, Amount: decimal.RequireFromString("5000"), Type: sqlconfig.TransactionTypeIncome, SpentAt: date(2025, 6, 1)},
		{UserID: userID, Amount: decimal.RequireFromString("7"), Type: sqlconfig.TransactionTypeExpense, SpentAt: date(2025, 7, 1)},
		{UserID: otherUserID, Amount: decimal.RequireFromString("1"), Type: sqlconfig.TransactionTypeExpense, SpentAt: date(2025, 6, 1)},
	}
	ids := make([]uuid.UUID, len(inserts))
	for i, create := range inserts {
		ids[i], err = writer.Transactions.Insert(ctx, create)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Commit(ctx))

	expense := sqlconfig.TransactionTypeExpense
	from, before := date(2025, 4, 1), date(2025, 7, 1)
	rows, err := store.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		UserID:      userID,
		Type:        &expense,
		SpentFrom:   &from,
		SpentBefore: &before,
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byID := map[uuid.UUID]*sqlconfig.Transaction{}
	for _, row := range rows {
		byID[row.ID] = row
	}
	require.Contains(t, byID, ids[0])
	require.NotNil(t, byID[ids[0]].CategoryName)
	assert.Equal(t, "Food", *byID[ids[0]].CategoryName)
	assert.True(t, decimal.RequireFromString("100.50").Equal(byID[ids[0]].Amount))
	require.Contains(t, byID, ids[1])
	assert.Nil(t, byID[ids[1]].CategoryName)

	found, err := store.Transactions.FindByID(ctx, userID, ids[2])
	require.NoError(t, err)
	assert.Equal(t, sqlconfig.TransactionTypeIncome, found.Type)

	_, err = store.Transactions.FindByID(ctx, otherUserID, ids[2])
	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)

	err = store.Transactions.Delete(ctx, otherUserID, ids[0])
	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)
	require.NoError(t, store.Transactions.Delete(ctx, userID, ids[0]))
	err = store.Transactions.Delete(ctx, userID, ids[0])
	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)

	listed, err := store.Categories.ListByUser(ctx, userID)
	require.NoError(t, err)
	names := make([]string, len(listed))
	for i, c := range listed {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"Food", "Gym", "Transport"}, names)
}

func TestStorage_ListPagination(t *testing.T) {
	store := setupPostgres(t)
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	for i := 0; i < 5; i++ {
		_, err := store.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
			UserID:  userID,
			Amount:  decimal.NewFromInt(int64(i + 1)),
			Type:    sqlconfig.TransactionTypeExpense,
			SpentAt: date(2025, 6, i+1),
		})
		require.NoError(t, err)
	}

	page, err := store.Transactions.List(ctx, &sqlconfig.TransactionFilter{UserID: userID, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page, 3, "one extra row signals a next page")

	last, err := store.Transactions.List(ctx, &sqlconfig.TransactionFilter{UserID: userID, Limit: 2, Offset: 4})
	require.NoError(t, err)
	assert.Len(t, last, 1)
}

func TestStorage_RollbackDiscardsWrites(t *testing.T) {
	store := setupPostgres(t)
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	writer, err := store.Write(ctx)
	require.NoError(t, err)
	_, err = writer.Categories.InsertMany(ctx, userID, []string{"Food"})
	require.NoError(t, err)
	require.NoError(t, writer.Rollback(ctx))

	listed, err := store.Categories.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
