package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-forecast/internal/operator/actions"
	"github.com/carson-networks/budget-forecast/internal/storage/sqlconfig"
)

func TestListCategories(t *testing.T) {
	deps := newTestDeps(t)
	svc := NewCategoryService(deps.store, deps.processor)

	rows := []*sqlconfig.Category{
		{ID: uuid.Must(uuid.NewV4()), UserID: testUserID, Name: "Bills"},
		{ID: uuid.Must(uuid.NewV4()), UserID: testUserID, Name: "Food"},
	}
	deps.categories.EXPECT().ListByUser(mock.Anything, testUserID).Return(rows, nil)

	categories, err := svc.ListCategories(context.Background(), testUserID)

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, rows[0].ID, categories[0].ID)
	assert.Equal(t, "Food", categories[1].Name)
}

func TestListCategories_StorageError(t *testing.T) {
	deps := newTestDeps(t)
	svc := NewCategoryService(deps.store, deps.processor)

	deps.categories.EXPECT().ListByUser(mock.Anything, testUserID).Return(nil, errors.New("database unavailable"))

	categories, err := svc.ListCategories(context.Background(), testUserID)

	assert.EqualError(t, err, "database unavailable")
	assert.Nil(t, categories)
}

func TestEnsureDefaultCategories(t *testing.T) {
	deps := newTestDeps(t)
	svc := NewCategoryService(deps.store, deps.processor)

	inserted := make([]*sqlconfig.Category, len(actions.DefaultCategoryNames))
	for i, name := range actions.DefaultCategoryNames {
		inserted[i] = &sqlconfig.Category{ID: uuid.Must(uuid.NewV4()), UserID: testUserID, Name: name}
	}
	deps.categories.EXPECT().ListByUser(mock.Anything, testUserID).Return([]*sqlconfig.Category{}, nil)
	deps.categories.EXPECT().InsertMany(mock.Anything, testUserID, actions.DefaultCategoryNames).Return(inserted, nil)

	categories, err := svc.EnsureDefaultCategories(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Len(t, categories, len(actions.DefaultCategoryNames))
	assert.Equal(t, "Bills", categories[0].Name)
}
