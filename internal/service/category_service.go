package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-forecast/internal/operator/actions"
	"github.com/carson-networks/budget-forecast/internal/storage"
)

// CategoryService handles category business logic.
type CategoryService struct {
	storage  *storage.Storage
	operator ActionProcessor
}

func NewCategoryService(store *storage.Storage, op ActionProcessor) *CategoryService {
	return &CategoryService{storage: store, operator: op}
}

// ListCategories returns the user's categories ordered by name.
func (s *CategoryService) ListCategories(ctx context.Context, userID uuid.UUID) ([]Category, error) {
	rows, err := s.storage.Categories.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return categoriesFromStorage(rows), nil
}

// EnsureDefaultCategories creates any missing default categories and returns
// the user's full category list.
func (s *CategoryService) EnsureDefaultCategories(ctx context.Context, userID uuid.UUID) ([]Category, error) {
	action := &actions.EnsureDefaultCategories{UserID: userID}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return categoriesFromStorage(action.Categories), nil
}
