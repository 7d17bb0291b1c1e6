package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Category represents a user's spending category.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
}

// ICategoryTable defines the interface for category storage operations.
//
//go:generate mockery --name ICategoryTable --output . --outpkg sqlconfig --filename mock_ICategoryTable.go --with-expecter
type ICategoryTable interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Category, error)
	FindByName(ctx context.Context, userID uuid.UUID, name string) (*Category, error)
	InsertMany(ctx context.Context, userID uuid.UUID, names []string) ([]*Category, error)
}
