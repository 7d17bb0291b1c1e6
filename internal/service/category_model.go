package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-forecast/internal/storage/sqlconfig"
)

// Category represents a spending category in the service layer.
type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

func categoriesFromStorage(rows []*sqlconfig.Category) []Category {
	result := make([]Category, len(rows))
	for i, row := range rows {
		result[i] = Category{
			ID:        row.ID,
			Name:      row.Name,
			CreatedAt: row.CreatedAt,
		}
	}
	return result
}
