package category

import (
	"time"

	"github.com/carson-networks/budget-forecast/internal/service"
)

// Category is the API response model for a category.
type Category struct {
	ID        string `json:"id" doc:"Category UUID"`
	Name      string `json:"name" doc:"Category name"`
	CreatedAt string `json:"createdAt" format:"date-time" doc:"RFC3339 creation time"`
}

// CategoriesResponseBody is shared by every endpoint that returns the user's categories.
type CategoriesResponseBody struct {
	Categories []Category `json:"categories" doc:"Categories ordered by name"`
}

// CategoriesOutput is the Huma output for category lists.
type CategoriesOutput struct {
	Body CategoriesResponseBody
}

// UserInput is the Huma input for category endpoints.
type UserInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"User UUID"`
}

func newCategoriesOutput(categories []service.Category) *CategoriesOutput {
	resp := CategoriesResponseBody{Categories: make([]Category, len(categories))}
	for i, c := range categories {
		resp.Categories[i] = Category{
			ID:        c.ID.String(),
			Name:      c.Name,
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
		}
	}
	return &CategoriesOutput{Body: resp}
}
