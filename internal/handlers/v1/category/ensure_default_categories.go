package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-forecast/internal/handlers/v1/user"
	"github.com/carson-networks/budget-forecast/internal/service"
)

type defaultCategoryEnsurer interface {
	EnsureDefaultCategories(ctx context.Context, userID uuid.UUID) ([]service.Category, error)
}

// EnsureDefaultCategoriesHandler handles POST /v1/categories/defaults.
type EnsureDefaultCategoriesHandler struct {
	CategoryService defaultCategoryEnsurer
}

func NewEnsureDefaultCategoriesHandler(svc defaultCategoryEnsurer) *EnsureDefaultCategoriesHandler {
	return &EnsureDefaultCategoriesHandler{CategoryService: svc}
}

func (h *EnsureDefaultCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "ensure-default-categories",
		Method:      http.MethodPost,
		Path:        "/v1/categories/defaults",
		Summary:     "Create default categories",
		Description: "Adds any of the default categories the user does not have yet. Safe to call repeatedly.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *EnsureDefaultCategoriesHandler) handle(ctx context.Context, input *UserInput) (*CategoriesOutput, error) {
	userID, err := user.ParseID(input.UserID)
	if err != nil {
		return nil, err
	}

	categories, err := h.CategoryService.EnsureDefaultCategories(ctx, userID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create default categories", err)
	}
	return newCategoriesOutput(categories), nil
}
