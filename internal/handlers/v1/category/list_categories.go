package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-forecast/internal/handlers/v1/user"
	"github.com/carson-networks/budget-forecast/internal/logging"
	"github.com/carson-networks/budget-forecast/internal/service"
)

type categoryLister interface {
	ListCategories(ctx context.Context, userID uuid.UUID) ([]service.Category, error)
}

// ListCategoriesHandler handles GET /v1/categories.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *UserInput) (*CategoriesOutput, error) {
	userID, err := user.ParseID(input.UserID)
	if err != nil {
		return nil, err
	}

	categories, err := h.CategoryService.ListCategories(ctx, userID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list categories", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("categoryCount", len(categories))
	}
	return newCategoriesOutput(categories), nil
}
