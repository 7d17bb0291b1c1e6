package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-forecast/internal/handlers/v1/user"
	"github.com/carson-networks/budget-forecast/internal/service"
)

// DeleteTransactionInput is the Huma input for deleting a transaction.
type DeleteTransactionInput struct {
	UserID        string `header:"X-User-ID" required:"true" doc:"User UUID"`
	TransactionID string `path:"transactionID" doc:"Transaction UUID"`
}

type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

// DeleteTransactionHandler handles DELETE /v1/transaction/{transactionID}.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/v1/transaction/{transactionID}",
		Summary:       "Delete transaction",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*struct{}, error) {
	userID, err := user.ParseID(input.UserID)
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.TransactionID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transactionID", err)
	}

	err = h.TransactionService.DeleteTransaction(ctx, userID, id)
	if errors.Is(err, service.ErrTransactionNotFound) {
		return nil, huma.NewError(http.StatusNotFound, "transaction not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete transaction", err)
	}
	return nil, nil
}
