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

type GetTransactionInput struct {
	UserID        string `header:"X-User-ID" required:"true" doc:"User UUID"`
	TransactionID string `path:"transactionID" doc:"Transaction UUID"`
}

type GetTransactionOutput struct {
	Body Transaction
}

type transactionGetter interface {
	GetTransaction(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*service.Transaction, error)
}

// GetTransactionHandler handles GET /v1/transaction/{transactionID}.
type GetTransactionHandler struct {
	TransactionService transactionGetter
}

func NewGetTransactionHandler(svc transactionGetter) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/{transactionID}",
		Summary:     "Get transaction",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	userID, err := user.ParseID(input.UserID)
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.TransactionID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transactionID", err)
	}

	tx, err := h.TransactionService.GetTransaction(ctx, userID, id)
	if errors.Is(err, service.ErrTransactionNotFound) {
		return nil, huma.NewError(http.StatusNotFound, "transaction not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to load transaction", err)
	}
	return &GetTransactionOutput{Body: NewTransaction(*tx)}, nil
}
