package transaction

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-forecast/internal/handlers/v1/user"
	"github.com/carson-networks/budget-forecast/internal/logging"
	"github.com/carson-networks/budget-forecast/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Category string `json:"category,omitempty" doc:"Category name, created for the user when missing"`
	Amount   string `json:"amount" required:"true" doc:"Positive decimal amount"`
	Type     string `json:"type,omitempty" enum:"expense,income" doc:"Transaction type, defaults to expense"`
	Note     string `json:"note,omitempty" maxLength:"500" doc:"Free-form note"`
	SpentAt  string `json:"spentAt,omitempty" doc:"YYYY-MM-DD date, defaults to today"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"User UUID"`
	Body   CreateTransactionBody
}

// CreateTransactionResponseBody is returned once the transaction is stored.
type CreateTransactionResponseBody struct {
	ID string `json:"id" doc:"UUID of the new transaction"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body CreateTransactionResponseBody
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, userID uuid.UUID, create service.TransactionCreate) (uuid.UUID, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Records an expense or income for the user.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput parses and validates the API input.
func parseCreateTransactionInput(input *CreateTransactionInput) (uuid.UUID, service.TransactionCreate, error) {
	userID, err := user.ParseID(input.UserID)
	if err != nil {
		return uuid.Nil, service.TransactionCreate{}, err
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return uuid.Nil, service.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	txType := service.TransactionTypeExpense
	if input.Body.Type != "" {
		txType = service.TransactionType(input.Body.Type)
	}

	var spentAt time.Time
	if input.Body.SpentAt != "" {
		spentAt, err = time.Parse(time.DateOnly, input.Body.SpentAt)
		if err != nil {
			return uuid.Nil, service.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "invalid spentAt", err)
		}
	}

	return userID, service.TransactionCreate{
		CategoryName: input.Body.Category,
		Amount:       amount,
		Type:         txType,
		Note:         input.Body.Note,
		SpentAt:      spentAt,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	userID, create, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	id, err := h.TransactionService.CreateTransaction(ctx, userID, create)
	if stopTimer != nil {
		stopTimer()
	}
	if errors.Is(err, service.ErrInvalidAmount) || errors.Is(err, service.ErrInvalidType) || errors.Is(err, service.ErrMissingDate) {
		return nil, huma.NewError(http.StatusUnprocessableEntity, err.Error(), err)
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	return &CreateTransactionOutput{Body: CreateTransactionResponseBody{ID: id.String()}}, nil
}
