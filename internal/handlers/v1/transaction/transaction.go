package transaction

import (
	"time"

	"github.com/carson-networks/budget-forecast/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID           string `json:"id" doc:"Transaction UUID"`
	CategoryID   string `json:"categoryID,omitempty" doc:"Category UUID, absent when uncategorized"`
	CategoryName string `json:"categoryName,omitempty" doc:"Category name, absent when uncategorized"`
	Amount       string `json:"amount" doc:"Decimal amount"`
	Type         string `json:"type" enum:"expense,income" doc:"Transaction type"`
	Note         string `json:"note" doc:"Free-form note"`
	SpentAt      string `json:"spentAt" format:"date" doc:"Calendar date the money was spent or received"`
	CreatedAt    string `json:"createdAt" format:"date-time" doc:"RFC3339 creation time"`
}

// NewTransaction converts a service transaction to its API model.
func NewTransaction(tx service.Transaction) Transaction {
	out := Transaction{
		ID:           tx.ID.String(),
		CategoryName: tx.CategoryName,
		Amount:       tx.Amount.String(),
		Type:         string(tx.Type),
		Note:         tx.Note,
		SpentAt:      tx.SpentAt.Format(time.DateOnly),
		CreatedAt:    tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.CategoryID.Valid {
		out.CategoryID = tx.CategoryID.UUID.String()
	}
	return out
}
