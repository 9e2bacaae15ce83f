package dto

import (
	"time"

	"github.com/mayanksbank/banking_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransferRequest is the payload for moving funds between two accounts.
type TransferRequest struct {
	FromAccountID string          `json:"fromAccountID" binding:"required"`
	ToAccountID   string          `json:"toAccountID" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
}

// TransactionResponse is the API representation of one ledger record.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	AccountID     string          `json:"accountID"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	Message       string          `json:"message"`
	Timestamp     time.Time       `json:"timestamp"`
}

// ToTransactionResponses maps ledger records to their API representation.
func ToTransactionResponses(transactions []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for _, txn := range transactions {
		out = append(out, TransactionResponse{
			TransactionID: txn.TransactionID,
			AccountID:     txn.AccountID,
			Type:          string(txn.Type),
			Amount:        txn.Amount,
			Status:        string(txn.Status),
			Message:       txn.Message,
			Timestamp:     txn.Timestamp,
		})
	}
	return out
}
