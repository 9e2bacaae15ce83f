package dto

import (
	"time"

	"github.com/mayanksbank/banking_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest is the payload for opening an account. The initial
// balance defaults to zero when omitted.
type CreateAccountRequest struct {
	OwnerName      string          `json:"ownerName" binding:"required"`
	AccountType    string          `json:"accountType" binding:"required,oneof=SAVINGS CURRENT"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

// AmountRequest carries the amount for a deposit or withdrawal. Positivity is
// enforced by the core, so a rejected amount still leaves its ledger record.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// AccountResponse is the API representation of an account.
type AccountResponse struct {
	AccountID   string          `json:"accountID"`
	OwnerName   string          `json:"ownerName"`
	AccountType string          `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// BalanceResponse reports the observed balance of one account.
type BalanceResponse struct {
	AccountID string          `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
}

// ToAccountResponse maps a domain account to its API representation.
func ToAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   account.AccountID,
		OwnerName:   account.OwnerName,
		AccountType: string(account.AccountType),
		Balance:     account.Balance,
		Status:      string(account.Status),
		CreatedAt:   account.CreatedAt,
	}
}
