package dto

import (
	"time"

	"github.com/mayanksbank/banking_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AuditEntryResponse is the API representation of one audit trail entry.
type AuditEntryResponse struct {
	Timestamp time.Time       `json:"timestamp"`
	Action    string          `json:"action"`
	AccountID string          `json:"accountID,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	Message   string          `json:"message"`
}

// SummaryResponse aggregates the whole bank for the summary endpoint.
type SummaryResponse struct {
	BankName       string          `json:"bankName"`
	TotalAccounts  int             `json:"totalAccounts"`
	ActiveAccounts int             `json:"activeAccounts"`
	TotalBalance   decimal.Decimal `json:"totalBalance"`
	AverageBalance decimal.Decimal `json:"averageBalance"`
}

// ToAuditEntryResponses maps audit entries to their API representation.
func ToAuditEntryResponses(entries []domain.AuditEntry) []AuditEntryResponse {
	out := make([]AuditEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, AuditEntryResponse{
			Timestamp: entry.Timestamp,
			Action:    entry.Action,
			AccountID: entry.AccountID,
			Amount:    entry.Amount,
			Status:    string(entry.Status),
			Message:   entry.Message,
		})
	}
	return out
}
