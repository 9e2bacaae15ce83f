package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditEntry mirrors one row of the audit_log table. ID is assigned by the
// database and orders entries for newest-first reads.
type AuditEntry struct {
	ID        int64           `db:"id"`
	Timestamp time.Time       `db:"timestamp"`
	Action    string          `db:"action"`
	AccountID string          `db:"account_id"`
	Amount    decimal.Decimal `db:"amount"`
	Status    string          `db:"status"`
	Message   string          `db:"message"`
}
