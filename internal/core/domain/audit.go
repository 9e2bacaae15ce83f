package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditStatus is the outcome recorded on an audit entry.
type AuditStatus string

const (
	AuditSuccess AuditStatus = "SUCCESS"
	AuditFailed  AuditStatus = "FAILED"
)

// AuditEntry is one line of the service-level narrative log. AccountID may be
// empty for bank-wide actions, and may reference an account that no longer
// resolves.
type AuditEntry struct {
	Timestamp time.Time
	Action    string
	AccountID string
	Amount    decimal.Decimal
	Status    AuditStatus
	Message   string
}
