package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/mayanksbank/banking_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// AccountType is the product category of an account.
type AccountType string

const (
	Savings AccountType = "SAVINGS"
	Current AccountType = "CURRENT"
)

// ParseAccountType normalizes and validates an account type at the boundary.
// Unrecognized values are rejected rather than stored.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(strings.ToUpper(strings.TrimSpace(s))) {
	case Savings:
		return Savings, nil
	case Current:
		return Current, nil
	default:
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidAccountType, s)
	}
}

// AccountStatus is the lifecycle state of an account. The only legal
// transition is StatusActive -> StatusClosed.
type AccountStatus string

const (
	StatusActive AccountStatus = "ACTIVE"
	StatusClosed AccountStatus = "CLOSED"
)

// ParseAccountStatus validates a persisted status value on bulk load.
func ParseAccountStatus(s string) (AccountStatus, error) {
	switch AccountStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusActive:
		return StatusActive, nil
	case StatusClosed:
		return StatusClosed, nil
	default:
		return "", fmt.Errorf("unrecognized account status %q", s)
	}
}

// Account is a named balance holder. Balance is never negative and closed
// accounts never change balance again.
type Account struct {
	AccountID   string
	OwnerName   string
	AccountType AccountType
	Balance     decimal.Decimal
	Status      AccountStatus
	CreatedAt   time.Time
}

// IsActive reports whether the account may still be mutated.
func (a Account) IsActive() bool {
	return a.Status == StatusActive
}
