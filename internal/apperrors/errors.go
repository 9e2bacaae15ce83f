package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount indicates a zero or negative amount where a positive one is required.
var ErrInvalidAmount = errors.New("amount must be positive")

// ErrInvalidOwnerName indicates a blank owner name on account creation.
var ErrInvalidOwnerName = errors.New("owner name must not be blank")

// ErrInvalidAccountType indicates an account type outside the closed enum.
var ErrInvalidAccountType = errors.New("unrecognized account type")

// ErrAccountNotFound indicates the referenced account does not exist in the registry.
var ErrAccountNotFound = errors.New("account not found")

// ErrAccountInactive indicates an operation against a closed account.
var ErrAccountInactive = errors.New("account is not active")

// ErrInsufficientFunds indicates a withdrawal larger than the current balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrAlreadyClosed indicates a close attempt on an account already closed.
var ErrAlreadyClosed = errors.New("account is already closed")

// ErrSelfTransfer indicates a transfer where source and destination are the same account.
var ErrSelfTransfer = errors.New("cannot transfer to the same account")

// ErrDuplicateID indicates an identifier collision on registration.
var ErrDuplicateID = errors.New("identifier already registered")

// ErrPersistence indicates a failed persistence gateway call.
var ErrPersistence = errors.New("persistence failure")

// PartialTransferError reports a transfer whose source debit succeeded, whose
// destination credit failed, and whose compensating re-credit of the source
// could not be applied either. Amount is the value left stranded.
type PartialTransferError struct {
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	Cause         error
}

func (e *PartialTransferError) Error() string {
	return fmt.Sprintf("partial transfer failure: %s debited %s but %s was never credited: %v",
		e.FromAccountID, e.Amount.String(), e.ToAccountID, e.Cause)
}

func (e *PartialTransferError) Unwrap() error {
	return e.Cause
}
