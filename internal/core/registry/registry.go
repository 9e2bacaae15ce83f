// Package registry holds the authoritative in-memory account state for the
// running process. All mutations go through the bank service; no other
// component writes account state directly.
package registry

import (
	"fmt"
	"sync"
	"time"

	"github.com/mayanksbank/banking_backend/internal/apperrors"
	"github.com/mayanksbank/banking_backend/internal/core/domain"
	"github.com/mayanksbank/banking_backend/internal/idgen"
	"github.com/shopspring/decimal"
)

// Registry is an account-id keyed map guarded by a single mutex. The
// registry-wide lock keeps each mutation (read balance, validate, write
// balance) atomic with respect to concurrent callers.
type Registry struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

// New returns an empty registry. State is normally populated once at startup
// via LoadBulk.
func New() *Registry {
	return &Registry{accounts: make(map[string]*domain.Account)}
}

// Create constructs and registers a new ACTIVE account under a freshly
// generated id. The initial balance must not be negative.
func (r *Registry) Create(owner string, accountType domain.AccountType, initialBalance decimal.Decimal) (domain.Account, error) {
	if initialBalance.IsNegative() {
		return domain.Account{}, fmt.Errorf("%w: initial balance %s", apperrors.ErrInvalidAmount, initialBalance)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := idgen.NewAccountID()
	if _, exists := r.accounts[id]; exists {
		// The generator makes collisions vanishingly unlikely; still refuse
		// to overwrite an existing account.
		return domain.Account{}, fmt.Errorf("%w: %s", apperrors.ErrDuplicateID, id)
	}

	account := &domain.Account{
		AccountID:   id,
		OwnerName:   owner,
		AccountType: accountType,
		Balance:     initialBalance,
		Status:      domain.StatusActive,
		CreatedAt:   time.Now().UTC(),
	}
	r.accounts[id] = account
	return *account, nil
}

// Get returns a snapshot of the account, never the internal pointer.
func (r *Registry) Get(id string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return domain.Account{}, fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, id)
	}
	return *account, nil
}

// ApplyDeposit increases the balance by amount and returns the new balance.
func (r *Registry) ApplyDeposit(id string, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("%w: deposit of %s", apperrors.ErrInvalidAmount, amount)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, id)
	}
	if !account.IsActive() {
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrAccountInactive, id)
	}

	account.Balance = account.Balance.Add(amount)
	return account.Balance, nil
}

// ApplyWithdraw decreases the balance by amount and returns the new balance.
// The balance never goes negative.
func (r *Registry) ApplyWithdraw(id string, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("%w: withdrawal of %s", apperrors.ErrInvalidAmount, amount)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, id)
	}
	if !account.IsActive() {
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrAccountInactive, id)
	}
	if amount.GreaterThan(account.Balance) {
		return decimal.Zero, fmt.Errorf("%w: balance %s, requested %s", apperrors.ErrInsufficientFunds, account.Balance, amount)
	}

	account.Balance = account.Balance.Sub(amount)
	return account.Balance, nil
}

// Close marks the account CLOSED. The transition is one-way.
func (r *Registry) Close(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, id)
	}
	if account.Status == domain.StatusClosed {
		return fmt.Errorf("%w: %s", apperrors.ErrAlreadyClosed, id)
	}

	account.Status = domain.StatusClosed
	return nil
}

// Discard removes a just-created account whose persistence failed, so the
// registry never diverges from the store. It is not an account deletion
// operation; closed accounts stay registered forever.
func (r *Registry) Discard(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.accounts, id)
}

// LoadBulk replaces the in-memory state with the persisted records,
// preserving status and balance verbatim. Used once at startup.
func (r *Registry) LoadBulk(accounts []domain.Account) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts = make(map[string]*domain.Account, len(accounts))
	for i := range accounts {
		account := accounts[i]
		r.accounts[account.AccountID] = &account
	}
}

// Summary aggregates the full registry. Aggregation is order-independent.
func (r *Registry) Summary() domain.BankSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summary := domain.BankSummary{TotalBalance: decimal.Zero, AverageBalance: decimal.Zero}
	for _, account := range r.accounts {
		summary.TotalAccounts++
		if account.IsActive() {
			summary.ActiveAccounts++
		}
		summary.TotalBalance = summary.TotalBalance.Add(account.Balance)
	}
	if summary.TotalAccounts > 0 {
		summary.AverageBalance = summary.TotalBalance.Div(decimal.NewFromInt(int64(summary.TotalAccounts)))
	}
	return summary
}
