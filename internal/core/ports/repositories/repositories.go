// Package repositories defines the persistence gateway consumed by the core.
// Implementations live under internal/repositories/database; the core treats
// the store as an opaque record store and never depends on its internals.
package repositories

import (
	"context"

	"github.com/mayanksbank/banking_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountRepository is the durable mirror of the account registry.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	UpdateAccountBalance(ctx context.Context, accountID string, balance decimal.Decimal) error
	CloseAccount(ctx context.Context, accountID string) error
	FindAllAccounts(ctx context.Context) ([]domain.Account, error)
}

// TransactionRepository stores the append-only transaction ledger.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	FindTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.Transaction, error)
}

// AuditRepository stores the append-only audit trail.
type AuditRepository interface {
	SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error
	FindRecentAuditEntries(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}
