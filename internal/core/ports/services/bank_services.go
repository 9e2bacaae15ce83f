// Package services defines the service facades the transport layer depends
// on, keeping handlers decoupled from concrete service types.
package services

import (
	"context"

	"github.com/mayanksbank/banking_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BankSvcFacade exposes every public operation of the bank service.
type BankSvcFacade interface {
	CreateAccount(ctx context.Context, owner string, accountType domain.AccountType, initialBalance decimal.Decimal) (*domain.Account, error)
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) (decimal.Decimal, error)
	CheckBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
	Transfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal) error
	CloseAccount(ctx context.Context, accountID string) error
	BankSummary(ctx context.Context) domain.BankSummary
	ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error)
	RecentAuditEntries(ctx context.Context, limit int) ([]domain.AuditEntry, error)
	Name() string
}
