// Package ledger records every attempted balance-affecting operation, success
// or failure. It reports; it never blocks the operation it is recording.
package ledger

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mayanksbank/banking_backend/internal/core/domain"
	portsrepo "github.com/mayanksbank/banking_backend/internal/core/ports/repositories"
	"github.com/mayanksbank/banking_backend/internal/idgen"
	"github.com/mayanksbank/banking_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// TransactionLedger is the append-only in-process ledger, mirrored to the
// persistence gateway on every record.
type TransactionLedger struct {
	mu      sync.Mutex
	entries []domain.Transaction
	repo    portsrepo.TransactionRepository
}

// New returns a ledger backed by the given repository.
func New(repo portsrepo.TransactionRepository) *TransactionLedger {
	return &TransactionLedger{repo: repo}
}

// Record assigns a fresh id and timestamp, appends the transaction, and
// forwards it to the gateway. The gateway write is best-effort: a failed
// insert is logged and never surfaces to the recording operation.
func (l *TransactionLedger) Record(ctx context.Context, accountID string, txType domain.TransactionType, amount decimal.Decimal, status domain.TransactionStatus, message string) domain.Transaction {
	txn := domain.Transaction{
		TransactionID: idgen.NewTransactionID(),
		AccountID:     accountID,
		Type:          txType,
		Amount:        amount,
		Status:        status,
		Message:       message,
		Timestamp:     time.Now().UTC(),
	}

	l.mu.Lock()
	l.entries = append(l.entries, txn)
	l.mu.Unlock()

	if err := l.repo.SaveTransaction(ctx, txn); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to persist transaction record",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("account_id", accountID),
			slog.String("error", err.Error()))
	}
	return txn
}

// History fetches the persisted transactions for one account, ordered by
// timestamp ascending.
func (l *TransactionLedger) History(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	return l.repo.FindTransactionsByAccountID(ctx, accountID)
}

// Entries returns a snapshot of the in-process ledger in append order.
func (l *TransactionLedger) Entries() []domain.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.Transaction, len(l.entries))
	copy(out, l.entries)
	return out
}
