// Package audit keeps the service-level narrative log: one entry per public
// bank operation, fanned out to an in-memory sequence, an append-only text
// log, and the persistence gateway.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mayanksbank/banking_backend/internal/core/domain"
	portsrepo "github.com/mayanksbank/banking_backend/internal/core/ports/repositories"
	"github.com/mayanksbank/banking_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// Trail fans each entry out to three sinks. The text-log and gateway sinks
// are best-effort: a sink failure is logged locally and never aborts the
// financial operation being audited. The in-memory sequence always succeeds,
// so every call still leaves exactly one entry.
type Trail struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
	logPath string
	repo    portsrepo.AuditRepository
}

// New returns a trail appending its text log to logPath and mirroring
// entries to repo.
func New(logPath string, repo portsrepo.AuditRepository) *Trail {
	return &Trail{logPath: logPath, repo: repo}
}

// Log appends one entry for the named action. The action is upper-cased;
// accountID may be empty for bank-wide actions.
func (t *Trail) Log(ctx context.Context, action, accountID string, amount decimal.Decimal, status domain.AuditStatus, message string) domain.AuditEntry {
	entry := domain.AuditEntry{
		Timestamp: time.Now().UTC(),
		Action:    strings.ToUpper(action),
		AccountID: accountID,
		Amount:    amount,
		Status:    status,
		Message:   message,
	}

	t.mu.Lock()
	t.entries = append(t.entries, entry)
	t.mu.Unlock()

	logger := middleware.GetLoggerFromCtx(ctx)
	if err := t.appendLine(entry); err != nil {
		logger.Error("Failed to append audit log line",
			slog.String("path", t.logPath),
			slog.String("error", err.Error()))
	}
	if err := t.repo.SaveAuditEntry(ctx, entry); err != nil {
		logger.Error("Failed to persist audit entry",
			slog.String("action", entry.Action),
			slog.String("error", err.Error()))
	}
	return entry
}

// FormatLine renders one pipe-delimited audit log line, without the trailing
// newline: timestamp | ACTION | account_id | amount | STATUS | message.
func FormatLine(entry domain.AuditEntry) string {
	return fmt.Sprintf("%s | %s | %s | %s | %s | %s",
		entry.Timestamp.Format(time.RFC3339Nano),
		entry.Action,
		entry.AccountID,
		entry.Amount.String(),
		entry.Status,
		entry.Message)
}

func (t *Trail) appendLine(entry domain.AuditEntry) error {
	f, err := os.OpenFile(t.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(FormatLine(entry) + "\n"); err != nil {
		return err
	}
	return nil
}

// Entries returns a snapshot of the in-memory sequence in call order.
func (t *Trail) Entries() []domain.AuditEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.AuditEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Recent fetches the newest entries from the gateway, newest first.
func (t *Trail) Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	return t.repo.FindRecentAuditEntries(ctx, limit)
}
