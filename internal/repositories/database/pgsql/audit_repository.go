package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mayanksbank/banking_backend/internal/core/domain"
	portsrepo "github.com/mayanksbank/banking_backend/internal/core/ports/repositories"
	"github.com/mayanksbank/banking_backend/internal/models"
)

// PgxAuditRepository stores the append-only audit trail.
type PgxAuditRepository struct {
	pool *pgxpool.Pool
}

// NewAuditRepository creates a repository for audit entries.
func NewAuditRepository(pool *pgxpool.Pool) *PgxAuditRepository {
	return &PgxAuditRepository{pool: pool}
}

var _ portsrepo.AuditRepository = (*PgxAuditRepository)(nil)

// SaveAuditEntry inserts one audit row. The serial id assigned by the
// database preserves call order for newest-first reads.
func (r *PgxAuditRepository) SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error {
	query := `
		INSERT INTO audit_log (timestamp, action, account_id, amount, status, message)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		entry.Timestamp,
		entry.Action,
		entry.AccountID,
		entry.Amount,
		string(entry.Status),
		entry.Message,
	)
	if err != nil {
		return fmt.Errorf("failed to save audit entry for action %s: %w", entry.Action, err)
	}
	return nil
}

// FindRecentAuditEntries returns the newest entries, newest first.
func (r *PgxAuditRepository) FindRecentAuditEntries(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	query := `
		SELECT id, timestamp, action, account_id, amount, status, message
		FROM audit_log
		ORDER BY id DESC
		LIMIT $1;
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		var m models.AuditEntry
		if err := rows.Scan(&m.ID, &m.Timestamp, &m.Action, &m.AccountID, &m.Amount, &m.Status, &m.Message); err != nil {
			return nil, fmt.Errorf("failed to scan audit row: %w", err)
		}
		entries = append(entries, domain.AuditEntry{
			Timestamp: m.Timestamp,
			Action:    m.Action,
			AccountID: m.AccountID,
			Amount:    m.Amount,
			Status:    domain.AuditStatus(m.Status),
			Message:   m.Message,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading audit rows: %w", err)
	}
	return entries, nil
}
