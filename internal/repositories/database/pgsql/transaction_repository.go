package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mayanksbank/banking_backend/internal/apperrors"
	"github.com/mayanksbank/banking_backend/internal/core/domain"
	portsrepo "github.com/mayanksbank/banking_backend/internal/core/ports/repositories"
	"github.com/mayanksbank/banking_backend/internal/models"
)

// PgxTransactionRepository stores the append-only transaction ledger.
type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a repository for transaction records.
func NewTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{pool: pool}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// SaveTransaction inserts one ledger record. Records are never updated or
// deleted afterward.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := models.Transaction{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID,
		TxType:        string(txn.Type),
		Amount:        txn.Amount,
		Status:        string(txn.Status),
		Message:       txn.Message,
		Timestamp:     txn.Timestamp,
	}

	query := `
		INSERT INTO transactions (transaction_id, account_id, tx_type, amount, status, message, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		m.TransactionID,
		m.AccountID,
		m.TxType,
		m.Amount,
		m.Status,
		m.Message,
		m.Timestamp,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrDuplicateID, m.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// FindTransactionsByAccountID returns an account's records, timestamp
// ascending.
func (r *PgxTransactionRepository) FindTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, account_id, tx_type, amount, status, message, timestamp
		FROM transactions
		WHERE account_id = $1
		ORDER BY timestamp;
	`
	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(&m.TransactionID, &m.AccountID, &m.TxType, &m.Amount, &m.Status, &m.Message, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, domain.Transaction{
			TransactionID: m.TransactionID,
			AccountID:     m.AccountID,
			Type:          domain.TransactionType(m.TxType),
			Amount:        m.Amount,
			Status:        domain.TransactionStatus(m.Status),
			Message:       m.Message,
			Timestamp:     m.Timestamp,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading transaction rows: %w", err)
	}
	return transactions, nil
}
