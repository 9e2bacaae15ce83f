// Package pgsql implements the persistence gateway on PostgreSQL via pgx.
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
	"github.com/shopspring/decimal"
)

const uniqueViolationCode = "23505"

// PgxAccountRepository stores the durable mirror of the account registry.
type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a repository for account records.
func NewAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{pool: pool}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:   d.AccountID,
		OwnerName:   d.OwnerName,
		AccountType: string(d.AccountType),
		Balance:     d.Balance,
		Status:      string(d.Status),
		CreatedAt:   d.CreatedAt,
	}
}

func toDomainAccount(m models.Account) (domain.Account, error) {
	accountType, err := domain.ParseAccountType(m.AccountType)
	if err != nil {
		return domain.Account{}, fmt.Errorf("account %s: %w", m.AccountID, err)
	}
	status, err := domain.ParseAccountStatus(m.Status)
	if err != nil {
		return domain.Account{}, fmt.Errorf("account %s: %w", m.AccountID, err)
	}
	return domain.Account{
		AccountID:   m.AccountID,
		OwnerName:   m.OwnerName,
		AccountType: accountType,
		Balance:     m.Balance,
		Status:      status,
		CreatedAt:   m.CreatedAt,
	}, nil
}

// SaveAccount inserts a new account row.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)

	query := `
		INSERT INTO accounts (account_id, owner_name, account_type, balance, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		m.AccountID,
		m.OwnerName,
		m.AccountType,
		m.Balance,
		m.Status,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: account %s", apperrors.ErrDuplicateID, m.AccountID)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// UpdateAccountBalance overwrites the persisted balance of one account.
func (r *PgxAccountRepository) UpdateAccountBalance(ctx context.Context, accountID string, balance decimal.Decimal) error {
	query := `UPDATE accounts SET balance = $1 WHERE account_id = $2;`

	tag, err := r.pool.Exec(ctx, query, balance, accountID)
	if err != nil {
		return fmt.Errorf("failed to update balance for account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, accountID)
	}
	return nil
}

// CloseAccount marks the persisted account record CLOSED.
func (r *PgxAccountRepository) CloseAccount(ctx context.Context, accountID string) error {
	query := `UPDATE accounts SET status = $1 WHERE account_id = $2;`

	tag, err := r.pool.Exec(ctx, query, string(domain.StatusClosed), accountID)
	if err != nil {
		return fmt.Errorf("failed to close account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, accountID)
	}
	return nil
}

// FindAllAccounts returns every persisted account record, for the startup
// bulk load.
func (r *PgxAccountRepository) FindAllAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `
		SELECT account_id, owner_name, account_type, balance, status, created_at
		FROM accounts
		ORDER BY account_id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(&m.AccountID, &m.OwnerName, &m.AccountType, &m.Balance, &m.Status, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		account, err := toDomainAccount(m)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading account rows: %w", err)
	}
	return accounts, nil
}
