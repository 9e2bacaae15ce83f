// Package models holds the database-layer representations of the domain
// records, tagged for the pgsql repositories.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account mirrors one row of the accounts table.
type Account struct {
	AccountID   string          `db:"account_id"`
	OwnerName   string          `db:"owner_name"`
	AccountType string          `db:"account_type"`
	Balance     decimal.Decimal `db:"balance"`
	Status      string          `db:"status"`
	CreatedAt   time.Time       `db:"created_at"`
}
