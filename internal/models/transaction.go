package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors one row of the transactions table.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	AccountID     string          `db:"account_id"`
	TxType        string          `db:"tx_type"`
	Amount        decimal.Decimal `db:"amount"`
	Status        string          `db:"status"`
	Message       string          `db:"message"`
	Timestamp     time.Time       `db:"timestamp"`
}
