package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a balance-affecting operation.
type TransactionType string

const (
	TxDeposit     TransactionType = "DEPOSIT"
	TxWithdraw    TransactionType = "WITHDRAW"
	TxTransferIn  TransactionType = "TRANSFER_IN"
	TxTransferOut TransactionType = "TRANSFER_OUT"
)

// TransactionStatus records whether the attempted operation succeeded.
type TransactionStatus string

const (
	TxSuccess TransactionStatus = "SUCCESS"
	TxFailed  TransactionStatus = "FAILED"
)

// Transaction is an immutable record of one attempted balance mutation.
// Records are appended at the moment the operation is attempted and never
// modified or deleted afterward.
type Transaction struct {
	TransactionID string
	AccountID     string
	Type          TransactionType
	Amount        decimal.Decimal
	Status        TransactionStatus
	Message       string
	Timestamp     time.Time
}
