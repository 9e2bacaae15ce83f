// Package idgen produces account and transaction identifiers: a fixed prefix
// followed by a fixed-length, upper-cased slice of a random UUID's hex form.
package idgen

import (
	"strings"

	"github.com/google/uuid"
)

const (
	accountPrefix     = "ACC-"
	transactionPrefix = "TX-"

	accountSuffixLen     = 8
	transactionSuffixLen = 10
)

// NewAccountID returns a fresh account identifier, e.g. "ACC-1A2B3C4D".
func NewAccountID() string {
	return accountPrefix + randomHex(accountSuffixLen)
}

// NewTransactionID returns a fresh transaction identifier, e.g. "TX-1A2B3C4D5E".
func NewTransactionID() string {
	return transactionPrefix + randomHex(transactionSuffixLen)
}

func randomHex(n int) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(hex[:n])
}
