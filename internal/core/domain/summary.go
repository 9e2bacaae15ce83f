package domain

import "github.com/shopspring/decimal"

// BankSummary aggregates the whole registry. AverageBalance is zero when the
// bank has no accounts.
type BankSummary struct {
	TotalAccounts  int
	ActiveAccounts int
	TotalBalance   decimal.Decimal
	AverageBalance decimal.Decimal
}
