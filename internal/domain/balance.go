package domain

import "github.com/shopspring/decimal"

// AccountBalance is the signed aggregate of an account's entries. It is
// recomputed from stored entries on every query, never cached.
type AccountBalance struct {
	AccountID   string
	AccountCode string
	AccountName string
	AccountType AccountType
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal
	Balance     decimal.Decimal
}

// TrialBalance aggregates debit and credit totals across the whole chart of
// accounts. A balanced ledger has equal totals.
type TrialBalance struct {
	Accounts    []AccountBalance
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal
	Balanced    bool
}
