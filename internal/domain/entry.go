package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is a single debit or credit line belonging to exactly one
// transaction and one account. Entries are immutable once committed.
type Entry struct {
	CreatedAt     time.Time
	Description   *string
	ID            string
	TransactionID string
	AccountID     string
	DebitAmount   decimal.Decimal
	CreditAmount  decimal.Decimal
}

// EntryWithAccount is an entry joined with the code and name of its owning
// account, as surfaced by transaction read-back.
type EntryWithAccount struct {
	Entry

	AccountCode string
	AccountName string
}
