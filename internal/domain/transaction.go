package domain

import "time"

// Transaction is an atomic, balanced group of entries. It is immutable once
// committed; correcting a transaction means deleting and recreating it.
type Transaction struct {
	TransactionDate time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ID              string
	Reference       string
	Description     string
}

// TransactionWithEntries is the canonical read model for a committed
// transaction: the transaction row joined with its entries and each entry's
// owning account metadata.
type TransactionWithEntries struct {
	Transaction

	Entries []EntryWithAccount
}
