package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies an account and fixes its balance sign convention.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// ParseAccountType parses an account type string. Unknown values are
// rejected, never coerced to a default.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense:
		return AccountType(s), nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidAccountType, s)
}

// SignedBalance applies the sign convention for the account type to
// independently accumulated debit and credit totals. Asset and expense
// accounts carry debit-normal balances; liability, equity and revenue
// accounts carry credit-normal balances. A type outside the closed set
// indicates a data-integrity gap in storage and falls back to
// debit minus credit.
func (t AccountType) SignedBalance(debitTotal, creditTotal decimal.Decimal) decimal.Decimal {
	switch t {
	case AccountTypeAsset, AccountTypeExpense:
		return debitTotal.Sub(creditTotal)
	case AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue:
		return creditTotal.Sub(debitTotal)
	default:
		return debitTotal.Sub(creditTotal)
	}
}

// Account is a chart-of-accounts entry. Code and ID are immutable once the
// account is created.
type Account struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	ParentID  *string
	ID        string
	Code      string
	Name      string
	Type      AccountType
	IsActive  bool
}

// AccountPatch describes a partial account update. Nil fields are left
// untouched; the whole patch is applied as a single atomic statement.
type AccountPatch struct {
	Name     *string
	Type     *AccountType
	ParentID *string
	IsActive *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p AccountPatch) IsEmpty() bool {
	return p.Name == nil && p.Type == nil && p.ParentID == nil && p.IsActive == nil
}
