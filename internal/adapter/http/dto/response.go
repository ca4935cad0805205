package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bookkeeper/internal/domain"
)

// APIResponse is the envelope every endpoint responds with.
type APIResponse struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// SuccessResponse builds a success envelope.
func SuccessResponse(data any, message string) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	}
}

// FailureResponse builds an error envelope.
func FailureResponse(message string, errs ...string) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
		Errors:  errs,
	}
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	AccountType string    `json:"account_type"`
	ParentID    *string   `json:"parent_id,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:          a.ID,
		Code:        a.Code,
		Name:        a.Name,
		AccountType: string(a.Type),
		ParentID:    a.ParentID,
		IsActive:    a.IsActive,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID              string    `json:"id"`
	Reference       string    `json:"reference"`
	Description     string    `json:"description"`
	TransactionDate time.Time `json:"transaction_date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:              t.ID,
		Reference:       t.Reference,
		Description:     t.Description,
		TransactionDate: t.TransactionDate,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// EntryResponse represents an entry in API responses.
type EntryResponse struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transaction_id"`
	AccountID     string          `json:"account_id"`
	DebitAmount   decimal.Decimal `json:"debit_amount"`
	CreditAmount  decimal.Decimal `json:"credit_amount"`
	Description   *string         `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e *domain.Entry) *EntryResponse {
	return &EntryResponse{
		ID:            e.ID,
		TransactionID: e.TransactionID,
		AccountID:     e.AccountID,
		DebitAmount:   e.DebitAmount,
		CreditAmount:  e.CreditAmount,
		Description:   e.Description,
		CreatedAt:     e.CreatedAt,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.Entry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// EntryWithAccountResponse represents an entry joined with its account.
type EntryWithAccountResponse struct {
	EntryResponse
	AccountCode string `json:"account_code"`
	AccountName string `json:"account_name"`
}

// TransactionWithEntriesResponse represents a committed transaction with its
// entry lines.
type TransactionWithEntriesResponse struct {
	TransactionResponse
	Entries []EntryWithAccountResponse `json:"entries"`
}

// TransactionWithEntriesFromDomain converts a committed unit to a response.
func TransactionWithEntriesFromDomain(t *domain.TransactionWithEntries) *TransactionWithEntriesResponse {
	entries := make([]EntryWithAccountResponse, len(t.Entries))
	for i, e := range t.Entries {
		entries[i] = EntryWithAccountResponse{
			EntryResponse: *EntryFromDomain(&e.Entry),
			AccountCode:   e.AccountCode,
			AccountName:   e.AccountName,
		}
	}

	return &TransactionWithEntriesResponse{
		TransactionResponse: *TransactionFromDomain(&t.Transaction),
		Entries:             entries,
	}
}

// AccountBalanceResponse represents a reconstructed account balance.
type AccountBalanceResponse struct {
	AccountID   string          `json:"account_id"`
	AccountCode string          `json:"account_code"`
	AccountName string          `json:"account_name"`
	AccountType string          `json:"account_type"`
	DebitTotal  decimal.Decimal `json:"debit_total"`
	CreditTotal decimal.Decimal `json:"credit_total"`
	Balance     decimal.Decimal `json:"balance"`
}

// AccountBalanceFromDomain converts a domain balance to a response.
func AccountBalanceFromDomain(b *domain.AccountBalance) *AccountBalanceResponse {
	return &AccountBalanceResponse{
		AccountID:   b.AccountID,
		AccountCode: b.AccountCode,
		AccountName: b.AccountName,
		AccountType: string(b.AccountType),
		DebitTotal:  b.DebitTotal,
		CreditTotal: b.CreditTotal,
		Balance:     b.Balance,
	}
}

// AccountBalancesFromDomain converts domain balances to responses.
func AccountBalancesFromDomain(balances []domain.AccountBalance) []*AccountBalanceResponse {
	result := make([]*AccountBalanceResponse, len(balances))
	for i := range balances {
		result[i] = AccountBalanceFromDomain(&balances[i])
	}
	return result
}

// TrialBalanceResponse represents a trial balance in API responses.
type TrialBalanceResponse struct {
	Accounts    []*AccountBalanceResponse `json:"accounts"`
	DebitTotal  decimal.Decimal           `json:"debit_total"`
	CreditTotal decimal.Decimal           `json:"credit_total"`
	Balanced    bool                      `json:"balanced"`
}

// TrialBalanceFromDomain converts a domain trial balance to a response.
func TrialBalanceFromDomain(tb *domain.TrialBalance) *TrialBalanceResponse {
	return &TrialBalanceResponse{
		Accounts:    AccountBalancesFromDomain(tb.Accounts),
		DebitTotal:  tb.DebitTotal,
		CreditTotal: tb.CreditTotal,
		Balanced:    tb.Balanced,
	}
}

// ListAccountsResponse wraps a page of accounts.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int64                  `json:"total"`
}

// ListEntriesResponse wraps a page of entries.
type ListEntriesResponse struct {
	Entries []*EntryResponse `json:"entries"`
	Total   int64            `json:"total"`
}
