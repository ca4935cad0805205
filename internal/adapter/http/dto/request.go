package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bookkeeper/internal/domain"
	"github.com/iho/bookkeeper/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	AccountType string  `json:"account_type"`
	ParentID    *string `json:"parent_id,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Code:     r.Code,
		Name:     r.Name,
		Type:     domain.AccountType(r.AccountType),
		ParentID: r.ParentID,
	}
}

// UpdateAccountRequest represents a partial account update. Absent fields
// keep their stored values.
type UpdateAccountRequest struct {
	Name        *string `json:"name,omitempty"`
	AccountType *string `json:"account_type,omitempty"`
	ParentID    *string `json:"parent_id,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// ToPatch converts to a domain patch.
func (r *UpdateAccountRequest) ToPatch() domain.AccountPatch {
	patch := domain.AccountPatch{
		Name:     r.Name,
		ParentID: r.ParentID,
		IsActive: r.IsActive,
	}

	if r.AccountType != nil {
		t := domain.AccountType(*r.AccountType)
		patch.Type = &t
	}

	return patch
}

// CreateEntryRequest represents a single debit/credit line in a proposed
// transaction.
type CreateEntryRequest struct {
	AccountID    string          `json:"account_id"`
	DebitAmount  decimal.Decimal `json:"debit_amount"`
	CreditAmount decimal.Decimal `json:"credit_amount"`
	Description  *string         `json:"description,omitempty"`
}

// CreateTransactionRequest represents a request to commit a transaction.
type CreateTransactionRequest struct {
	Reference       string               `json:"reference"`
	Description     string               `json:"description"`
	TransactionDate *time.Time           `json:"transaction_date,omitempty"`
	Entries         []CreateEntryRequest `json:"entries"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransactionRequest) ToUseCaseInput() usecase.CreateTransactionInput {
	entries := make([]usecase.EntryInput, len(r.Entries))
	for i, e := range r.Entries {
		entries[i] = usecase.EntryInput{
			AccountID:    e.AccountID,
			DebitAmount:  e.DebitAmount,
			CreditAmount: e.CreditAmount,
			Description:  e.Description,
		}
	}

	return usecase.CreateTransactionInput{
		Reference:       r.Reference,
		Description:     r.Description,
		TransactionDate: r.TransactionDate,
		Entries:         entries,
	}
}
