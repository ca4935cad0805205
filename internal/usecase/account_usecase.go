package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/iho/bookkeeper/internal/domain"
)

// AccountUseCase handles the account directory.
type AccountUseCase struct {
	accountRepo AccountRepository
	entryRepo   EntryRepository
	idGen       IDGenerator
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, entryRepo EntryRepository, idGen IDGenerator) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		idGen:       idGen,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	ParentID *string
	Code     string
	Name     string
	Type     domain.AccountType
}

// CreateAccount creates a new chart-of-accounts entry. New accounts start
// active.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateAccountCode(input.Code); err != nil {
		return nil, err
	}

	if err := domain.ValidateAccountName(input.Name); err != nil {
		return nil, err
	}

	if _, err := domain.ParseAccountType(string(input.Type)); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		if _, err := uc.accountRepo.GetByID(ctx, *input.ParentID); err != nil {
			return nil, fmt.Errorf("parent account: %w", err)
		}
	}

	now := time.Now().UTC()

	account := &domain.Account{
		ID:        uc.idGen.Generate(),
		Code:      input.Code,
		Name:      input.Name,
		Type:      input.Type,
		ParentID:  input.ParentID,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts with pagination. The returned total is the
// directory-wide count, not the page size.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, int64, error) {
	accounts, err := uc.accountRepo.List(ctx, clampLimit(input.Limit), input.Offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.accountRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return accounts, total, nil
}

// UpdateAccount applies a partial update as a single atomic statement. Code
// and ID cannot be changed.
func (uc *AccountUseCase) UpdateAccount(ctx context.Context, id string, patch domain.AccountPatch) (*domain.Account, error) {
	if patch.IsEmpty() {
		return nil, domain.ErrEmptyPatch
	}

	if patch.Name != nil {
		if err := domain.ValidateAccountName(*patch.Name); err != nil {
			return nil, err
		}
	}

	if patch.Type != nil {
		if _, err := domain.ParseAccountType(string(*patch.Type)); err != nil {
			return nil, err
		}
	}

	if patch.ParentID != nil {
		if _, err := uc.accountRepo.GetByID(ctx, *patch.ParentID); err != nil {
			return nil, fmt.Errorf("parent account: %w", err)
		}
	}

	return uc.accountRepo.Update(ctx, id, patch, time.Now().UTC())
}

// ListAccountEntries lists an account's entries with pagination, along with
// the account's total entry count. The account must exist.
func (uc *AccountUseCase) ListAccountEntries(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, int64, error) {
	if _, err := uc.accountRepo.GetByID(ctx, accountID); err != nil {
		return nil, 0, err
	}

	entries, err := uc.entryRepo.ListByAccount(ctx, accountID, clampLimit(limit), offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.entryRepo.CountByAccount(ctx, accountID)
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// DeleteAccount removes an account that owns no entries.
func (uc *AccountUseCase) DeleteAccount(ctx context.Context, id string) error {
	count, err := uc.entryRepo.CountByAccount(ctx, id)
	if err != nil {
		return err
	}

	if count > 0 {
		return domain.ErrAccountHasEntries
	}

	return uc.accountRepo.Delete(ctx, id)
}
