package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/bookkeeper/internal/domain"
	"github.com/iho/bookkeeper/internal/usecase"
	"github.com/iho/bookkeeper/internal/usecase/mocks"
)

func newAccountFixture() (*usecase.AccountUseCase, *mocks.MockAccountRepository, *mocks.MockEntryRepository) {
	accRepo := mocks.NewMockAccountRepository()
	entryRepo := mocks.NewMockEntryRepository()
	uc := usecase.NewAccountUseCase(accRepo, entryRepo, mocks.NewMockIDGenerator())
	return uc, accRepo, entryRepo
}

func TestAccountUseCase_CreateAccount(t *testing.T) {
	tests := []struct {
		name      string
		input     usecase.CreateAccountInput
		errorType error
	}{
		{
			name:  "valid account",
			input: usecase.CreateAccountInput{Code: "A001", Name: "Cash", Type: domain.AccountTypeAsset},
		},
		{
			name:      "empty code",
			input:     usecase.CreateAccountInput{Code: "", Name: "Cash", Type: domain.AccountTypeAsset},
			errorType: domain.ErrInvalidAccountCode,
		},
		{
			name:      "code too long",
			input:     usecase.CreateAccountInput{Code: strings.Repeat("x", 21), Name: "Cash", Type: domain.AccountTypeAsset},
			errorType: domain.ErrInvalidAccountCode,
		},
		{
			name:      "empty name",
			input:     usecase.CreateAccountInput{Code: "A001", Name: "", Type: domain.AccountTypeAsset},
			errorType: domain.ErrInvalidAccountName,
		},
		{
			name:      "unknown type",
			input:     usecase.CreateAccountInput{Code: "A001", Name: "Cash", Type: domain.AccountType("piggybank")},
			errorType: domain.ErrInvalidAccountType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _ := newAccountFixture()

			account, err := uc.CreateAccount(context.Background(), tt.input)

			if tt.errorType != nil {
				if !errors.Is(err, tt.errorType) {
					t.Fatalf("expected %v, got %v", tt.errorType, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if account.ID == "" {
				t.Fatalf("expected generated ID")
			}

			if !account.IsActive {
				t.Fatalf("expected new account to start active")
			}

			if account.CreatedAt.IsZero() || !account.CreatedAt.Equal(account.UpdatedAt) {
				t.Fatalf("expected matching creation timestamps, got %v / %v", account.CreatedAt, account.UpdatedAt)
			}
		})
	}
}

func TestAccountUseCase_UpdateAccount(t *testing.T) {
	uc, _, _ := newAccountFixture()

	created, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{
		Code: "A001", Name: "Cash", Type: domain.AccountTypeAsset,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	name := "Petty Cash"
	updated, err := uc.UpdateAccount(context.Background(), created.ID, domain.AccountPatch{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Name != "Petty Cash" {
		t.Fatalf("expected updated name, got %s", updated.Name)
	}

	if updated.Code != "A001" {
		t.Fatalf("expected code to be immutable, got %s", updated.Code)
	}

	// Empty patch is rejected before touching the repository
	if _, err := uc.UpdateAccount(context.Background(), created.ID, domain.AccountPatch{}); !errors.Is(err, domain.ErrEmptyPatch) {
		t.Fatalf("expected ErrEmptyPatch, got %v", err)
	}

	bad := "piggybank"
	badType := domain.AccountType(bad)
	if _, err := uc.UpdateAccount(context.Background(), created.ID, domain.AccountPatch{Type: &badType}); !errors.Is(err, domain.ErrInvalidAccountType) {
		t.Fatalf("expected ErrInvalidAccountType, got %v", err)
	}

	if _, err := uc.UpdateAccount(context.Background(), "ghost", domain.AccountPatch{Name: &name}); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountUseCase_DeleteAccount(t *testing.T) {
	uc, _, entryRepo := newAccountFixture()

	created, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{
		Code: "A001", Name: "Cash", Type: domain.AccountTypeAsset,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := uc.DeleteAccount(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}

	if err := uc.DeleteAccount(context.Background(), "ghost"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}

	// Accounts referenced by entries cannot be removed
	referenced, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{
		Code: "A002", Name: "Bank", Type: domain.AccountTypeAsset,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = entryRepo.Create(context.Background(), nil, &domain.Entry{
		ID:          "e-1",
		AccountID:   referenced.ID,
		DebitAmount: decimal.NewFromInt(10),
	})
	if err != nil {
		t.Fatalf("failed to seed entry: %v", err)
	}

	if err := uc.DeleteAccount(context.Background(), referenced.ID); !errors.Is(err, domain.ErrAccountHasEntries) {
		t.Fatalf("expected ErrAccountHasEntries, got %v", err)
	}
}

func TestAccountUseCase_ListAccountEntries(t *testing.T) {
	uc, _, entryRepo := newAccountFixture()

	created, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{
		Code: "A001", Name: "Cash", Type: domain.AccountTypeAsset,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, id := range []string{"e-1", "e-2", "e-3"} {
		err := entryRepo.Create(context.Background(), nil, &domain.Entry{
			ID:          id,
			AccountID:   created.ID,
			DebitAmount: decimal.NewFromInt(5),
		})
		if err != nil {
			t.Fatalf("failed to seed entry: %v", id)
		}
	}

	entries, total, err := uc.ListAccountEntries(context.Background(), created.ID, 2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	// The total covers the whole account, not just the returned page
	if total != 3 {
		t.Fatalf("expected total 3, got %d", total)
	}

	if _, _, err := uc.ListAccountEntries(context.Background(), "ghost", 10, 0); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountUseCase_ListAccounts_TotalCountsDirectory(t *testing.T) {
	uc, _, _ := newAccountFixture()

	for _, code := range []string{"A001", "A002", "A003"} {
		_, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{
			Code: code, Name: "Account " + code, Type: domain.AccountTypeAsset,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	accounts, total, err := uc.ListAccounts(context.Background(), usecase.ListAccountsInput{Limit: 2, Offset: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if total != 3 {
		t.Fatalf("expected total 3, got %d", total)
	}
	if int64(len(accounts)) > total {
		t.Fatalf("page larger than total: %d > %d", len(accounts), total)
	}
}

func TestAccountUseCase_ParentMustExist(t *testing.T) {
	uc, _, _ := newAccountFixture()

	ghost := "ghost"
	_, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{
		Code: "A100", Name: "Sub Cash", Type: domain.AccountTypeAsset, ParentID: &ghost,
	})
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound for missing parent, got %v", err)
	}

	parent, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{
		Code: "A001", Name: "Cash", Type: domain.AccountTypeAsset,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	child, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{
		Code: "A101", Name: "Petty Cash", Type: domain.AccountTypeAsset, ParentID: &parent.ID,
	})
	if err != nil {
		t.Fatalf("expected create with existing parent to succeed, got %v", err)
	}
	if child.ParentID == nil || *child.ParentID != parent.ID {
		t.Fatalf("expected parent %s, got %v", parent.ID, child.ParentID)
	}

	// Re-parenting onto a missing account is rejected the same way
	if _, err := uc.UpdateAccount(context.Background(), child.ID, domain.AccountPatch{ParentID: &ghost}); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound on update, got %v", err)
	}
}
