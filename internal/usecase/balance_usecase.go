package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/bookkeeper/internal/domain"
)

// BalanceUseCase computes account balances by replaying stored entries. A
// balance is a pure function of the entry set: nothing is cached and every
// query recomputes from source rows.
type BalanceUseCase struct {
	accountRepo AccountRepository
	entryRepo   EntryRepository
}

// NewBalanceUseCase creates a new BalanceUseCase.
func NewBalanceUseCase(accountRepo AccountRepository, entryRepo EntryRepository) *BalanceUseCase {
	return &BalanceUseCase{
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
	}
}

// GetAccountBalance computes the signed balance of a single account.
func (uc *BalanceUseCase) GetAccountBalance(ctx context.Context, accountID string) (*domain.AccountBalance, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return uc.balanceOf(ctx, account)
}

// ListBalances computes balances for every account, optionally restricted to
// one account type. An empty directory yields an empty result, not an error.
func (uc *BalanceUseCase) ListBalances(ctx context.Context, typeFilter *domain.AccountType) ([]domain.AccountBalance, error) {
	accounts, err := uc.accountRepo.ListAll(ctx, typeFilter)
	if err != nil {
		return nil, err
	}

	balances := make([]domain.AccountBalance, 0, len(accounts))
	for _, account := range accounts {
		balance, err := uc.balanceOf(ctx, account)
		if err != nil {
			return nil, err
		}

		balances = append(balances, *balance)
	}

	return balances, nil
}

// TrialBalance aggregates debit and credit totals across all accounts. Equal
// totals mean every committed transaction kept the double-entry invariant.
func (uc *BalanceUseCase) TrialBalance(ctx context.Context) (*domain.TrialBalance, error) {
	balances, err := uc.ListBalances(ctx, nil)
	if err != nil {
		return nil, err
	}

	debitTotal := decimal.Zero
	creditTotal := decimal.Zero

	for _, b := range balances {
		debitTotal = debitTotal.Add(b.DebitTotal)
		creditTotal = creditTotal.Add(b.CreditTotal)
	}

	return &domain.TrialBalance{
		Accounts:    balances,
		DebitTotal:  debitTotal,
		CreditTotal: creditTotal,
		Balanced:    debitTotal.Equal(creditTotal),
	}, nil
}

func (uc *BalanceUseCase) balanceOf(ctx context.Context, account *domain.Account) (*domain.AccountBalance, error) {
	entries, err := uc.entryRepo.GetByAccount(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	debitTotal := decimal.Zero
	creditTotal := decimal.Zero

	for _, entry := range entries {
		debitTotal = debitTotal.Add(entry.DebitAmount)
		creditTotal = creditTotal.Add(entry.CreditAmount)
	}

	return &domain.AccountBalance{
		AccountID:   account.ID,
		AccountCode: account.Code,
		AccountName: account.Name,
		AccountType: account.Type,
		DebitTotal:  debitTotal,
		CreditTotal: creditTotal,
		Balance:     account.Type.SignedBalance(debitTotal, creditTotal),
	}, nil
}
