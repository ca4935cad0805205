package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bookkeeper/internal/domain"
)

// TransactionUseCase is the double-entry transaction engine. It validates a
// proposed transaction, enforces the debits-equal-credits invariant and
// commits the transaction together with all of its entries as one atomic
// unit. A failed submission leaves zero new rows.
type TransactionUseCase struct {
	txManager       TransactionManager
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
	entryRepo       EntryRepository
	idGen           IDGenerator
	retrier         Retrier
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	transactionRepo TransactionRepository,
	entryRepo EntryRepository,
	idGen IDGenerator,
	retrier Retrier,
) *TransactionUseCase {
	return &TransactionUseCase{
		txManager:       txManager,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		entryRepo:       entryRepo,
		idGen:           idGen,
		retrier:         retrier,
	}
}

// EntryInput represents one proposed debit/credit line.
type EntryInput struct {
	Description  *string
	AccountID    string
	DebitAmount  decimal.Decimal
	CreditAmount decimal.Decimal
}

// CreateTransactionInput represents input for submitting a transaction.
type CreateTransactionInput struct {
	TransactionDate *time.Time
	Reference       string
	Description     string
	Entries         []EntryInput
}

// CreateTransaction validates and atomically commits a transaction plus its
// entries, then reads back the committed unit joined with account metadata.
func (uc *TransactionUseCase) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*domain.TransactionWithEntries, error) {
	// All validation happens before any write.
	if err := uc.validate(input); err != nil {
		return nil, err
	}

	var transactionID string

	err := uc.retrier.Retry(ctx, func() error {
		id, err := uc.commit(ctx, input)
		if err != nil {
			return err
		}

		transactionID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.GetTransaction(ctx, transactionID)
}

// commit runs one attempt of the atomic write. Deadlocks and serialization
// failures surface to the retrier, which re-runs the whole unit of work.
func (uc *TransactionUseCase) commit(ctx context.Context, input CreateTransactionInput) (string, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	if err := uc.resolveAccounts(ctx, tx, input.Entries); err != nil {
		return "", err
	}

	now := time.Now().UTC()

	transactionDate := now
	if input.TransactionDate != nil {
		transactionDate = input.TransactionDate.UTC()
	}

	transaction := &domain.Transaction{
		ID:              uc.idGen.Generate(),
		Reference:       input.Reference,
		Description:     input.Description,
		TransactionDate: transactionDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.transactionRepo.Create(ctx, tx, transaction); err != nil {
		return "", err
	}

	// One shared commit timestamp across the transaction and all entries.
	for _, ei := range input.Entries {
		entry := &domain.Entry{
			ID:            uc.idGen.Generate(),
			TransactionID: transaction.ID,
			AccountID:     ei.AccountID,
			DebitAmount:   ei.DebitAmount,
			CreditAmount:  ei.CreditAmount,
			Description:   ei.Description,
			CreatedAt:     now,
		}

		if err := uc.entryRepo.Create(ctx, tx, entry); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}

	return transaction.ID, nil
}

func (uc *TransactionUseCase) validate(input CreateTransactionInput) error {
	if err := domain.ValidateReference(input.Reference); err != nil {
		return err
	}

	if err := domain.ValidateDescription(input.Description); err != nil {
		return err
	}

	for _, ei := range input.Entries {
		if ei.AccountID == "" {
			return domain.ErrMissingAccountID
		}

		if ei.DebitAmount.IsNegative() || ei.CreditAmount.IsNegative() {
			return fmt.Errorf("%w: account %s", domain.ErrNegativeAmount, ei.AccountID)
		}

		if err := domain.ValidateEntryDescription(ei.Description); err != nil {
			return err
		}
	}

	if len(input.Entries) == 0 {
		return domain.ErrEmptyTransaction
	}

	totalDebits := decimal.Zero
	totalCredits := decimal.Zero

	for _, ei := range input.Entries {
		totalDebits = totalDebits.Add(ei.DebitAmount)
		totalCredits = totalCredits.Add(ei.CreditAmount)
	}

	if !totalDebits.Equal(totalCredits) {
		return fmt.Errorf("%w: debits %s, credits %s", domain.ErrUnbalancedTransaction, totalDebits, totalCredits)
	}

	return nil
}

// resolveAccounts checks that every entry's account exists before any row is
// written.
func (uc *TransactionUseCase) resolveAccounts(ctx context.Context, tx Transaction, entries []EntryInput) error {
	ids := uc.collectUniqueAccountIDs(entries)
	sort.Strings(ids)

	accounts, err := uc.accountRepo.GetByIDs(ctx, tx, ids)
	if err != nil {
		return err
	}

	if len(accounts) != len(ids) {
		found := make(map[string]bool, len(accounts))
		for _, a := range accounts {
			found[a.ID] = true
		}

		for _, id := range ids {
			if !found[id] {
				return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
			}
		}
	}

	return nil
}

// GetTransaction retrieves a committed transaction joined with its entries
// and each entry's owning account code and name.
func (uc *TransactionUseCase) GetTransaction(ctx context.Context, id string) (*domain.TransactionWithEntries, error) {
	transaction, err := uc.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entries, err := uc.entryRepo.GetByTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.TransactionWithEntries{
		Transaction: *transaction,
		Entries:     entries,
	}, nil
}

// ListTransactionsInput represents input for listing transactions.
type ListTransactionsInput struct {
	Limit  int
	Offset int
}

// ListTransactions lists committed transactions, newest first. The returned
// total counts every committed transaction, not just the page.
func (uc *TransactionUseCase) ListTransactions(ctx context.Context, input ListTransactionsInput) ([]*domain.Transaction, int64, error) {
	transactions, err := uc.transactionRepo.List(ctx, clampLimit(input.Limit), input.Offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.transactionRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}

// DeleteTransaction removes a transaction and all of its entries as one
// atomic unit.
func (uc *TransactionUseCase) DeleteTransaction(ctx context.Context, id string) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	rows, err := uc.transactionRepo.Delete(ctx, tx, id)
	if err != nil {
		return err
	}

	if rows == 0 {
		return domain.ErrTransactionNotFound
	}

	return tx.Commit(ctx)
}

func (uc *TransactionUseCase) collectUniqueAccountIDs(entries []EntryInput) []string {
	seen := make(map[string]bool)

	var ids []string
	for _, ei := range entries {
		if !seen[ei.AccountID] {
			seen[ei.AccountID] = true
			ids = append(ids, ei.AccountID)
		}
	}

	return ids
}
