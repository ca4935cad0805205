package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/bookkeeper/internal/domain"
	"github.com/iho/bookkeeper/internal/infrastructure/postgres/generated"
	"github.com/iho/bookkeeper/internal/usecase"
)

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create inserts an entry row inside the given unit of work.
func (r *EntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateEntry(ctx, generated.CreateEntryParams{
		ID:            entry.ID,
		TransactionID: entry.TransactionID,
		AccountID:     entry.AccountID,
		DebitAmount:   decimalToNumeric(entry.DebitAmount),
		CreditAmount:  decimalToNumeric(entry.CreditAmount),
		Description:   ptrToPgText(entry.Description),
		CreatedAt:     timeToPgTimestamptz(entry.CreatedAt),
	})

	return err
}

// GetByTransaction retrieves entries joined with account code and name.
func (r *EntryRepository) GetByTransaction(ctx context.Context, transactionID string) ([]domain.EntryWithAccount, error) {
	rows, err := r.queries.GetEntriesByTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.EntryWithAccount, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.EntryWithAccount{
			Entry: domain.Entry{
				ID:            row.ID,
				TransactionID: row.TransactionID,
				AccountID:     row.AccountID,
				DebitAmount:   numericToDecimal(row.DebitAmount),
				CreditAmount:  numericToDecimal(row.CreditAmount),
				Description:   pgTextToPtr(row.Description),
				CreatedAt:     row.CreatedAt.Time,
			},
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
		})
	}

	return entries, nil
}

// GetByAccount retrieves every entry for an account, for balance replay.
func (r *EntryRepository) GetByAccount(ctx context.Context, accountID string) ([]*domain.Entry, error) {
	rows, err := r.queries.GetEntriesByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToEntry(row))
	}

	return entries, nil
}

// ListByAccount retrieves entries for an account with pagination.
func (r *EntryRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error) {
	rows, err := r.queries.ListEntriesByAccount(ctx, generated.ListEntriesByAccountParams{
		AccountID: accountID,
		Limit:     int32(limit),
		Offset:    int32(offset),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToEntry(row))
	}

	return entries, nil
}

// CountByAccount counts entries owned by an account.
func (r *EntryRepository) CountByAccount(ctx context.Context, accountID string) (int64, error) {
	return r.queries.CountEntriesByAccount(ctx, accountID)
}

func rowToEntry(row generated.Entry) *domain.Entry {
	return &domain.Entry{
		ID:            row.ID,
		TransactionID: row.TransactionID,
		AccountID:     row.AccountID,
		DebitAmount:   numericToDecimal(row.DebitAmount),
		CreditAmount:  numericToDecimal(row.CreditAmount),
		Description:   pgTextToPtr(row.Description),
		CreatedAt:     row.CreatedAt.Time,
	}
}
