package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/bookkeeper/internal/domain"
	"github.com/iho/bookkeeper/internal/infrastructure/postgres/generated"
	"github.com/iho/bookkeeper/internal/usecase"
)

const pgErrUniqueViolation = "23505"

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new account.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	_, err := r.queries.CreateAccount(ctx, generated.CreateAccountParams{
		ID:          account.ID,
		Code:        account.Code,
		Name:        account.Name,
		AccountType: string(account.Type),
		ParentID:    ptrToPgText(account.ParentID),
		IsActive:    account.IsActive,
		CreatedAt:   timeToPgTimestamptz(account.CreatedAt),
		UpdatedAt:   timeToPgTimestamptz(account.UpdatedAt),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: code %q already exists", domain.ErrInvalidAccountCode, account.Code)
		}

		return err
	}

	return nil
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	row, err := r.queries.GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	return rowToAccount(row), nil
}

// GetByIDs resolves accounts inside a unit of work.
func (r *AccountRepository) GetByIDs(ctx context.Context, tx usecase.Transaction, ids []string) ([]*domain.Account, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	rows, err := queries.GetAccountsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	accounts := make([]*domain.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, rowToAccount(row))
	}

	return accounts, nil
}

// List lists accounts with pagination, newest first.
func (r *AccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	rows, err := r.queries.ListAccounts(ctx, generated.ListAccountsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	accounts := make([]*domain.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, rowToAccount(row))
	}

	return accounts, nil
}

// Count returns the total number of accounts.
func (r *AccountRepository) Count(ctx context.Context) (int64, error) {
	return r.queries.CountAccounts(ctx)
}

// ListAll returns every account, optionally restricted to one type.
func (r *AccountRepository) ListAll(ctx context.Context, typeFilter *domain.AccountType) ([]*domain.Account, error) {
	var filter pgtype.Text
	if typeFilter != nil {
		filter = pgtype.Text{String: string(*typeFilter), Valid: true}
	}

	rows, err := r.queries.ListAllAccounts(ctx, filter)
	if err != nil {
		return nil, err
	}

	accounts := make([]*domain.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, rowToAccount(row))
	}

	return accounts, nil
}

// Update applies a partial update as one atomic statement.
func (r *AccountRepository) Update(ctx context.Context, id string, patch domain.AccountPatch, updatedAt time.Time) (*domain.Account, error) {
	var accountType pgtype.Text
	if patch.Type != nil {
		accountType = pgtype.Text{String: string(*patch.Type), Valid: true}
	}

	var isActive pgtype.Bool
	if patch.IsActive != nil {
		isActive = pgtype.Bool{Bool: *patch.IsActive, Valid: true}
	}

	row, err := r.queries.UpdateAccount(ctx, generated.UpdateAccountParams{
		ID:          id,
		Name:        ptrToPgText(patch.Name),
		AccountType: accountType,
		ParentID:    ptrToPgText(patch.ParentID),
		IsActive:    isActive,
		UpdatedAt:   timeToPgTimestamptz(updatedAt),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	return rowToAccount(row), nil
}

// Delete removes an account by ID.
func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	rows, err := r.queries.DeleteAccount(ctx, id)
	if err != nil {
		return err
	}

	if rows == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

func rowToAccount(row generated.Account) *domain.Account {
	return &domain.Account{
		ID:        row.ID,
		Code:      row.Code,
		Name:      row.Name,
		Type:      domain.AccountType(row.AccountType),
		ParentID:  pgTextToPtr(row.ParentID),
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation
}
