package usecase

import (
	"context"
	"time"

	"github.com/iho/bookkeeper/internal/domain"
)

// AccountRepository defines data access for the account directory.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	// GetByIDs resolves accounts inside a unit of work; missing IDs are
	// simply absent from the result.
	GetByIDs(ctx context.Context, tx Transaction, ids []string) ([]*domain.Account, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	// Count returns the directory-wide account count.
	Count(ctx context.Context) (int64, error)
	// ListAll returns every account, optionally restricted to one type.
	ListAll(ctx context.Context, typeFilter *domain.AccountType) ([]*domain.Account, error)
	Update(ctx context.Context, id string, patch domain.AccountPatch, updatedAt time.Time) (*domain.Account, error)
	Delete(ctx context.Context, id string) error
}

// TransactionRepository defines data access for committed transactions.
type TransactionRepository interface {
	Create(ctx context.Context, tx Transaction, transaction *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Transaction, error)
	// Count returns the total number of committed transactions.
	Count(ctx context.Context) (int64, error)
	// Delete removes the transaction and, by ownership, its entries.
	// Returns the number of transaction rows removed.
	Delete(ctx context.Context, tx Transaction, id string) (int64, error)
}

// EntryRepository defines data access for ledger entries.
type EntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.Entry) error
	// GetByTransaction returns entries joined with their account code and name.
	GetByTransaction(ctx context.Context, transactionID string) ([]domain.EntryWithAccount, error)
	// GetByAccount returns every entry for an account, for balance replay.
	GetByAccount(ctx context.Context, accountID string) ([]*domain.Entry, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error)
	CountByAccount(ctx context.Context, accountID string) (int64, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier retries an operation on transient storage failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
