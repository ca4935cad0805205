package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/iho/bookkeeper/internal/adapter/http/dto"
	"github.com/iho/bookkeeper/internal/adapter/http/handler"
	"github.com/iho/bookkeeper/internal/domain"
	"github.com/iho/bookkeeper/internal/usecase"
)

type routerAccountStub struct {
	getFn func(ctx context.Context, id string) (*domain.Account, error)
}

func (s *routerAccountStub) CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error) {
	return nil, domain.ErrInvalidAccountCode
}

func (s *routerAccountStub) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return s.getFn(ctx, id)
}

func (s *routerAccountStub) ListAccounts(ctx context.Context, input usecase.ListAccountsInput) ([]*domain.Account, int64, error) {
	return []*domain.Account{}, 0, nil
}

func (s *routerAccountStub) UpdateAccount(ctx context.Context, id string, patch domain.AccountPatch) (*domain.Account, error) {
	return nil, domain.ErrAccountNotFound
}

func (s *routerAccountStub) DeleteAccount(ctx context.Context, id string) error {
	return domain.ErrAccountNotFound
}

func (s *routerAccountStub) ListAccountEntries(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, int64, error) {
	return []*domain.Entry{}, 0, nil
}

type routerBalanceStub struct{}

func (routerBalanceStub) GetAccountBalance(ctx context.Context, accountID string) (*domain.AccountBalance, error) {
	return &domain.AccountBalance{AccountID: accountID}, nil
}

func (routerBalanceStub) ListBalances(ctx context.Context, typeFilter *domain.AccountType) ([]domain.AccountBalance, error) {
	return []domain.AccountBalance{}, nil
}

func (routerBalanceStub) TrialBalance(ctx context.Context) (*domain.TrialBalance, error) {
	return &domain.TrialBalance{Balanced: true}, nil
}

type routerTransactionStub struct{}

func (routerTransactionStub) CreateTransaction(ctx context.Context, input usecase.CreateTransactionInput) (*domain.TransactionWithEntries, error) {
	return nil, domain.ErrEmptyTransaction
}

func (routerTransactionStub) GetTransaction(ctx context.Context, id string) (*domain.TransactionWithEntries, error) {
	return nil, domain.ErrTransactionNotFound
}

func (routerTransactionStub) ListTransactions(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, int64, error) {
	return []*domain.Transaction{}, 0, nil
}

func (routerTransactionStub) DeleteTransaction(ctx context.Context, id string) error {
	return domain.ErrTransactionNotFound
}

func newTestRouter(accountStub *routerAccountStub) http.Handler {
	return NewRouter(RouterConfig{
		AccountHandler:     handler.NewAccountHandler(accountStub, nil),
		TransactionHandler: handler.NewTransactionHandler(routerTransactionStub{}, nil),
		BalanceHandler:     handler.NewBalanceHandler(routerBalanceStub{}, nil),
		HealthHandler:      handler.NewHealthHandler(nil, nil),
		Logger:             zerolog.Nop(),
	})
}

func TestRouter_Liveness(t *testing.T) {
	router := newTestRouter(&routerAccountStub{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_AccountIDParamReachesHandler(t *testing.T) {
	var seen string
	router := newTestRouter(&routerAccountStub{
		getFn: func(ctx context.Context, id string) (*domain.Account, error) {
			seen = id
			return &domain.Account{ID: id, Code: "A001", Type: domain.AccountTypeAsset}, nil
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/accounts/acc-42", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if seen != "acc-42" {
		t.Fatalf("expected route param acc-42, got %q", seen)
	}
}

func TestRouter_TrialBalanceRoute(t *testing.T) {
	router := newTestRouter(&routerAccountStub{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/balance/trial", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success envelope, got %+v", resp)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter(&routerAccountStub{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	router := newTestRouter(&routerAccountStub{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
