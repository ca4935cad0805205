package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/bookkeeper/internal/adapter/http/dto"
	"github.com/iho/bookkeeper/internal/domain"
	"github.com/iho/bookkeeper/internal/infrastructure/metrics"
)

// BalanceService defines the behavior needed by BalanceHandler.
type BalanceService interface {
	GetAccountBalance(ctx context.Context, accountID string) (*domain.AccountBalance, error)
	ListBalances(ctx context.Context, typeFilter *domain.AccountType) ([]domain.AccountBalance, error)
	TrialBalance(ctx context.Context) (*domain.TrialBalance, error)
}

// BalanceHandler handles balance reconstruction HTTP requests.
type BalanceHandler struct {
	balanceUC BalanceService
	metrics   *metrics.Metrics
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balanceUC BalanceService, m *metrics.Metrics) *BalanceHandler {
	return &BalanceHandler{balanceUC: balanceUC, metrics: m}
}

// Get computes one account's balance by replaying its entries.
func (h *BalanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	balance, err := h.balanceUC.GetAccountBalance(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "failed to get balance")
		return
	}

	h.metrics.BalanceQueried("account")
	writeSuccess(w, http.StatusOK, dto.AccountBalanceFromDomain(balance), "")
}

// List computes balances across the chart of accounts, optionally filtered
// by account type.
func (h *BalanceHandler) List(w http.ResponseWriter, r *http.Request) {
	var typeFilter *domain.AccountType
	if raw := r.URL.Query().Get("account_type"); raw != "" {
		t, err := domain.ParseAccountType(raw)
		if err != nil {
			writeDomainError(w, err, "invalid account type filter")
			return
		}
		typeFilter = &t
	}

	balances, err := h.balanceUC.ListBalances(r.Context(), typeFilter)
	if err != nil {
		writeDomainError(w, err, "failed to list balances")
		return
	}

	h.metrics.BalanceQueried("list")
	writeSuccess(w, http.StatusOK, dto.AccountBalancesFromDomain(balances), "")
}

// Trial computes the full trial balance.
func (h *BalanceHandler) Trial(w http.ResponseWriter, r *http.Request) {
	trial, err := h.balanceUC.TrialBalance(r.Context())
	if err != nil {
		writeDomainError(w, err, "failed to compute trial balance")
		return
	}

	h.metrics.TrialBalanceRun()
	writeSuccess(w, http.StatusOK, dto.TrialBalanceFromDomain(trial), "")
}
