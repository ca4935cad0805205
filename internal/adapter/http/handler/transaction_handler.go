package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/bookkeeper/internal/adapter/http/dto"
	"github.com/iho/bookkeeper/internal/domain"
	"github.com/iho/bookkeeper/internal/infrastructure/metrics"
	"github.com/iho/bookkeeper/internal/usecase"
)

// TransactionService defines the behavior needed by TransactionHandler.
type TransactionService interface {
	CreateTransaction(ctx context.Context, input usecase.CreateTransactionInput) (*domain.TransactionWithEntries, error)
	GetTransaction(ctx context.Context, id string) (*domain.TransactionWithEntries, error)
	ListTransactions(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, int64, error)
	DeleteTransaction(ctx context.Context, id string) error
}

// TransactionHandler handles transaction HTTP requests.
type TransactionHandler struct {
	transactionUC TransactionService
	metrics       *metrics.Metrics
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionUC TransactionService, m *metrics.Metrics) *TransactionHandler {
	return &TransactionHandler{transactionUC: transactionUC, metrics: m}
}

// Create validates and atomically commits a transaction with its entries.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	transaction, err := h.transactionUC.CreateTransaction(r.Context(), req.ToUseCaseInput())
	if err != nil {
		h.metrics.TransactionRejected(rejectionReason(err))
		writeDomainError(w, err, "failed to create transaction")

		return
	}

	h.metrics.TransactionCommitted(len(transaction.Entries))
	writeSuccess(w, http.StatusCreated, dto.TransactionWithEntriesFromDomain(transaction), "transaction created")
}

// Get retrieves a committed transaction with its entries.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	transaction, err := h.transactionUC.GetTransaction(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "failed to get transaction")
		return
	}

	writeSuccess(w, http.StatusOK, dto.TransactionWithEntriesFromDomain(transaction), "")
}

// List lists committed transactions, newest first.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", usecase.DefaultPageSize)
	offset := parseIntQuery(r, "offset", 0)

	transactions, total, err := h.transactionUC.ListTransactions(r.Context(), usecase.ListTransactionsInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeDomainError(w, err, "failed to list transactions")
		return
	}

	writeSuccess(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.TransactionsFromDomain(transactions),
		Total:        total,
	}, "")
}

// Delete removes a transaction together with its entries.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.transactionUC.DeleteTransaction(r.Context(), id); err != nil {
		writeDomainError(w, err, "failed to delete transaction")
		return
	}

	h.metrics.TransactionDeleted()
	writeSuccess(w, http.StatusOK, nil, "transaction deleted")
}

// rejectionReason buckets validation failures for metrics labels.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnbalancedTransaction):
		return "unbalanced"
	case errors.Is(err, domain.ErrEmptyTransaction):
		return "empty"
	case errors.Is(err, domain.ErrNegativeAmount):
		return "negative_amount"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "unknown_account"
	case domain.IsValidation(err):
		return "validation"
	default:
		return "storage"
	}
}
