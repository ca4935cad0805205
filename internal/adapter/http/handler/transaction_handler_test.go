package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/bookkeeper/internal/adapter/http/dto"
	"github.com/iho/bookkeeper/internal/domain"
	"github.com/iho/bookkeeper/internal/usecase"
)

type transactionServiceStub struct {
	createFn func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.TransactionWithEntries, error)
	getFn    func(ctx context.Context, id string) (*domain.TransactionWithEntries, error)
	listFn   func(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, int64, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *transactionServiceStub) CreateTransaction(ctx context.Context, input usecase.CreateTransactionInput) (*domain.TransactionWithEntries, error) {
	return s.createFn(ctx, input)
}

func (s *transactionServiceStub) GetTransaction(ctx context.Context, id string) (*domain.TransactionWithEntries, error) {
	return s.getFn(ctx, id)
}

func (s *transactionServiceStub) ListTransactions(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, int64, error) {
	return s.listFn(ctx, input)
}

func (s *transactionServiceStub) DeleteTransaction(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func balancedTransactionBody() []byte {
	body, _ := json.Marshal(dto.CreateTransactionRequest{
		Reference:   "INV-001",
		Description: "office chairs",
		Entries: []dto.CreateEntryRequest{
			{AccountID: "acc-cash", CreditAmount: decimal.NewFromInt(250)},
			{AccountID: "acc-expense", DebitAmount: decimal.NewFromInt(250)},
		},
	})

	return body
}

func TestTransactionHandler_Create_Success(t *testing.T) {
	committed := &domain.TransactionWithEntries{
		Transaction: domain.Transaction{ID: "txn-1", Reference: "INV-001", Description: "office chairs"},
		Entries: []domain.EntryWithAccount{
			{Entry: domain.Entry{ID: "e-1", AccountID: "acc-cash", CreditAmount: decimal.NewFromInt(250)}},
			{Entry: domain.Entry{ID: "e-2", AccountID: "acc-expense", DebitAmount: decimal.NewFromInt(250)}},
		},
	}

	h := NewTransactionHandler(&transactionServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.TransactionWithEntries, error) {
			if len(input.Entries) != 2 {
				t.Fatalf("expected 2 entries, got %d", len(input.Entries))
			}
			return committed, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(balancedTransactionBody()))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	resp := decodeEnvelope(t, rec)
	if !resp.Success {
		t.Fatalf("expected success envelope, got %+v", resp)
	}
}

func TestTransactionHandler_Create_Unbalanced(t *testing.T) {
	h := NewTransactionHandler(&transactionServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.TransactionWithEntries, error) {
			return nil, fmt.Errorf("%w: debits 250, credits 100", domain.ErrUnbalancedTransaction)
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(balancedTransactionBody()))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	resp := decodeEnvelope(t, rec)
	if resp.Success {
		t.Fatalf("expected failure envelope, got %+v", resp)
	}
}

func TestTransactionHandler_Create_StorageError(t *testing.T) {
	h := NewTransactionHandler(&transactionServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.TransactionWithEntries, error) {
			return nil, errors.New("connection reset")
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(balancedTransactionBody()))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestTransactionHandler_Get_NotFound(t *testing.T) {
	h := NewTransactionHandler(&transactionServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.TransactionWithEntries, error) {
			return nil, domain.ErrTransactionNotFound
		},
	}, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/transactions/ghost", nil), "id", "ghost")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTransactionHandler_List_PassesPagination(t *testing.T) {
	h := NewTransactionHandler(&transactionServiceStub{
		listFn: func(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, int64, error) {
			if input.Limit != 5 || input.Offset != 10 {
				t.Fatalf("expected limit=5 offset=10, got %+v", input)
			}
			return []*domain.Transaction{{ID: "txn-1"}}, 31, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/transactions?limit=5&offset=10", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	resp := decodeEnvelope(t, rec)
	data, _ := json.Marshal(resp.Data)
	var listResp dto.ListTransactionsResponse
	if err := json.Unmarshal(data, &listResp); err != nil {
		t.Fatalf("failed to decode list response: %v", err)
	}
	if listResp.Total != 31 {
		t.Fatalf("expected total 31, got %d", listResp.Total)
	}
}

func TestTransactionHandler_Delete_Success(t *testing.T) {
	var deleted string
	h := NewTransactionHandler(&transactionServiceStub{
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}, nil)

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/transactions/txn-1", nil), "id", "txn-1")
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != "txn-1" {
		t.Fatalf("expected delete of txn-1, got %q", deleted)
	}
}

func TestRejectionReason(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"unbalanced", domain.ErrUnbalancedTransaction, "unbalanced"},
		{"empty", domain.ErrEmptyTransaction, "empty"},
		{"negative", domain.ErrNegativeAmount, "negative_amount"},
		{"unknown account", domain.ErrAccountNotFound, "unknown_account"},
		{"other validation", domain.ErrInvalidReference, "validation"},
		{"storage", errors.New("connection reset"), "storage"},
		{"wrapped unbalanced", fmt.Errorf("%w: debits 10, credits 5", domain.ErrUnbalancedTransaction), "unbalanced"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rejectionReason(tt.err); got != tt.want {
				t.Errorf("rejectionReason(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
