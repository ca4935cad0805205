package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the ledger's Prometheus metrics. A nil *Metrics is a valid
// no-op receiver so handlers can run without a registry in tests.
type Metrics struct {
	// Transaction metrics
	TransactionsCommitted prometheus.Counter
	TransactionsRejected  *prometheus.CounterVec
	TransactionsDeleted   prometheus.Counter
	EntriesWritten        prometheus.Counter

	// Account metrics
	AccountsCreated prometheus.Counter
	AccountsDeleted prometheus.Counter

	// Balance metrics
	BalanceQueries   *prometheus.CounterVec
	TrialBalanceRuns prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		TransactionsCommitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bookkeeper_transactions_committed_total",
			Help: "Total number of transactions committed",
		}),
		TransactionsRejected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookkeeper_transactions_rejected_total",
				Help: "Total number of rejected transaction submissions by reason",
			},
			[]string{"reason"},
		),
		TransactionsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bookkeeper_transactions_deleted_total",
			Help: "Total number of transactions deleted",
		}),
		EntriesWritten: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bookkeeper_entries_written_total",
			Help: "Total number of ledger entries written",
		}),

		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bookkeeper_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		AccountsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bookkeeper_accounts_deleted_total",
			Help: "Total number of accounts deleted",
		}),

		BalanceQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookkeeper_balance_queries_total",
				Help: "Total number of balance queries by scope",
			},
			[]string{"scope"},
		),
		TrialBalanceRuns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bookkeeper_trial_balance_runs_total",
			Help: "Total number of trial balance computations",
		}),
	}
}

// TransactionCommitted records a committed transaction with its entry count.
func (m *Metrics) TransactionCommitted(entries int) {
	if m == nil {
		return
	}
	m.TransactionsCommitted.Inc()
	m.EntriesWritten.Add(float64(entries))
}

// TransactionRejected records a rejected submission.
func (m *Metrics) TransactionRejected(reason string) {
	if m == nil {
		return
	}
	m.TransactionsRejected.WithLabelValues(reason).Inc()
}

// TransactionDeleted records a deleted transaction.
func (m *Metrics) TransactionDeleted() {
	if m == nil {
		return
	}
	m.TransactionsDeleted.Inc()
}

// AccountCreated records a created account.
func (m *Metrics) AccountCreated() {
	if m == nil {
		return
	}
	m.AccountsCreated.Inc()
}

// AccountDeleted records a deleted account.
func (m *Metrics) AccountDeleted() {
	if m == nil {
		return
	}
	m.AccountsDeleted.Inc()
}

// BalanceQueried records a balance query for one account or a listing.
func (m *Metrics) BalanceQueried(scope string) {
	if m == nil {
		return
	}
	m.BalanceQueries.WithLabelValues(scope).Inc()
}

// TrialBalanceRun records a trial balance computation.
func (m *Metrics) TrialBalanceRun() {
	if m == nil {
		return
	}
	m.TrialBalanceRuns.Inc()
}
