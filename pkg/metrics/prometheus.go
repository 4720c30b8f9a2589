package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	ledgerCalls *prometheus.CounterVec
	errorsTotal *prometheus.CounterVec
	lastBalance *prometheus.GaugeVec
	latency     *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		ledgerCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "neowallet_ledger_calls_total",
				Help: "Total number of calls to the ledger service",
			},
			[]string{"operation", "outcome"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "neowallet_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastBalance: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "neowallet_last_balance",
				Help: "Last observed wallet balance per user",
			},
			[]string{"user"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "neowallet_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordLedgerCall records a call to the ledger collaborator.
func (r *Recorder) RecordLedgerCall(operation, outcome string) {
	r.ledgerCalls.WithLabelValues(operation, outcome).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordBalance records the last observed balance for a user.
func (r *Recorder) RecordBalance(user string, balance float64) {
	r.lastBalance.WithLabelValues(user).Set(balance)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
