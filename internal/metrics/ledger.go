package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "proof_ledger",
		Name:      "operations_total",
		Help:      "Count of proof ledger operations.",
	}, []string{"operation", "status"})
	ledgerOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "proof_ledger",
		Name:      "operation_duration_seconds",
		Help:      "Duration of proof ledger operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
	ledgerAnchorAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "proof_ledger",
		Name:      "anchor_attempts_total",
		Help:      "Count of anchoring attempts by outcome.",
	}, []string{"outcome"})
	ledgerAnchorAttemptDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "proof_ledger",
		Name:      "anchor_attempt_duration_seconds",
		Help:      "Duration of anchoring attempts by outcome.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30, 60},
	}, []string{"outcome"})
)

// Ledger tracks metrics for proof ledger operations.
type Ledger struct{}

// NewLedger creates a Ledger metrics collector.
func NewLedger() *Ledger {
	return &Ledger{}
}

// ObserveOperation records the outcome and duration of a ledger operation.
func (Ledger) ObserveOperation(operation string, err error, started time.Time) {
	status := statusOf(err)
	ledgerOperationsTotal.WithLabelValues(operation, status).Inc()
	ledgerOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

// ObserveAnchor records a single anchoring attempt.
func (Ledger) ObserveAnchor(outcome string, started time.Time) {
	outcome = orUnknown(outcome)
	ledgerAnchorAttemptsTotal.WithLabelValues(outcome).Inc()
	ledgerAnchorAttemptDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}
