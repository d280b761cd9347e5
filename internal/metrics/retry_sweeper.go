package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sweeperFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "retry_sweeper",
		Name:      "fetch_retryable_total",
		Help:      "Count of attempts to list retryable proofs.",
	}, []string{"status"})
	sweeperFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "retry_sweeper",
		Name:      "fetch_retryable_duration_seconds",
		Help:      "Duration of listing retryable proofs.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	sweeperBatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "retry_sweeper",
		Name:      "batch_size",
		Help:      "Number of proofs re-anchored per round.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	})
	sweeperReanchorTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "retry_sweeper",
		Name:      "reanchor_total",
		Help:      "Count of re-anchor attempts by resulting proof status.",
	}, []string{"result"})
	sweeperReanchorDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "retry_sweeper",
		Name:      "reanchor_duration_seconds",
		Help:      "Duration of a single re-anchor attempt.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"result"})
)

// RetrySweeper tracks metrics for the re-anchoring loop.
type RetrySweeper struct{}

// NewRetrySweeper constructs a RetrySweeper metrics collector.
func NewRetrySweeper() *RetrySweeper {
	return &RetrySweeper{}
}

// ObserveFetch records a listing of retryable proofs.
func (RetrySweeper) ObserveFetch(err error, proofs int, started time.Time) {
	status := statusOf(err)
	sweeperFetchTotal.WithLabelValues(status).Inc()
	sweeperFetchDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	if err == nil && proofs > 0 {
		sweeperBatchSize.Observe(float64(proofs))
	}
}

// ObserveReanchor records one re-anchor attempt. result is the proof status
// after the attempt, or "error" when the attempt itself failed.
func (RetrySweeper) ObserveReanchor(result string, started time.Time) {
	result = orUnknown(result)
	sweeperReanchorTotal.WithLabelValues(result).Inc()
	sweeperReanchorDuration.WithLabelValues(result).Observe(time.Since(started).Seconds())
}
