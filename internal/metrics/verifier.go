package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	verificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "proof_verifier",
		Name:      "verifications_total",
		Help:      "Count of content verifications by verdict.",
	}, []string{"outcome"})
	verificationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "proof_verifier",
		Name:      "verification_duration_seconds",
		Help:      "Duration of content verifications.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})
)

// Verifier tracks verification verdicts.
type Verifier struct{}

// NewVerifier creates a Verifier metrics collector.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// ObserveVerify records a verification verdict.
func (Verifier) ObserveVerify(outcome string, started time.Time) {
	outcome = orUnknown(outcome)
	verificationsTotal.WithLabelValues(outcome).Inc()
	verificationDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}
