package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	anchorGatewayRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "anchor_gateway",
		Name:      "operations_total",
		Help:      "Count of anchor gateway operations.",
	}, []string{"operation", "status"})
	anchorGatewayRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "anchor_gateway",
		Name:      "operation_duration_seconds",
		Help:      "Duration of anchor gateway operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// AnchorGateway tracks metrics for calls to the anchor gateway.
type AnchorGateway struct{}

// NewAnchorGateway constructs an AnchorGateway metrics collector.
func NewAnchorGateway() *AnchorGateway {
	return &AnchorGateway{}
}

// Observe records a single gateway call outcome and duration.
func (AnchorGateway) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	anchorGatewayRequestsTotal.WithLabelValues(operation, status).Inc()
	anchorGatewayRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
