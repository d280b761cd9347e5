package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsEnqueuedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "event_writer",
		Name:      "enqueued_total",
		Help:      "Count of proof events offered to the writer.",
	}, []string{"status"})
	eventsFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "event_writer",
		Name:      "flush_total",
		Help:      "Count of event batch flushes.",
	}, []string{"status"})
	eventsFlushSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "event_writer",
		Name:      "flush_size",
		Help:      "Events per flushed batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	})
	eventsFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "event_writer",
		Name:      "flush_duration_seconds",
		Help:      "Duration of event batch flushes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
)

// EventWriter tracks metrics for the batched proof event writer.
type EventWriter struct{}

// NewEventWriter constructs an EventWriter metrics collector.
func NewEventWriter() *EventWriter {
	return &EventWriter{}
}

// ObserveEnqueue records whether an event was accepted into the buffer.
func (EventWriter) ObserveEnqueue(err error) {
	status := "accepted"
	if err != nil {
		status = "dropped"
	}
	eventsEnqueuedTotal.WithLabelValues(status).Inc()
}

// ObserveFlush records one batch flush.
func (EventWriter) ObserveFlush(err error, size int, started time.Time) {
	status := statusOf(err)
	eventsFlushTotal.WithLabelValues(status).Inc()
	eventsFlushDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	eventsFlushSize.Observe(float64(size))
}
