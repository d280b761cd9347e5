package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Matousse/Rebel-sub000/internal/proof/model"
	"github.com/Matousse/Rebel-sub000/pkg/batcher"
)

// NopPublisher discards events.
type NopPublisher struct{}

// Publish does nothing.
func (NopPublisher) Publish(context.Context, model.ProofEvent) {}

// EventWriterConfig tunes the batched event writer.
type EventWriterConfig struct {
	FlushSize     int
	FlushInterval time.Duration
	// RPS caps flushes per second. Zero means unlimited.
	RPS int
}

// EventWriter buffers proof events and appends them to an EventRepository
// in batches. A full buffer drops the event.
type EventWriter struct {
	repo    EventRepository
	batch   *batcher.Batcher[model.ProofEvent]
	metrics EventWriterMetrics
	logger  *zap.Logger
}

// NewEventWriter wires an EventWriter. Call Start before publishing.
func NewEventWriter(repo EventRepository, cfg EventWriterConfig, metrics EventWriterMetrics, logger *zap.Logger) (*EventWriter, error) {
	if repo == nil {
		return nil, errors.New("event repository is required")
	}
	if metrics == nil {
		return nil, errors.New("event writer metrics are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = defaultEventFlushSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaultEventInterval
	}

	w := &EventWriter{
		repo:    repo,
		metrics: metrics,
		logger:  logger.Named("event_writer"),
	}
	w.batch = batcher.New(w.logger, w.flush, cfg.FlushSize, cfg.FlushInterval, cfg.RPS)
	return w, nil
}

// Start runs the flush loop until ctx is done or Stop is called.
func (w *EventWriter) Start(ctx context.Context) {
	w.batch.Start(ctx)
}

// Stop flushes buffered events and waits for the loop to exit.
func (w *EventWriter) Stop() {
	w.batch.Stop()
}

// Publish enqueues event without blocking.
func (w *EventWriter) Publish(_ context.Context, event model.ProofEvent) {
	err := w.batch.TryAdd(event)
	w.metrics.ObserveEnqueue(err)
	if err != nil {
		w.logger.Warn("proof event dropped",
			zap.String("proof_id", event.ProofID),
			zap.String("kind", string(event.Kind)),
			zap.Error(err),
		)
	}
}

func (w *EventWriter) flush(ctx context.Context, events []model.ProofEvent) error {
	started := time.Now()
	err := w.repo.InsertEvents(ctx, events)
	w.metrics.ObserveFlush(err, len(events), started)
	return err
}
