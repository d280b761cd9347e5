package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/Matousse/Rebel-sub000/internal/clock"
	"github.com/Matousse/Rebel-sub000/internal/proof/model"
	"github.com/Matousse/Rebel-sub000/pkg/workerpool"
)

const (
	reanchorConfirmed = "confirmed"
	reanchorFailed    = "failed"
	reanchorError     = "error"
)

// SweeperConfig tunes the retry sweeper.
type SweeperConfig struct {
	Interval time.Duration
	// PendingGrace is how long a paid PENDING proof may sit before it is
	// considered stuck.
	PendingGrace time.Duration
	Limit        int
	Workers      int
	// RPS caps re-anchor attempts per second. Zero means unlimited.
	RPS int
}

// RetrySweeper periodically re-anchors paid proofs that FAILED or got stuck
// in PENDING.
type RetrySweeper struct {
	repo       ProofRepository
	reanchorer Reanchorer
	cfg        SweeperConfig
	limiter    ratelimit.Limiter
	metrics    SweeperMetrics
	clock      clock.Clock
	sleep      func(context.Context, time.Duration) error
	logger     *zap.Logger
}

// NewRetrySweeper wires a RetrySweeper.
func NewRetrySweeper(
	repo ProofRepository,
	reanchorer Reanchorer,
	cfg SweeperConfig,
	metrics SweeperMetrics,
	clk clock.Clock,
	logger *zap.Logger,
) (*RetrySweeper, error) {
	if repo == nil {
		return nil, errors.New("proof repository is required")
	}
	if reanchorer == nil {
		return nil, errors.New("reanchorer is required")
	}
	if metrics == nil {
		return nil, errors.New("sweeper metrics are required")
	}
	if clk == nil {
		clk = clock.System{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultSweepInterval
	}
	if cfg.PendingGrace <= 0 {
		cfg.PendingGrace = defaultPendingGrace
	}
	if cfg.Limit <= 0 {
		cfg.Limit = defaultSweepLimit
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultSweepWorkers
	}
	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}

	return &RetrySweeper{
		repo:       repo,
		reanchorer: reanchorer,
		cfg:        cfg,
		limiter:    limiter,
		metrics:    metrics,
		clock:      clk,
		sleep:      clock.SleepWithContext,
		logger:     logger.Named("retry_sweeper"),
	}, nil
}

// Run sweeps until ctx is canceled. A failed round is logged and retried
// after the interval.
func (s *RetrySweeper) Run(ctx context.Context) error {
	s.logger.Info("retry sweeper started",
		zap.Duration("interval", s.cfg.Interval),
		zap.Duration("pending_grace", s.cfg.PendingGrace),
		zap.Int("limit", s.cfg.Limit),
		zap.Int("workers", s.cfg.Workers),
	)
	for {
		if err := s.Sweep(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Error("sweep round failed", zap.Error(err))
		}
		if err := s.sleep(ctx, s.cfg.Interval); err != nil {
			return err
		}
	}
}

// Sweep runs a single round. Per-proof failures are logged and do not stop
// the round; only listing failures and cancellation are returned.
func (s *RetrySweeper) Sweep(ctx context.Context) error {
	started := time.Now()
	cutoff := s.clock.Now().Add(-s.cfg.PendingGrace)

	proofs, err := s.repo.RetryableProofs(ctx, cutoff, s.cfg.Limit)
	s.metrics.ObserveFetch(err, len(proofs), started)
	if err != nil {
		return fmt.Errorf("list retryable proofs: %w", err)
	}
	if len(proofs) == 0 {
		return nil
	}
	s.logger.Info("re-anchoring proofs", zap.Int("count", len(proofs)))

	err = workerpool.Each(ctx, s.cfg.Workers, proofs, func(ctx context.Context, p model.Proof) error {
		s.limiter.Take()
		s.reanchor(ctx, p)
		return nil
	})
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	return nil
}

func (s *RetrySweeper) reanchor(ctx context.Context, p model.Proof) {
	started := time.Now()
	logger := s.logger.With(zap.String("proof_id", p.ID))

	updated, err := s.reanchorer.Reanchor(ctx, p.ID)
	switch {
	case err != nil:
		s.metrics.ObserveReanchor(reanchorError, started)
		logger.Error("re-anchor failed", zap.Error(err))
	case updated.Status == model.ProofConfirmed:
		s.metrics.ObserveReanchor(reanchorConfirmed, started)
		logger.Info("proof confirmed", zap.Uint32("attempts", updated.Attempts))
	default:
		s.metrics.ObserveReanchor(reanchorFailed, started)
		logger.Warn("proof still not anchored",
			zap.Uint32("attempts", updated.Attempts),
			zap.String("reason", updated.FailureReason),
		)
	}
}
