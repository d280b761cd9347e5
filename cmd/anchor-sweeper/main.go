// Command anchor-sweeper re-anchors paid proofs that failed or got stuck.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Matousse/Rebel-sub000/internal/clock"
	"github.com/Matousse/Rebel-sub000/internal/metrics"
	"github.com/Matousse/Rebel-sub000/internal/proof/app"
	"github.com/Matousse/Rebel-sub000/internal/proof/service"
)

type config struct {
	Core          app.Options   `group:"proof core" env-namespace:"ANCHOR_SWEEPER"`
	MetricsAddr   string        `long:"metrics-addr" env:"ANCHOR_SWEEPER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	Interval      time.Duration `long:"interval" env:"ANCHOR_SWEEPER_INTERVAL" description:"pause between sweep rounds" default:"30s"`
	PendingGrace  time.Duration `long:"pending-grace" env:"ANCHOR_SWEEPER_PENDING_GRACE" description:"age after which a paid pending proof is retried" default:"5m"`
	Limit         int           `long:"limit" env:"ANCHOR_SWEEPER_LIMIT" description:"max proofs per round" default:"500"`
	Workers       int           `long:"workers" env:"ANCHOR_SWEEPER_WORKERS" description:"concurrent re-anchor attempts" default:"8"`
	RPS           int           `long:"rps" env:"ANCHOR_SWEEPER_RPS" description:"max re-anchor attempts per second, 0 for unlimited" default:"20"`
}

func main() {
	cfg := config{Core: app.DefaultOptions()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.Core.Storage != app.StorageClickhouse {
		logger.Warn("sweeping in-memory storage only retries proofs created by this process")
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("anchor sweeper failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	core, err := app.Build(ctx, cfg.Core, logger)
	if err != nil {
		return fmt.Errorf("init proof core: %w", err)
	}
	defer func() {
		if err := core.Close(); err != nil {
			logger.Error("close proof core", zap.Error(err))
		}
	}()

	sweeper, err := service.NewRetrySweeper(core.Proofs, core.Ledger, service.SweeperConfig{
		Interval:     cfg.Interval,
		PendingGrace: cfg.PendingGrace,
		Limit:        cfg.Limit,
		Workers:      cfg.Workers,
		RPS:          cfg.RPS,
	}, metrics.NewRetrySweeper(), clock.System{}, logger)
	if err != nil {
		return err
	}
	return sweeper.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
