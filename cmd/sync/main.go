package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"football-stats-service/internal/config"
	"football-stats-service/internal/datasync"
	"football-stats-service/internal/logging"
	"football-stats-service/internal/metrics"
	"football-stats-service/internal/providers"
	"football-stats-service/internal/providers/statsbomb"
	"football-stats-service/internal/store"
)

const (
	appVersion      = "dev"
	serviceName     = "football-stats-sync"
	migrateTimeout  = 30 * time.Second
	metricsShutdown = 5 * time.Second
)

var metricsSetup = metrics.Setup

func main() {
	if os.Getenv("SKIP_SYNC_RUN") == "1" {
		return
	}

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: serviceName,
		Version: appVersion,
	})

	cfg, err := config.Load()
	if err != nil {
		logging.Error(logger, "invalid configuration", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logging.Error(logger, "sync failed", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	openCtx, cancel := context.WithTimeout(ctx, migrateTimeout)
	defer cancel()

	db, err := store.OpenPostgres(openCtx, cfg.Sync.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.Migrate(openCtx); err != nil {
		return err
	}

	recorder, shutdown := setupMetrics(ctx, cfg.Metrics, logger)
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), metricsShutdown)
		defer cancel()
		if err := shutdown(stopCtx); err != nil {
			logging.Warn(logger, "metrics shutdown failed", "err", err)
		}
	}()

	client := statsbomb.NewClient(statsbomb.Config{
		BaseURL: cfg.StatsBomb.BaseURL,
		Timeout: cfg.StatsBomb.Timeout,
	})
	limited := providers.NewRateLimitedProvider(client, cfg.StatsBomb.RateLimit, logger)
	provider := providers.NewRetryingProvider(limited, logger, recorder, "statsbomb", 0, 0)

	job := datasync.New(provider, db, jobConfig(cfg), logger, recorder)
	err = job.RunEvery(ctx, cfg.Sync.Interval)

	processed, failed := recorder.SyncMatches()
	logging.Info(logger, "sync stopped", "processed", processed, "failed", failed)
	return err
}

// setupMetrics wires the OTel recorder and serves the Prometheus handler on the
// configured port. Telemetry failures never stop the sync.
func setupMetrics(ctx context.Context, cfg config.MetricsConfig, logger *slog.Logger) (*metrics.Recorder, func(context.Context) error) {
	noop := func(context.Context) error { return nil }

	rec, handler, shutdown, err := metricsSetup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Enabled,
		Port:         cfg.Port,
		ServiceName:  serviceName,
		OtlpEndpoint: cfg.OtlpEndpoint,
		OtlpInsecure: cfg.OtlpInsecure,
	})
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), noop
	}
	if shutdown == nil {
		shutdown = noop
	}
	if handler == nil || !cfg.Enabled {
		return rec, shutdown
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error(logger, "metrics server failed", err)
		}
	}()
	logging.Info(logger, "metrics server listening", "addr", srv.Addr)

	return rec, func(ctx context.Context) error {
		return errors.Join(srv.Shutdown(ctx), shutdown(ctx))
	}
}

func jobConfig(cfg config.Config) datasync.Config {
	countries := make(map[int]string, len(cfg.Competitions))
	for _, c := range cfg.Competitions {
		countries[c.ID] = c.Country
	}
	return datasync.Config{
		CompetitionIDs: cfg.Sync.CompetitionIDs,
		RecentSeasons:  cfg.Sync.RecentSeasons,
		Concurrency:    cfg.Sync.Concurrency,
		Lookback:       cfg.Sync.Lookback,
		Countries:      countries,
	}
}
