package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"football-stats-service/internal/config"
	"football-stats-service/internal/metrics"
	"football-stats-service/internal/providers"
	"football-stats-service/internal/providers/fixture"
	"football-stats-service/internal/testutil"
)

func TestNewServerWithMetricsHandlesSetupFailure(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	cfg := config.Config{
		Metrics:  config.MetricsConfig{Enabled: true},
		Provider: "fixture",
	}

	srv := newServerWithMetrics(cfg, nil, fixture.New(), nil)
	if srv.metrics == nil {
		t.Fatalf("expected fallback metrics recorder even on setup failure")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server after setup failure")
	}
}

func TestNewServerWithMetricsDisabledSkipsSetup(t *testing.T) {
	cfg := config.Config{
		Metrics:  config.MetricsConfig{Enabled: false},
		Provider: "fixture",
	}

	srv := newServerWithMetrics(cfg, nil, fixture.New(), nil)
	if srv.metrics == nil {
		t.Fatalf("expected recorder to be set even when metrics disabled")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected metrics server skipped when disabled")
	}
}

func TestNewServerWithMetricsUsesInjectedRecorder(t *testing.T) {
	rec, _ := testutil.NewRecorderWithShutdown()
	cfg := config.Config{
		Metrics:  config.MetricsConfig{Enabled: true},
		Provider: "fixture",
	}

	srv := newServerWithMetrics(cfg, nil, fixture.New(), rec)
	if srv.metrics != rec {
		t.Fatalf("expected injected recorder to be used")
	}
	if srv.metricsStop != nil {
		t.Fatalf("expected no shutdown hook for an injected recorder")
	}
}

func TestServerRecordsRequestsAndCacheLookups(t *testing.T) {
	rec, _ := testutil.NewRecorderWithShutdown()
	cfg := config.Config{Provider: "fixture", DefaultSeasonID: fixture.SeasonID}
	srv := newServerWithMetrics(cfg, nil, fixture.New(), rec)

	for i := 0; i < 2; i++ {
		rr := testutil.Serve(srv.Handler(), http.MethodGet, "/api/statsbomb/matches/WC", nil)
		testutil.AssertStatus(t, rr, http.StatusOK)
	}
	hits, misses := rec.CacheHits(providers.ResourceMatches)
	if hits != 1 || misses != 1 {
		t.Fatalf("expected one hit and one miss for matches, got hits=%d misses=%d", hits, misses)
	}
}
