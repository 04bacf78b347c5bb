package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"football-stats-service/internal/domain/competitions"
	"football-stats-service/internal/domain/events"
	"football-stats-service/internal/domain/lineups"
	"football-stats-service/internal/domain/matches"
	"football-stats-service/internal/logging"
	"football-stats-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

// retryingProvider wraps a DataProvider with exponential backoff retries and
// records every attempt in the metrics recorder.
type retryingProvider struct {
	inner       DataProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	newBackOff  func() backoff.BackOff
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, initial time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	if name == "" {
		name = "provider"
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		newBackOff: func() backoff.BackOff {
			exp := backoff.NewExponentialBackOff()
			exp.InitialInterval = initial
			exp.MaxElapsedTime = 0
			return exp
		},
	}
}

func (r *retryingProvider) FetchCompetitions(ctx context.Context) ([]competitions.Competition, error) {
	return withRetry(ctx, r, "competitions", func() ([]competitions.Competition, error) {
		return r.inner.FetchCompetitions(ctx)
	})
}

func (r *retryingProvider) FetchMatches(ctx context.Context, competitionID, seasonID int) ([]matches.Match, error) {
	return withRetry(ctx, r, "matches", func() ([]matches.Match, error) {
		return r.inner.FetchMatches(ctx, competitionID, seasonID)
	})
}

func (r *retryingProvider) FetchEvents(ctx context.Context, matchID int) ([]events.Event, error) {
	return withRetry(ctx, r, "events", func() ([]events.Event, error) {
		return r.inner.FetchEvents(ctx, matchID)
	})
}

func (r *retryingProvider) FetchLineups(ctx context.Context, matchID int) ([]lineups.TeamLineup, error) {
	return withRetry(ctx, r, "lineups", func() ([]lineups.TeamLineup, error) {
		return r.inner.FetchLineups(ctx, matchID)
	})
}

func withRetry[T any](ctx context.Context, r *retryingProvider, resource string, fetch func() (T, error)) (T, error) {
	var zero T
	if r.inner == nil {
		return zero, ErrProviderUnavailable
	}

	attempt := 0
	op := func() (T, error) {
		attempt++
		start := time.Now()
		result, err := fetch()
		r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		if rl, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.name, rl.RetryAfter)
		}
		if err != nil && !IsRetryable(err) {
			return zero, backoff.Permanent(err)
		}
		return result, err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(r.newBackOff(), uint64(r.maxAttempts-1)), ctx)
	notify := func(err error, delay time.Duration) {
		r.logWarn(ctx, "provider fetch retry",
			"resource", resource,
			"attempt", attempt,
			"max_attempts", r.maxAttempts,
			"delay_ms", delay.Milliseconds(),
			"err", err,
		)
	}

	result, err := backoff.RetryNotifyWithData(op, policy, notify)
	if err != nil {
		r.logWarn(ctx, "provider fetch failed", "resource", resource, "attempts", attempt, "err", err)
		return zero, err
	}
	return result, nil
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logWithProvider(ctx, logging.FromContext(ctx, r.logger), slog.LevelWarn, r.name, msg, args...)
}
