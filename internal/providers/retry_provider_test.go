package providers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"

	"football-stats-service/internal/domain/competitions"
	"football-stats-service/internal/domain/events"
	"football-stats-service/internal/domain/lineups"
	"football-stats-service/internal/domain/matches"
	"football-stats-service/internal/metrics"
)

type flakeyProvider struct {
	failures int
	err      error
	calls    int
}

func (f *flakeyProvider) fail() error {
	f.calls++
	if f.calls <= f.failures {
		if f.err != nil {
			return f.err
		}
		return errors.New("boom")
	}
	return nil
}

func (f *flakeyProvider) FetchCompetitions(ctx context.Context) ([]competitions.Competition, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return []competitions.Competition{{CompetitionID: 43, SeasonID: 106}}, nil
}

func (f *flakeyProvider) FetchMatches(ctx context.Context, competitionID, seasonID int) ([]matches.Match, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return []matches.Match{{MatchID: 1, CompetitionID: competitionID, SeasonID: seasonID}}, nil
}

func (f *flakeyProvider) FetchEvents(ctx context.Context, matchID int) ([]events.Event, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return []events.Event{{ID: "ok"}}, nil
}

func (f *flakeyProvider) FetchLineups(ctx context.Context, matchID int) ([]lineups.TeamLineup, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return []lineups.TeamLineup{{TeamID: 1}}, nil
}

func TestRetryingProviderRetriesAndSucceeds(t *testing.T) {
	fp := &flakeyProvider{failures: 2}
	rec := metrics.NewRecorder()
	rp := NewRetryingProvider(fp, slog.Default(), rec, "flakey", 3, time.Millisecond)

	evs, err := rp.FetchEvents(context.Background(), 7)
	if err != nil {
		t.Fatalf("expected success, got error %v", err)
	}
	if len(evs) != 1 || evs[0].ID != "ok" {
		t.Fatalf("unexpected events %+v", evs)
	}
	if fp.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", fp.calls)
	}
	if rec.ProviderCalls("flakey") != 3 || rec.ProviderErrors("flakey") != 2 {
		t.Fatalf("unexpected metrics %+v", rec.Snapshot("flakey"))
	}
}

func TestRetryingProviderStopsAfterMaxAttempts(t *testing.T) {
	fp := &flakeyProvider{failures: 5}
	rp := NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 2, time.Millisecond)

	_, err := rp.FetchMatches(context.Background(), 43, 106)
	if err == nil {
		t.Fatal("expected error after retries")
	}
	if fp.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", fp.calls)
	}
}

func TestRetryingProviderDoesNotRetryNotFound(t *testing.T) {
	fp := &flakeyProvider{failures: 5, err: fmt.Errorf("events 1: %w", ErrNotFound)}
	rp := NewRetryingProvider(fp, nil, nil, "flakey", 3, time.Millisecond)

	_, err := rp.FetchEvents(context.Background(), 1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if fp.calls != 1 {
		t.Fatalf("expected a single attempt, got %d", fp.calls)
	}
}

func TestRetryingProviderRecordsRateLimits(t *testing.T) {
	fp := &flakeyProvider{failures: 1, err: &RateLimitError{StatusCode: 429, RetryAfter: 2 * time.Second}}
	rec := metrics.NewRecorder()
	rp := NewRetryingProvider(fp, nil, rec, "flakey", 3, time.Millisecond)

	if _, err := rp.FetchLineups(context.Background(), 1); err != nil {
		t.Fatalf("expected success after rate limit, got %v", err)
	}
	if rec.RateLimitHits("flakey") != 1 || rec.LastRetryAfter("flakey") != 2*time.Second {
		t.Fatalf("unexpected rate limit metrics %+v", rec.Snapshot("flakey"))
	}
}

func TestRetryingProviderRespectsContextCancel(t *testing.T) {
	fp := &flakeyProvider{failures: 5}
	rp := NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 3, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rp.FetchCompetitions(ctx)
	if err == nil {
		t.Fatal("expected context error")
	}
}

func TestRetryingProviderUsesCustomBackoff(t *testing.T) {
	fp := &flakeyProvider{failures: 1}
	rp := NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 2, time.Hour).(*retryingProvider)

	calls := 0
	rp.newBackOff = func() backoff.BackOff {
		calls++
		return &backoff.ZeroBackOff{}
	}

	if _, err := rp.FetchCompetitions(context.Background()); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected custom backoff to be built once, got %d", calls)
	}
}

func TestRetryingProviderNilInner(t *testing.T) {
	rp := NewRetryingProvider(nil, nil, nil, "", 0, 0)
	if _, err := rp.FetchEvents(context.Background(), 1); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
