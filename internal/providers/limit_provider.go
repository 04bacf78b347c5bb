package providers

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"

	"football-stats-service/internal/domain/competitions"
	"football-stats-service/internal/domain/events"
	"football-stats-service/internal/domain/lineups"
	"football-stats-service/internal/domain/matches"
)

const defaultRequestsPerSecond = 5

// rateLimitedProvider wraps a DataProvider with a shared token bucket so the
// service never exceeds the upstream request budget.
type rateLimitedProvider struct {
	next    DataProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a DataProvider allowing at most rps upstream calls per second.
// Calls block until a token is available or the context ends.
func NewRateLimitedProvider(next DataProvider, rps int, logger *slog.Logger) DataProvider {
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) FetchCompetitions(ctx context.Context) ([]competitions.Competition, error) {
	if err := p.wait(ctx, "competitions"); err != nil {
		return nil, err
	}
	return p.next.FetchCompetitions(ctx)
}

func (p *rateLimitedProvider) FetchMatches(ctx context.Context, competitionID, seasonID int) ([]matches.Match, error) {
	if err := p.wait(ctx, "matches"); err != nil {
		return nil, err
	}
	return p.next.FetchMatches(ctx, competitionID, seasonID)
}

func (p *rateLimitedProvider) FetchEvents(ctx context.Context, matchID int) ([]events.Event, error) {
	if err := p.wait(ctx, "events"); err != nil {
		return nil, err
	}
	return p.next.FetchEvents(ctx, matchID)
}

func (p *rateLimitedProvider) FetchLineups(ctx context.Context, matchID int) ([]lineups.TeamLineup, error) {
	if err := p.wait(ctx, "lineups"); err != nil {
		return nil, err
	}
	return p.next.FetchLineups(ctx, matchID)
}

func (p *rateLimitedProvider) wait(ctx context.Context, resource string) error {
	if p.next == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "provider unavailable")
		return ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled", "resource", resource)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return nil
}
