package testutil

import (
	"context"

	"football-stats-service/internal/domain/competitions"
	"football-stats-service/internal/domain/events"
	"football-stats-service/internal/domain/lineups"
	"football-stats-service/internal/domain/matches"
	"football-stats-service/internal/providers"
)

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchCompetitions(ctx context.Context) ([]competitions.Competition, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchMatches(ctx context.Context, competitionID, seasonID int) ([]matches.Match, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchEvents(ctx context.Context, matchID int) ([]events.Event, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchLineups(ctx context.Context, matchID int) ([]lineups.TeamLineup, error) {
	return nil, p.Err
}

// UnavailableProvider returns ErrProviderUnavailable from every fetch.
func UnavailableProvider() ErrProvider {
	return ErrProvider{Err: providers.ErrProviderUnavailable}
}
