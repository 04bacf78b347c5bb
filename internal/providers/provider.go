package providers

import (
	"context"

	"football-stats-service/internal/domain/competitions"
	"football-stats-service/internal/domain/events"
	"football-stats-service/internal/domain/lineups"
	"football-stats-service/internal/domain/matches"
)

// CompetitionProvider lists the competition/season pairs the dataset publishes.
type CompetitionProvider interface {
	FetchCompetitions(ctx context.Context) ([]competitions.Competition, error)
}

// MatchProvider lists the matches of one competition season.
type MatchProvider interface {
	FetchMatches(ctx context.Context, competitionID, seasonID int) ([]matches.Match, error)
}

// EventProvider fetches the event stream of a match.
type EventProvider interface {
	FetchEvents(ctx context.Context, matchID int) ([]events.Event, error)
}

// LineupProvider fetches both team lineups of a match.
type LineupProvider interface {
	FetchLineups(ctx context.Context, matchID int) ([]lineups.TeamLineup, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	CompetitionProvider
	MatchProvider
	EventProvider
	LineupProvider
}
