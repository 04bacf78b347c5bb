package matches

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"football-stats-service/internal/domain/events"
	"football-stats-service/internal/domain/lineups"
	"football-stats-service/internal/domain/stats"
	"football-stats-service/internal/logging"
	"football-stats-service/internal/providers"
)

// Provider is the subset of the dataset accessor this service reads from.
type Provider interface {
	providers.EventProvider
	providers.LineupProvider
}

// Service serves per-match events, lineups and aggregated statistics.
type Service struct {
	provider Provider
	logger   *slog.Logger
}

// NewService constructs a Service.
func NewService(provider Provider, logger *slog.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// Events returns the match events in published order.
func (s *Service) Events(ctx context.Context, matchID int) ([]events.Event, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	return s.provider.FetchEvents(ctx, matchID)
}

// Lineups returns both team sheets keyed by team name.
func (s *Service) Lineups(ctx context.Context, matchID int) (map[string][]lineups.Player, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	items, err := s.provider.FetchLineups(ctx, matchID)
	if err != nil {
		return nil, err
	}
	return lineups.ByTeam(items), nil
}

// PlayerStats aggregates per-player totals. Events and lineups are fetched
// concurrently; a lineup failure only degrades minutes played to the event span.
func (s *Service) PlayerStats(ctx context.Context, matchID int) ([]stats.PlayerStats, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}

	var (
		evs   []events.Event
		teams []lineups.TeamLineup
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		evs, err = s.provider.FetchEvents(gctx, matchID)
		return err
	})
	g.Go(func() error {
		items, err := s.provider.FetchLineups(gctx, matchID)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			logging.Warn(logging.FromContext(ctx, s.logger), "lineups unavailable, estimating minutes from events",
				logging.FieldMatchID, matchID,
				"err", err,
			)
			return nil
		}
		teams = items
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return PlayerStats(evs, teams), nil
}

// TeamStats aggregates per-team totals.
func (s *Service) TeamStats(ctx context.Context, matchID int) ([]stats.TeamStats, error) {
	evs, err := s.Events(ctx, matchID)
	if err != nil {
		return nil, err
	}
	return TeamStats(evs), nil
}
