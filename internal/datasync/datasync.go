// Package datasync mirrors recent matches of the open dataset into Postgres.
package datasync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	appmatches "football-stats-service/internal/app/matches"
	"football-stats-service/internal/domain/competitions"
	"football-stats-service/internal/domain/events"
	"football-stats-service/internal/domain/lineups"
	"football-stats-service/internal/domain/matches"
	"football-stats-service/internal/domain/stats"
	"football-stats-service/internal/logging"
	"football-stats-service/internal/metrics"
	"football-stats-service/internal/providers"
	"football-stats-service/internal/store"
	"football-stats-service/internal/timeutil"
)

const (
	defaultRecentSeasons = 2
	defaultConcurrency   = 4
	defaultLookback      = 2 * 365 * 24 * time.Hour
)

// Store is the persistence the job writes to.
type Store interface {
	LastMatchDate(ctx context.Context) (time.Time, bool, error)
	UpsertCompetitions(ctx context.Context, items []competitions.Competition) error
	UpsertTeams(ctx context.Context, teams []store.Team) error
	UpsertMatch(ctx context.Context, m store.Match) error
	UpsertPlayers(ctx context.Context, players []store.Player) error
	UpsertMatchPlayerStats(ctx context.Context, lines []store.MatchPlayerStats) error
	ListPlayerIDs(ctx context.Context) ([]int, error)
	PlayerMatchRatings(ctx context.Context, playerID int) ([]store.MatchRating, error)
	UpdatePlayerSummary(ctx context.Context, playerID int, s store.PlayerSummary) error
}

// Config selects what the job mirrors.
type Config struct {
	CompetitionIDs []int
	RecentSeasons  int
	Concurrency    int
	// Lookback bounds the first run against an empty database.
	Lookback time.Duration
	// Countries maps competition ids to the country stored on their teams.
	Countries map[int]string
}

// Result summarizes one run.
type Result struct {
	Since   time.Time
	Synced  int
	Failed  int
	Skipped int
	Players int
}

// Job runs the mirror.
type Job struct {
	provider providers.DataProvider
	store    Store
	cfg      Config
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
}

// New constructs a Job, filling zero config values with defaults.
func New(provider providers.DataProvider, st Store, cfg Config, logger *slog.Logger, recorder *metrics.Recorder) *Job {
	if cfg.RecentSeasons <= 0 {
		cfg.RecentSeasons = defaultRecentSeasons
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}
	if cfg.Lookback <= 0 {
		cfg.Lookback = defaultLookback
	}
	return &Job{
		provider: provider,
		store:    st,
		cfg:      cfg,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
	}
}

// Run mirrors every configured competition's recent seasons, then rebuilds
// player summaries. A failing match is logged and counted without aborting the run.
func (j *Job) Run(ctx context.Context) (Result, error) {
	if j.provider == nil {
		return Result{}, providers.ErrProviderUnavailable
	}
	since, err := j.since(ctx)
	if err != nil {
		return Result{}, err
	}
	res := Result{Since: since}
	logging.Info(j.logger, "sync started", "since", timeutil.FormatDate(since))

	catalog, err := j.provider.FetchCompetitions(ctx)
	if err != nil {
		return res, fmt.Errorf("fetch competitions: %w", err)
	}
	if err := j.store.UpsertCompetitions(ctx, catalog); err != nil {
		return res, err
	}

	pending, skipped := j.pendingMatches(ctx, catalog, since)
	res.Skipped = skipped

	var synced, failed atomic.Int32
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(j.cfg.Concurrency)
	for _, m := range pending {
		g.Go(func() error {
			err := j.syncMatch(gctx, m)
			j.metrics.RecordSyncMatch(err)
			if err != nil {
				failed.Add(1)
				logging.Error(j.logger, "match sync failed", err, logging.FieldMatchID, m.MatchID)
				return nil
			}
			synced.Add(1)
			logging.Debug(j.logger, "match synced", logging.FieldMatchID, m.MatchID)
			return nil
		})
	}
	_ = g.Wait()
	res.Synced, res.Failed = int(synced.Load()), int(failed.Load())
	if err := ctx.Err(); err != nil {
		return res, err
	}

	players, err := j.rebuildSummaries(ctx)
	res.Players = players
	if err != nil {
		return res, err
	}

	logging.Info(j.logger, "sync complete",
		"synced", res.Synced,
		"failed", res.Failed,
		"skipped", res.Skipped,
		"players", res.Players,
	)
	return res, nil
}

// RunEvery runs the job immediately and then on every tick until ctx ends.
// A zero interval runs once.
func (j *Job) RunEvery(ctx context.Context, interval time.Duration) error {
	if _, err := j.Run(ctx); err != nil {
		if interval <= 0 || errors.Is(err, context.Canceled) {
			return err
		}
		logging.Error(j.logger, "sync run failed", err)
	}
	if interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := j.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logging.Error(j.logger, "sync run failed", err)
			}
		}
	}
}

func (j *Job) since(ctx context.Context) (time.Time, error) {
	last, ok, err := j.store.LastMatchDate(ctx)
	if err != nil {
		return time.Time{}, err
	}
	if !ok {
		return j.now().UTC().Add(-j.cfg.Lookback), nil
	}
	return last, nil
}

// pendingMatches lists matches played after since across the configured
// competitions' most recent seasons. Seasons that fail to load are skipped.
func (j *Job) pendingMatches(ctx context.Context, catalog []competitions.Competition, since time.Time) ([]matches.Match, int) {
	var (
		out     []matches.Match
		skipped int
	)
	for _, id := range j.cfg.CompetitionIDs {
		if !competitions.Contains(catalog, id) {
			logging.Warn(j.logger, "competition not in catalog", "competition_id", id)
			continue
		}
		seasons := competitions.SeasonIDs(catalog, id)
		if len(seasons) > j.cfg.RecentSeasons {
			seasons = seasons[:j.cfg.RecentSeasons]
		}
		for _, seasonID := range seasons {
			items, err := j.provider.FetchMatches(ctx, id, seasonID)
			if err != nil {
				logging.Warn(j.logger, "season matches unavailable",
					"competition_id", id,
					logging.FieldSeasonID, seasonID,
					"err", err,
				)
				continue
			}
			recent := matches.After(items, since)
			skipped += len(items) - len(recent)
			out = append(out, recent...)
		}
	}
	return out, skipped
}

func (j *Job) syncMatch(ctx context.Context, m matches.Match) error {
	var (
		evs   []events.Event
		teams []lineups.TeamLineup
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		evs, err = j.provider.FetchEvents(gctx, m.MatchID)
		return err
	})
	g.Go(func() error {
		var err error
		teams, err = j.provider.FetchLineups(gctx, m.MatchID)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	country := j.cfg.Countries[m.CompetitionID]
	if country == "" {
		country = "Unknown"
	}
	if err := j.store.UpsertTeams(ctx, []store.Team{
		{ID: m.HomeTeamID, Name: m.HomeTeam, Country: country},
		{ID: m.AwayTeamID, Name: m.AwayTeam, Country: country},
	}); err != nil {
		return err
	}
	if err := j.store.UpsertMatch(ctx, matchRow(m)); err != nil {
		return err
	}
	players := playerRows(teams)
	if err := j.store.UpsertPlayers(ctx, players); err != nil {
		return err
	}
	return j.store.UpsertMatchPlayerStats(ctx, statRows(m.MatchID, players, appmatches.PlayerStats(evs, teams)))
}

func (j *Job) rebuildSummaries(ctx context.Context) (int, error) {
	ids, err := j.store.ListPlayerIDs(ctx)
	if err != nil {
		return 0, err
	}
	updated := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return updated, err
		}
		lines, err := j.store.PlayerMatchRatings(ctx, id)
		if err != nil {
			logging.Warn(j.logger, "player ratings unavailable", "player_id", id, "err", err)
			continue
		}
		if err := j.store.UpdatePlayerSummary(ctx, id, store.Summarize(lines)); err != nil {
			logging.Warn(j.logger, "player summary update failed", "player_id", id, "err", err)
			continue
		}
		updated++
	}
	return updated, nil
}

func matchRow(m matches.Match) store.Match {
	return store.Match{
		ID:            m.MatchID,
		CompetitionID: m.CompetitionID,
		SeasonID:      m.SeasonID,
		Matchday:      m.MatchWeek,
		Date:          m.Date(),
		HomeTeamID:    m.HomeTeamID,
		AwayTeamID:    m.AwayTeamID,
		HomeScore:     m.HomeScore,
		AwayScore:     m.AwayScore,
		Status:        m.MatchStatus,
	}
}

func playerRows(teams []lineups.TeamLineup) []store.Player {
	out := make([]store.Player, 0)
	for _, t := range teams {
		for _, p := range t.Lineup {
			out = append(out, store.Player{ID: p.PlayerID, Name: p.PlayerName, TeamID: t.TeamID})
		}
	}
	return out
}

// statRows keeps the lines of players stored from the lineups; the dataset
// publishes no rating.
func statRows(matchID int, known []store.Player, players []stats.PlayerStats) []store.MatchPlayerStats {
	ids := make(map[int]struct{}, len(known))
	for _, p := range known {
		ids[p.ID] = struct{}{}
	}
	out := make([]store.MatchPlayerStats, 0, len(players))
	for _, p := range players {
		if _, ok := ids[p.PlayerID]; !ok {
			continue
		}
		out = append(out, store.MatchPlayerStats{
			MatchID:     matchID,
			PlayerID:    p.PlayerID,
			Minutes:     p.MinutesPlayed,
			Goals:       p.Goals,
			Assists:     p.Assists,
			YellowCards: p.YellowCards,
			RedCards:    p.RedCards,
		})
	}
	return out
}
