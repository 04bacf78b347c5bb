package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"football-stats-service/internal/cache"
	"football-stats-service/internal/domain/competitions"
	"football-stats-service/internal/domain/events"
	"football-stats-service/internal/domain/lineups"
	"football-stats-service/internal/domain/matches"
	"football-stats-service/internal/logging"
	"football-stats-service/internal/metrics"
)

// Resource names used as cache key prefixes and metric labels.
const (
	ResourceCompetitions = "competitions"
	ResourceMatches      = "matches"
	ResourceEvents       = "events"
	ResourceLineups      = "lineups"
)

// sharedFetchTimeout bounds an upstream fetch shared by concurrent cache misses.
const sharedFetchTimeout = 30 * time.Second

// cachingProvider is a read-through cache in front of a DataProvider. Concurrent
// misses for one key share a single upstream call.
type cachingProvider struct {
	next    DataProvider
	store   cache.Cache
	group   singleflight.Group
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewCachingProvider wraps next with store. A nil store disables caching.
func NewCachingProvider(next DataProvider, store cache.Cache, logger *slog.Logger, recorder *metrics.Recorder) DataProvider {
	if store == nil {
		store = cache.Noop{}
	}
	return &cachingProvider{
		next:    next,
		store:   store,
		logger:  logger,
		metrics: recorder,
	}
}

// CompetitionsKey and friends build the cache key of one resource.
func CompetitionsKey() string { return ResourceCompetitions }

func MatchesKey(competitionID, seasonID int) string {
	return fmt.Sprintf("%s:%d:%d", ResourceMatches, competitionID, seasonID)
}

func EventsKey(matchID int) string { return fmt.Sprintf("%s:%d", ResourceEvents, matchID) }

func LineupsKey(matchID int) string { return fmt.Sprintf("%s:%d", ResourceLineups, matchID) }

func (c *cachingProvider) FetchCompetitions(ctx context.Context) ([]competitions.Competition, error) {
	return readThrough(ctx, c, ResourceCompetitions, CompetitionsKey(), func(ctx context.Context) ([]competitions.Competition, error) {
		return c.next.FetchCompetitions(ctx)
	})
}

func (c *cachingProvider) FetchMatches(ctx context.Context, competitionID, seasonID int) ([]matches.Match, error) {
	return readThrough(ctx, c, ResourceMatches, MatchesKey(competitionID, seasonID), func(ctx context.Context) ([]matches.Match, error) {
		return c.next.FetchMatches(ctx, competitionID, seasonID)
	})
}

func (c *cachingProvider) FetchEvents(ctx context.Context, matchID int) ([]events.Event, error) {
	return readThrough(ctx, c, ResourceEvents, EventsKey(matchID), func(ctx context.Context) ([]events.Event, error) {
		return c.next.FetchEvents(ctx, matchID)
	})
}

func (c *cachingProvider) FetchLineups(ctx context.Context, matchID int) ([]lineups.TeamLineup, error) {
	return readThrough(ctx, c, ResourceLineups, LineupsKey(matchID), func(ctx context.Context) ([]lineups.TeamLineup, error) {
		return c.next.FetchLineups(ctx, matchID)
	})
}

// readThrough serves key from the store or joins the shared upstream fetch. The
// shared fetch is detached from the callers' contexts and bounded by
// sharedFetchTimeout. Each caller stops waiting when its own context ends.
func readThrough[T any](ctx context.Context, c *cachingProvider, resource, key string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	if c.next == nil {
		return zero, ErrProviderUnavailable
	}
	logger := logging.FromContext(ctx, c.logger)

	if raw, ok, err := c.store.Get(ctx, key); err != nil {
		logWithProvider(ctx, logger, slog.LevelWarn, "cache", "cache read failed",
			slog.String(logging.FieldCacheKey, key), "err", err)
	} else if ok {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			c.metrics.RecordCacheLookup(resource, true)
			return cached, nil
		}
		logWithProvider(ctx, logger, slog.LevelWarn, "cache", "discarding undecodable cache entry",
			slog.String(logging.FieldCacheKey, key))
	}
	c.metrics.RecordCacheLookup(resource, false)

	ch := c.group.DoChan(key, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedFetchTimeout)
		defer cancel()
		result, err := fetch(fetchCtx)
		if err != nil {
			return nil, err
		}
		if payload, err := json.Marshal(result); err == nil {
			if err := c.store.Set(fetchCtx, key, payload); err != nil {
				logWithProvider(ctx, logger, slog.LevelWarn, "cache", "cache write failed",
					slog.String(logging.FieldCacheKey, key), "err", err)
			}
		}
		return result, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}
