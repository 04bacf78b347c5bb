package server

import (
	"context"
	"log/slog"
	"time"

	"football-stats-service/internal/cache"
	"football-stats-service/internal/config"
	"football-stats-service/internal/logging"
)

const (
	cacheConnectTimeout = 5 * time.Second
	cacheSweepInterval  = 5 * time.Minute
)

// buildCache opens the configured response cache. A backend that cannot be
// opened degrades to the in-memory cache so the API keeps serving.
func buildCache(cfg config.CacheConfig, logger *slog.Logger) cache.Cache {
	switch cfg.Backend {
	case config.CacheNone:
		return cache.Noop{}
	case config.CacheRedis:
		ctx, cancel := context.WithTimeout(context.Background(), cacheConnectTimeout)
		defer cancel()
		store, err := cache.NewRedis(ctx, cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.TTL,
		})
		if err == nil {
			logging.Info(logger, "response cache ready", "backend", config.CacheRedis, "addr", cfg.RedisAddr)
			return store
		}
		logging.Warn(logger, "redis cache unavailable, falling back to memory", "err", err)
	case config.CacheFS:
		store, err := cache.NewFS(cfg.Dir, cfg.TTL)
		if err == nil {
			logging.Info(logger, "response cache ready", "backend", config.CacheFS, "dir", cfg.Dir)
			return store
		}
		logging.Warn(logger, "fs cache unavailable, falling back to memory", "err", err)
	case config.CacheMemory, "":
	default:
		logging.Warn(logger, "unknown cache backend, using memory", "backend", cfg.Backend)
	}
	return cache.NewMemory(cfg.TTL, cacheSweepInterval)
}
