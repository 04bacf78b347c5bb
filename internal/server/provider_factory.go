package server

import (
	"log/slog"

	"football-stats-service/internal/cache"
	"football-stats-service/internal/config"
	"football-stats-service/internal/metrics"
	"football-stats-service/internal/providers"
)

// providerFactory assembles the provider chain: cache, then retries, then the
// shared rate limit in front of the upstream source.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
	cache   cache.Cache
}

func newProviderFactory(logger *slog.Logger, recorder *metrics.Recorder, store cache.Cache) providerFactory {
	return providerFactory{logger: logger, metrics: recorder, cache: store}
}

// providerChain holds the cached chain serving API reads and the live chain,
// retries and rate limit only, that the catalog poller refreshes through.
type providerChain struct {
	cached providers.DataProvider
	live   providers.DataProvider
}

func (f providerFactory) build(cfg config.Config) providerChain {
	base := selectProvider(cfg, f.logger)
	limited := providers.NewRateLimitedProvider(base, cfg.StatsBomb.RateLimit, f.logger)
	return f.wrap(normalizeProviderName(cfg.Provider, base), limited)
}

// wrap adds retries around an already selected provider, and the response cache on the cached side.
func (f providerFactory) wrap(name string, next providers.DataProvider) providerChain {
	retrying := providers.NewRetryingProvider(next, f.logger, f.metrics, name, 0, 0)
	return providerChain{
		cached: providers.NewCachingProvider(retrying, f.cache, f.logger, f.metrics),
		live:   retrying,
	}
}
