package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envDefaultSeason   = "DEFAULT_SEASON_ID"
	envCompetitionFile = "COMPETITIONS_FILE"
	envCatalogRefresh  = "CATALOG_REFRESH_INTERVAL"

	envStatsBombBaseURL   = "STATSBOMB_BASE_URL"
	envStatsBombTimeout   = "STATSBOMB_TIMEOUT"
	envStatsBombRateLimit = "STATSBOMB_RATE_LIMIT"

	envCacheBackend  = "CACHE_BACKEND"
	envCacheTTL      = "CACHE_TTL"
	envCacheDir      = "CACHE_DIR"
	envRedisAddr     = "REDIS_ADDR"
	envRedisPassword = "REDIS_PASSWORD"
	envRedisDB       = "REDIS_DB"

	envCORSOrigins = "CORS_ALLOWED_ORIGINS"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	envDatabaseURL        = "DATABASE_URL"
	envSyncCompetitionIDs = "SYNC_COMPETITION_IDS"
	envSyncRecentSeasons  = "SYNC_RECENT_SEASONS"
	envSyncConcurrency    = "SYNC_CONCURRENCY"
	envSyncInterval       = "SYNC_INTERVAL"
	envSyncLookback       = "SYNC_DEFAULT_LOOKBACK"

	defaultPort     = "8000"
	defaultProvider = "statsbomb"
	// Season requested when a client omits season_id.
	defaultSeasonID       = 2023
	defaultCatalogRefresh = 30 * Duration(time.Minute)

	defaultStatsBombBaseURL   = "https://raw.githubusercontent.com/statsbomb/open-data/master/data"
	defaultStatsBombTimeout   = 15 * Duration(time.Second)
	defaultStatsBombRateLimit = 5

	defaultCacheBackend = "memory"
	// Published matches are immutable, so entries can live long.
	defaultCacheTTL  = Duration(time.Hour)
	defaultCacheDir  = "data/cache"
	defaultRedisAddr = "localhost:6379"

	defaultMetricsPort = "9090"
	defaultServiceName = "football-stats-service"

	defaultSyncRecentSeasons = 2
	defaultSyncConcurrency   = 4
	// Matches older than this are skipped on a first run against an empty database.
	defaultSyncLookback = 2 * 365 * 24 * Duration(time.Hour)
)

var (
	defaultCORSOrigins        = []string{"*"}
	defaultSyncCompetitionIDs = []int{43, 16, 9, 11, 7, 2, 12, 68, 35}
)
