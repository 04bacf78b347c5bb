package config

import "football-stats-service/internal/domain/competitions"

// Config holds runtime configuration for the server and the sync job.
type Config struct {
	Port            string
	Provider        string
	DefaultSeasonID int
	CatalogRefresh  Duration
	StatsBomb       StatsBombConfig
	Competitions    []competitions.Code
	Cache           CacheConfig
	CORSOrigins     []string
	Metrics         MetricsConfig
	Sync            SyncConfig
}

// Load reads configuration from environment variables with sensible defaults.
// Only an unreadable or invalid competitions file is reported as an error.
func Load() (Config, error) {
	codes, err := LoadCompetitions(envOrDefault(envCompetitionFile, ""))
	if err != nil {
		return Config{}, err
	}
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		Provider:        envOrDefault(envProvider, defaultProvider),
		DefaultSeasonID: intEnvOrDefault(envDefaultSeason, defaultSeasonID),
		CatalogRefresh:  durationEnvOrDefault(envCatalogRefresh, defaultCatalogRefresh),
		StatsBomb:       loadStatsBomb(),
		Competitions:    codes,
		Cache:           loadCache(),
		CORSOrigins:     listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		Metrics:         loadMetrics(),
		Sync:            loadSync(),
	}, nil
}
