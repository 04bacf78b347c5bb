package config

import "time"

// SyncConfig controls the database mirror job.
type SyncConfig struct {
	DatabaseURL    string
	CompetitionIDs []int
	RecentSeasons  int
	Concurrency    int
	Interval       time.Duration // zero runs the job once
	Lookback       time.Duration // used when the database holds no matches yet
}

func loadSync() SyncConfig {
	return SyncConfig{
		DatabaseURL:    envOrDefault(envDatabaseURL, ""),
		CompetitionIDs: intListEnvOrDefault(envSyncCompetitionIDs, defaultSyncCompetitionIDs),
		RecentSeasons:  intEnvOrDefault(envSyncRecentSeasons, defaultSyncRecentSeasons),
		Concurrency:    intEnvOrDefault(envSyncConcurrency, defaultSyncConcurrency),
		Interval:       durationEnvOrDefault(envSyncInterval, 0),
		Lookback:       durationEnvOrDefault(envSyncLookback, defaultSyncLookback),
	}
}
