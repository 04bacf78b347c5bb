package server

import (
	"log/slog"
	"strings"

	"football-stats-service/internal/config"
	"football-stats-service/internal/logging"
	"football-stats-service/internal/providers"
	"football-stats-service/internal/providers/fixture"
	"football-stats-service/internal/providers/statsbomb"
)

// Provider names accepted in PROVIDER.
const (
	providerStatsBomb = "statsbomb"
	providerFixture   = "fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case providerStatsBomb, "":
		return statsbomb.NewClient(statsbomb.Config{
			BaseURL: cfg.StatsBomb.BaseURL,
			Timeout: cfg.StatsBomb.Timeout,
		})
	case providerFixture:
		return fixture.New()
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", logging.FieldProvider, cfg.Provider)
		return fixture.New()
	}
}
