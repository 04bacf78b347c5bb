package testutil

import (
	appcompetitions "football-stats-service/internal/app/competitions"
	appmatches "football-stats-service/internal/app/matches"
	"football-stats-service/internal/config"
	"football-stats-service/internal/providers"
	"football-stats-service/internal/store"
)

// NewServices builds the competition and match services over provider with the
// default competition registry and an empty catalog store.
func NewServices(provider providers.DataProvider) (*appcompetitions.Service, *appmatches.Service) {
	comps := appcompetitions.NewService(provider, store.NewCatalogStore(), config.DefaultCompetitions())
	return comps, appmatches.NewService(provider, nil)
}
