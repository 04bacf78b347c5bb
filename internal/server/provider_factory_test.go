package server

import (
	"context"
	"testing"
	"time"

	"football-stats-service/internal/cache"
	"football-stats-service/internal/config"
	"football-stats-service/internal/providers/fixture"
	"football-stats-service/internal/teststubs"
	"football-stats-service/internal/testutil"
)

func TestProviderFactoryBuildsFixtureChain(t *testing.T) {
	factory := newProviderFactory(nil, nil, cache.Noop{})
	chain := factory.build(config.Config{Provider: "fixture"})
	if chain.cached == nil || chain.live == nil {
		t.Fatalf("expected both provider chains")
	}
	items, err := chain.cached.FetchMatches(context.Background(), fixture.CompetitionID, fixture.SeasonID)
	if err != nil || len(items) == 0 {
		t.Fatalf("expected fixture matches through the chain, got %d err=%v", len(items), err)
	}
}

func TestProviderFactoryWrapServesRepeatsFromCache(t *testing.T) {
	tests := []struct {
		name  string
		store func(t *testing.T) cache.Cache
	}{
		{name: "memory", store: func(t *testing.T) cache.Cache { return testutil.NewMemoryCache(t, time.Minute) }},
		{name: "fs", store: func(t *testing.T) cache.Cache { return testutil.NewTempFSCache(t, time.Minute) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &teststubs.StubProvider{Competitions: teststubs.SampleCompetitions()}
			prov := newProviderFactory(nil, nil, tt.store(t)).wrap("stub", stub).cached
			for i := 0; i < 3; i++ {
				items, err := prov.FetchCompetitions(context.Background())
				if err != nil {
					t.Fatalf("fetch: %v", err)
				}
				if len(items) != len(stub.Competitions) {
					t.Fatalf("expected %d competitions, got %d", len(stub.Competitions), len(items))
				}
			}
			if got := stub.Calls.Load(); got != 1 {
				t.Fatalf("expected single upstream call, got %d", got)
			}
		})
	}
}

func TestProviderFactoryLiveChainBypassesCache(t *testing.T) {
	stub := &teststubs.StubProvider{Competitions: teststubs.SampleCompetitions()[:1]}
	chain := newProviderFactory(nil, nil, testutil.NewMemoryCache(t, time.Hour)).wrap("stub", stub)
	ctx := context.Background()

	if _, err := chain.cached.FetchCompetitions(ctx); err != nil {
		t.Fatalf("warm cache: %v", err)
	}
	stub.Competitions = teststubs.SampleCompetitions()

	cached, err := chain.cached.FetchCompetitions(ctx)
	if err != nil || len(cached) != 1 {
		t.Fatalf("expected cached catalog of 1, got %d err=%v", len(cached), err)
	}
	live, err := chain.live.FetchCompetitions(ctx)
	if err != nil || len(live) != 3 {
		t.Fatalf("expected live catalog of 3, got %d err=%v", len(live), err)
	}
}
