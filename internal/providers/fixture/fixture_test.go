package fixture

import (
	"context"
	"errors"
	"testing"
	"time"

	"football-stats-service/internal/providers"
)

func TestFetchMatchesUsesProviderClock(t *testing.T) {
	fixed := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	p := New()
	p.now = func() time.Time { return fixed }

	got, err := p.FetchMatches(context.Background(), CompetitionID, SeasonID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	final := got[1]
	if final.MatchID != FinalMatchID || final.MatchDate != "2024-01-09" {
		t.Fatalf("unexpected final %+v", final)
	}
	if *final.HomeScore != 2 || *final.AwayScore != 1 {
		t.Fatalf("unexpected score %d-%d", *final.HomeScore, *final.AwayScore)
	}
}

func TestUnknownIdentifiersAreNotFound(t *testing.T) {
	p := New()
	ctx := context.Background()
	if _, err := p.FetchMatches(ctx, 2, 27); !errors.Is(err, providers.ErrNotFound) {
		t.Fatalf("expected not found for unknown season, got %v", err)
	}
	if _, err := p.FetchEvents(ctx, 1); !errors.Is(err, providers.ErrNotFound) {
		t.Fatalf("expected not found for unknown match events, got %v", err)
	}
	if _, err := p.FetchLineups(ctx, 1); !errors.Is(err, providers.ErrNotFound) {
		t.Fatalf("expected not found for unknown match lineups, got %v", err)
	}
}

func TestFinalEventsAreConsistent(t *testing.T) {
	p := New()
	evs, err := p.FetchEvents(context.Background(), FinalMatchID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	goals := map[string]int{}
	for i, e := range evs {
		if e.Index != i+1 {
			t.Fatalf("expected sequential indexes, got %d at %d", e.Index, i)
		}
		if e.Type == "Shot" && e.ShotInfo().Outcome.Name == "Goal" {
			goals[e.Team]++
		}
	}
	if goals[homeTeam] != 2 || goals[awayTeam] != 1 {
		t.Fatalf("events should match the 2-1 scoreline, got %v", goals)
	}
}

func TestLineupsCoverBothTeams(t *testing.T) {
	p := New()
	got, err := p.FetchLineups(context.Background(), FinalMatchID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 2 || got[0].TeamName != homeTeam || got[1].TeamName != awayTeam {
		t.Fatalf("unexpected lineups %+v", got)
	}
}

func TestProviderImplementsDataProvider(t *testing.T) {
	var _ providers.DataProvider = New()
}
