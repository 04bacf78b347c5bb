package teststubs

import (
	"context"
	"errors"
	"testing"

	"football-stats-service/internal/domain/events"
	"football-stats-service/internal/domain/matches"
)

func TestStubProviderTracksCallsAndNotifies(t *testing.T) {
	notify := make(chan struct{})
	s := &StubProvider{Competitions: SampleCompetitions(), Notify: notify}

	got, err := s.FetchCompetitions(context.Background())
	if err != nil || len(got) != 3 {
		t.Fatalf("unexpected result %v %v", got, err)
	}
	select {
	case <-notify:
	default:
		t.Fatal("expected notify channel closed")
	}
	if _, err := s.FetchCompetitions(context.Background()); err != nil {
		t.Fatalf("second call should not panic on closed notify: %v", err)
	}
	if s.Calls.Load() != 2 {
		t.Fatalf("expected 2 calls, got %d", s.Calls.Load())
	}
}

func TestStubProviderFiltersMatchesBySeason(t *testing.T) {
	s := &StubProvider{Matches: []matches.Match{
		{MatchID: 1, CompetitionID: 43, SeasonID: 106},
		{MatchID: 2, CompetitionID: 43, SeasonID: 3},
	}}
	got, _ := s.FetchMatches(context.Background(), 43, 3)
	if len(got) != 1 || got[0].MatchID != 2 {
		t.Fatalf("unexpected matches %+v", got)
	}
}

func TestStubProviderPerMatchEvents(t *testing.T) {
	s := &StubProvider{
		Events:        []events.Event{{ID: "default"}},
		EventsByMatch: map[int][]events.Event{9: {{ID: "nine"}}},
	}
	got, _ := s.FetchEvents(context.Background(), 9)
	if got[0].ID != "nine" {
		t.Fatalf("expected per-match events, got %+v", got)
	}
	got, _ = s.FetchEvents(context.Background(), 1)
	if got[0].ID != "default" {
		t.Fatalf("expected default events, got %+v", got)
	}
}

func TestStubProviderReturnsError(t *testing.T) {
	boom := errors.New("boom")
	s := &StubProvider{Err: boom}
	if _, err := s.FetchLineups(context.Background(), 1); !errors.Is(err, boom) {
		t.Fatalf("expected configured error, got %v", err)
	}
}
