package teststubs

import (
	"context"
	"sync/atomic"

	"football-stats-service/internal/domain/competitions"
	"football-stats-service/internal/domain/events"
	"football-stats-service/internal/domain/lineups"
	"football-stats-service/internal/domain/matches"
)

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Competitions []competitions.Competition
	Matches      []matches.Match
	Events       []events.Event
	Lineups      []lineups.TeamLineup
	Err          error
	Calls        atomic.Int32
	Notify       chan struct{}

	// Optional per-match data; takes precedence over Events/Lineups when set.
	EventsByMatch  map[int][]events.Event
	LineupsByMatch map[int][]lineups.TeamLineup
}

func (s *StubProvider) record() {
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
}

// FetchCompetitions returns configured competitions and error while tracking calls.
func (s *StubProvider) FetchCompetitions(ctx context.Context) ([]competitions.Competition, error) {
	_ = ctx
	s.record()
	return s.Competitions, s.Err
}

// FetchMatches returns configured matches belonging to the requested season.
func (s *StubProvider) FetchMatches(ctx context.Context, competitionID, seasonID int) ([]matches.Match, error) {
	_ = ctx
	s.record()
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]matches.Match, 0, len(s.Matches))
	for _, m := range s.Matches {
		if m.CompetitionID == competitionID && m.SeasonID == seasonID {
			out = append(out, m)
		}
	}
	return out, nil
}

// FetchEvents returns configured events.
func (s *StubProvider) FetchEvents(ctx context.Context, matchID int) ([]events.Event, error) {
	_ = ctx
	s.record()
	if s.Err != nil {
		return nil, s.Err
	}
	if evs, ok := s.EventsByMatch[matchID]; ok {
		return evs, nil
	}
	return s.Events, nil
}

// FetchLineups returns configured lineups.
func (s *StubProvider) FetchLineups(ctx context.Context, matchID int) ([]lineups.TeamLineup, error) {
	_ = ctx
	s.record()
	if s.Err != nil {
		return nil, s.Err
	}
	if l, ok := s.LineupsByMatch[matchID]; ok {
		return l, nil
	}
	return s.Lineups, nil
}

// SampleCompetitions returns a small catalog with two World Cup seasons and one Premier League season.
func SampleCompetitions() []competitions.Competition {
	return []competitions.Competition{
		{CompetitionID: 43, SeasonID: 106, CountryName: "International", CompetitionName: "FIFA World Cup", CompetitionGender: "male", CompetitionInternational: true, SeasonName: "2022"},
		{CompetitionID: 43, SeasonID: 3, CountryName: "International", CompetitionName: "FIFA World Cup", CompetitionGender: "male", CompetitionInternational: true, SeasonName: "2018"},
		{CompetitionID: 2, SeasonID: 27, CountryName: "England", CompetitionName: "Premier League", CompetitionGender: "male", SeasonName: "2015/2016"},
	}
}
