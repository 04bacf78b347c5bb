package fixture

import (
	"context"
	"fmt"
	"time"

	"football-stats-service/internal/domain/competitions"
	"football-stats-service/internal/domain/events"
	"football-stats-service/internal/domain/lineups"
	"football-stats-service/internal/domain/matches"
	"football-stats-service/internal/providers"
	"football-stats-service/internal/timeutil"
)

// Identifiers served by the fixture provider.
const (
	CompetitionID = 43
	SeasonID      = 106
	FinalMatchID  = 9001
	OpenerMatchID = 9002
)

const (
	homeTeamID = 779
	awayTeamID = 771
	homeTeam   = "Argentina"
	awayTeam   = "France"
)

// Provider returns a static, self-consistent data set for local runs and tests.
// Match dates are relative to the provider clock so date-window logic sees recent matches.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchCompetitions returns a deterministic competition catalog.
func (p *Provider) FetchCompetitions(ctx context.Context) ([]competitions.Competition, error) {
	_ = ctx
	return []competitions.Competition{
		{CompetitionID: CompetitionID, SeasonID: SeasonID, CountryName: "International", CompetitionName: "FIFA World Cup", CompetitionGender: "male", CompetitionInternational: true, SeasonName: "2022"},
		{CompetitionID: CompetitionID, SeasonID: 3, CountryName: "International", CompetitionName: "FIFA World Cup", CompetitionGender: "male", CompetitionInternational: true, SeasonName: "2018"},
		{CompetitionID: 2, SeasonID: 27, CountryName: "England", CompetitionName: "Premier League", CompetitionGender: "male", SeasonName: "2015/2016"},
	}, nil
}

// FetchMatches returns the fixture matches of the 2022 World Cup season; any other season is not found.
func (p *Provider) FetchMatches(ctx context.Context, competitionID, seasonID int) ([]matches.Match, error) {
	_ = ctx
	if competitionID != CompetitionID || seasonID != SeasonID {
		return nil, fmt.Errorf("fixture matches %d/%d: %w", competitionID, seasonID, providers.ErrNotFound)
	}
	today := p.now().UTC().Truncate(24 * time.Hour)
	return []matches.Match{
		p.match(OpenerMatchID, today.AddDate(0, 0, -28), 1, "Group Stage", 1, 2),
		p.match(FinalMatchID, today.AddDate(0, 0, -1), 7, "Final", 2, 1),
	}, nil
}

// FetchEvents returns the events of a fixture match.
func (p *Provider) FetchEvents(ctx context.Context, matchID int) ([]events.Event, error) {
	_ = ctx
	switch matchID {
	case FinalMatchID:
		return finalEvents(), nil
	case OpenerMatchID:
		return []events.Event{
			teamEvent("o-1", 1, 0, "Starting XI", homeTeam, homeTeamID),
			teamEvent("o-2", 2, 0, "Starting XI", awayTeam, awayTeamID),
		}, nil
	default:
		return nil, fmt.Errorf("fixture events %d: %w", matchID, providers.ErrNotFound)
	}
}

// FetchLineups returns the lineups of a fixture match.
func (p *Provider) FetchLineups(ctx context.Context, matchID int) ([]lineups.TeamLineup, error) {
	_ = ctx
	if matchID != FinalMatchID && matchID != OpenerMatchID {
		return nil, fmt.Errorf("fixture lineups %d: %w", matchID, providers.ErrNotFound)
	}
	return []lineups.TeamLineup{
		{TeamID: homeTeamID, TeamName: homeTeam, Lineup: []lineups.Player{
			starter(homeTeam, 5503, "Lionel Andrés Messi Cuccittini", "Lionel Messi", 10, "Right Wing"),
			subbedOff(starter(homeTeam, 29560, "Julián Álvarez", "", 9, "Center Forward"), "64:00"),
			substitute(homeTeam, 5477, "Ángel Fabián Di María Hernández", "Ángel Di María", 11, "Left Wing", "64:00"),
			{PlayerID: 6999, PlayerName: "Rodrigo Javier De Paul", JerseyNumber: 7, Country: homeTeam,
				Cards:     []lineups.Card{{Time: "44:10", CardType: "Yellow Card", Reason: "Foul Committed", Period: 1}},
				Positions: []lineups.Position{{PositionID: 15, Position: "Left Center Midfield", From: "00:00", FromPeriod: 1, StartReason: "Starting XI", EndReason: "Final Whistle"}}},
		}},
		{TeamID: awayTeamID, TeamName: awayTeam, Lineup: []lineups.Player{
			starter(awayTeam, 3009, "Kylian Mbappé Lottin", "Kylian Mbappé", 10, "Left Center Forward"),
			starter(awayTeam, 3604, "Antoine Griezmann", "", 7, "Center Attacking Midfield"),
		}},
	}, nil
}

func (p *Provider) match(id int, date time.Time, week int, stage string, home, away int) matches.Match {
	return matches.Match{
		MatchID:          id,
		MatchDate:        timeutil.FormatDate(date),
		KickOff:          "17:00:00.000",
		CompetitionID:    CompetitionID,
		Competition:      "FIFA World Cup",
		SeasonID:         SeasonID,
		Season:           "2022",
		HomeTeamID:       homeTeamID,
		HomeTeam:         homeTeam,
		AwayTeamID:       awayTeamID,
		AwayTeam:         awayTeam,
		HomeScore:        &home,
		AwayScore:        &away,
		MatchStatus:      "available",
		MatchWeek:        week,
		CompetitionStage: stage,
		Stadium:          "Lusail Stadium",
		Referee:          "Szymon Marciniak",
		HomeManagers:     []string{"Lionel Sebastián Scaloni"},
		AwayManagers:     []string{"Didier Deschamps"},
	}
}

func starter(country string, id int, name, nickname string, jersey int, position string) lineups.Player {
	return lineups.Player{
		PlayerID:       id,
		PlayerName:     name,
		PlayerNickname: nickname,
		JerseyNumber:   jersey,
		Country:        country,
		Cards:          []lineups.Card{},
		Positions: []lineups.Position{
			{Position: position, From: "00:00", FromPeriod: 1, StartReason: "Starting XI", EndReason: "Final Whistle"},
		},
	}
}

func substitute(country string, id int, name, nickname string, jersey int, position, from string) lineups.Player {
	p := starter(country, id, name, nickname, jersey, position)
	p.Positions[0].From = from
	p.Positions[0].FromPeriod = 2
	p.Positions[0].StartReason = "Substitution - On"
	return p
}

func subbedOff(p lineups.Player, at string) lineups.Player {
	p.Positions[0].To = at
	p.Positions[0].ToPeriod = 2
	p.Positions[0].EndReason = "Substitution - Off (Tactical)"
	return p
}

func teamEvent(id string, index, minute int, typ, team string, teamID int) events.Event {
	return events.Event{
		ID:             id,
		Index:          index,
		Period:         periodOf(minute),
		Minute:         minute,
		Type:           typ,
		Team:           team,
		TeamID:         teamID,
		PossessionTeam: team,
		PlayPattern:    "Regular Play",
	}
}

func playerEvent(id string, index, minute int, typ, team string, teamID int, player string, playerID int) events.Event {
	e := teamEvent(id, index, minute, typ, team, teamID)
	e.Player = player
	e.PlayerID = playerID
	return e
}

func periodOf(minute int) int {
	if minute >= 45 {
		return 2
	}
	return 1
}

func finalEvents() []events.Event {
	const (
		messi    = "Lionel Andrés Messi Cuccittini"
		alvarez  = "Julián Álvarez"
		diMaria  = "Ángel Fabián Di María Hernández"
		dePaul   = "Rodrigo Javier De Paul"
		mbappe   = "Kylian Mbappé Lottin"
		griezman = "Antoine Griezmann"
	)

	out := []events.Event{
		teamEvent("f-1", 1, 0, "Starting XI", homeTeam, homeTeamID),
		teamEvent("f-2", 2, 0, "Starting XI", awayTeam, awayTeamID),
	}
	add := func(e events.Event) { out = append(out, e) }

	e := playerEvent("f-3", 3, 10, events.TypePass, homeTeam, homeTeamID, messi, 5503)
	e.Pass = events.Detail(`{"type":{"id":61,"name":"Corner"},"length":30.2}`)
	add(e)

	e = playerEvent("f-4", 4, 21, events.TypePass, awayTeam, awayTeamID, griezman, 3604)
	e.Pass = events.Detail(`{"outcome":{"id":9,"name":"Incomplete"}}`)
	add(e)

	e = playerEvent("f-5", 5, 22, events.TypeDuel, homeTeam, homeTeamID, dePaul, 6999)
	e.Duel = events.Detail(`{"type":{"id":11,"name":"Tackle"},"outcome":{"id":4,"name":"Won"}}`)
	add(e)

	e = playerEvent("f-6", 6, 23, events.TypePass, homeTeam, homeTeamID, alvarez, 29560)
	e.Pass = events.Detail(`{"goal_assist":true,"assisted_shot_id":"f-7"}`)
	add(e)

	e = playerEvent("f-7", 7, 23, events.TypeShot, homeTeam, homeTeamID, messi, 5503)
	e.Shot = events.Detail(`{"statsbomb_xg":0.4,"outcome":{"id":97,"name":"Goal"},"key_pass_id":"f-6"}`)
	add(e)

	e = playerEvent("f-8", 8, 30, events.TypeInterception, awayTeam, awayTeamID, griezman, 3604)
	e.Interception = events.Detail(`{"outcome":{"id":4,"name":"Won"}}`)
	add(e)

	e = playerEvent("f-9", 9, 44, events.TypeFoulCommitted, homeTeam, homeTeamID, dePaul, 6999)
	e.FoulCommitted = events.Detail(`{"card":{"id":7,"name":"Yellow Card"}}`)
	add(e)

	e = playerEvent("f-10", 10, 60, events.TypeShot, awayTeam, awayTeamID, mbappe, 3009)
	e.Shot = events.Detail(`{"statsbomb_xg":0.1,"outcome":{"id":100,"name":"Saved"}}`)
	add(e)

	e = teamEvent("f-11", 11, 64, events.TypeSubstitution, homeTeam, homeTeamID)
	e.Player, e.PlayerID = alvarez, 29560
	e.Substitution = events.Detail(`{"replacement":{"id":5477,"name":"` + diMaria + `"},"outcome":{"id":103,"name":"Tactical"}}`)
	add(e)

	e = playerEvent("f-12", 12, 80, events.TypeShot, awayTeam, awayTeamID, mbappe, 3009)
	e.Shot = events.Detail(`{"statsbomb_xg":0.76,"outcome":{"id":97,"name":"Goal"}}`)
	add(e)

	e = playerEvent("f-13", 13, 88, events.TypeShot, homeTeam, homeTeamID, diMaria, 5477)
	e.Shot = events.Detail(`{"statsbomb_xg":0.2,"outcome":{"id":97,"name":"Goal"}}`)
	add(e)

	add(teamEvent("f-14", 14, 90, "Half End", homeTeam, homeTeamID))
	return out
}
