package testutil

import (
	"football-stats-service/internal/domain/competitions"
	"football-stats-service/internal/domain/events"
	"football-stats-service/internal/domain/lineups"
	"football-stats-service/internal/domain/matches"
)

// SampleMatch returns a minimal finished match with the provided id.
func SampleMatch(id int, date string) matches.Match {
	home, away := 1, 0
	return matches.Match{
		MatchID:       id,
		MatchDate:     date,
		CompetitionID: 43,
		Competition:   "FIFA World Cup",
		SeasonID:      106,
		Season:        "2022",
		HomeTeamID:    1,
		HomeTeam:      "Home",
		AwayTeamID:    2,
		AwayTeam:      "Away",
		HomeScore:     &home,
		AwayScore:     &away,
		MatchStatus:   "available",
		HomeManagers:  []string{},
		AwayManagers:  []string{},
	}
}

// SampleCompetition returns a catalog entry.
func SampleCompetition(competitionID, seasonID int) competitions.Competition {
	return competitions.Competition{
		CompetitionID:   competitionID,
		SeasonID:        seasonID,
		CompetitionName: "Competition",
		SeasonName:      "Season",
	}
}

// SampleGoal returns a goal scored by the player for the team at minute.
func SampleGoal(id, team, player string, playerID, minute int) events.Event {
	return events.Event{
		ID:       id,
		Type:     events.TypeShot,
		Team:     team,
		Player:   player,
		PlayerID: playerID,
		Minute:   minute,
		Shot:     events.Detail(`{"statsbomb_xg":0.5,"outcome":{"id":97,"name":"Goal"}}`),
	}
}

// SampleLineups returns one starter per side for the teams of SampleMatch.
func SampleLineups() []lineups.TeamLineup {
	starter := func(id int, name string) lineups.Player {
		return lineups.Player{
			PlayerID:   id,
			PlayerName: name,
			Positions:  []lineups.Position{{Position: "Center Forward", From: "00:00", FromPeriod: 1}},
		}
	}
	return []lineups.TeamLineup{
		{TeamID: 1, TeamName: "Home", Lineup: []lineups.Player{starter(10, "Home Striker")}},
		{TeamID: 2, TeamName: "Away", Lineup: []lineups.Player{starter(20, "Away Striker")}},
	}
}
