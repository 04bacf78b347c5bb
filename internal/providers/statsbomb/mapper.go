package statsbomb

import (
	"encoding/json"

	"football-stats-service/internal/domain/competitions"
	"football-stats-service/internal/domain/events"
	"football-stats-service/internal/domain/lineups"
	"football-stats-service/internal/domain/matches"
)

func mapCompetition(c competitionResponse) competitions.Competition {
	return competitions.Competition{
		CompetitionID:            c.CompetitionID,
		SeasonID:                 c.SeasonID,
		CountryName:              c.CountryName,
		CompetitionName:          c.CompetitionName,
		CompetitionGender:        c.CompetitionGender,
		CompetitionYouth:         c.CompetitionYouth,
		CompetitionInternational: c.CompetitionInternational,
		SeasonName:               c.SeasonName,
		MatchUpdated:             c.MatchUpdated,
		MatchAvailable:           c.MatchAvailable,
	}
}

func mapMatch(m matchResponse) matches.Match {
	return matches.Match{
		MatchID:          m.MatchID,
		MatchDate:        m.MatchDate,
		KickOff:          m.KickOff,
		CompetitionID:    m.Competition.CompetitionID,
		Competition:      m.Competition.CompetitionName,
		SeasonID:         m.Season.SeasonID,
		Season:           m.Season.SeasonName,
		HomeTeamID:       m.HomeTeam.ID,
		HomeTeam:         m.HomeTeam.Name,
		AwayTeamID:       m.AwayTeam.ID,
		AwayTeam:         m.AwayTeam.Name,
		HomeScore:        m.HomeScore,
		AwayScore:        m.AwayScore,
		MatchStatus:      m.MatchStatus,
		MatchWeek:        m.MatchWeek,
		CompetitionStage: refName(m.CompetitionStage),
		Stadium:          refName(m.Stadium),
		Referee:          refName(m.Referee),
		HomeManagers:     managerNames(m.HomeTeam.Managers),
		AwayManagers:     managerNames(m.AwayTeam.Managers),
		LastUpdated:      m.LastUpdated,
	}
}

func mapEvent(e eventResponse) events.Event {
	return events.Event{
		ID:             e.ID,
		Index:          e.Index,
		Period:         e.Period,
		Timestamp:      e.Timestamp,
		Type:           refName(e.Type),
		Team:           refName(e.Team),
		TeamID:         refID(e.Team),
		Player:         refName(e.Player),
		PlayerID:       refID(e.Player),
		Position:       refName(e.Position),
		Minute:         e.Minute,
		Second:         e.Second,
		Location:       e.Location,
		PossessionTeam: refName(e.PossessionTeam),
		PlayPattern:    refName(e.PlayPattern),
		Shot:           detail(e.Shot),
		Pass:           detail(e.Pass),
		Carry:          detail(e.Carry),
		Duel:           detail(e.Duel),
		Tactics:        detail(e.Tactics),
		Goalkeeper:     detail(e.Goalkeeper),
		FoulCommitted:  detail(e.FoulCommitted),
		FoulWon:        detail(e.FoulWon),
		BallReceipt:    detail(e.BallReceipt),
		BallRecovery:   detail(e.BallRecovery),
		Interception:   detail(e.Interception),
		Clearance:      detail(e.Clearance),
		Dribble:        detail(e.Dribble),
		Block:          detail(e.Block),
		Miscontrol:     detail(e.Miscontrol),
		Dispossessed:   detail(e.Dispossessed),
		BadBehaviour:   detail(e.BadBehaviour),
		Substitution:   detail(e.Substitution),
	}
}

func mapLineup(l lineupResponse) lineups.TeamLineup {
	players := make([]lineups.Player, 0, len(l.Lineup))
	for _, p := range l.Lineup {
		player := lineups.Player{
			PlayerID:       p.PlayerID,
			PlayerName:     p.PlayerName,
			PlayerNickname: deref(p.PlayerNickname),
			JerseyNumber:   p.JerseyNumber,
			Country:        refName(p.Country),
			Cards:          make([]lineups.Card, 0, len(p.Cards)),
			Positions:      make([]lineups.Position, 0, len(p.Positions)),
		}
		for _, c := range p.Cards {
			player.Cards = append(player.Cards, lineups.Card{
				Time:     c.Time,
				CardType: c.CardType,
				Reason:   c.Reason,
				Period:   c.Period,
			})
		}
		for _, pos := range p.Positions {
			toPeriod := 0
			if pos.ToPeriod != nil {
				toPeriod = *pos.ToPeriod
			}
			player.Positions = append(player.Positions, lineups.Position{
				PositionID:  pos.PositionID,
				Position:    pos.Position,
				From:        pos.From,
				To:          deref(pos.To),
				FromPeriod:  pos.FromPeriod,
				ToPeriod:    toPeriod,
				StartReason: pos.StartReason,
				EndReason:   pos.EndReason,
			})
		}
		players = append(players, player)
	}
	return lineups.TeamLineup{TeamID: l.TeamID, TeamName: l.TeamName, Lineup: players}
}

func refName(r *namedRef) string {
	if r == nil {
		return ""
	}
	return r.Name
}

func refID(r *namedRef) int {
	if r == nil {
		return 0
	}
	return r.ID
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func managerNames(items []managerResponse) []string {
	out := make([]string, 0, len(items))
	for _, m := range items {
		out = append(out, m.Name)
	}
	return out
}

func detail(raw json.RawMessage) events.Detail {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return events.Detail(raw)
}
