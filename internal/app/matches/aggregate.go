package matches

import (
	"strconv"

	"football-stats-service/internal/domain/events"
	"football-stats-service/internal/domain/lineups"
	"football-stats-service/internal/domain/stats"
	"football-stats-service/internal/timeutil"
)

const (
	regulationSeconds = 90 * 60
	// periodShootout holds penalty shootout kicks, which count toward no match statistic.
	periodShootout = 5
)

var (
	onTargetOutcomes = map[string]bool{"Goal": true, "Saved": true, "Post": true, "Saved To Post": true}
	failedPasses     = map[string]bool{"Incomplete": true, "Out": true, "Unknown": true, "Pass Offside": true, "Injury Clearance": true}
	wonDuels         = map[string]bool{"Won": true, "Success In Play": true, "Success Out": true}
)

const (
	cardYellow       = "Yellow Card"
	cardRed          = "Red Card"
	cardSecondYellow = "Second Yellow"
	passCorner       = "Corner"
	duelTackle       = "Tackle"
	outcomeGoal      = "Goal"
)

// PlayerStats folds a match event stream into per-player totals, in the order
// players first appear. Minutes come from lineup positions when the player is
// listed, otherwise from the span of their events.
func PlayerStats(evs []events.Event, teams []lineups.TeamLineup) []stats.PlayerStats {
	shotXG := indexShotXG(evs)
	matchEnd := matchEndSeconds(evs)

	type tracked struct {
		stats       stats.PlayerStats
		first, last int
	}
	order := make([]string, 0)
	byKey := make(map[string]*tracked)

	for _, e := range evs {
		if e.Player == "" || e.Period == periodShootout {
			continue
		}
		key := playerKey(e)
		t, ok := byKey[key]
		if !ok {
			t = &tracked{
				stats: stats.PlayerStats{Name: e.Player, PlayerID: e.PlayerID, Team: e.Team},
				first: e.Minute,
			}
			byKey[key] = t
			order = append(order, key)
		}
		t.last = e.Minute
		p := &t.stats

		switch e.Type {
		case events.TypeShot:
			shot := e.ShotInfo()
			p.Shots++
			p.XG += shot.StatsbombXG
			if onTargetOutcomes[shot.Outcome.Name] {
				p.ShotsOnTarget++
			}
			if shot.Outcome.Name == outcomeGoal {
				p.Goals++
			}
		case events.TypePass:
			pass := e.PassInfo()
			p.PassesAttempted++
			if !failedPasses[pass.Outcome.Name] {
				p.PassesCompleted++
			}
			if pass.GoalAssist {
				p.Assists++
				p.XA += shotXG[pass.AssistedShotID]
			}
		case events.TypeDuel:
			duel := e.DuelInfo()
			if duel.Type.Name == duelTackle {
				p.Tackles++
			}
			if wonDuels[duel.Outcome.Name] {
				p.DuelsWon++
			} else {
				p.DuelsLost++
			}
		case events.TypeInterception:
			p.Interceptions++
		case events.TypeFoulCommitted, events.TypeBadBehaviour:
			yellow, red := cardCounts(e.Card())
			p.YellowCards += yellow
			p.RedCards += red
		}
	}

	minutes := lineupMinutes(teams, matchEnd)
	out := make([]stats.PlayerStats, 0, len(order))
	for _, key := range order {
		t := byKey[key]
		if m, ok := minutes[t.stats.PlayerID]; ok && t.stats.PlayerID != 0 {
			t.stats.MinutesPlayed = m
		} else {
			t.stats.MinutesPlayed = t.last - t.first + 1
		}
		out = append(out, t.stats)
	}
	return out
}

// TeamStats folds a match event stream into per-team totals, in the order teams first appear.
func TeamStats(evs []events.Event) []stats.TeamStats {
	order := make([]string, 0, 2)
	byTeam := make(map[string]*stats.TeamStats)

	for _, e := range evs {
		if e.Team == "" || e.Period == periodShootout {
			continue
		}
		t, ok := byTeam[e.Team]
		if !ok {
			t = &stats.TeamStats{Team: e.Team}
			byTeam[e.Team] = t
			order = append(order, e.Team)
		}

		switch e.Type {
		case events.TypeShot:
			shot := e.ShotInfo()
			t.Shots++
			t.XG += shot.StatsbombXG
			if onTargetOutcomes[shot.Outcome.Name] {
				t.ShotsOnTarget++
			}
			if shot.Outcome.Name == outcomeGoal {
				t.Goals++
			}
		case events.TypeOwnGoalFor:
			t.Goals++
		case events.TypePass:
			pass := e.PassInfo()
			t.PassesAttempted++
			if !failedPasses[pass.Outcome.Name] {
				t.PassesCompleted++
			}
			if pass.Type.Name == passCorner {
				t.Corners++
			}
		case events.TypeDuel:
			duel := e.DuelInfo()
			if duel.Type.Name == duelTackle {
				t.Tackles++
			}
			if wonDuels[duel.Outcome.Name] {
				t.DuelsWon++
			} else {
				t.DuelsLost++
			}
		case events.TypeInterception:
			t.Interceptions++
		case events.TypeFoulCommitted:
			t.Fouls++
			yellow, red := cardCounts(e.Card())
			t.YellowCards += yellow
			t.RedCards += red
		case events.TypeBadBehaviour:
			yellow, red := cardCounts(e.Card())
			t.YellowCards += yellow
			t.RedCards += red
		}
	}

	out := make([]stats.TeamStats, 0, len(order))
	for _, name := range order {
		out = append(out, *byTeam[name])
	}
	return out
}

func playerKey(e events.Event) string {
	if e.PlayerID != 0 {
		return "id:" + strconv.Itoa(e.PlayerID)
	}
	return "name:" + e.Player
}

func cardCounts(card string) (yellow, red int) {
	switch card {
	case cardYellow:
		return 1, 0
	case cardRed, cardSecondYellow:
		return 0, 1
	}
	return 0, 0
}

func indexShotXG(evs []events.Event) map[string]float64 {
	out := make(map[string]float64)
	for _, e := range evs {
		if e.Type == events.TypeShot && e.Period != periodShootout {
			out[e.ID] = e.ShotInfo().StatsbombXG
		}
	}
	return out
}

// matchEndSeconds is the clock time of the last event, never less than regulation.
func matchEndSeconds(evs []events.Event) int {
	end := regulationSeconds
	for _, e := range evs {
		if e.Period == periodShootout {
			continue
		}
		if s := e.Minute*60 + e.Second; s > end {
			end = s
		}
	}
	return end
}

// lineupMinutes sums each listed player's position spells. Players without
// positions (unused substitutes) are omitted.
func lineupMinutes(teams []lineups.TeamLineup, matchEnd int) map[int]int {
	out := make(map[int]int)
	for _, team := range teams {
		for _, p := range team.Lineup {
			if len(p.Positions) == 0 {
				continue
			}
			total := 0
			for _, pos := range p.Positions {
				from, ok := timeutil.ParseClock(pos.From)
				if !ok {
					continue
				}
				to := matchEnd
				if parsed, ok := timeutil.ParseClock(pos.To); ok {
					to = parsed
				}
				if to > from {
					total += to - from
				}
			}
			out[p.PlayerID] = total / 60
		}
	}
	return out
}
