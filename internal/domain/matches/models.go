package matches

import (
	"time"

	"football-stats-service/internal/timeutil"
)

// Match is the flattened match record served to clients.
type Match struct {
	MatchID          int      `json:"match_id"`
	MatchDate        string   `json:"match_date"`
	KickOff          string   `json:"kick_off"`
	CompetitionID    int      `json:"competition_id"`
	Competition      string   `json:"competition"`
	SeasonID         int      `json:"season_id"`
	Season           string   `json:"season"`
	HomeTeamID       int      `json:"home_team_id"`
	HomeTeam         string   `json:"home_team"`
	AwayTeamID       int      `json:"away_team_id"`
	AwayTeam         string   `json:"away_team"`
	HomeScore        *int     `json:"home_score"`
	AwayScore        *int     `json:"away_score"`
	MatchStatus      string   `json:"match_status"`
	MatchWeek        int      `json:"match_week"`
	CompetitionStage string   `json:"competition_stage"`
	Stadium          string   `json:"stadium"`
	Referee          string   `json:"referee"`
	HomeManagers     []string `json:"home_managers"`
	AwayManagers     []string `json:"away_managers"`
	LastUpdated      string   `json:"last_updated,omitempty"`
}

// Date parses MatchDate; the zero time is returned when it is missing or malformed.
func (m Match) Date() time.Time {
	t, err := timeutil.ParseDate(m.MatchDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// After filters matches played strictly after the cutoff, keeping order.
func After(items []Match, cutoff time.Time) []Match {
	out := make([]Match, 0, len(items))
	for _, m := range items {
		if m.Date().After(cutoff) {
			out = append(out, m)
		}
	}
	return out
}
