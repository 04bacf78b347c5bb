package lineups

// TeamLineup lists the players a team named for a match.
type TeamLineup struct {
	TeamID   int      `json:"team_id"`
	TeamName string   `json:"team_name"`
	Lineup   []Player `json:"lineup"`
}

// Player is one lineup entry.
type Player struct {
	PlayerID       int        `json:"player_id"`
	PlayerName     string     `json:"player_name"`
	PlayerNickname string     `json:"player_nickname"`
	JerseyNumber   int        `json:"jersey_number"`
	Country        string     `json:"country"`
	Cards          []Card     `json:"cards"`
	Positions      []Position `json:"positions"`
}

// Card is a booking shown to a player.
type Card struct {
	Time     string `json:"time"`
	CardType string `json:"card_type"`
	Reason   string `json:"reason"`
	Period   int    `json:"period"`
}

// Position is a spell the player spent in one position. From/To are "MM:SS"
// match clock values; an empty To means the player finished the match there.
type Position struct {
	PositionID  int    `json:"position_id"`
	Position    string `json:"position"`
	From        string `json:"from"`
	To          string `json:"to"`
	FromPeriod  int    `json:"from_period"`
	ToPeriod    int    `json:"to_period"`
	StartReason string `json:"start_reason"`
	EndReason   string `json:"end_reason"`
}

// ByTeam indexes lineups by team name, the shape served to clients.
func ByTeam(items []TeamLineup) map[string][]Player {
	out := make(map[string][]Player, len(items))
	for _, l := range items {
		players := l.Lineup
		if players == nil {
			players = []Player{}
		}
		out[l.TeamName] = players
	}
	return out
}
