package stats

// PlayerStats aggregates one player's contribution to a match.
type PlayerStats struct {
	Name            string  `json:"name"`
	PlayerID        int     `json:"player_id"`
	Team            string  `json:"team"`
	MinutesPlayed   int     `json:"minutes_played"`
	Goals           int     `json:"goals"`
	Assists         int     `json:"assists"`
	Shots           int     `json:"shots"`
	ShotsOnTarget   int     `json:"shots_on_target"`
	PassesCompleted int     `json:"passes_completed"`
	PassesAttempted int     `json:"passes_attempted"`
	Tackles         int     `json:"tackles"`
	Interceptions   int     `json:"interceptions"`
	DuelsWon        int     `json:"duels_won"`
	DuelsLost       int     `json:"duels_lost"`
	YellowCards     int     `json:"yellow_cards"`
	RedCards        int     `json:"red_cards"`
	XG              float64 `json:"xg"`
	XA              float64 `json:"xa"`
}

// TeamStats aggregates one team's match totals.
type TeamStats struct {
	Team            string  `json:"team"`
	Goals           int     `json:"goals"`
	Shots           int     `json:"shots"`
	ShotsOnTarget   int     `json:"shots_on_target"`
	PassesCompleted int     `json:"passes_completed"`
	PassesAttempted int     `json:"passes_attempted"`
	Tackles         int     `json:"tackles"`
	Interceptions   int     `json:"interceptions"`
	DuelsWon        int     `json:"duels_won"`
	DuelsLost       int     `json:"duels_lost"`
	Corners         int     `json:"corners"`
	Fouls           int     `json:"fouls"`
	YellowCards     int     `json:"yellow_cards"`
	RedCards        int     `json:"red_cards"`
	XG              float64 `json:"xg"`
}

