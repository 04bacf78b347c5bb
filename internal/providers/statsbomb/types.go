package statsbomb

import "encoding/json"

// Raw shapes of the open-data JSON files. Only fields the service reads are declared.

type competitionResponse struct {
	CompetitionID            int    `json:"competition_id"`
	SeasonID                 int    `json:"season_id"`
	CountryName              string `json:"country_name"`
	CompetitionName          string `json:"competition_name"`
	CompetitionGender        string `json:"competition_gender"`
	CompetitionYouth         bool   `json:"competition_youth"`
	CompetitionInternational bool   `json:"competition_international"`
	SeasonName               string `json:"season_name"`
	MatchUpdated             string `json:"match_updated"`
	MatchAvailable           string `json:"match_available"`
}

type namedRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type managerResponse struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Nickname *string `json:"nickname"`
}

type matchResponse struct {
	MatchID     int    `json:"match_id"`
	MatchDate   string `json:"match_date"`
	KickOff     string `json:"kick_off"`
	Competition struct {
		CompetitionID   int    `json:"competition_id"`
		CompetitionName string `json:"competition_name"`
	} `json:"competition"`
	Season struct {
		SeasonID   int    `json:"season_id"`
		SeasonName string `json:"season_name"`
	} `json:"season"`
	HomeTeam struct {
		ID       int               `json:"home_team_id"`
		Name     string            `json:"home_team_name"`
		Managers []managerResponse `json:"managers"`
	} `json:"home_team"`
	AwayTeam struct {
		ID       int               `json:"away_team_id"`
		Name     string            `json:"away_team_name"`
		Managers []managerResponse `json:"managers"`
	} `json:"away_team"`
	HomeScore        *int      `json:"home_score"`
	AwayScore        *int      `json:"away_score"`
	MatchStatus      string    `json:"match_status"`
	LastUpdated      string    `json:"last_updated"`
	MatchWeek        int       `json:"match_week"`
	CompetitionStage *namedRef `json:"competition_stage"`
	Stadium          *namedRef `json:"stadium"`
	Referee          *namedRef `json:"referee"`
}

type eventResponse struct {
	ID             string          `json:"id"`
	Index          int             `json:"index"`
	Period         int             `json:"period"`
	Timestamp      string          `json:"timestamp"`
	Minute         int             `json:"minute"`
	Second         int             `json:"second"`
	Type           *namedRef       `json:"type"`
	PossessionTeam *namedRef       `json:"possession_team"`
	PlayPattern    *namedRef       `json:"play_pattern"`
	Team           *namedRef       `json:"team"`
	Player         *namedRef       `json:"player"`
	Position       *namedRef       `json:"position"`
	Location       []float64       `json:"location"`
	Shot           json.RawMessage `json:"shot"`
	Pass           json.RawMessage `json:"pass"`
	Carry          json.RawMessage `json:"carry"`
	Duel           json.RawMessage `json:"duel"`
	Tactics        json.RawMessage `json:"tactics"`
	Goalkeeper     json.RawMessage `json:"goalkeeper"`
	FoulCommitted  json.RawMessage `json:"foul_committed"`
	FoulWon        json.RawMessage `json:"foul_won"`
	BallReceipt    json.RawMessage `json:"ball_receipt"`
	BallRecovery   json.RawMessage `json:"ball_recovery"`
	Interception   json.RawMessage `json:"interception"`
	Clearance      json.RawMessage `json:"clearance"`
	Dribble        json.RawMessage `json:"dribble"`
	Block          json.RawMessage `json:"block"`
	Miscontrol     json.RawMessage `json:"miscontrol"`
	Dispossessed   json.RawMessage `json:"dispossessed"`
	BadBehaviour   json.RawMessage `json:"bad_behaviour"`
	Substitution   json.RawMessage `json:"substitution"`
}

type lineupResponse struct {
	TeamID   int                    `json:"team_id"`
	TeamName string                 `json:"team_name"`
	Lineup   []lineupPlayerResponse `json:"lineup"`
}

type lineupPlayerResponse struct {
	PlayerID       int       `json:"player_id"`
	PlayerName     string    `json:"player_name"`
	PlayerNickname *string   `json:"player_nickname"`
	JerseyNumber   int       `json:"jersey_number"`
	Country        *namedRef `json:"country"`
	Cards          []struct {
		Time     string `json:"time"`
		CardType string `json:"card_type"`
		Reason   string `json:"reason"`
		Period   int    `json:"period"`
	} `json:"cards"`
	Positions []struct {
		PositionID  int     `json:"position_id"`
		Position    string  `json:"position"`
		From        string  `json:"from"`
		To          *string `json:"to"`
		FromPeriod  int     `json:"from_period"`
		ToPeriod    *int    `json:"to_period"`
		StartReason string  `json:"start_reason"`
		EndReason   string  `json:"end_reason"`
	} `json:"positions"`
}
