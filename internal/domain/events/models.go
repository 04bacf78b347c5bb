package events

import "encoding/json"

// Event type names as published in the open dataset.
const (
	TypeShot          = "Shot"
	TypePass          = "Pass"
	TypeDuel          = "Duel"
	TypeInterception  = "Interception"
	TypeFoulCommitted = "Foul Committed"
	TypeBadBehaviour  = "Bad Behaviour"
	TypeOwnGoalFor    = "Own Goal For"
	TypeSubstitution  = "Substitution"
)

// Event is the shaped event record. Detail objects are passed through as published
// and default to {} when the event carries none.
type Event struct {
	ID             string    `json:"id"`
	Index          int       `json:"index"`
	Period         int       `json:"period"`
	Timestamp      string    `json:"timestamp"`
	Type           string    `json:"type"`
	Team           string    `json:"team"`
	TeamID         int       `json:"team_id"`
	Player         string    `json:"player"`
	PlayerID       int       `json:"player_id"`
	Position       string    `json:"position"`
	Minute         int       `json:"minute"`
	Second         int       `json:"second"`
	Location       []float64 `json:"location"`
	PossessionTeam string    `json:"possession_team"`
	PlayPattern    string    `json:"play_pattern"`

	Shot          Detail `json:"shot"`
	Pass          Detail `json:"pass"`
	Carry         Detail `json:"carry"`
	Duel          Detail `json:"duel"`
	Tactics       Detail `json:"tactics"`
	Goalkeeper    Detail `json:"goalkeeper"`
	FoulCommitted Detail `json:"foul_committed"`
	FoulWon       Detail `json:"foul_won"`
	BallReceipt   Detail `json:"ball_receipt"`
	BallRecovery  Detail `json:"ball_recovery"`
	Interception  Detail `json:"interception"`
	Clearance     Detail `json:"clearance"`
	Dribble       Detail `json:"dribble"`
	Block         Detail `json:"block"`
	Miscontrol    Detail `json:"miscontrol"`
	Dispossessed  Detail `json:"dispossessed"`
	BadBehaviour  Detail `json:"bad_behaviour"`
	Substitution  Detail `json:"substitution"`
}

// Detail is a raw event detail object.
type Detail json.RawMessage

// MarshalJSON emits {} for an absent detail.
func (d Detail) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("{}"), nil
	}
	return []byte(d), nil
}

// UnmarshalJSON keeps the raw bytes; null becomes an absent detail.
func (d *Detail) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = nil
		return nil
	}
	*d = append((*d)[:0], data...)
	return nil
}

// Decode unmarshals the detail into v. An absent detail leaves v untouched.
func (d Detail) Decode(v any) error {
	if len(d) == 0 {
		return nil
	}
	return json.Unmarshal(d, v)
}

// Named is the {id, name} pair the dataset uses for enumerations.
type Named struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ShotInfo is the subset of a shot detail used for aggregation.
type ShotInfo struct {
	StatsbombXG float64 `json:"statsbomb_xg"`
	Outcome     Named   `json:"outcome"`
	Type        Named   `json:"type"`
	KeyPassID   string  `json:"key_pass_id"`
}

// PassInfo is the subset of a pass detail used for aggregation.
type PassInfo struct {
	Outcome        Named  `json:"outcome"`
	Type           Named  `json:"type"`
	GoalAssist     bool   `json:"goal_assist"`
	ShotAssist     bool   `json:"shot_assist"`
	AssistedShotID string `json:"assisted_shot_id"`
}

// DuelInfo is the subset of a duel detail used for aggregation.
type DuelInfo struct {
	Type    Named `json:"type"`
	Outcome Named `json:"outcome"`
}

// CardInfo reads the card carried by foul and bad-behaviour details.
type CardInfo struct {
	Card Named `json:"card"`
}

// SubstitutionInfo reads the replacement player of a substitution.
type SubstitutionInfo struct {
	Replacement Named `json:"replacement"`
}

// ShotInfo decodes the shot detail; malformed details yield the zero value.
func (e Event) ShotInfo() ShotInfo {
	var info ShotInfo
	_ = e.Shot.Decode(&info)
	return info
}

// PassInfo decodes the pass detail.
func (e Event) PassInfo() PassInfo {
	var info PassInfo
	_ = e.Pass.Decode(&info)
	return info
}

// DuelInfo decodes the duel detail.
func (e Event) DuelInfo() DuelInfo {
	var info DuelInfo
	_ = e.Duel.Decode(&info)
	return info
}

// Card returns the card name for fouls and bad behaviour, or "".
func (e Event) Card() string {
	var info CardInfo
	switch e.Type {
	case TypeFoulCommitted:
		_ = e.FoulCommitted.Decode(&info)
	case TypeBadBehaviour:
		_ = e.BadBehaviour.Decode(&info)
	}
	return info.Card.Name
}

// SubstitutionInfo decodes the substitution detail.
func (e Event) SubstitutionInfo() SubstitutionInfo {
	var info SubstitutionInfo
	_ = e.Substitution.Decode(&info)
	return info
}
