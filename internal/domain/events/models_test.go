package events

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDetailMarshalsAbsentAsEmptyObject(t *testing.T) {
	data, err := json.Marshal(Event{ID: "e1", Type: TypePass})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"shot":{}`) {
		t.Fatalf("expected empty shot object, got %s", data)
	}
}

func TestDetailPassesThroughRawObject(t *testing.T) {
	raw := `{"id":"e1","type":"Shot","shot":{"statsbomb_xg":0.42,"outcome":{"id":97,"name":"Goal"},"technique":{"name":"Volley"}}}`
	var e Event
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(out), `"technique":{"name":"Volley"}`) {
		t.Fatalf("expected raw detail fields preserved, got %s", out)
	}
	info := e.ShotInfo()
	if info.StatsbombXG != 0.42 || info.Outcome.Name != "Goal" {
		t.Fatalf("unexpected shot info %+v", info)
	}
}

func TestDetailNullIsAbsent(t *testing.T) {
	var e Event
	if err := json.Unmarshal([]byte(`{"pass":null}`), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(e.Pass) != 0 {
		t.Fatalf("expected absent pass detail, got %s", e.Pass)
	}
}

func TestInfoReadersDefaultOnMalformedDetail(t *testing.T) {
	e := Event{Type: TypeDuel, Duel: Detail(`"not-an-object"`)}
	if got := e.DuelInfo(); got.Outcome.Name != "" {
		t.Fatalf("expected zero duel info, got %+v", got)
	}
}

func TestCardReadsFoulAndBadBehaviour(t *testing.T) {
	foul := Event{Type: TypeFoulCommitted, FoulCommitted: Detail(`{"card":{"id":7,"name":"Yellow Card"}}`)}
	if foul.Card() != "Yellow Card" {
		t.Fatalf("expected yellow card, got %q", foul.Card())
	}
	bb := Event{Type: TypeBadBehaviour, BadBehaviour: Detail(`{"card":{"id":5,"name":"Red Card"}}`)}
	if bb.Card() != "Red Card" {
		t.Fatalf("expected red card, got %q", bb.Card())
	}
	pass := Event{Type: TypePass, FoulCommitted: Detail(`{"card":{"name":"Red Card"}}`)}
	if pass.Card() != "" {
		t.Fatalf("expected no card on pass, got %q", pass.Card())
	}
}
