package matches

import (
	"testing"
	"time"
)

func TestDateParsesMatchDate(t *testing.T) {
	m := Match{MatchDate: "2018-07-15"}
	want := time.Date(2018, 7, 15, 0, 0, 0, 0, time.UTC)
	if !m.Date().Equal(want) {
		t.Fatalf("expected %s, got %s", want, m.Date())
	}
}

func TestDateMalformedIsZero(t *testing.T) {
	if !(Match{MatchDate: "15/07/2018"}).Date().IsZero() {
		t.Fatal("expected zero time for malformed date")
	}
}

func TestAfterKeepsLaterMatches(t *testing.T) {
	items := []Match{
		{MatchID: 1, MatchDate: "2022-12-18"},
		{MatchID: 2, MatchDate: "2022-11-20"},
		{MatchID: 3, MatchDate: ""},
	}
	got := After(items, time.Date(2022, 12, 1, 0, 0, 0, 0, time.UTC))
	if len(got) != 1 || got[0].MatchID != 1 {
		t.Fatalf("expected only match 1, got %+v", got)
	}
}
