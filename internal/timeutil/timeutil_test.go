package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2022-12-18")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2022-12-18" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
	if _, err := ParseDate("18/12/2022"); err == nil {
		t.Fatalf("expected error for foreign layout")
	}
}

func TestFormatDateUsesLocation(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	value := time.Date(2024, 1, 2, 23, 0, 0, 0, loc)
	if got := FormatDate(value); got != "2024-01-02" {
		t.Fatalf("expected formatted date, got %s", got)
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"45:30", 2730, true},
		{"120:05", 7205, true},
		{" 64:00 ", 3840, true},
		{"", 0, false},
		{"ab:10", 0, false},
		{"10", 0, false},
		{"10:75", 0, false},
		{"-1:00", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseClock(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseClock(%q) = %d,%v want %d,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
