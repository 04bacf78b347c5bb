package config

import "testing"

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestNonNegativeIntEnvOrDefaultAcceptsZero(t *testing.T) {
	t.Setenv("INT_TEST", "0")
	if got := nonNegativeIntEnvOrDefault("INT_TEST", 3); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	t.Setenv("INT_TEST", "-1")
	if got := nonNegativeIntEnvOrDefault("INT_TEST", 3); got != 3 {
		t.Fatalf("expected default for negative, got %d", got)
	}
}

func TestIntEnvOrDefaultRejectsNonPositive(t *testing.T) {
	t.Setenv("INT_TEST", "0")
	if got := intEnvOrDefault("INT_TEST", 4); got != 4 {
		t.Fatalf("expected default for zero, got %d", got)
	}
	t.Setenv("INT_TEST", " 12 ")
	if got := intEnvOrDefault("INT_TEST", 4); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
}

func TestListEnvOrDefault(t *testing.T) {
	t.Setenv("LIST_TEST", " , ")
	if got := listEnvOrDefault("LIST_TEST", []string{"x"}); len(got) != 1 || got[0] != "x" {
		t.Fatalf("expected default for blank entries, got %v", got)
	}
	t.Setenv("LIST_TEST", "a, b,,c")
	got := listEnvOrDefault("LIST_TEST", nil)
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Fatalf("unexpected list %v", got)
	}
}
