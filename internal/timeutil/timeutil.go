package timeutil

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the match date format used by the dataset (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseClock reads an "MM:SS" match clock into elapsed seconds. Minutes may
// exceed 59 (extra time runs to 120:00 and beyond).
func ParseClock(v string) (int, bool) {
	mm, ss, ok := strings.Cut(strings.TrimSpace(v), ":")
	if !ok {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 {
		return 0, false
	}
	s, err := strconv.Atoi(ss)
	if err != nil || s < 0 || s > 59 {
		return 0, false
	}
	return m*60 + s, true
}
