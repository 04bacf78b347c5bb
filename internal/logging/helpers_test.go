package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestHelpersNilLoggerNoPanic(t *testing.T) {
	Info(nil, "info")
	Warn(nil, "warn")
	Debug(nil, "debug")
	Error(nil, "error", errors.New("boom"))
}

func TestErrorAppendsErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	Error(logger, "upstream failed", errors.New("boom"), FieldMatchID, 7)
	out := buf.String()
	if !strings.Contains(out, "error=boom") || !strings.Contains(out, "match_id=7") {
		t.Fatalf("unexpected log output %q", out)
	}
}
