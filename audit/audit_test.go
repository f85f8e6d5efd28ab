package audit

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	logger.Log(Event{
		Time:      time.Now(),
		Operation: "seal",
		Outcome:   "ok",
	})

	out := buf.String()
	if !strings.Contains(out, "operation=seal") {
		t.Errorf("missing operation attribute: %s", out)
	}
	if !strings.Contains(out, "outcome=ok") {
		t.Errorf("missing outcome attribute: %s", out)
	}
}

func TestSlogLoggerErrorOutcome(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	logger.Log(Event{
		Time:      time.Now(),
		Operation: "open",
		Outcome:   "error",
		Detail:    "signature mismatch",
	})

	out := buf.String()
	if !strings.Contains(out, "level=WARN") {
		t.Errorf("error outcome should log at warn: %s", out)
	}
	if !strings.Contains(out, "signature mismatch") {
		t.Errorf("missing detail: %s", out)
	}
}
