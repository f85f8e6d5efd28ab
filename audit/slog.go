package audit

import (
	"context"
	"log/slog"
)

type slogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger adapts a *slog.Logger into an audit Logger. Events log at
// Info on success and Warn on error.
func NewSlogLogger(logger *slog.Logger) Logger {
	return &slogLogger{logger: logger}
}

func (l *slogLogger) Log(e Event) {
	level := slog.LevelInfo
	if e.Outcome != "ok" {
		level = slog.LevelWarn
	}
	l.logger.Log(context.Background(), level, "vault audit",
		slog.String("operation", e.Operation),
		slog.String("outcome", e.Outcome),
		slog.String("detail", e.Detail),
		slog.Time("time", e.Time),
	)
}
