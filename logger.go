package profilestore

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with profilestore-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithEmail adds an email field to the logger (useful for tagging operations).
func (l *Logger) WithEmail(email string) *Logger {
	return &Logger{
		Logger: l.Logger.With("email", email),
	}
}

// LogOperation logs the outcome of a profile operation.
func (l *Logger) LogOperation(ctx context.Context, op, email string, err error) {
	if err != nil {
		l.ErrorContext(ctx, op+" failed",
			"email", email,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, op+" succeeded",
		"email", email,
	)
}
