package benchsample

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with benchsample-specific context.
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

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
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

// WithFile adds the collection name to the logger.
func (l *Logger) WithFile(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("file", name),
	}
}

// LogSample logs the outcome of sampling one collection.
func (l *Logger) LogSample(ctx context.Context, name string, records, answers int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sampling failed",
			"file", name,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "collection sampled",
		"file", name,
		"records", records,
		"answers", answers,
	)
}
