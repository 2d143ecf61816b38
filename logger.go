package giftstore

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with giftstore-specific context.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, nil))
}

// WithTable adds a table name field to the logger.
func (l *Logger) WithTable(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("table", name),
	}
}

// LogScan logs a full-table scan.
func (l *Logger) LogScan(ctx context.Context, items int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "scan failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "scan completed",
			"items", items,
		)
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(ctx context.Context, key string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "insert failed",
			"key", key,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "insert completed",
			"key", key,
		)
	}
}

// LogSeed logs the outcome of a SeedIfEmpty call.
func (l *Logger) LogSeed(ctx context.Context, report *SeedReport, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "seeding failed",
			"source", report.Source,
			"total", report.Total,
			"inserted", report.InsertedCount(),
			"error", err,
		)
	case report.Skipped:
		l.InfoContext(ctx, "table not empty, seeding skipped",
			"source", report.Source,
			"existing", report.Existing,
		)
	default:
		l.InfoContext(ctx, "seed dataset imported",
			"source", report.Source,
			"inserted", report.InsertedCount(),
		)
	}
}
