package crc32c

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with crc32c-specific context.
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
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
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

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithName adds a name field to the logger (useful for tagging inputs).
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("name", name),
	}
}

// LogImplementation logs the kernel selected for this process.
func (l *Logger) LogImplementation(ctx context.Context, info Info) {
	l.DebugContext(ctx, "crc32c implementation selected",
		"impl", info.Impl,
		"hardware", info.Hardware,
		"overridden", info.Overridden,
	)
}

// LogChecksum logs the outcome of checksumming one input.
// Tag the logger with WithName to identify the input.
func (l *Logger) LogChecksum(ctx context.Context, size int64, crc uint32, err error) {
	if err != nil {
		l.ErrorContext(ctx, "checksum failed",
			"bytes", size,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "checksum completed",
			"bytes", size,
			"crc", crc,
		)
	}
}

// LogStats logs a metrics snapshot.
func (l *Logger) LogStats(ctx context.Context, stats BasicMetricsStats) {
	l.DebugContext(ctx, "checksum stats",
		"inputs", stats.ChecksumCount,
		"bytes", stats.ChecksumBytes,
		"avg_nanos", stats.ChecksumAvgNanos,
		"mismatches", stats.MismatchCount,
	)
}
