package distance

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with distance-specific helpers so every kernel
// logs the same field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler to stderr at Info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that writes JSON to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	}))
}

// LogCompute logs the outcome of one kernel call.
// Success is logged at Debug; rejections and cancellations at Warn.
func (l *Logger) LogCompute(ctx context.Context, metric Metric, rows, dim, workers int, err error) {
	if err != nil {
		l.WarnContext(ctx, "distance computation rejected",
			"metric", metric.String(),
			"rows", rows,
			"dim", dim,
			"error", err,
		)

		return
	}
	l.DebugContext(ctx, "distance computation completed",
		"metric", metric.String(),
		"rows", rows,
		"dim", dim,
		"workers", workers,
	)
}
