// SPDX-License-Identifier: MIT

package vine

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with the vine's log events and field names.
type Logger struct {
	*slog.Logger
}

// NewLogger returns a Logger on handler. A nil handler logs text to stderr
// at Info.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(1000)}))}
}

// WithDimension tags the logger with the number of variables.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{Logger: l.Logger.With("dimension", dim)}
}

// LogLevel logs a finished tree at Info when trace is set, else at Debug.
func (l *Logger) LogLevel(ctx context.Context, level, vertices, candidates, selected int, d time.Duration, trace bool) {
	lvl := slog.LevelDebug
	if trace {
		lvl = slog.LevelInfo
	}
	l.Log(ctx, lvl, "vine tree selected",
		"level", level,
		"vertices", vertices,
		"candidates", candidates,
		"edges", selected,
		"duration", d,
	)
}

// LogWarning logs a numeric warning.
func (l *Logger) LogWarning(ctx context.Context, w NumericWarning) {
	l.WarnContext(ctx, "numeric warning",
		"level", w.Level,
		"from", w.Edge[0],
		"to", w.Edge[1],
		"reason", w.Reason,
	)
}

// LogSelect logs the outcome of a structure selection.
func (l *Logger) LogSelect(ctx context.Context, n int, d time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "vine selection failed",
			"observations", n,
			"duration", d,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "vine selection completed",
		"observations", n,
		"duration", d,
	)
}
