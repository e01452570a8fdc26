// Package logx wraps log/slog behind a small typed surface so call
// sites never import slog handlers directly, mirroring the way the
// rest of this module hides a concrete implementation behind a
// narrow interface.
package logx

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger is the narrow logging surface used throughout this module.
// It deliberately exposes only the level methods call sites need,
// leaving handler configuration to New and Nop.
type Logger struct {
	inner *slog.Logger
}

// New returns a Logger backed by a JSON handler writing to w at the
// given minimum level. Passing a nil w defaults to os.Stderr.
func New(w io.Writer, level slog.Level) Logger {
	if w == nil {
		w = os.Stderr
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return Logger{inner: slog.New(h)}
}

// Nop returns a Logger that discards everything, for use in tests and
// in any code path where the caller has not configured logging.
func Nop() Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1})
	return Logger{inner: slog.New(h)}
}

// With returns a Logger that annotates every record with the given
// key-value pairs, the same contract as slog.Logger.With.
func (l Logger) With(args ...any) Logger {
	return Logger{inner: l.inner.With(args...)}
}

func (l Logger) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l Logger) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l Logger) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l Logger) Error(msg string, args ...any) { l.inner.Error(msg, args...) }

// DebugContext forwards to the underlying slog.Logger, for call sites
// that already carry a context.Context.
func (l Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.inner.DebugContext(ctx, msg, args...)
}
