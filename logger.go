package swr

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/swr-go/swr/internal/parallel"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so the caller skips message formatting entirely,
// making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so SetLogger
// can be called concurrently with logging from any worker goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by swr and its internal packages.
// By default, swr produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by swr:
//   - [slog.LevelDebug]: tile cache overflow, worker pool shutdown
//   - [slog.LevelWarn]: varying count clamped to MaxVaryings
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	parallel.SetLogger(l)
}

// Logger returns the current logger used by swr.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
