package svmplot

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/benoitkugler/svmplot/chart"
)

// nopHandler is a slog.Handler that silently discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for svmplot and its sub-packages.
// By default, svmplot produces no log output.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by svmplot:
//   - [slog.LevelDebug]: the stages of a rendering (input read, window, contour levels)
//   - [slog.LevelInfo]: the written output file
//   - [slog.LevelWarn]: recoverable problems with the input (degenerate or
//     out of range boundary, unknown color map)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	chart.SetLogger(l)
}

// Logger returns the current logger used by svmplot.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
