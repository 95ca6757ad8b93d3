package blurview

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the package-wide logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the default logger for blurview and its sub-packages.
// By default, blurview produces no log output.
//
// Compositors created afterwards pick up the new logger unless they were
// given one explicitly with [WithLogger]. Pass nil to restore the silent
// default.
//
// Log levels used by blurview:
//   - [slog.LevelDebug]: skipped draws (no overlap, painted above), refresh throttling
//   - [slog.LevelInfo]: snapshot buffer allocation and release
//   - [slog.LevelWarn]: snapshot render faults, failed allocations
//
// Example:
//
//	blurview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package-wide logger.
// Sub-packages (blur/, viewtree/) call this to share the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// loggerSetter is implemented by primitives that accept a logger.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

// propagateLogger passes the logger to a blur primitive if it implements
// loggerSetter.
func propagateLogger(p Primitive, l *slog.Logger) {
	if ls, ok := p.(loggerSetter); ok {
		ls.SetLogger(l)
	}
}
