package stereo

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/stereo/backend/native"
	"github.com/gogpu/stereo/hmd"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for stereo and its sub-packages.
// By default nothing is logged. Pass nil to restore silent behavior.
//
// Log levels used by stereo:
//   - [slog.LevelDebug]: capability probing, lazy GPU resource creation
//   - [slog.LevelInfo]: HMD session start, display mode demotion
//   - [slog.LevelWarn]: HMD initialization, submission and pose failures
//
// Example:
//
//	stereo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	hmd.SetLogger(l)
	native.SetLogger(l)
}

// Logger returns the current logger used by stereo.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
