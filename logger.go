package canvas

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false so callers skip
// building the message at all.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func silentLogger() *slog.Logger { return slog.New(discardHandler{}) }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silentLogger())
}

// SetLogger installs the logger used by canvas and its sub-packages.
// Nothing is logged until SetLogger is called; passing nil silences
// logging again. It is safe to call concurrently with drawing.
//
// Levels:
//   - [slog.LevelDebug]: draw calls dropped as no-ops (bad image data,
//     ignored arcs, restore without save)
//   - [slog.LevelWarn]: fallbacks such as an unsupported export format
//
// Example:
//
//	canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silentLogger()
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger. Sub-packages log
// through it so a single call configures the whole module.
func Logger() *slog.Logger {
	return current.Load()
}
