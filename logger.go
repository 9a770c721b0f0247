package planck

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. It reports itself disabled so SampleCurve
// and the plot package do not build attributes nobody reads.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var (
	silent = slog.New(discard{})
	active atomic.Pointer[slog.Logger]
)

func init() {
	active.Store(silent)
}

// SetLogger routes planck and plot diagnostics to l. Passing nil silences
// them again, which is also the initial state.
//
// What gets logged:
//   - debug: one record per sampled curve and per rebuilt plot frame, with
//     temperature, sample count, peak radiance and star colour; frames
//     superseded by a newer temperature are noted and dropped
//   - info: the font used for labels
//   - warn: a font that failed to load, leaving the plot without labels
//
// For example, to trace every redraw while dragging the slider:
//
//	planck.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//	    &slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	active.Store(l)
}

// Logger returns the logger set by SetLogger. It is safe to call from any
// goroutine.
func Logger() *slog.Logger {
	return active.Load()
}
