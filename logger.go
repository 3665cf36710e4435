package ggicon

import (
	"log/slog"
	"sync/atomic"
)

// silent discards every record; its Enabled reports false at all levels.
var silent = slog.New(slog.DiscardHandler)

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(silent)
}

// SetLogger routes ggicon's diagnostics to l. Render reports each shaded
// block at [slog.LevelDebug] and WriteIcon each saved file at
// [slog.LevelInfo]. Nil restores the silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	loggerPtr.Store(l)
}

// Logger returns the logger set by SetLogger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
