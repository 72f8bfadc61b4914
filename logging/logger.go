// Package logging holds the *slog.Logger used by fintab packages.
//
// Library code logs diagnostics at debug level only. Nothing is written
// unless a logger is installed:
//
//	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
package logging

import (
	"log/slog"
	"strings"
	"sync/atomic"
)

// logger holds the package-level logger. A nil value means discard.
var logger atomic.Pointer[slog.Logger]

var discard = slog.New(slog.DiscardHandler)

// SetLogger installs sl as the package-level logger. Pass nil to discard
// all output. SetLogger is safe for concurrent use.
func SetLogger(sl *slog.Logger) {
	logger.Store(sl)
}

// Logger returns the package-level logger, or a discard logger if none was
// set. Logger is safe for concurrent use.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return discard
}

// For returns the package-level logger tagged with a component name.
func For(component string) *slog.Logger {
	return Logger().With(slog.String("component", component))
}

// ParseLevel maps "debug", "info", "warn" and "error" to a slog level.
// Unknown names map to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
