package wideint

import "github.com/decred/slog"

// log is disabled by default; the package does not log until the caller
// requests it with UseLogger.
var log = slog.Disabled

// UseLogger uses a specified Logger to output package logging info. Only the
// division routines log, at debug and trace level.
func UseLogger(logger slog.Logger) {
	log = logger
}
