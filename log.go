package render

import (
	"log/slog"
	"os"
)

// logLevel controls the level of the package logger. Default is
// LevelInfo, which hides per-resource Debug messages.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for devices that use the
// package logger.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
