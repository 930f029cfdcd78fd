package logging

import (
	"io"
	"log/slog"
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Setup configures debug logging. When debug is false all debug records are
// discarded.
func Setup(debug bool, w io.Writer) {
	if !debug || w == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Debug logs a debug record with key/value attributes.
func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}
