// Package common provides shared process-level infrastructure.
package common

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// SetupLogger configures the global logger. Level is one of debug, info,
// warn, or error; format is console or json.
func SetupLogger(level, format string) error {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}

	opts := &slog.HandlerOptions{
		Level: slogLevel,
	}

	var handler slog.Handler
	switch format {
	case "console":
		handler = slog.NewTextHandler(os.Stderr, opts)
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		return fmt.Errorf("invalid log format: %s", format)
	}

	slog.SetDefault(slog.New(handler))

	return nil
}

// SilenceLogger discards all log output. Full-screen terminal programs call
// this so stray log lines cannot corrupt the display.
func SilenceLogger() {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, opts)))
}
