package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init configures the process-wide slog logger. Output goes to w
// (stderr in the CLI, so the match stream on stdout stays clean).
// MOTIFSCAN_JSON_LOG=1/true/json selects the JSON handler, text
// otherwise; MOTIFSCAN_LOG_LEVEL picks the level.
func Init(service string, w io.Writer) *slog.Logger {
	mode := strings.ToLower(os.Getenv("MOTIFSCAN_JSON_LOG"))
	opts := &slog.HandlerOptions{AddSource: false, Level: levelFromEnv()}
	var handler slog.Handler
	if mode == "1" || mode == "true" || mode == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(handler).With("service", service)
	slog.SetDefault(logger)
	return logger
}

func levelFromEnv() slog.Leveler {
	switch strings.ToLower(os.Getenv("MOTIFSCAN_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info", "":
		return slog.LevelInfo
	default:
		return slog.LevelInfo
	}
}
