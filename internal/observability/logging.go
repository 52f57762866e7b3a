package observability

import (
	"log/slog"
	"os"

	"github.com/capwatch/alertmap/internal/config"
)

// NewLogger builds the process logger from config. Diagnostics go to stderr
// so stdout stays clean for tooling; format is "json" or "text", level one of
// debug/info/warn/error (unrecognized values fall back to info).
func NewLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
