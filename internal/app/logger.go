package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ohana-solucoes/padroniza-backend/internal/config"
)

// NewLogger builds the process-wide *slog.Logger from LogConfig and installs
// it as the slog default.
//
// Format "json" emits structured records for log aggregation; "text" emits
// human-readable output with source locations for local runs. Level is one
// of debug, info, warn, error (case-insensitive), defaulting to info.
// Output is always os.Stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(os.Stderr, cfg))
	slog.SetDefault(logger)
	return logger
}

// newHandler builds the slog handler for cfg writing to w.
func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
