package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cours-de-latin/minpairs/internal/config"
)

// NewLogger builds the process logger on stderr and installs it as the
// slog default, so the library packages that log through slog.Default
// share its level and format.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLoggerWithWriter(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// newLoggerWithWriter picks a JSON handler for "json" and a text handler,
// with call sites, for anything else.
func newLoggerWithWriter(w io.Writer, cfg config.LogConfig) *slog.Logger {
	format := strings.ToLower(strings.TrimSpace(cfg.Format))
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts))
	default:
		opts.AddSource = true
		return slog.New(slog.NewTextHandler(w, opts))
	}
}

// parseLevel accepts the slog level names in any case. Anything it cannot
// read, the empty string included, means info.
func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
