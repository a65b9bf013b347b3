// Package logging sets up the application logger. The TUI owns the
// terminal, so logs go to a file instead of stderr.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"

	"chime/internal/config"
)

// Setup opens the log file and returns a structured logger backed by
// it, plus a close function. Logging failures degrade to a discarded
// logger rather than preventing startup.
func Setup(cfg config.LogConfig) (*slog.Logger, func()) {
	path := cfg.Path
	if path == "" {
		path = filepath.Join(xdg.StateHome, "chime", "chime.log")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return discard(), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return discard(), func() {}
	}

	level := log.InfoLevel
	if cfg.Level == "debug" {
		level = log.DebugLevel
	}

	handler := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "chime",
		Level:           level,
	})

	return slog.New(handler), func() { f.Close() }
}

func discard() *slog.Logger {
	return slog.New(log.New(io.Discard))
}
