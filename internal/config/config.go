// Package config loads user settings from TOML files. Every field has
// a working default, so running with no config file at all is fine.
package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	LibraryRoot     string      `koanf:"library_root"`      // folder scanned for tracks and playlists
	Volume          int         `koanf:"volume"`            // initial volume percentage (0-100)
	SeekStepSeconds int         `koanf:"seek_step_seconds"` // arrow-key seek increment
	Theme           ThemeConfig `koanf:"theme"`
	Log             LogConfig   `koanf:"log"`
}

// ThemeConfig overrides the default palette. Empty fields keep the
// built-in colors.
type ThemeConfig struct {
	Background string `koanf:"background"`
	Surface    string `koanf:"surface"`
	Accent     string `koanf:"accent"`
	Highlight  string `koanf:"highlight"`
	Foreground string `koanf:"foreground"`
	Muted      string `koanf:"muted"`
}

// LogConfig controls the log file. An empty path puts the log under
// the XDG state directory.
type LogConfig struct {
	Level string `koanf:"level"` // "debug" or "info" (default)
	Path  string `koanf:"path"`
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		Volume:          100,
		SeekStepSeconds: 5,
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.LibraryRoot == "" {
		cfg.LibraryRoot = defaultLibraryRoot()
	}
	cfg.LibraryRoot = expandPath(cfg.LibraryRoot)
	cfg.Log.Path = expandPath(cfg.Log.Path)

	if cfg.Volume < 0 {
		cfg.Volume = 0
	}
	if cfg.Volume > 100 {
		cfg.Volume = 100
	}
	if cfg.SeekStepSeconds <= 0 {
		cfg.SeekStepSeconds = 5
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/chime/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "chime", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

// defaultLibraryRoot is the folder the original player scanned:
// a YtSongs directory inside the user's Music folder.
func defaultLibraryRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Music", "YtSongs")
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
