package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const envConfigDir = "TRACKER_CONFIG_DIR"

// Config holds user preferences shared by the CLI and the TUI.
type Config struct {
	// Backend selects the blob store: sqlite|json|memory. Empty autodetects.
	Backend string `json:"backend,omitempty"`

	// HistoryLimit caps the undo stack per chart. 0 means unlimited.
	HistoryLimit int `json:"historyLimit,omitempty"`

	// Glyphs selects the TUI glyph set ("unicode", "ascii").
	Glyphs string `json:"glyphs,omitempty"`

	// SelectionMode is the initial selection mode ("single", "multi").
	SelectionMode string `json:"selectionMode,omitempty"`

	// ExportFormat is the default snapshot format ("png", "jpeg", "txt").
	ExportFormat string `json:"exportFormat,omitempty"`

	// LogLevel is one of debug|info|warn|error.
	LogLevel string `json:"logLevel,omitempty"`
}

// ConfigDir is $TRACKER_CONFIG_DIR or ~/.tracker.
func ConfigDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv(envConfigDir)); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".tracker"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadConfig reads the config file; a missing file is an empty config.
func LoadConfig() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return cfg, nil
	case err != nil:
		return nil, err
	}
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.HistoryLimit < 0 {
		cfg.HistoryLimit = 0
	}
	return cfg, nil
}

// SaveConfig writes the config, keeping the previous file as config.json.bak.
func SaveConfig(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if prev, err := os.ReadFile(path); err == nil && len(prev) > 0 {
		if err := writeFileAtomic(path+".bak", prev, 0o644); err != nil {
			return err
		}
	}
	return writeFileAtomic(path, b, 0o600)
}
