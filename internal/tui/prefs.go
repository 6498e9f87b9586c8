package tui

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/aicred/aicred/internal/config"
)

// Prefs holds user preferences for the TUI that persist across sessions.
type Prefs struct {
	// HideSecrets controls whether credential values are redacted in the
	// display. Defaults to true (prevents shoulder surfing).
	HideSecrets bool `json:"hide_secrets"`
	// ContextLines is the number of source lines shown on each side of a
	// finding in the detail pane.
	ContextLines int `json:"context_lines"`
}

// DefaultPrefs returns the default preferences.
func DefaultPrefs() Prefs {
	return Prefs{
		HideSecrets:  true,
		ContextLines: 3,
	}
}

// prefsPath returns the path to the TUI preferences file.
func prefsPath() (string, error) {
	dir := config.Dir()
	if dir == "" {
		return "", errors.New("no config dir")
	}
	return filepath.Join(dir, "tui.json"), nil
}

// LoadPrefs loads user preferences from disk, returning defaults if not found.
func LoadPrefs() Prefs {
	prefs := DefaultPrefs()

	path, err := prefsPath()
	if err != nil {
		return prefs
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return prefs // File doesn't exist yet, use defaults
	}

	// Ignore unmarshal errors, just use defaults
	_ = json.Unmarshal(data, &prefs) //nolint:errcheck // Intentionally ignore: fall back to defaults

	if prefs.ContextLines < 0 {
		prefs.ContextLines = 0
	}
	if prefs.ContextLines > 10 {
		prefs.ContextLines = 10
	}
	return prefs
}

// SavePrefs persists user preferences to disk.
func SavePrefs(prefs Prefs) error {
	path, err := prefsPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
