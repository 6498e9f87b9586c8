package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for aicred.
type FileConfig struct {
	Home             *string `yaml:"home"`
	Format           *string `yaml:"format"`
	MaxFileSize      *int64  `yaml:"max_file_size"`
	FullValues       *bool   `yaml:"full_values"`
	OnlyProviders    *string `yaml:"only_providers"`
	ExcludeProviders *string `yaml:"exclude_providers"`
	NoColor          *bool   `yaml:"no_color"`
	FailOn           *string `yaml:"fail_on"`
	NoUpdateCheck    *bool   `yaml:"no_update_check"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a config file in the given directory.
// It supports .aicred.yml/.yaml and aicred.yml/.yaml.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".aicred.yml", ".aicred.yaml", "aicred.yml", "aicred.yaml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// Dir returns aicred's own configuration directory,
// $XDG_CONFIG_HOME/aicred with the usual ~/.config fallback. Empty when
// neither resolves; callers treat that as "no persistent state".
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home == "" {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "aicred")
}

// LoadGlobal loads the global config file from the aicred config directory.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	dir := Dir()
	if dir == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(dir, "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// GetHome returns the configured home override or empty string.
func (fc FileConfig) GetHome() string {
	if fc.Home == nil {
		return ""
	}
	return *fc.Home
}

// GetFormat returns the configured output format or empty string.
func (fc FileConfig) GetFormat() string {
	if fc.Format == nil {
		return ""
	}
	return *fc.Format
}

// GetFailOn returns the configured fail-on threshold or empty string.
func (fc FileConfig) GetFailOn() string {
	if fc.FailOn == nil {
		return ""
	}
	return *fc.FailOn
}

// IsUpdateCheckEnabled returns true unless the config disables it.
func (fc FileConfig) IsUpdateCheckEnabled() bool {
	if fc.NoUpdateCheck == nil {
		return true
	}
	return !*fc.NoUpdateCheck
}
