package scanners

import (
	"path/filepath"
	"strings"

	"github.com/aicred/aicred/internal/confparse"
	"github.com/aicred/aicred/internal/detectors"
	"github.com/aicred/aicred/internal/types"
)

// Goose reads the goose agent's YAML profiles and config.
type Goose struct{}

func (Goose) Name() string { return "goose" }
func (Goose) App() string  { return "Goose" }

func (Goose) Providers() []string {
	return []string{"openai", "anthropic", "ollama", "common-config"}
}

func (Goose) Candidates(home string) []string {
	return []string{
		filepath.Join(home, ".config", "goose", "profiles.yaml"),
		filepath.Join(home, ".config", "goose", "config.yaml"),
	}
}

func (Goose) CanHandle(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func (Goose) Parse(path string, data []byte) []types.Finding {
	return detectors.Dedupe(structuredFindings(path, confparse.YAMLFields(data), ""))
}
