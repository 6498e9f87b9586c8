package scanners

import (
	"path/filepath"

	"github.com/aicred/aicred/internal/confparse"
	"github.com/aicred/aicred/internal/detectors"
	"github.com/aicred/aicred/internal/types"
)

// Ragit reads the ragit RAG CLI configuration. The top-level api_key
// belongs to whichever backend the config selects, so value shape decides
// the attribution; per-provider sub-objects carry their own names.
type Ragit struct{}

func (Ragit) Name() string { return "ragit" }
func (Ragit) App() string  { return "Ragit" }

func (Ragit) Providers() []string {
	return detectors.Names()
}

func (Ragit) Candidates(home string) []string {
	return []string{
		filepath.Join(home, ".ragit", "config.json"),
		filepath.Join(home, ".config", "ragit", "config.json"),
	}
}

func (Ragit) CanHandle(path string) bool {
	return filepath.Base(path) == "config.json"
}

func (Ragit) Parse(path string, data []byte) []types.Finding {
	return detectors.Dedupe(structuredFindings(path, confparse.JSONFields(data), ""))
}
