package scanners

import (
	"path/filepath"
	"strings"

	"github.com/aicred/aicred/internal/confparse"
	"github.com/aicred/aicred/internal/detectors"
	"github.com/aicred/aicred/internal/types"
)

const rooExtensionID = "rooveterinaryinc.roo-cline"

// RooCode reads the VS Code global storage of the Roo Code extension.
// Candidates are directories; the engine expands them to the *.json
// settings files inside.
type RooCode struct{}

func (RooCode) Name() string { return "roo-code" }
func (RooCode) App() string  { return "Roo Code" }

func (RooCode) Providers() []string {
	return []string{"anthropic", "openai", "openrouter", "ollama", "common-config"}
}

func (RooCode) Candidates(home string) []string {
	return []string{
		filepath.Join(home, ".config", "Code", "User", "globalStorage", rooExtensionID),
		filepath.Join(home, ".vscode-server", "data", "User", "globalStorage", rooExtensionID),
		filepath.Join(home, "Library", "Application Support", "Code", "User", "globalStorage", rooExtensionID),
	}
}

func (RooCode) CanHandle(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".json")
}

func (RooCode) Parse(path string, data []byte) []types.Finding {
	return detectors.Dedupe(structuredFindings(path, confparse.JSONFields(data), ""))
}
