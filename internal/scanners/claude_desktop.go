package scanners

import (
	"path/filepath"

	"github.com/aicred/aicred/internal/confparse"
	"github.com/aicred/aicred/internal/detectors"
	"github.com/aicred/aicred/internal/types"
	v "github.com/aicred/aicred/internal/validate"
)

// ClaudeDesktop reads ~/.claude.json. Older builds stored the API key in
// the userID field, so that slot is treated as the documented location
// when the value carries the sk-ant- prefix.
type ClaudeDesktop struct{}

func (ClaudeDesktop) Name() string { return "claude-desktop" }
func (ClaudeDesktop) App() string  { return "Claude Desktop" }

func (ClaudeDesktop) Providers() []string {
	return []string{"anthropic"}
}

func (ClaudeDesktop) Candidates(home string) []string {
	return []string{filepath.Join(home, ".claude.json")}
}

func (ClaudeDesktop) CanHandle(path string) bool {
	return filepath.Base(path) == ".claude.json"
}

func (ClaudeDesktop) Parse(path string, data []byte) []types.Finding {
	fields := confparse.JSONFields(data)
	var out []types.Finding
	var rest []confparse.Field
	for _, f := range fields {
		if leafKey(f.Key) == "userID" && v.LooksLikeAnthropicKey(f.Value) {
			out = append(out, types.Finding{
				Provider: "anthropic", Path: path, KeyName: f.Key,
				Value: f.Value, Confidence: types.Certain, Line: f.Line,
			})
			continue
		}
		rest = append(rest, f)
	}
	return detectors.Dedupe(append(out, structuredFindings(path, rest, "anthropic")...))
}
