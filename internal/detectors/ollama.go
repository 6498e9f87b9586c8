package detectors

import (
	"github.com/aicred/aicred/internal/types"
	v "github.com/aicred/aicred/internal/validate"
)

// Ollama matches configured host endpoints. A URL is reachable surface,
// not a secret, so confidence never rises above Likely and key context
// is required.
type Ollama struct{}

func (Ollama) Name() string { return "ollama" }

func (Ollama) Match(key, value string) types.Confidence {
	if !keyMentions(key, "ollama") || !v.IsHTTPURL(value) {
		return ""
	}
	return types.Likely
}

func (o Ollama) Detect(path string, data []byte) []types.Finding {
	return detectByMatch(o, reURLValue, path, data)
}
