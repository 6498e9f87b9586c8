package detectors

import (
	"regexp"

	"github.com/aicred/aicred/internal/types"
	v "github.com/aicred/aicred/internal/validate"
)

var reOpenRouterKey = regexp.MustCompile(`\bsk-or-[A-Za-z0-9_-]{14,}\b`)

type OpenRouter struct{}

func (OpenRouter) Name() string { return "openrouter" }

func (OpenRouter) Match(key, value string) types.Confidence {
	if !v.LooksLikeOpenRouterKey(value) {
		return ""
	}
	if keyMentions(key, "openrouter") {
		return types.Certain
	}
	return types.Likely
}

func (o OpenRouter) Detect(path string, data []byte) []types.Finding {
	return detectByMatch(o, reOpenRouterKey, path, data)
}
