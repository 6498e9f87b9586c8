package detectors

import (
	"regexp"

	"github.com/aicred/aicred/internal/types"
	v "github.com/aicred/aicred/internal/validate"
)

var reOpenAIKey = regexp.MustCompile(`\bsk-[A-Za-z0-9_-]{17,}\b`)

// OpenAI matches platform keys, including project-scoped sk-proj- keys.
// The regex over-captures other sk- families; Match filters them out.
type OpenAI struct{}

func (OpenAI) Name() string { return "openai" }

func (OpenAI) Match(key, value string) types.Confidence {
	if !v.LooksLikeOpenAIKey(value) {
		return ""
	}
	if keyMentions(key, "openai") {
		return types.Certain
	}
	return types.Likely
}

func (o OpenAI) Detect(path string, data []byte) []types.Finding {
	return detectByMatch(o, reOpenAIKey, path, data)
}
