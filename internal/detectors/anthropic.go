package detectors

import (
	"regexp"

	"github.com/aicred/aicred/internal/types"
	v "github.com/aicred/aicred/internal/validate"
)

var reAnthropicKey = regexp.MustCompile(`\bsk-ant-[A-Za-z0-9_-]{8,}\b`)

type Anthropic struct{}

func (Anthropic) Name() string { return "anthropic" }

func (Anthropic) Match(key, value string) types.Confidence {
	if !v.LooksLikeAnthropicKey(value) {
		return ""
	}
	if keyMentions(key, "anthropic") {
		return types.Certain
	}
	return types.Likely
}

func (a Anthropic) Detect(path string, data []byte) []types.Finding {
	return detectByMatch(a, reAnthropicKey, path, data)
}
