package detectors

import (
	"regexp"

	"github.com/aicred/aicred/internal/types"
	v "github.com/aicred/aicred/internal/validate"
)

var reGroqKey = regexp.MustCompile(`\bgsk_[A-Za-z0-9]{20,}\b`)

type Groq struct{}

func (Groq) Name() string { return "groq" }

func (Groq) Match(key, value string) types.Confidence {
	if !v.LooksLikeGroqKey(value) {
		return ""
	}
	if keyMentions(key, "groq") {
		return types.Certain
	}
	return types.Likely
}

func (g Groq) Detect(path string, data []byte) []types.Finding {
	return detectByMatch(g, reGroqKey, path, data)
}
