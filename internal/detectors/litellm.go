package detectors

import (
	"regexp"
	"strings"

	"github.com/aicred/aicred/internal/types"
	v "github.com/aicred/aicred/internal/validate"
)

var (
	reLiteLLMKey = regexp.MustCompile(`\bsk-[A-Za-z0-9_-]{4,}\b`)
	reJWTValue   = regexp.MustCompile(`\beyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]*`)
)

// LiteLLM proxies other providers. Master keys are operator-chosen sk-
// strings of any length; virtual keys are often JWTs. A bare sk- value
// without litellm context belongs to openai, so that case stays silent.
type LiteLLM struct{}

func (LiteLLM) Name() string { return "litellm" }

func (LiteLLM) Match(key, value string) types.Confidence {
	sk := strings.HasPrefix(value, "sk-") && len(value) >= 7
	jwt := v.IsJWTStructure(value)
	if !sk && !jwt {
		return ""
	}
	if keyMentions(key, "litellm") {
		return types.Certain
	}
	if jwt && reSecretKey.MatchString(key) {
		return types.Likely
	}
	return ""
}

func (l LiteLLM) Detect(path string, data []byte) []types.Finding {
	out := detectByMatch(l, reLiteLLMKey, path, data)
	out = append(out, detectByMatch(l, reJWTValue, path, data)...)
	return out
}
