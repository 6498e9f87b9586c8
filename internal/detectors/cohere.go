package detectors

import (
	"regexp"
	"strings"

	"github.com/aicred/aicred/internal/types"
	v "github.com/aicred/aicred/internal/validate"
)

var reCohereKey = regexp.MustCompile(`\b[A-Za-z0-9]{40}\b`)

// Cohere keys are bare 40-char bodies; like mistral, key context carries
// the attribution. CO_API_KEY is the SDK's short form.
type Cohere struct{}

func (Cohere) Name() string { return "cohere" }

func (Cohere) Match(key, value string) types.Confidence {
	lk := strings.ToLower(key)
	if !strings.Contains(lk, "cohere") && lk != "co_api_key" {
		return ""
	}
	if !reSecretKey.MatchString(key) {
		return ""
	}
	if v.LooksLikeCohereKey(value) {
		return types.Certain
	}
	if v.LengthBetween(value, 20, 64) && v.IsToken(value) {
		return types.Likely
	}
	return ""
}

func (c Cohere) Detect(path string, data []byte) []types.Finding {
	return detectByMatch(c, reCohereKey, path, data)
}
