package detectors

import (
	"regexp"

	"github.com/aicred/aicred/internal/types"
	v "github.com/aicred/aicred/internal/validate"
)

var reMistralKey = regexp.MustCompile(`\b[A-Za-z0-9]{32}\b`)

// Mistral keys carry no vendor prefix, so a bare 32-char body only counts
// under a mistral-flavored secret key name.
type Mistral struct{}

func (Mistral) Name() string { return "mistral" }

func (Mistral) Match(key, value string) types.Confidence {
	if !keyMentions(key, "mistral") || !reSecretKey.MatchString(key) {
		return ""
	}
	if v.LooksLikeMistralKey(value) {
		return types.Certain
	}
	if v.LengthBetween(value, 20, 64) && v.IsToken(value) {
		return types.Likely
	}
	return ""
}

func (m Mistral) Detect(path string, data []byte) []types.Finding {
	return detectByMatch(m, reMistralKey, path, data)
}
