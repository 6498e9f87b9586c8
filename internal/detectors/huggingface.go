package detectors

import (
	"regexp"
	"strings"

	"github.com/aicred/aicred/internal/types"
	v "github.com/aicred/aicred/internal/validate"
)

var reHFToken = regexp.MustCompile(`\bhf_[A-Za-z0-9]{16,}\b`)

// HuggingFace matches hub tokens. HF_TOKEN, HUGGINGFACE_API_KEY and
// HUGGING_FACE_HUB_TOKEN are all in circulation as key names.
type HuggingFace struct{}

func (HuggingFace) Name() string { return "huggingface" }

func (HuggingFace) Match(key, value string) types.Confidence {
	if !v.LooksLikeHuggingFaceToken(value) {
		return ""
	}
	lk := strings.ToLower(key)
	if strings.Contains(lk, "hugging") || lk == "hf_token" {
		return types.Certain
	}
	return types.Likely
}

func (h HuggingFace) Detect(path string, data []byte) []types.Finding {
	return detectByMatch(h, reHFToken, path, data)
}
