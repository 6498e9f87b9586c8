package scanners

import (
	"strings"

	"github.com/aicred/aicred/internal/confparse"
	"github.com/aicred/aicred/internal/detectors"
	"github.com/aicred/aicred/internal/types"
	v "github.com/aicred/aicred/internal/validate"
)

// structuredFindings classifies parsed config fields through the detector
// catalog and records model references. modelProvider attributes bare
// model keys for single-provider tools; multi-provider tools pass "".
func structuredFindings(path string, fields []confparse.Field, modelProvider string) []types.Finding {
	var out []types.Finding
	for _, f := range fields {
		val := strings.TrimSpace(f.Value)
		if val == "" || val == "null" || val == "true" || val == "false" {
			continue
		}
		if p, c := detectors.MatchAll(f.Key, val); p != "" {
			out = append(out, types.Finding{
				Provider: p, Path: path, KeyName: f.Key, Value: val, Confidence: c, Line: f.Line,
			})
			continue
		}
		if isModelKey(f.Key) {
			p := providerFromKey(f.Key)
			if p == "" {
				p = modelProvider
			}
			if p == "" {
				continue
			}
			out = append(out, types.Finding{
				Provider: p, Path: path, KeyName: f.Key, Value: val, Confidence: types.Possible, Line: f.Line,
			})
		}
	}
	return out
}

// classifyKnown classifies a value sitting under a documented provider key
// name (e.g. OPENAI_API_KEY in a langchain env file). A value-shape hit
// under the documented key upgrades to Certain; the generic fallback never
// upgrades past its own ceiling.
func classifyKnown(provider, key, value string) types.Confidence {
	d := detectors.ByName(provider)
	if d == nil {
		return ""
	}
	c := d.Match(key, value)
	if provider == "common-config" {
		return c
	}
	switch c {
	case types.Certain:
		return c
	case types.Likely, types.Possible:
		return types.Certain
	}
	if tokenish(value) {
		return types.Likely
	}
	return ""
}

func tokenish(value string) bool {
	return v.LengthBetween(value, 8, 200) && v.IsToken(value)
}

func isModelKey(key string) bool {
	return strings.Contains(strings.ToLower(leafKey(key)), "model")
}

// leafKey returns the last segment of a dotted field path.
func leafKey(key string) string {
	if i := strings.LastIndex(key, "."); i >= 0 {
		return key[i+1:]
	}
	return key
}

// providerFromKey attributes a key name to a provider it mentions.
func providerFromKey(key string) string {
	lk := strings.ToLower(key)
	for _, name := range detectors.Names() {
		if name == "common-config" {
			continue
		}
		if strings.Contains(lk, name) {
			return name
		}
	}
	if strings.Contains(lk, "hugging") {
		return "huggingface"
	}
	return ""
}
