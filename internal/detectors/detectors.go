package detectors

import "github.com/aicred/aicred/internal/types"

// Detector classifies credential material for a single provider.
//
// Match classifies one key/value pair; the empty Confidence means no match.
// Certain requires both the key name and the value shape to fit the
// provider, Likely means the value shape alone fits, Possible is reserved
// for heuristic hits. Detect runs full-content detection over raw text and
// never errors; malformed content yields zero findings.
type Detector interface {
	Name() string
	Match(key, value string) types.Confidence
	Detect(path string, data []byte) []types.Finding
}

// Catalog order is fixed. Specific providers come first; the generic
// config fallback sits last so it never shadows a provider attribution.
var all = []Detector{
	OpenAI{}, Anthropic{}, Groq{}, HuggingFace{}, Ollama{},
	OpenRouter{}, LiteLLM{}, Mistral{}, Cohere{}, CommonConfig{},
}

// Catalog returns the detectors in registration order.
func Catalog() []Detector {
	out := make([]Detector, len(all))
	copy(out, all)
	return out
}

// Names returns the provider names in registration order.
func Names() []string {
	out := make([]string, 0, len(all))
	for _, d := range all {
		out = append(out, d.Name())
	}
	return out
}

// ByName returns the detector for a provider name, or nil.
func ByName(name string) Detector {
	for _, d := range all {
		if d.Name() == name {
			return d
		}
	}
	return nil
}

// MatchAll classifies a key/value pair against the catalog in order and
// returns the first attribution. The fallback detector is last, so a
// specific provider always wins.
func MatchAll(key, value string) (string, types.Confidence) {
	for _, d := range all {
		if c := d.Match(key, value); c != "" {
			return d.Name(), c
		}
	}
	return "", ""
}

// RunAll runs every detector's full-content pass and deduplicates.
func RunAll(path string, data []byte) []types.Finding {
	var out []types.Finding
	for _, d := range all {
		out = append(out, d.Detect(path, data)...)
	}
	return Dedupe(out)
}

// Dedupe drops repeated findings for the same path, key and value. The
// first attribution wins, which favors specific providers over the
// fallback because of catalog order.
func Dedupe(findings []types.Finding) []types.Finding {
	seen := make(map[string]bool)
	var result []types.Finding
	for _, f := range findings {
		key := f.Path + "|" + f.KeyName + "|" + f.Value
		if !seen[key] {
			seen[key] = true
			result = append(result, f)
		}
	}
	return result
}
