package scanners

import (
	"path/filepath"
	"strings"

	"github.com/aicred/aicred/internal/confparse"
	"github.com/aicred/aicred/internal/detectors"
	"github.com/aicred/aicred/internal/types"
	v "github.com/aicred/aicred/internal/validate"
)

// Gsh reads ~/.gshrc. The shell wires its fast model slot to groq and its
// slow slot to openrouter; everything else in the rc file is exported env
// vars classified generically.
type Gsh struct{}

func (Gsh) Name() string { return "gsh" }
func (Gsh) App() string  { return "gsh" }

func (Gsh) Providers() []string {
	return []string{"groq", "openrouter", "openai", "anthropic", "cohere", "common-config"}
}

func (Gsh) Candidates(home string) []string {
	return []string{filepath.Join(home, ".gshrc")}
}

func (Gsh) CanHandle(path string) bool {
	return filepath.Base(path) == ".gshrc"
}

func (Gsh) Parse(path string, data []byte) []types.Finding {
	var out []types.Finding
	for _, f := range confparse.EnvFields(data) {
		if p, sub, ok := gshSlot(f.Key); ok {
			switch sub {
			case "API_KEY":
				if c := classifyKnown(p, f.Key, f.Value); c != "" {
					out = append(out, types.Finding{
						Provider: p, Path: path, KeyName: f.Key, Value: f.Value, Confidence: c, Line: f.Line,
					})
				}
			case "":
				out = append(out, types.Finding{
					Provider: p, Path: path, KeyName: f.Key, Value: f.Value, Confidence: types.Possible, Line: f.Line,
				})
			case "BASE_URL":
				if v.IsHTTPURL(f.Value) {
					out = append(out, types.Finding{
						Provider: p, Path: path, KeyName: f.Key, Value: f.Value, Confidence: types.Possible, Line: f.Line,
					})
				}
			}
			continue
		}
		if p, c := detectors.MatchAll(f.Key, f.Value); p != "" {
			out = append(out, types.Finding{
				Provider: p, Path: path, KeyName: f.Key, Value: f.Value, Confidence: c, Line: f.Line,
			})
		}
	}
	return detectors.Dedupe(out)
}

// gshSlot splits a GSH_FAST_MODEL* / GSH_SLOW_MODEL* key into its bound
// provider and the slot suffix ("", "API_KEY", "BASE_URL", ...).
func gshSlot(key string) (provider, sub string, ok bool) {
	switch {
	case strings.HasPrefix(key, "GSH_FAST_MODEL"):
		provider = "groq"
		sub = strings.TrimPrefix(key, "GSH_FAST_MODEL")
	case strings.HasPrefix(key, "GSH_SLOW_MODEL"):
		provider = "openrouter"
		sub = strings.TrimPrefix(key, "GSH_SLOW_MODEL")
	default:
		return "", "", false
	}
	return provider, strings.TrimPrefix(sub, "_"), true
}
