package scanners

import (
	"path/filepath"
	"strings"

	"github.com/aicred/aicred/internal/confparse"
	"github.com/aicred/aicred/internal/detectors"
	"github.com/aicred/aicred/internal/types"
)

// langchainEnvProvider maps the env-var names langchain setups use to the
// provider the credential belongs to. LANGCHAIN_API_KEY itself is a
// LangSmith key, which has no dedicated detector.
var langchainEnvProvider = map[string]string{
	"LANGCHAIN_API_KEY":      "common-config",
	"LANGSMITH_API_KEY":      "common-config",
	"OPENAI_API_KEY":         "openai",
	"ANTHROPIC_API_KEY":      "anthropic",
	"HUGGING_FACE_HUB_TOKEN": "huggingface",
	"HUGGINGFACE_API_KEY":    "huggingface",
	"GROQ_API_KEY":           "groq",
}

// LangChain sweeps the config and env file spots langchain projects
// conventionally use, including the home-level .env.
type LangChain struct{}

func (LangChain) Name() string { return "langchain" }
func (LangChain) App() string  { return "LangChain" }

func (LangChain) Providers() []string {
	return []string{"openai", "anthropic", "huggingface", "groq", "common-config"}
}

func (LangChain) Candidates(home string) []string {
	return []string{
		filepath.Join(home, ".langchain", "config.yaml"),
		filepath.Join(home, ".langchain", "config.json"),
		filepath.Join(home, ".langchain", "settings.json"),
		filepath.Join(home, "langchain_config.yaml"),
		filepath.Join(home, "langchain_config.json"),
		filepath.Join(home, ".langchain.yaml"),
		filepath.Join(home, ".langchain.json"),
		filepath.Join(home, ".env"),
		filepath.Join(home, "langchain.env"),
	}
}

func (LangChain) CanHandle(path string) bool {
	base := filepath.Base(path)
	if base == ".env" || strings.HasSuffix(base, ".env") {
		return true
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func (LangChain) Parse(path string, data []byte) []types.Finding {
	var fields []confparse.Field
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		fields = confparse.JSONFields(data)
	case ".yaml", ".yml":
		fields = confparse.YAMLFields(data)
	default:
		fields = confparse.EnvFields(data)
	}

	var out []types.Finding
	var rest []confparse.Field
	for _, f := range fields {
		key := strings.ToUpper(leafKey(f.Key))
		p, ok := langchainEnvProvider[key]
		if !ok {
			rest = append(rest, f)
			continue
		}
		if c := classifyKnown(p, f.Key, f.Value); c != "" {
			out = append(out, types.Finding{
				Provider: p, Path: path, KeyName: f.Key, Value: f.Value, Confidence: c, Line: f.Line,
			})
		}
	}
	return detectors.Dedupe(append(out, structuredFindings(path, rest, "")...))
}
