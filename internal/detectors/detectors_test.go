package detectors

import (
	"reflect"
	"testing"

	"github.com/aicred/aicred/internal/types"
)

func TestCatalogOrder(t *testing.T) {
	want := []string{
		"openai", "anthropic", "groq", "huggingface", "ollama",
		"openrouter", "litellm", "mistral", "cohere", "common-config",
	}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("catalog order changed: %v", got)
	}
	for _, n := range want {
		if ByName(n) == nil {
			t.Fatalf("ByName(%q) returned nil", n)
		}
	}
	if ByName("nope") != nil {
		t.Fatal("unknown name should return nil")
	}
}

func TestMatchAllPrecedence(t *testing.T) {
	// specific provider wins over the generic fallback
	p, c := MatchAll("OPENAI_API_KEY", "sk-abcdefghijklmnopqrstuvwxyz123456")
	if p != "openai" || c != types.Certain {
		t.Fatalf("got %q/%q", p, c)
	}
	// sk-ant- is carved out of the openai family
	p, c = MatchAll("ANTHROPIC_API_KEY", "sk-ant-REDACTED")
	if p != "anthropic" || c != types.Certain {
		t.Fatalf("got %q/%q", p, c)
	}
	// value-only attribution
	p, c = MatchAll("", "gsk_abcdefghijklmnopqrstuvwxyz012345")
	if p != "groq" || c != types.Likely {
		t.Fatalf("got %q/%q", p, c)
	}
	// nothing matches
	p, c = MatchAll("model", "gpt-4o")
	if p != "" || c != types.Confidence("") {
		t.Fatalf("got %q/%q", p, c)
	}
}

func TestRunAllDedupes(t *testing.T) {
	data := []byte("OPENAI_API_KEY=sk-abcdefghijklmnopqrstuvwxyz123456\n")
	fs := RunAll(".env", data)
	if len(fs) != 1 {
		t.Fatalf("expected one deduplicated finding, got %d: %#v", len(fs), fs)
	}
	// the specific provider wins over common-config
	if fs[0].Provider != "openai" {
		t.Fatalf("expected openai attribution, got %q", fs[0].Provider)
	}
}

func TestLineKey(t *testing.T) {
	cases := []struct {
		line  string
		value string
		want  string
	}{
		{`export OPENAI_API_KEY="sk-x"`, "sk-x", "OPENAI_API_KEY"},
		{`"api_key": "sk-x",`, "sk-x", "api_key"},
		{`token = sk-x`, "sk-x", "token"},
		{`sk-x`, "sk-x", ""},
	}
	for _, c := range cases {
		if got := lineKey(c.line, c.value); got != c.want {
			t.Fatalf("lineKey(%q) = %q, want %q", c.line, got, c.want)
		}
	}
}
