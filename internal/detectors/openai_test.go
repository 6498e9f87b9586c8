package detectors

import (
	"testing"

	"github.com/aicred/aicred/internal/types"
)

func TestOpenAIMatch(t *testing.T) {
	d := OpenAI{}
	if got := d.Match("OPENAI_API_KEY", "sk-abcdefghijklmnopqrstuvwxyz123456"); got != types.Certain {
		t.Fatalf("key+value should be Certain, got %q", got)
	}
	if got := d.Match("some_field", "sk-abcdefghijklmnopqrstuvwxyz123456"); got != types.Likely {
		t.Fatalf("value only should be Likely, got %q", got)
	}
	if got := d.Match("OPENAI_API_KEY", "sk-ant-REDACTED"); got != types.Confidence("") {
		t.Fatalf("anthropic family should not match, got %q", got)
	}
}

func TestOpenAIDetect(t *testing.T) {
	data := []byte("export OPENAI_API_KEY=\"sk-proj-abcdefghijklmnopqrstuvwx\"\n")
	fs := OpenAI{}.Detect("env.sh", data)
	if len(fs) != 1 {
		t.Fatalf("expected one finding, got %d", len(fs))
	}
	f := fs[0]
	if f.Provider != "openai" || f.KeyName != "OPENAI_API_KEY" || f.Confidence != types.Certain || f.Line != 1 {
		t.Fatalf("unexpected finding: %#v", f)
	}
}
