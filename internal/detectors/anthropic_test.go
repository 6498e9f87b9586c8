package detectors

import (
	"testing"

	"github.com/aicred/aicred/internal/types"
)

func TestAnthropicDetect(t *testing.T) {
	data := []byte("sk-ant-REDACTED")
	fs := Anthropic{}.Detect("x.txt", data)
	if len(fs) == 0 {
		t.Fatalf("expected anthropic finding")
	}
	if fs[0].Confidence != types.Likely {
		t.Fatalf("bare value should be Likely, got %q", fs[0].Confidence)
	}
}

func TestAnthropicMatchWithKey(t *testing.T) {
	got := Anthropic{}.Match("ANTHROPIC_API_KEY", "sk-ant-REDACTED")
	if got != types.Certain {
		t.Fatalf("expected Certain, got %q", got)
	}
}
