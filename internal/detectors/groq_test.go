package detectors

import (
	"testing"

	"github.com/aicred/aicred/internal/types"
)

func TestGroqDetect(t *testing.T) {
	data := []byte("GROQ_API_KEY=gsk_abcdefghijklmnopqrstuvwxyz012345\n")
	fs := Groq{}.Detect("rc", data)
	if len(fs) != 1 {
		t.Fatalf("expected one finding, got %d", len(fs))
	}
	if fs[0].Confidence != types.Certain || fs[0].KeyName != "GROQ_API_KEY" {
		t.Fatalf("unexpected finding: %#v", fs[0])
	}
}

func TestGroqMatchValueOnly(t *testing.T) {
	if got := (Groq{}).Match("", "gsk_abcdefghijklmnopqrstuvwxyz012345"); got != types.Likely {
		t.Fatalf("expected Likely, got %q", got)
	}
}
