package detectors

import (
	"testing"

	"github.com/aicred/aicred/internal/types"
)

func TestOllamaMatch(t *testing.T) {
	d := Ollama{}
	if got := d.Match("OLLAMA_HOST", "http://localhost:11434"); got != types.Likely {
		t.Fatalf("host endpoint should be Likely, got %q", got)
	}
	if got := d.Match("OLLAMA_HOST", "llama3:8b"); got != types.Confidence("") {
		t.Fatalf("model ref should not match, got %q", got)
	}
	if got := d.Match("BASE_URL", "http://localhost:11434"); got != types.Confidence("") {
		t.Fatalf("URL without ollama context should not match, got %q", got)
	}
}

func TestOllamaDetect(t *testing.T) {
	data := []byte("OLLAMA_HOST=https://ollama.internal:11434\nAPI_URL=https://api.example.com\n")
	fs := Ollama{}.Detect("rc", data)
	if len(fs) != 1 {
		t.Fatalf("expected one finding, got %d: %#v", len(fs), fs)
	}
	if fs[0].KeyName != "OLLAMA_HOST" {
		t.Fatalf("unexpected key: %q", fs[0].KeyName)
	}
}
