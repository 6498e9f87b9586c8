package scanners

import (
	"testing"

	"github.com/aicred/aicred/internal/types"
)

func TestRooCodeParse(t *testing.T) {
	data := []byte(`{
  "apiProvider": "openrouter",
  "openRouterApiKey": "sk-or-v1-abcdef0123456789abcdef0123456789",
  "ollamaBaseUrl": "http://localhost:11434"
}`)
	fs := RooCode{}.Parse("settings.json", data)
	if len(fs) != 2 {
		t.Fatalf("expected 2 findings, got %d: %#v", len(fs), fs)
	}
	if fs[0].Provider != "openrouter" || fs[0].Confidence != types.Certain {
		t.Fatalf("unexpected openrouter finding: %#v", fs[0])
	}
	if fs[1].Provider != "ollama" || fs[1].Confidence != types.Likely {
		t.Fatalf("unexpected ollama finding: %#v", fs[1])
	}
}

func TestRooCodeCanHandle(t *testing.T) {
	s := RooCode{}
	if !s.CanHandle("settings/cline_mcp_settings.json") {
		t.Fatal("json settings should be handled")
	}
	if s.CanHandle("state.vscdb") {
		t.Fatal("sqlite state should not be handled")
	}
}
