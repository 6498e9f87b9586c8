package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/aicred/aicred/internal/types"
)

func sample() []types.Finding {
	return []types.Finding{
		{Provider: "openai", Scanner: "langchain", Path: "b.env", KeyName: "OPENAI_API_KEY", Value: "sk-***45", Confidence: types.Certain, Line: 2},
		{Provider: "ollama", Scanner: "roo-code", Path: "a.json", KeyName: "ollamaBaseUrl", Value: "htt***st", Confidence: types.Likely, Line: 9},
	}
}

func TestPrintText_NoFindings_ShowsFooter(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, nil, PrintOptions{Duration: 1200 * time.Millisecond, FilesScanned: 10})
	out := buf.String()
	if !strings.Contains(out, "No credentials found") {
		t.Fatalf("expected friendly no-findings message; got: %q", out)
	}
	if !strings.Contains(out, "Files scanned: 10") {
		t.Fatalf("expected footer with files scanned; got: %q", out)
	}
}

func TestPrintText_WithFindings(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, sample(), PrintOptions{NoColor: true})
	out := buf.String()
	if !strings.Contains(out, "Findings: 2") {
		t.Fatalf("expected findings header; got: %q", out)
	}
	if !strings.Contains(out, "openai") || !strings.Contains(out, "langchain") {
		t.Fatalf("expected provider and scanner columns; got: %q", out)
	}
	// sorted by path, so a.json comes first
	if strings.Index(out, "a.json") > strings.Index(out, "b.env") {
		t.Fatalf("expected path-sorted output; got: %q", out)
	}
}

func TestPrintTable_WithFindings(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, sample(), PrintOptions{NoColor: true})
	out := buf.String()
	if !strings.Contains(out, "CONFIDENCE") {
		t.Fatalf("expected table header with CONFIDENCE; got: %q", out)
	}
	if !strings.Contains(out, "OPENAI_API_KEY") {
		t.Fatalf("expected key column in table; got: %q", out)
	}
	if !strings.Contains(out, "│") {
		t.Fatalf("expected table borders; got: %q", out)
	}
}

func TestPrintTable_NoFindings_ShowsFooter(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, nil, PrintOptions{Duration: 1200 * time.Millisecond, FilesScanned: 10})
	out := buf.String()
	if !strings.Contains(out, "No credentials found") {
		t.Fatalf("expected friendly no-findings message; got: %q", out)
	}
	if !strings.Contains(out, "Files scanned: 10") {
		t.Fatalf("expected footer with files scanned; got: %q", out)
	}
}

func TestShouldFail(t *testing.T) {
	fs := sample() // one Certain, one Likely
	if !ShouldFail(fs, "certain") {
		t.Fatal("certain finding should trip the certain threshold")
	}
	if !ShouldFail(fs, "likely") {
		t.Fatal("certain finding should trip the likely threshold")
	}
	if ShouldFail([]types.Finding{{Confidence: types.Possible}}, "likely") {
		t.Fatal("possible finding should not trip the likely threshold")
	}
	if !ShouldFail([]types.Finding{{Confidence: types.Possible}}, "possible") {
		t.Fatal("possible finding should trip the possible threshold")
	}
	// unknown threshold falls back to likely
	if ShouldFail([]types.Finding{{Confidence: types.Possible}}, "bogus") {
		t.Fatal("fallback threshold should be likely")
	}
}
