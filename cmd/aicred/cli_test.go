package aicred

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the root command in-process and captures stdout.
// Flag variables persist between invocations, so reset them first.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags() {
	flagJSON, flagSARIF, flagNDJSON = false, false, false
	flagNoColor = false
	flagFailOn = ""
	flagNoUpdateCheck = false
	flagHome = ""
	flagFullValues = false
	flagMaxFileSize = 0
	flagOnly, flagExclude = "", ""
	flagTable, flagText = false, false
	detectKey, detectContent, detectProvider = "", false, ""
}

func TestProvidersCommand(t *testing.T) {
	out, err := runCLI(t, "providers")
	if err != nil {
		t.Fatalf("providers: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 providers, got %d: %q", len(lines), out)
	}
	if lines[0] != "openai" {
		t.Errorf("first provider = %q, want openai", lines[0])
	}
	if lines[len(lines)-1] != "common-config" {
		t.Errorf("last provider = %q, want common-config", lines[len(lines)-1])
	}
}

func TestScannersCommand(t *testing.T) {
	out, err := runCLI(t, "scanners")
	if err != nil {
		t.Fatalf("scanners: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "ragit" {
		t.Errorf("first scanner = %q, want ragit", lines[0])
	}
	if !strings.Contains(out, "git-credentials") {
		t.Errorf("scanner list missing git-credentials: %q", out)
	}
}

func TestDetectCommand(t *testing.T) {
	out, err := runCLI(t, "detect", "sk-ant-REDACTED")
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if !strings.Contains(out, "anthropic (Likely)") {
		t.Errorf("detect output = %q, want anthropic (Likely)", out)
	}
}

func TestDetectCommandWithKey(t *testing.T) {
	out, err := runCLI(t, "detect", "--key", "ANTHROPIC_API_KEY", "sk-ant-REDACTED")
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if !strings.Contains(out, "anthropic (Certain)") {
		t.Errorf("detect output = %q, want anthropic (Certain)", out)
	}
}

func TestDetectCommandSingleProvider(t *testing.T) {
	out, err := runCLI(t, "detect", "--provider", "openai", "--key", "OPENAI_API_KEY", "sk-abcdefghijklmnopqrstuvwxyz123456")
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if !strings.Contains(out, "openai (Certain)") {
		t.Errorf("detect output = %q, want openai (Certain)", out)
	}

	// the restricted detector does not classify foreign key shapes
	out, err = runCLI(t, "detect", "--provider", "openai", "gsk_abcdefghijklmnopqrstuvwxyz012345")
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if !strings.Contains(out, "no provider matched") {
		t.Errorf("detect output = %q, want no provider matched", out)
	}
}

func TestDetectCommandUnknownProvider(t *testing.T) {
	_, err := runCLI(t, "detect", "--provider", "no-such", "sk-whatever")
	if err == nil || !strings.Contains(err.Error(), "unknown provider") {
		t.Fatalf("expected unknown provider error, got %v", err)
	}
}

func TestDetectCommandNoMatch(t *testing.T) {
	out, err := runCLI(t, "detect", "not-a-credential")
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if !strings.Contains(out, "no provider matched") {
		t.Errorf("detect output = %q, want no provider matched", out)
	}
}

func TestScanJSONOutput(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	home := t.TempDir()
	env := "OPENAI_API_KEY=sk-abcdefghijklmnopqrstuvwxyz123456\n"
	if err := os.WriteFile(filepath.Join(home, ".env"), []byte(env), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "scan", "--home", home, "--json")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	var res struct {
		Findings []struct {
			Provider string `json:"provider"`
			Scanner  string `json:"scanner"`
			Value    string `json:"value"`
		} `json:"findings"`
		ScannedFileCount int `json:"scanned_file_count"`
	}
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("scan output is not JSON: %v\n%s", err, out)
	}
	if len(res.Findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(res.Findings))
	}
	if res.Findings[0].Provider != "openai" || res.Findings[0].Scanner != "langchain" {
		t.Errorf("unexpected finding: %+v", res.Findings[0])
	}
	if !strings.Contains(res.Findings[0].Value, "*") {
		t.Errorf("value not redacted: %q", res.Findings[0].Value)
	}
	if res.ScannedFileCount != 1 {
		t.Errorf("scanned_file_count = %d, want 1", res.ScannedFileCount)
	}
}

func TestScanFullValues(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	home := t.TempDir()
	secret := "sk-abcdefghijklmnopqrstuvwxyz123456"
	if err := os.WriteFile(filepath.Join(home, ".env"), []byte("OPENAI_API_KEY="+secret+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "scan", "--home", home, "--json", "--full-values")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !strings.Contains(out, secret) {
		t.Errorf("full value missing from output:\n%s", out)
	}
}

func TestScanTextOutput(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, ".env"), []byte("OPENAI_API_KEY=sk-abcdefghijklmnopqrstuvwxyz123456\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "scan", "--home", home, "--text", "--no-update-check")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !strings.Contains(out, "openai") || !strings.Contains(out, "langchain") {
		t.Errorf("text output missing finding:\n%s", out)
	}
	if !strings.Contains(out, "Files scanned: 1") {
		t.Errorf("text output missing footer:\n%s", out)
	}
}

func TestScanEmptyHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	out, err := runCLI(t, "scan", "--home", t.TempDir(), "--no-update-check")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !strings.Contains(out, "No credentials found") {
		t.Errorf("expected clean-scan message, got:\n%s", out)
	}
}

func TestScanMissingHomeFails(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := runCLI(t, "scan", "--home", "/does/not/exist", "--json")
	if err == nil {
		t.Fatal("expected error for missing home")
	}
}

func TestScanRespectsLocalConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, ".env"), []byte("OPENAI_API_KEY=sk-abcdefghijklmnopqrstuvwxyz123456\nGROQ_API_KEY=gsk_abcdefghijklmnopqrstuvwxyz012345\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	work := t.TempDir()
	cfg := "home: " + home + "\nexclude_providers: groq\n"
	if err := os.WriteFile(filepath.Join(work, ".aicred.yml"), []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(wd) }()

	out, err := runCLI(t, "scan", "--json")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !strings.Contains(out, `"provider": "openai"`) {
		t.Errorf("config home not honored:\n%s", out)
	}
	if strings.Contains(out, `"provider": "groq"`) {
		t.Errorf("exclude_providers from config not honored:\n%s", out)
	}
}

func TestScanConfigMaxFileSize(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, ".env"), []byte("OPENAI_API_KEY=sk-abcdefghijklmnopqrstuvwxyz123456\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	work := t.TempDir()
	cfg := "home: " + home + "\nmax_file_size: 10\n"
	if err := os.WriteFile(filepath.Join(work, ".aicred.yml"), []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(wd) }()

	out, err := runCLI(t, "scan", "--json")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	var res struct {
		Findings         []json.RawMessage `json:"findings"`
		ScannedFileCount int               `json:"scanned_file_count"`
	}
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("scan output is not JSON: %v\n%s", err, out)
	}
	// the .env file exceeds the configured bound, so it is skipped entirely
	if len(res.Findings) != 0 || res.ScannedFileCount != 0 {
		t.Errorf("config max_file_size not honored: %s", out)
	}
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".aicred.yml")

	out, err := runCLI(t, "config", "init", "--output", path, "--exclude", "ollama", "--fail-on", "certain")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, "Wrote") {
		t.Errorf("unexpected output: %q", out)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, "exclude_providers: ollama") {
		t.Errorf("config missing exclude_providers:\n%s", s)
	}
	if !strings.Contains(s, "fail_on: certain") {
		t.Errorf("config missing fail_on:\n%s", s)
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := runCLI(t, "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.Contains(out, version) {
		t.Errorf("version output = %q, want %q", out, version)
	}
}

func TestSplitComma(t *testing.T) {
	if got := splitComma(""); got != nil {
		t.Errorf("splitComma(\"\") = %v, want nil", got)
	}
	got := splitComma(" openai, anthropic ,,groq ")
	want := []string{"openai", "anthropic", "groq"}
	if len(got) != len(want) {
		t.Fatalf("splitComma = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("splitComma[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
