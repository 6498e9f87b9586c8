package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return p
}

func TestLoadFile_Basic(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "aicred.yaml", "max_file_size: 123\nfull_values: true\nonly_providers: openai,groq\nfail_on: likely\n")
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.MaxFileSize == nil || *cfg.MaxFileSize != 123 {
		t.Fatalf("expected max_file_size=123, got %#v", cfg.MaxFileSize)
	}
	if cfg.FullValues == nil || *cfg.FullValues != true {
		t.Fatalf("expected full_values=true")
	}
	if cfg.OnlyProviders == nil || *cfg.OnlyProviders != "openai,groq" {
		t.Fatalf("expected only_providers=openai,groq, got %#v", cfg.OnlyProviders)
	}
	if cfg.GetFailOn() != "likely" {
		t.Fatalf("expected fail_on=likely, got %q", cfg.GetFailOn())
	}
}

func TestLoadLocal_PrefersDotfile(t *testing.T) {
	dir := t.TempDir()
	// place both, expect the dotfile to be picked first by search order
	writeTemp(t, dir, "aicred.yaml", "max_file_size: 1\n")
	writeTemp(t, dir, ".aicred.yaml", "max_file_size: 7\n")
	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("LoadLocal: %v", err)
	}
	if cfg.MaxFileSize == nil || *cfg.MaxFileSize != 7 {
		t.Fatalf("expected max_file_size=7 from .aicred.yaml, got %#v", cfg.MaxFileSize)
	}
}

func TestLoadLocal_NoConfig(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadLocal(dir); err == nil {
		t.Fatal("expected error when no local config exists")
	}
}

func TestDir_XDGOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	if got := Dir(); got != filepath.Join("/tmp/xdg-test", "aicred") {
		t.Fatalf("unexpected config dir %q", got)
	}
}

func TestLoadGlobal_XDG_Config(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "aicred")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	p := filepath.Join(cfgDir, "config.yml")
	if err := os.WriteFile(p, []byte("format: sarif\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal: %v", err)
	}
	if cfg.GetFormat() != "sarif" {
		t.Fatalf("expected format=sarif from global config, got %q", cfg.GetFormat())
	}
}

func TestLoadGlobal_NoConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	// Simulate no HOME as well by clearing HOME; LoadGlobal should error
	t.Setenv("HOME", "")
	if _, err := LoadGlobal(); err == nil {
		t.Fatal("expected error when no global config dir exists")
	}
}

func TestAccessors_Defaults(t *testing.T) {
	var cfg FileConfig
	if cfg.GetHome() != "" || cfg.GetFormat() != "" || cfg.GetFailOn() != "" {
		t.Fatal("expected empty accessors on zero config")
	}
	if !cfg.IsUpdateCheckEnabled() {
		t.Fatal("update check should default to enabled")
	}
	off := true
	cfg.NoUpdateCheck = &off
	if cfg.IsUpdateCheckEnabled() {
		t.Fatal("no_update_check: true should disable the check")
	}
}
