package scanners

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestCatalogOrder(t *testing.T) {
	want := []string{
		"ragit", "claude-desktop", "roo-code", "langchain", "gsh",
		"goose", "git-credentials",
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

func TestCandidatesUnderHome(t *testing.T) {
	home := filepath.Join("/", "home", "alice")
	for _, s := range Catalog() {
		cands := s.Candidates(home)
		if len(cands) == 0 {
			t.Fatalf("%s: no candidates", s.Name())
		}
		for _, c := range cands {
			if !strings.HasPrefix(c, home) {
				t.Fatalf("%s: candidate %q escapes home", s.Name(), c)
			}
		}
	}
}

func TestProvidersNonEmpty(t *testing.T) {
	for _, s := range Catalog() {
		if len(s.Providers()) == 0 {
			t.Fatalf("%s: no bound providers", s.Name())
		}
		if s.App() == "" {
			t.Fatalf("%s: empty app name", s.Name())
		}
	}
}
