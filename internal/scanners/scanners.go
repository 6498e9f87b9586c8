// Package scanners implements per-tool configuration scanners. Each
// scanner knows where one AI tool keeps its configuration on disk and how
// to pull credential material out of it.
package scanners

import "github.com/aicred/aicred/internal/types"

// Scanner locates and parses one tool's configuration.
//
// Candidates returns the ordered locations the tool is known to use; a
// candidate may be a directory, which the engine expands (sorted, filtered
// by CanHandle). Providers lists the provider names this scanner can
// attribute findings to; the first entry is the primary. Parse never
// aborts a scan: malformed content yields zero findings.
type Scanner interface {
	Name() string
	App() string
	Providers() []string
	Candidates(home string) []string
	CanHandle(path string) bool
	Parse(path string, data []byte) []types.Finding
}

// Catalog order is fixed and is the order scanners run in.
var all = []Scanner{
	Ragit{}, ClaudeDesktop{}, RooCode{}, LangChain{}, Gsh{}, Goose{}, GitCredentials{},
}

// Catalog returns the scanners in registration order.
func Catalog() []Scanner {
	out := make([]Scanner, len(all))
	copy(out, all)
	return out
}

// Names returns scanner names in registration order.
func Names() []string {
	out := make([]string, 0, len(all))
	for _, s := range all {
		out = append(out, s.Name())
	}
	return out
}

// ByName returns the scanner for a name, or nil.
func ByName(name string) Scanner {
	for _, s := range all {
		if s.Name() == name {
			return s
		}
	}
	return nil
}
