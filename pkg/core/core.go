package core

import (
	"github.com/aicred/aicred/internal/engine"
	"github.com/aicred/aicred/internal/redact"
	"github.com/aicred/aicred/internal/registry"
	"github.com/aicred/aicred/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type Options = engine.Options
type Result = engine.Result
type Finding = types.Finding
type ScanError = types.ScanError
type Confidence = types.Confidence

const (
	Certain  = types.Certain
	Likely   = types.Likely
	Possible = types.Possible
)

// ErrInvalidOptions is returned by Scan and ParseOptions when the scan
// options are structurally invalid.
var ErrInvalidOptions = engine.ErrInvalidOptions

// DefaultOptions returns the options an empty configuration implies.
func DefaultOptions() Options { return engine.DefaultOptions() }

// ParseOptions decodes a JSON options document. Empty input yields defaults.
func ParseOptions(raw []byte) (Options, error) { return engine.DecodeOptions(raw) }

// Scan is the stable entrypoint for other programs. An empty home falls
// back to opts.HomeDir, then to the current user's home directory.
func Scan(home string, opts Options) (Result, error) {
	return engine.Scan(home, opts)
}

// Providers returns the provider names in registration order.
// Exposed for convenience to avoid importing internals directly.
func Providers() []string { return registry.Default().ProviderNames() }

// Scanners returns the scanner names in registration order.
func Scanners() []string { return registry.Default().ScannerNames() }

// Redact masks a credential value the same way scan output does.
func Redact(value string) string { return redact.Mask(value) }
