// Package registry exposes the compiled-in provider and scanner catalogs.
// Both sets are closed: nothing registers at runtime, and iteration order
// is the registration order baked into the catalogs.
package registry

import (
	"sync"

	"github.com/aicred/aicred/internal/detectors"
	"github.com/aicred/aicred/internal/scanners"
)

// Registry holds the immutable catalogs. Obtain one via Default.
type Registry struct {
	providers []detectors.Detector
	scanners  []scanners.Scanner

	providerIdx map[string]detectors.Detector
	scannerIdx  map[string]scanners.Scanner
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry, built once on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = build()
	})
	return defaultReg
}

func build() *Registry {
	r := &Registry{
		providers:   detectors.Catalog(),
		scanners:    scanners.Catalog(),
		providerIdx: make(map[string]detectors.Detector),
		scannerIdx:  make(map[string]scanners.Scanner),
	}
	for _, d := range r.providers {
		r.providerIdx[d.Name()] = d
	}
	for _, s := range r.scanners {
		r.scannerIdx[s.Name()] = s
	}
	return r
}

// Providers returns the detectors in registration order.
func (r *Registry) Providers() []detectors.Detector {
	out := make([]detectors.Detector, len(r.providers))
	copy(out, r.providers)
	return out
}

// Scanners returns the scanners in registration order.
func (r *Registry) Scanners() []scanners.Scanner {
	out := make([]scanners.Scanner, len(r.scanners))
	copy(out, r.scanners)
	return out
}

// ProviderNames returns provider names in registration order.
func (r *Registry) ProviderNames() []string {
	out := make([]string, 0, len(r.providers))
	for _, d := range r.providers {
		out = append(out, d.Name())
	}
	return out
}

// ScannerNames returns scanner names in registration order.
func (r *Registry) ScannerNames() []string {
	out := make([]string, 0, len(r.scanners))
	for _, s := range r.scanners {
		out = append(out, s.Name())
	}
	return out
}

// Provider returns the named detector, or nil.
func (r *Registry) Provider(name string) detectors.Detector {
	return r.providerIdx[name]
}

// Scanner returns the named scanner, or nil.
func (r *Registry) Scanner(name string) scanners.Scanner {
	return r.scannerIdx[name]
}
