package engine

import (
	doublestar "github.com/bmatcuk/doublestar/v4"
)

// providerFilter applies the only/exclude provider sets. Exclusion wins
// over inclusion; unknown names never match anything, which makes them
// silently ignorable. Entries may be glob patterns, so "co*" covers both
// cohere and common-config, while a plain name stays an exact match.
type providerFilter struct {
	only    []string
	exclude []string
}

func newProviderFilter(only, exclude []string) providerFilter {
	return providerFilter{only: only, exclude: exclude}
}

func matchesProvider(patterns []string, provider string) bool {
	for _, p := range patterns {
		if p == provider {
			return true
		}
		if ok, _ := doublestar.Match(p, provider); ok {
			return true
		}
	}
	return false
}

// Allowed reports whether findings for provider pass the filter.
func (f providerFilter) Allowed(provider string) bool {
	if matchesProvider(f.exclude, provider) {
		return false
	}
	if len(f.only) > 0 && !matchesProvider(f.only, provider) {
		return false
	}
	return true
}

// AnyAllowed reports whether at least one bound provider passes, which
// decides whether a scanner runs at all.
func (f providerFilter) AnyAllowed(providers []string) bool {
	for _, p := range providers {
		if f.Allowed(p) {
			return true
		}
	}
	return false
}
