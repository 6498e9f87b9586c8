// Package redact masks secret values for display. Masking keeps enough of
// the original to identify which credential was found without disclosing it.
package redact

import "strings"

const maskRune = '*'

// keep[Prefix|Suffix] control the mask shape: the first 3 and last 2
// characters survive, everything between is replaced rune-for-rune so the
// masked value keeps the original length.
const (
	keepPrefix = 3
	keepSuffix = 2
)

// Mask redacts v while preserving its length and its prefix/suffix hints.
// Values of 5 characters or fewer are fully masked (the kept edges would
// otherwise reveal the whole value). Mask is idempotent: masking an
// already-masked value changes nothing.
func Mask(v string) string {
	r := []rune(v)
	n := len(r)
	if n == 0 {
		return v
	}
	if n <= keepPrefix+keepSuffix {
		return strings.Repeat(string(maskRune), n)
	}
	for i := keepPrefix; i < n-keepSuffix; i++ {
		r[i] = maskRune
	}
	return string(r)
}

// Masked reports whether v already has the shape Mask produces. Used by
// display layers to avoid double-reporting redaction state.
func Masked(v string) bool {
	return v != "" && Mask(v) == v
}
