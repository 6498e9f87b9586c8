package detectors

import (
	"bufio"
	"bytes"
	"math"
	"regexp"

	"github.com/aicred/aicred/internal/types"
	v "github.com/aicred/aicred/internal/validate"
)

var reAssign = regexp.MustCompile(`^\s*(?:export\s+)?["']?([A-Za-z0-9_.\-]+)["']?\s*[:=]\s*["']?([^"',\s]+)`)

// valueAlphabet is broad on purpose: tokens, base64 and dotted ids all pass.
const valueAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_-+/=."

// CommonConfig is the fallback detector: credential-shaped values under
// secret-ish key names in generic config files. It sits last in the
// catalog, so a provider attribution always wins over it.
type CommonConfig struct{}

func (CommonConfig) Name() string { return "common-config" }

func (CommonConfig) Match(key, value string) types.Confidence {
	if !reSecretKey.MatchString(key) {
		return ""
	}
	if v.IsHTTPURL(value) {
		return ""
	}
	if !v.LengthBetween(value, 16, 200) || !v.IsAlphabet(value, valueAlphabet) {
		return ""
	}
	if v.HasSecretPrefix(value) {
		return types.Likely
	}
	if entropy(value) < 3.0 {
		return ""
	}
	return types.Possible
}

func (c CommonConfig) Detect(path string, data []byte) []types.Finding {
	var out []types.Finding
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 64*1024), maxScanLine)
	line := 0
	for sc.Scan() {
		line++
		m := reAssign.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		conf := c.Match(m[1], m[2])
		if conf == "" {
			continue
		}
		out = append(out, types.Finding{
			Provider:   c.Name(),
			Path:       path,
			KeyName:    m[1],
			Value:      m[2],
			Confidence: conf,
			Line:       line,
		})
	}
	return out
}

func entropy(s string) float64 {
	if s == "" {
		return 0
	}
	count := map[rune]int{}
	for _, r := range s {
		count[r]++
	}
	H := 0.0
	n := float64(len(s))
	for _, c := range count {
		p := float64(c) / n
		H += -p * math.Log2(p)
	}
	return H
}
