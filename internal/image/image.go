// Package image scans container image metadata for provider credentials.
// It inspects the image config (environment and labels) from the remote
// registry without pulling any layers.
package image

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/go-containerregistry/pkg/authn"
	"github.com/google/go-containerregistry/pkg/name"
	v1 "github.com/google/go-containerregistry/pkg/v1"
	"github.com/google/go-containerregistry/pkg/v1/remote"

	"github.com/aicred/aicred/internal/detectors"
	"github.com/aicred/aicred/internal/types"
)

// ScanImage fetches image metadata from the registry and runs the provider
// detectors over its environment variables and labels. Local Docker
// credentials (~/.docker/config.json) are used for authentication.
func ScanImage(imageRef string) ([]types.Finding, error) {
	ref, err := name.ParseReference(imageRef)
	if err != nil {
		return nil, fmt.Errorf("invalid image reference %q: %w", imageRef, err)
	}

	// remote.Image resolves the manifest and config only; layers stay remote.
	img, err := remote.Image(ref, remote.WithAuthFromKeychain(authn.DefaultKeychain))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image metadata for %q: %w", imageRef, err)
	}

	cfg, err := img.ConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to read config for %q: %w", imageRef, err)
	}

	return ConfigFindings(imageRef, cfg), nil
}

// ConfigFindings extracts findings from an already-fetched image config.
// Split out so the detection logic stays testable without a registry.
func ConfigFindings(imageRef string, cfg *v1.ConfigFile) []types.Finding {
	if cfg == nil {
		return nil
	}
	var out []types.Finding

	for _, kv := range cfg.Config.Env {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || v == "" {
			continue
		}
		if provider, conf := detectors.MatchAll(k, v); provider != "" {
			out = append(out, types.Finding{
				Provider:   provider,
				Scanner:    "image",
				Path:       imageRef + "::env",
				KeyName:    k,
				Value:      v,
				Confidence: conf,
			})
		}
	}

	for k, v := range cfg.Config.Labels {
		if v == "" {
			continue
		}
		if provider, conf := detectors.MatchAll(k, v); provider != "" {
			out = append(out, types.Finding{
				Provider:   provider,
				Scanner:    "image",
				Path:       imageRef + "::label",
				KeyName:    k,
				Value:      v,
				Confidence: conf,
			})
		}
	}

	return detectors.Dedupe(sortStable(out))
}

// sortStable orders label findings by key so map iteration cannot leak
// into the output order. Env findings keep their declaration order and
// always precede labels.
func sortStable(fs []types.Finding) []types.Finding {
	env := make([]types.Finding, 0, len(fs))
	labels := make([]types.Finding, 0)
	for _, f := range fs {
		if strings.HasSuffix(f.Path, "::label") {
			labels = append(labels, f)
		} else {
			env = append(env, f)
		}
	}
	sort.SliceStable(labels, func(i, j int) bool { return labels[i].KeyName < labels[j].KeyName })
	return append(env, labels...)
}
