package image

import (
	"testing"

	v1 "github.com/google/go-containerregistry/pkg/v1"
	"github.com/stretchr/testify/assert"

	"github.com/aicred/aicred/internal/types"
)

func TestScanImage_InvalidRef(t *testing.T) {
	_, err := ScanImage("invalid reference")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid image reference")
}

// Note: Valid registry tests require network and valid credentials or a public image.
// We skip them here to keep unit tests fast and hermetic.

func TestConfigFindings_Env(t *testing.T) {
	cfg := &v1.ConfigFile{
		Config: v1.Config{
			Env: []string{
				"PATH=/usr/bin",
				"OPENAI_API_KEY=sk-abcdefghijklmnopqrstuvwxyz123456",
				"ANTHROPIC_API_KEY=sk-ant-REDACTED",
				"EMPTY=",
			},
		},
	}
	fs := ConfigFindings("ghcr.io/acme/app:latest", cfg)
	assert.Len(t, fs, 2)
	assert.Equal(t, "openai", fs[0].Provider)
	assert.Equal(t, types.Certain, fs[0].Confidence)
	assert.Equal(t, "ghcr.io/acme/app:latest::env", fs[0].Path)
	assert.Equal(t, "image", fs[0].Scanner)
	assert.Equal(t, "anthropic", fs[1].Provider)
}

func TestConfigFindings_LabelsSorted(t *testing.T) {
	cfg := &v1.ConfigFile{
		Config: v1.Config{
			Labels: map[string]string{
				"z.api_key": "gsk_abcdefghijklmnopqrstuvwx",
				"a.api_key": "hf_abcdefghijklmnopqrst",
			},
		},
	}
	fs := ConfigFindings("acme/app", cfg)
	assert.Len(t, fs, 2)
	assert.Equal(t, "a.api_key", fs[0].KeyName)
	assert.Equal(t, "huggingface", fs[0].Provider)
	assert.Equal(t, "z.api_key", fs[1].KeyName)
	assert.Equal(t, "groq", fs[1].Provider)
}

func TestConfigFindings_NilConfig(t *testing.T) {
	assert.Nil(t, ConfigFindings("acme/app", nil))
}

func TestConfigFindings_NoCredentials(t *testing.T) {
	cfg := &v1.ConfigFile{
		Config: v1.Config{Env: []string{"LANG=C.UTF-8", "TERM=xterm"}},
	}
	assert.Empty(t, ConfigFindings("acme/app", cfg))
}
