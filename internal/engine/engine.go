package engine

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aicred/aicred/internal/pathutil"
	"github.com/aicred/aicred/internal/redact"
	"github.com/aicred/aicred/internal/registry"
	"github.com/aicred/aicred/internal/types"
)

// ErrInvalidOptions marks structurally invalid scan options.
var ErrInvalidOptions = errors.New("invalid options")

// DefaultMaxFileSize bounds per-file reads when options omit the limit.
const DefaultMaxFileSize int64 = 1 << 20

// Options controls scanning behavior. HomeDir is a fallback root for
// callers that carry everything in one options document; the home
// argument to Scan wins when both are set.
type Options struct {
	IncludeFullValues bool
	MaxFileSize       int64
	OnlyProviders     []string
	ExcludeProviders  []string
	HomeDir           string
}

// optionsJSON mirrors the boundary wire shape. max_file_size decodes
// through a pointer so an absent field and an explicit zero stay
// distinguishable: absent means the default, zero is an error.
type optionsJSON struct {
	IncludeFullValues *bool    `json:"include_full_values"`
	MaxFileSize       *int64   `json:"max_file_size"`
	OnlyProviders     []string `json:"only_providers"`
	ExcludeProviders  []string `json:"exclude_providers"`
	HomeDir           string   `json:"home_dir"`
}

// DefaultOptions returns the options used when the caller passes none.
func DefaultOptions() Options {
	return Options{MaxFileSize: DefaultMaxFileSize}
}

// DecodeOptions parses the boundary JSON form. Empty input yields the
// defaults; a present max_file_size <= 0 is rejected rather than silently
// scanning nothing. Unknown provider names in the filter lists are kept
// as-is and simply never match.
func DecodeOptions(raw []byte) (Options, error) {
	opts := DefaultOptions()
	if len(bytes.TrimSpace(raw)) == 0 {
		return opts, nil
	}
	var oj optionsJSON
	if err := json.Unmarshal(raw, &oj); err != nil {
		return opts, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	if oj.IncludeFullValues != nil {
		opts.IncludeFullValues = *oj.IncludeFullValues
	}
	if oj.MaxFileSize != nil {
		if *oj.MaxFileSize <= 0 {
			return opts, fmt.Errorf("%w: max_file_size must be positive", ErrInvalidOptions)
		}
		opts.MaxFileSize = *oj.MaxFileSize
	}
	opts.OnlyProviders = oj.OnlyProviders
	opts.ExcludeProviders = oj.ExcludeProviders
	opts.HomeDir = oj.HomeDir
	return opts, nil
}

// Result aggregates everything one scan produced. Findings keep their
// discovery order; Errors are the absorbed per-file diagnostics.
type Result struct {
	Findings         []types.Finding   `json:"findings"`
	Errors           []types.ScanError `json:"errors"`
	ScannedFileCount int               `json:"scanned_file_count"`
}

// Scan walks every effective scanner's candidate paths under home and
// aggregates findings. It is synchronous, and deterministic for a fixed
// tree: scanner registration order, then candidate order, then extraction
// order within each file. Only engine-level preconditions fail the call;
// per-file trouble lands in Result.Errors.
func Scan(home string, opts Options) (Result, error) {
	var result Result
	if opts.MaxFileSize <= 0 {
		return result, fmt.Errorf("%w: max_file_size must be positive", ErrInvalidOptions)
	}
	if strings.TrimSpace(home) == "" {
		home = opts.HomeDir
	}
	resolved, err := resolveHome(home)
	if err != nil {
		return result, err
	}
	if err := pathutil.CheckDir(resolved); err != nil {
		return result, err
	}

	filter := newProviderFilter(opts.OnlyProviders, opts.ExcludeProviders)

	for _, s := range registry.Default().Scanners() {
		if !filter.AnyAllowed(s.Providers()) {
			continue
		}
		for _, cand := range s.Candidates(resolved) {
			files, errs := expandCandidate(s, cand)
			result.Errors = append(result.Errors, errs...)
			for _, path := range files {
				data, err := pathutil.ReadBounded(path, opts.MaxFileSize)
				if err != nil {
					if errors.Is(err, pathutil.ErrTooLarge) {
						// oversized files are skipped, not failed
						continue
					}
					result.Errors = append(result.Errors, types.ScanError{Path: path, Message: err.Error()})
					continue
				}
				result.ScannedFileCount++
				if looksBinary(data) {
					continue
				}
				for _, f := range s.Parse(path, data) {
					if !filter.Allowed(f.Provider) {
						continue
					}
					f.Scanner = s.Name()
					if !opts.IncludeFullValues {
						f = f.WithValue(redact.Mask(f.Value))
					}
					result.Findings = append(result.Findings, f)
				}
			}
		}
	}

	if result.Findings == nil {
		result.Findings = []types.Finding{}
	}
	if result.Errors == nil {
		result.Errors = []types.ScanError{}
	}
	return result, nil
}

// resolveHome turns the caller-supplied home path into a concrete
// directory path, consulting the OS for "" and ~ forms.
func resolveHome(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: resolve home: %v", pathutil.ErrInvalidPath, err)
		}
		return h, nil
	}
	base := ""
	if raw == "~" || strings.HasPrefix(raw, "~/") {
		h, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: resolve home: %v", pathutil.ErrInvalidPath, err)
		}
		base = h
	}
	return pathutil.ExpandHome(raw, base)
}
