// Package pathutil provides the path expansion and bounded-read primitives
// the discovery engine builds on. Errors are sentinels so callers can tell a
// skip from a failure.
package pathutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidPath marks input paths the engine refuses to touch.
	ErrInvalidPath = errors.New("invalid path")
	// ErrTooLarge marks files skipped for exceeding the configured size
	// bound. It is a skip, not a failure: discovery continues and the file
	// is not counted as scanned.
	ErrTooLarge = errors.New("file too large")
)

// ExpandHome resolves raw against home: "~" and "~/..." expand, relative
// paths join, absolute paths pass through cleaned. raw must be valid UTF-8
// and free of NUL bytes.
func ExpandHome(raw, home string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if strings.ContainsRune(raw, 0) {
		return "", fmt.Errorf("%w: contains NUL byte", ErrInvalidPath)
	}
	if !utf8.ValidString(raw) {
		return "", fmt.Errorf("%w: not valid UTF-8", ErrInvalidPath)
	}
	switch {
	case raw == "~":
		return filepath.Clean(home), nil
	case strings.HasPrefix(raw, "~/"):
		return filepath.Join(home, raw[2:]), nil
	case filepath.IsAbs(raw):
		return filepath.Clean(raw), nil
	default:
		return filepath.Join(home, raw), nil
	}
}

// CheckDir verifies that path exists and is a directory.
func CheckDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidPath, path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrInvalidPath, path)
	}
	return nil
}

// ReadBounded reads path in full when its size is within max bytes. Files
// larger than max return ErrTooLarge without being read. A max of 0 or less
// means unbounded, though the engine always passes a positive bound.
func ReadBounded(path string, max int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if max > 0 && info.Size() > max {
		return nil, fmt.Errorf("%w: %s (%d bytes, limit %d)", ErrTooLarge, path, info.Size(), max)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if max > 0 {
		// Size can grow between Stat and Open; the limit still holds.
		b, err := io.ReadAll(io.LimitReader(f, max+1))
		if err != nil {
			return nil, err
		}
		if int64(len(b)) > max {
			return nil, fmt.Errorf("%w: %s", ErrTooLarge, path)
		}
		return b, nil
	}
	return io.ReadAll(f)
}
