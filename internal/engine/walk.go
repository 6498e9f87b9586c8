package engine

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aicred/aicred/internal/scanners"
	"github.com/aicred/aicred/internal/types"
)

// expandCandidate resolves one candidate path into concrete files. Missing
// candidates disappear silently, since absence is the normal case. A
// directory candidate expands to the handled files inside it, in lexical
// walk order.
func expandCandidate(s scanners.Scanner, cand string) ([]string, []types.ScanError) {
	info, err := os.Stat(cand)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, []types.ScanError{{Path: cand, Message: err.Error()}}
	}
	if !info.IsDir() {
		return []string{cand}, nil
	}
	var files []string
	var errs []types.ScanError
	_ = filepath.WalkDir(cand, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			errs = append(errs, types.ScanError{Path: p, Message: err.Error()})
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if s.CanHandle(p) {
			files = append(files, p)
		}
		return nil
	})
	return files, errs
}

func looksBinary(b []byte) bool {
	const sniff = 800
	n := sniff
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return true
		}
	}
	return false
}
