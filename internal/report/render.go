package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/aicred/aicred/internal/types"
)

type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
}

// PrintText writes findings one per line, sorted by path and line.
func PrintText(w io.Writer, findings []types.Finding, opts PrintOptions) {
	sortFindings(findings)
	if len(findings) == 0 {
		fmt.Fprintln(w, "No credentials found ✅")
	} else {
		maxProv := 8
		for _, f := range findings {
			if l := len(f.Provider); l > maxProv {
				maxProv = l
			}
		}
		fmt.Fprintf(w, "Findings: %d\n", len(findings))
		for _, f := range findings {
			conf := string(f.Confidence)
			if !opts.NoColor {
				conf = colorConfidence(f.Confidence)
			}
			fmt.Fprintf(w, "%-8s %-*s %-14s %s:%d  %s=%s\n",
				conf, maxProv, f.Provider, f.Scanner, f.Path, f.Line, f.KeyName, f.Value)
		}
	}
	printFooter(w, findings, opts)
}

// PrintTable writes findings as a bordered table, sorted by path and line.
func PrintTable(w io.Writer, findings []types.Finding, opts PrintOptions) {
	sortFindings(findings)
	if len(findings) == 0 {
		fmt.Fprintln(w, "No credentials found ✅")
	} else {
		tbl := tablewriter.NewTable(w)
		tbl.Header("CONFIDENCE", "PROVIDER", "SCANNER", "KEY", "LOCATION", "VALUE")
		for _, f := range findings {
			conf := string(f.Confidence)
			if !opts.NoColor {
				conf = colorConfidence(f.Confidence)
			}
			loc := f.Path
			if f.Line > 0 {
				loc = fmt.Sprintf("%s:%d", f.Path, f.Line)
			}
			tbl.Append([]string{conf, f.Provider, f.Scanner, f.KeyName, loc, f.Value})
		}
		tbl.Render()
	}
	printFooter(w, findings, opts)
}

func printFooter(w io.Writer, findings []types.Finding, opts PrintOptions) {
	certain, likely, possible := 0, 0, 0
	for _, f := range findings {
		switch f.Confidence {
		case types.Certain:
			certain++
		case types.Likely:
			likely++
		default:
			possible++
		}
	}
	if opts.Duration > 0 || opts.FilesScanned > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Findings: %d (certain: %d, likely: %d, possible: %d)\n",
			len(findings), certain, likely, possible)
		if opts.Duration > 0 {
			fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
		}
		if opts.FilesScanned > 0 {
			fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
		}
	}
}

func sortFindings(findings []types.Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Path == findings[j].Path {
			return findings[i].Line < findings[j].Line
		}
		return findings[i].Path < findings[j].Path
	})
}

func colorConfidence(c types.Confidence) string {
	switch c {
	case types.Certain:
		return "\x1b[31mCertain\x1b[0m" // red
	case types.Likely:
		return "\x1b[33mLikely\x1b[0m" // yellow
	default:
		return "\x1b[36mPossible\x1b[0m" // cyan
	}
}

// ShouldFail reports whether any finding meets the fail-on threshold.
// Unknown thresholds fall back to likely.
func ShouldFail(findings []types.Finding, failOn string) bool {
	level := map[string]int{"possible": 1, "likely": 2, "certain": 3}
	th := level[failOn]
	if th == 0 {
		th = 2
	}
	for _, f := range findings {
		if f.Confidence.Rank() >= th {
			return true
		}
	}
	return false
}
