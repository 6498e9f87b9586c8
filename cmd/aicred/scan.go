package aicred

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aicred/aicred/internal/config"
	"github.com/aicred/aicred/internal/engine"
	"github.com/aicred/aicred/internal/report"
	"github.com/aicred/aicred/internal/update"
)

var (
	flagHome        string
	flagFullValues  bool
	flagMaxFileSize int64
	flagOnly        string
	flagExclude     string
	flagTable       bool
	flagText        bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a home directory for GenAI credentials",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagHome, "home", "", "home directory to scan (default: current user's home)")
	cmd.Flags().BoolVar(&flagFullValues, "full-values", false, "report full credential values instead of redacted ones")
	cmd.Flags().Int64Var(&flagMaxFileSize, "max-file-size", 0, "skip files larger than this (default 1048576)")
	cmd.Flags().StringVar(&flagOnly, "only", "", "only report these providers (comma-separated names)")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "never report these providers (comma-separated names)")
	cmd.Flags().BoolVar(&flagTable, "table", false, "output in table format with borders (now default)")
	cmd.Flags().BoolVar(&flagText, "text", false, "output in plain text columnar format")
}

func runScan(cmd *cobra.Command, _ []string) error {
	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if wd, err := os.Getwd(); err == nil {
		if c, err := config.LoadLocal(wd); err == nil {
			lcfg = c
		}
	}

	maxSize := pickInt64(flagMaxFileSize, lcfg.MaxFileSize, gcfg.MaxFileSize)
	if maxSize <= 0 {
		maxSize = engine.DefaultMaxFileSize
	}
	opts := engine.Options{
		IncludeFullValues: pickBool(flagFullValues, lcfg.FullValues, gcfg.FullValues),
		MaxFileSize:       maxSize,
		OnlyProviders:     splitComma(pickString(flagOnly, lcfg.OnlyProviders, gcfg.OnlyProviders)),
		ExcludeProviders:  splitComma(pickString(flagExclude, lcfg.ExcludeProviders, gcfg.ExcludeProviders)),
	}
	home := pickString(flagHome, lcfg.Home, gcfg.Home)
	format := resolveFormat(pickString("", lcfg.Format, gcfg.Format))
	noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor) ||
		!term.IsTerminal(int(os.Stdout.Fd()))
	failOn := pickString(flagFailOn, lcfg.FailOn, gcfg.FailOn)

	machineOutput := format == "json" || format == "sarif" || format == "ndjson"
	if !machineOutput && !pickBool(flagNoUpdateCheck, lcfg.NoUpdateCheck, gcfg.NoUpdateCheck) {
		if latest, newer, _ := update.Check(version, false); newer && latest != "" {
			_, _ = fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'aicred update' to upgrade\n", latest)
		}
	}

	start := time.Now()
	res, err := engine.Scan(home, opts)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}
	elapsed := time.Since(start)

	out := cmd.OutOrStdout()
	switch format {
	case "sarif":
		if err := report.WriteSARIF(out, res.Findings, version); err != nil {
			return fmt.Errorf("sarif error: %w", err)
		}
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	case "ndjson":
		if err := report.WriteNDJSON(out, res.Findings); err != nil {
			return err
		}
	case "text":
		report.PrintText(out, res.Findings, report.PrintOptions{NoColor: noColor, Duration: elapsed, FilesScanned: res.ScannedFileCount})
	default:
		report.PrintTable(out, res.Findings, report.PrintOptions{NoColor: noColor, Duration: elapsed, FilesScanned: res.ScannedFileCount})
	}

	// Per-file diagnostics are part of the JSON result; in human formats
	// they go to stderr so they never pollute piped output.
	if !machineOutput {
		for _, se := range res.Errors {
			_, _ = fmt.Fprintf(os.Stderr, "warning: %s: %s\n", se.Path, se.Message)
		}
	}

	if failOn != "" && report.ShouldFail(res.Findings, failOn) {
		os.Exit(1)
	}
	return nil
}

// resolveFormat maps flags and the config file format key onto one output
// format. Flags win over config; the bordered table is the default.
func resolveFormat(cfgFormat string) string {
	switch {
	case flagSARIF:
		return "sarif"
	case flagJSON:
		return "json"
	case flagNDJSON:
		return "ndjson"
	case flagText:
		return "text"
	case flagTable:
		return "table"
	}
	switch cfgFormat {
	case "json", "sarif", "ndjson", "text", "table":
		return cfgFormat
	}
	return "table"
}
