package aicred

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON          bool
	flagSARIF         bool
	flagNDJSON        bool
	flagNoColor       bool
	flagFailOn        string
	flagNoUpdateCheck bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the aicred CLI.
var rootCmd = &cobra.Command{
	Use:           "aicred",
	Short:         "Find GenAI credentials on your machine",
	Long:          "aicred inspects the config files that AI tools leave under your home directory and reports API keys for OpenAI, Anthropic, Groq and other GenAI providers.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the aicred CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit the full scan result as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0")
	rootCmd.PersistentFlags().BoolVar(&flagNDJSON, "ndjson", false, "emit one finding per line as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().StringVar(&flagFailOn, "fail-on", "", "exit 1 when findings reach possible|likely|certain (empty = never)")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
}
