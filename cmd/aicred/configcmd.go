package aicred

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aicred/aicred/internal/config"
)

var (
	cfgOutput      string
	cfgHome        string
	cfgFormat      string
	cfgMaxFileSize int64
	cfgFullValues  bool
	cfgOnly        string
	cfgExclude     string
	cfgFailOn      string
	cfgNoColor     bool
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .aicred.yml with the selected options",
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", ".aicred.yml", "output file path")
	initCmd.Flags().StringVar(&cfgHome, "home", "", "home directory to scan")
	initCmd.Flags().StringVar(&cfgFormat, "format", "", "default output format: table | text | json | sarif | ndjson")
	initCmd.Flags().Int64Var(&cfgMaxFileSize, "max-file-size", 1<<20, "skip files larger than this")
	initCmd.Flags().BoolVar(&cfgFullValues, "full-values", false, "report full credential values by default")
	initCmd.Flags().StringVar(&cfgOnly, "only", "", "only report these providers (comma-separated names)")
	initCmd.Flags().StringVar(&cfgExclude, "exclude", "", "never report these providers (comma-separated names)")
	initCmd.Flags().StringVar(&cfgFailOn, "fail-on", "", "exit 1 when findings reach possible|likely|certain")
	initCmd.Flags().BoolVar(&cfgNoColor, "no-color", false, "disable color output by default")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	fc := config.FileConfig{
		Home:             optStrPtr(cfgHome),
		Format:           optStrPtr(cfgFormat),
		MaxFileSize:      int64Ptr(cfgMaxFileSize),
		FullValues:       boolPtr(cfgFullValues),
		OnlyProviders:    optStrPtr(cfgOnly),
		ExcludeProviders: optStrPtr(cfgExclude),
		NoColor:          boolPtr(cfgNoColor),
		FailOn:           optStrPtr(cfgFailOn),
	}

	b, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgOutput, b, 0644); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", cfgOutput)
	return nil
}

func optStrPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }
