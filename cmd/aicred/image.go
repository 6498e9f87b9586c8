package aicred

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aicred/aicred/internal/image"
	"github.com/aicred/aicred/internal/redact"
	"github.com/aicred/aicred/internal/report"
)

var imageFullValues bool

func init() {
	cmd := &cobra.Command{
		Use:   "image <reference>",
		Short: "Scan a container image's config for GenAI credentials",
		Long: "Fetch the image config from its registry and check environment " +
			"variables and labels for provider credentials. Only metadata is " +
			"downloaded, never the layers.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			findings, err := image.ScanImage(args[0])
			if err != nil {
				return err
			}
			if !imageFullValues {
				for i := range findings {
					findings[i].Value = redact.Mask(findings[i].Value)
				}
			}

			out := cmd.OutOrStdout()
			switch {
			case flagSARIF:
				return report.WriteSARIF(out, findings, version)
			case flagJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(findings)
			case flagNDJSON:
				return report.WriteNDJSON(out, findings)
			default:
				noColor := flagNoColor || !term.IsTerminal(int(os.Stdout.Fd()))
				report.PrintTable(out, findings, report.PrintOptions{NoColor: noColor})
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&imageFullValues, "full-values", false, "report full credential values instead of redacted ones")
	rootCmd.AddCommand(cmd)
}
