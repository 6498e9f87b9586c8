package aicred

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aicred/aicred/internal/detectors"
	"github.com/aicred/aicred/internal/redact"
	"github.com/aicred/aicred/internal/report"
	"github.com/aicred/aicred/internal/types"
)

var (
	detectKey      string
	detectContent  bool
	detectProvider string
)

func init() {
	cmd := &cobra.Command{
		Use:   "detect [value]",
		Short: "Classify a credential value (argument or stdin)",
		Long: "Classify a single credential value against the provider catalog. " +
			"With --content, stdin is treated as file content and every provider's " +
			"full-content detection runs over it instead. --provider restricts " +
			"either mode to one detector.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var only detectors.Detector
			if detectProvider != "" {
				if only = detectors.ByName(detectProvider); only == nil {
					return fmt.Errorf("unknown provider %q (available: %s)",
						detectProvider, strings.Join(detectors.Names(), ", "))
				}
			}

			if detectContent {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				var fs []types.Finding
				if only != nil {
					fs = detectors.Dedupe(only.Detect("stdin", data))
				} else {
					fs = detectors.RunAll("stdin", data)
				}
				for i := range fs {
					fs[i].Value = redact.Mask(fs[i].Value)
				}
				report.PrintTable(cmd.OutOrStdout(), fs, report.PrintOptions{NoColor: true})
				return nil
			}

			var value string
			if len(args) == 1 {
				value = args[0]
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				value = strings.TrimSpace(string(data))
			}
			if value == "" {
				return errors.New("no value to classify")
			}
			var provider string
			var conf types.Confidence
			if only != nil {
				provider, conf = only.Name(), only.Match(detectKey, value)
			} else {
				provider, conf = detectors.MatchAll(detectKey, value)
			}
			if conf == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "no provider matched")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", provider, conf)
			return nil
		},
	}
	cmd.Flags().StringVar(&detectKey, "key", "", "key name giving context (e.g. OPENAI_API_KEY)")
	cmd.Flags().BoolVar(&detectContent, "content", false, "treat stdin as file content and run full detection")
	cmd.Flags().StringVar(&detectProvider, "provider", "", "run only the named provider's detector")
	rootCmd.AddCommand(cmd)
}
