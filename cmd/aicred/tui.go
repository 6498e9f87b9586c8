package aicred

import (
	"github.com/spf13/cobra"

	"github.com/aicred/aicred/internal/engine"
	"github.com/aicred/aicred/internal/tui"
	"github.com/aicred/aicred/internal/types"
)

var tuiHome string

func init() {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse findings in an interactive terminal UI",
		Long: "Scan and browse findings interactively. Values are scanned in " +
			"full but displayed redacted until revealed; nothing leaves the " +
			"terminal unless you copy it.",
		RunE: func(_ *cobra.Command, _ []string) error {
			tui.Version = version
			opts := engine.DefaultOptions()
			// The TUI redacts at display time so reveal can work without
			// rescanning. Full values never leave process memory.
			opts.IncludeFullValues = true

			scan := func() ([]types.Finding, error) {
				res, err := engine.Scan(tuiHome, opts)
				if err != nil {
					return nil, err
				}
				return res.Findings, nil
			}
			findings, err := scan()
			if err != nil {
				return err
			}
			return tui.Run(findings, scan)
		},
	}
	cmd.Flags().StringVar(&tuiHome, "home", "", "home directory to scan (default: current user's home)")
	rootCmd.AddCommand(cmd)
}
