package aicred

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update aicred to the latest release",
		RunE: func(cmd *cobra.Command, _ []string) error {
			latest, err := selfUpdate()
			if err != nil {
				return fmt.Errorf("update failed: %w", err)
			}
			if latest == strings.TrimPrefix(version, "v") {
				fmt.Fprintln(cmd.OutOrStdout(), "aicred is up to date")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated to v%s; re-run your command\n", latest)
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
