package aicred

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aicred/aicred/internal/registry"
)

func init() {
	cmd := &cobra.Command{
		Use:   "scanners",
		Short: "List known tool scanners",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range registry.Default().ScannerNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
	rootCmd.AddCommand(cmd)
}
