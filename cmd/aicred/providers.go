package aicred

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aicred/aicred/internal/registry"
)

func init() {
	cmd := &cobra.Command{
		Use:   "providers",
		Short: "List known credential providers",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range registry.Default().ProviderNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
	rootCmd.AddCommand(cmd)
}
