package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/libforge/phpgen/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "phpgen %s\n", version.GetFullVersion())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
