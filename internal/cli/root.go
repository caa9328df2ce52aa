package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/libforge/phpgen/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "phpgen",
	Short: "Scaffold PHP libraries",
	Long: `phpgen creates the skeleton of a PHP library: composer.json with PSR-4
autoloading, CI and lint configuration, a phing build file, a pre-commit
hook and empty src/ and tests/ directories. It then runs composer install.

The Composer vendor name chosen for each PHP vendor namespace is
remembered in the settings file and offered as the default next time.`,
	Version:           version.GetVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: configureLogging,
}

// Execute initializes dependencies and runs the root command. Errors are
// printed to stderr before being returned.
func Execute(ctx context.Context) error {
	err := InitDependencies()
	if err == nil {
		err = rootCmd.ExecuteContext(ctx)
	}
	if err != nil {
		_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "%s %v\n", symError(), err)
	}
	return err
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("phpgen %s\n", version.GetVersion()))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log progress to stderr")
}

// configureLogging switches the logger to debug output on stderr when
// --verbose is given.
func configureLogging(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return nil
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil || !verbose {
		return nil
	}
	deps.EnableVerbose(cmd.ErrOrStderr())
	return nil
}
