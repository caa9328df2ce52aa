package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/libforge/phpgen/internal/composer"
	"github.com/libforge/phpgen/internal/config"
	"github.com/libforge/phpgen/internal/core/naming"
)

var vendorsCmd = &cobra.Command{
	Use:   "vendors",
	Short: "Manage remembered Composer vendor names",
	Long: `phpgen remembers which Composer vendor name you chose for each PHP
vendor namespace and offers it as the default on the next run. These
commands show and edit that mapping.`,
}

var vendorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List remembered vendor names",
	Args:  cobra.NoArgs,
	RunE:  runVendorsList,
}

var vendorsSetCmd = &cobra.Command{
	Use:   "set <vendor-namespace> <composer-vendor>",
	Short: "Remember a Composer vendor name for a PHP vendor namespace",
	Args:  cobra.ExactArgs(2),
	RunE:  runVendorsSet,
}

var vendorsForgetCmd = &cobra.Command{
	Use:   "forget <vendor-namespace>",
	Short: "Forget the Composer vendor name of a PHP vendor namespace",
	Args:  cobra.ExactArgs(1),
	RunE:  runVendorsForget,
}

func init() {
	vendorsCmd.AddCommand(vendorsListCmd, vendorsSetCmd, vendorsForgetCmd)
	rootCmd.AddCommand(vendorsCmd)
}

// settingsStore opens the settings store through the global dependencies.
func settingsStore() (*config.Store, error) {
	if deps == nil {
		return nil, errNoDeps
	}
	if err := deps.EnsureSettings(); err != nil {
		return nil, err
	}
	return deps.Settings, nil
}

func runVendorsList(cmd *cobra.Command, _ []string) error {
	store, err := settingsStore()
	if err != nil {
		return err
	}
	m, err := config.LoadVendorMapping(store)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if m.Len() == 0 {
		_, _ = fmt.Fprintln(out, cliMuted.Render("No vendor names remembered yet."))
		return nil
	}

	pairs := make([]kvPair, 0, m.Len())
	for _, vendor := range m.Vendors() {
		slug, _ := naming.LookupVendorSlug(m, vendor)
		pairs = append(pairs, kvPair{vendor, slug})
	}
	_, _ = fmt.Fprintln(out, renderKeyValueLines(pairs))
	return nil
}

func runVendorsSet(cmd *cobra.Command, args []string) error {
	vendor, slug := args[0], args[1]
	if err := naming.ValidateNamespaceSegment(vendor); err != nil {
		return err
	}
	if err := composer.ValidateVendorName(slug); err != nil {
		return err
	}

	store, err := settingsStore()
	if err != nil {
		return err
	}
	wrote, err := config.RememberVendorSlug(store, vendor, slug)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !wrote {
		_, _ = fmt.Fprintf(out, "%s %s already maps to %s\n", symSuccess(), vendor, slug)
		return nil
	}
	_, _ = fmt.Fprintf(out, "%s %s now maps to %s\n", symSuccess(), vendor, slug)
	return nil
}

func runVendorsForget(cmd *cobra.Command, args []string) error {
	store, err := settingsStore()
	if err != nil {
		return err
	}
	removed, err := config.ForgetVendorSlug(store, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !removed {
		_, _ = fmt.Fprintf(out, "%s no vendor name remembered for %s\n", symWarning(), args[0])
		return nil
	}
	_, _ = fmt.Fprintf(out, "%s forgot %s\n", symSuccess(), args[0])
	return nil
}
