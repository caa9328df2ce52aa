package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/libforge/phpgen/internal/cli/wizard"
	"github.com/libforge/phpgen/internal/composer"
	"github.com/libforge/phpgen/internal/config"
	"github.com/libforge/phpgen/internal/core/naming"
	"github.com/libforge/phpgen/internal/core/project"
	"github.com/libforge/phpgen/internal/defs"
	"github.com/libforge/phpgen/internal/template"
	"github.com/libforge/phpgen/internal/ui"
)

var newCmd = &cobra.Command{
	Use:     "new [directory]",
	Aliases: []string{"init"},
	Short:   "Generate a new PHP library",
	Long: `Generate a new PHP library in the given directory (default: the current
directory).

Answers can be given as flags or in a YAML file passed with --answers;
anything missing is asked for interactively. Flags take precedence over
the answers file.

Examples:
  phpgen new http-client
  phpgen new --vendor Acme --project 'Http\Client' --non-interactive
  phpgen new . --answers phpgen.yaml --skip-install
  phpgen new http-client --git
  phpgen new --author "Jo Doe <jo@example.com>" --vendor Acme --project Log`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: validateNewFlags,
	RunE:    runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
	registerNewFlags(newCmd)
}

// registerNewFlags adds the flags of the new command to cmd.
func registerNewFlags(cmd *cobra.Command) {
	cmd.Flags().String("vendor", "", `PHP vendor namespace, e.g. "Acme"`)
	cmd.Flags().String("project", "", `PHP project namespace, e.g. "Http\Client"`)
	cmd.Flags().String("vendor-slug", "", "Composer vendor name (default: remembered value or lower-cased vendor namespace)")
	cmd.Flags().String("package", "", "Composer package name (default: <vendor-slug>/<project>)")
	cmd.Flags().String("license", "", "SPDX license identifier (default: "+composer.DefaultLicense+")")
	cmd.Flags().String("description", "", "Package description for composer.json")
	cmd.Flags().StringArray("author", nil, `Package author as "Name <email>" (repeatable)`)
	cmd.Flags().String("php", "", `PHP version constraint for composer.json, e.g. "^8.1"`)
	cmd.Flags().String("answers", "", "YAML file holding answers")
	cmd.Flags().Bool("non-interactive", false, "Never prompt; fail when a required answer is missing")
	cmd.Flags().Bool("force", false, "Overwrite files that already exist")
	cmd.Flags().Bool("skip-install", false, "Do not run composer install")
	cmd.Flags().Bool("git", false, "Initialize a Git repository and link the pre-commit hook")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// getStringArrayFlag retrieves a repeatable string flag value from the command.
func getStringArrayFlag(cmd *cobra.Command, name string) []string {
	val, err := cmd.Flags().GetStringArray(name)
	if err != nil {
		return nil
	}
	return val
}

// parseAuthors converts "Name <email>" strings into manifest authors.
func parseAuthors(values []string) ([]composer.Author, error) {
	authors := make([]composer.Author, 0, len(values))
	for _, v := range values {
		a, err := composer.ParseAuthor(v)
		if err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	return authors, nil
}

// validateNewFlags validates flag values before execution.
func validateNewFlags(cmd *cobra.Command, _ []string) error {
	for _, name := range []string{"vendor", "project"} {
		if v := getStringFlag(cmd, name); v != "" {
			if err := naming.ValidateNamespaceSegment(v); err != nil {
				return fmt.Errorf("invalid --%s value: %w", name, err)
			}
		}
	}

	if v := getStringFlag(cmd, "vendor-slug"); v != "" {
		if err := composer.ValidateVendorName(v); err != nil {
			return fmt.Errorf("invalid --vendor-slug value: %w", err)
		}
	}
	if v := getStringFlag(cmd, "package"); v != "" {
		if err := composer.ValidatePackageName(v); err != nil {
			return fmt.Errorf("invalid --package value: %w", err)
		}
	}
	if err := composer.ValidateConstraint(getStringFlag(cmd, "php")); err != nil {
		return fmt.Errorf("invalid --php value: %w", err)
	}
	if _, err := parseAuthors(getStringArrayFlag(cmd, "author")); err != nil {
		return fmt.Errorf("invalid --author value: %w", err)
	}

	return nil
}

// newInputs are the values gathered from flags and the answers file.
type newInputs struct {
	answers     wizard.Answers
	license     string
	description string
	php         string
	authors     []string
}

// collectInputs reads the flags and merges the answers file under them.
func collectInputs(cmd *cobra.Command) (*newInputs, error) {
	in := &newInputs{
		answers: wizard.Answers{
			VendorNamespace:  getStringFlag(cmd, "vendor"),
			ProjectNamespace: getStringFlag(cmd, "project"),
			VendorSlug:       getStringFlag(cmd, "vendor-slug"),
			PackageName:      getStringFlag(cmd, "package"),
		},
		license:     getStringFlag(cmd, "license"),
		description: getStringFlag(cmd, "description"),
		php:         getStringFlag(cmd, "php"),
		authors:     getStringArrayFlag(cmd, "author"),
	}

	path := getStringFlag(cmd, "answers")
	if path == "" {
		return in, nil
	}

	af, err := loadAnswersFile(path)
	if err != nil {
		return nil, err
	}
	in.answers.Merge(af.Answers)
	if in.license == "" {
		in.license = af.License
	}
	if in.description == "" {
		in.description = af.Description
	}
	if in.php == "" {
		in.php = af.PHP
	}
	if len(in.authors) == 0 {
		in.authors = af.Authors
	}
	return in, nil
}

// resolveProjectRoot returns the absolute project directory for args.
func resolveProjectRoot(args []string) (string, error) {
	if len(args) > 0 && args[0] != "." {
		root, err := filepath.Abs(args[0])
		if err != nil {
			return "", fmt.Errorf("resolve project path %q: %w", args[0], err)
		}
		return root, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return cwd, nil
}

// runNew executes the project generation workflow.
func runNew(cmd *cobra.Command, args []string) error {
	if deps == nil {
		return errNoDeps
	}
	d := deps

	root, err := resolveProjectRoot(args)
	if err != nil {
		return err
	}
	in, err := collectInputs(cmd)
	if err != nil {
		return err
	}

	store, err := settingsStore()
	if err != nil {
		return err
	}
	mapping, err := config.LoadVendorMapping(store)
	if err != nil {
		return err
	}
	defaults := wizard.Defaults{
		LastVendor: store.GetString(defs.LastVendorNamespaceKey),
		Mapping:    mapping,
	}

	answers := in.answers
	if !getBoolFlag(cmd, "non-interactive") && !d.Headless.IsHeadless() {
		answers, err = wizard.Run(wizard.DefaultQuestions(), answers, defaults)
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Generation cancelled.")
				return nil
			}
			return err
		}
	}

	answers, err = wizard.Complete(answers, defaults)
	if err != nil {
		if errors.Is(err, wizard.ErrMissingAnswer) {
			return fmt.Errorf("%w (pass --vendor and --project, use --answers, or run in a terminal)", err)
		}
		return err
	}

	authors, err := parseAuthors(in.authors)
	if err != nil {
		return fmt.Errorf("invalid author: %w", err)
	}

	if err := rememberAnswers(store, answers, d); err != nil {
		return err
	}

	embedded, err := template.EmbeddedTemplates()
	if err != nil {
		return err
	}
	gen := project.NewGenerator(template.NewDeployer(embedded), newProgressInstaller(cmd, d), d.Logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := gen.Generate(ctx, project.Options{
		ProjectRoot:      root,
		VendorNamespace:  answers.VendorNamespace,
		ProjectNamespace: answers.ProjectNamespace,
		VendorSlug:       answers.VendorSlug,
		PackageName:      answers.PackageName,
		License:          in.license,
		Description:      in.description,
		Authors:          authors,
		PHPConstraint:    in.php,
		Force:            getBoolFlag(cmd, "force"),
		SkipInstall:      getBoolFlag(cmd, "skip-install") || d.Env.SkipInstall,
	})
	if err != nil {
		return fmt.Errorf("generate project: %w", err)
	}

	var gs gitSetup
	if getBoolFlag(cmd, "git") {
		gs = setupGit(ctx, root, d.Logger)
		if gs.warning != "" {
			result.Warnings = append(result.Warnings, gs.warning)
		}
	}

	printNewResult(cmd, d, root, result, gs)
	return nil
}

// rememberAnswers persists the vendor mapping and the last vendor
// namespace. Nothing is written when neither changed.
func rememberAnswers(store *config.Store, a wizard.Answers, d *Dependencies) error {
	wrote, err := config.RememberVendorSlug(store, a.VendorNamespace, a.VendorSlug)
	if err != nil {
		return fmt.Errorf("remember vendor name: %w", err)
	}
	d.Logger.Debug("vendor mapping", "vendor", a.VendorNamespace, "slug", a.VendorSlug, "saved", wrote)

	if store.GetString(defs.LastVendorNamespaceKey) == a.VendorNamespace {
		return nil
	}
	if err := store.Set(defs.LastVendorNamespaceKey, a.VendorNamespace); err != nil {
		return err
	}
	if err := store.Save(); err != nil {
		return fmt.Errorf("remember vendor namespace: %w", err)
	}
	return nil
}

// printNewResult writes the summary card and the next steps.
func printNewResult(cmd *cobra.Command, d *Dependencies, root string, result *project.Result, gs gitSetup) {
	out := cmd.OutOrStdout()

	details := []string{
		renderKeyValueLines([]kvPair{
			{"Directory", root},
			{"Namespace", result.Namespace},
			{"Package", result.PackageName},
			{"Files", fmt.Sprintf("%d written, %d kept", len(result.CreatedFiles), len(result.SkippedFiles))},
		}),
	}
	if gs.created {
		details = append(details, cliMuted.Render("  initialized Git repository"))
	}
	for _, f := range result.SkippedFiles {
		details = append(details, cliMuted.Render("  kept existing "+f))
	}
	for _, w := range result.Warnings {
		details = append(details, symWarning()+" "+cliWarn.Render(w))
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard("PHP library generated", details...))

	md := nextStepsMarkdown(relativeDir(root), result.Installed, gs.hookLinked)
	rendered, err := ui.RenderMarkdown(md, !d.Theme.NoColor && ui.IsTerminal(out))
	if err != nil {
		d.Logger.Debug("render next steps", "error", err)
		rendered = md
	}
	_, _ = fmt.Fprint(out, rendered)
}

// relativeDir returns root relative to the working directory when it is
// below it, and root itself otherwise.
func relativeDir(root string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return root
	}
	rel, err := filepath.Rel(cwd, root)
	if err != nil || strings.HasPrefix(rel, "..") {
		return root
	}
	return rel
}

// nextStepsMarkdown lists what to do after generation.
func nextStepsMarkdown(dir string, installed, hookLinked bool) string {
	var b strings.Builder
	b.WriteString("## Next steps\n\n")
	if dir != "." {
		fmt.Fprintf(&b, "- `cd %s`\n", dir)
	}
	if !installed {
		b.WriteString("- `composer install` to fetch the development tools\n")
	}
	if !hookLinked {
		b.WriteString("- `ln -s ../../contrib/pre-commit .git/hooks/pre-commit` to check every commit\n")
	}
	b.WriteString("- `vendor/bin/phing test` to run the test suite\n")
	return b.String()
}
