package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/libforge/phpgen/internal/composer"
	"github.com/libforge/phpgen/internal/core/naming"
	"github.com/libforge/phpgen/internal/defs"
	"github.com/libforge/phpgen/internal/template"
	"github.com/libforge/phpgen/pkg/version"
)

// Options configures project generation.
type Options struct {
	ProjectRoot      string            // Directory the project is written to. Created if missing.
	VendorNamespace  string            // PHP vendor namespace, e.g. "Acme".
	ProjectNamespace string            // PHP project namespace, e.g. `Http\Client`.
	PackageName      string            // Composer package name. Derived when empty.
	VendorSlug       string            // Composer vendor used when deriving PackageName.
	License          string            // SPDX identifier. Defaults to composer.DefaultLicense.
	Description      string            // composer.json description.
	Authors          []composer.Author // composer.json "authors" entries.
	PHPConstraint    string            // Optional "require.php" constraint, e.g. "^8.1".
	Force            bool              // Overwrite files that already exist.
	SkipInstall      bool              // Do not run "composer install".
}

// Result summarizes the outcome of a generation.
type Result struct {
	Namespace    string   // Composed PSR-4 prefix with trailing separator.
	PackageName  string   // Composer package name written to composer.json.
	CreatedDirs  []string // Directories that did not exist before.
	CreatedFiles []string // Project-relative files written.
	SkippedFiles []string // Project-relative files left untouched.
	Installed    bool     // Whether "composer install" succeeded.
	Warnings     []string // Non-fatal problems.
}

// Generator scaffolds PHP library projects.
type Generator interface {
	// Generate writes a new project according to opts.
	Generate(ctx context.Context, opts Options) (*Result, error)
}

// PHPVersionFunc reports the version of the local PHP runtime.
type PHPVersionFunc func(ctx context.Context) (string, error)

// GeneratorOption configures a Generator.
type GeneratorOption func(*projectGenerator)

// WithPHPVersionFunc replaces the probe used to compare the local PHP
// runtime against Options.PHPConstraint.
func WithPHPVersionFunc(fn PHPVersionFunc) GeneratorOption {
	return func(g *projectGenerator) {
		g.phpVersion = fn
	}
}

// projectGenerator is the concrete implementation of Generator.
type projectGenerator struct {
	deployer   template.Deployer  // May be nil to skip template deployment.
	installer  composer.Installer // May be nil to skip installation.
	phpVersion PHPVersionFunc
	logger     *slog.Logger
}

// NewGenerator creates a Generator with the given dependencies.
func NewGenerator(deployer template.Deployer, installer composer.Installer, logger *slog.Logger, opts ...GeneratorOption) Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	g := &projectGenerator{
		deployer:  deployer,
		installer: installer,
		phpVersion: func(ctx context.Context) (string, error) {
			return composer.PHPVersion(ctx, "php")
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate validates opts, writes composer.json, deploys the templates and
// runs the installer. A failed install is reported in Result.Warnings since
// the project files are already in place.
func (g *projectGenerator) Generate(ctx context.Context, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if opts.ProjectRoot == "" {
		return nil, fmt.Errorf("%w: project root is required", ErrInvalidOptions)
	}
	opts.ProjectRoot = filepath.Clean(opts.ProjectRoot)
	if err := g.validate(&opts); err != nil {
		return nil, err
	}

	result := &Result{
		Namespace:   naming.ComposeNamespace([]string{opts.VendorNamespace, opts.ProjectNamespace}, true),
		PackageName: opts.PackageName,
	}

	g.logger.Info("generating project",
		"root", opts.ProjectRoot,
		"namespace", result.Namespace,
		"package", result.PackageName,
	)

	// Step 1: Create the project root
	if err := g.createRoot(opts.ProjectRoot, result); err != nil {
		return nil, err
	}

	// Step 2: Write composer.json
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.writeManifest(opts, result); err != nil {
		return nil, err
	}

	// Step 3: Deploy templates
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if g.deployer != nil {
		tmplCtx := template.NewTemplateContext(
			template.WithNamespaces(opts.VendorNamespace, opts.ProjectNamespace),
			template.WithNamespace(result.Namespace),
			template.WithPackageName(result.PackageName),
			template.WithVersion(version.GetVersion()),
		)
		deployed, err := g.deployer.Deploy(ctx, opts.ProjectRoot, tmplCtx, opts.Force)
		if deployed != nil {
			result.CreatedFiles = append(result.CreatedFiles, deployed.Written...)
			result.SkippedFiles = append(result.SkippedFiles, deployed.Skipped...)
		}
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: deploy templates: %w", ErrGenerateFailed, err)
		}
	}

	// Step 4: Compare the local PHP runtime with the requirement
	if opts.PHPConstraint != "" {
		g.checkPHP(ctx, opts.PHPConstraint, result)
	}

	// Step 5: Install dependencies
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !opts.SkipInstall && g.installer != nil {
		if err := g.installer.Install(ctx, opts.ProjectRoot); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			result.Warnings = append(result.Warnings, fmt.Sprintf("composer install: %s", err))
			g.logger.Warn("composer install failed", "error", err)
		} else {
			result.Installed = true
		}
	}

	g.logger.Info("project generated",
		"files", len(result.CreatedFiles),
		"skipped", len(result.SkippedFiles),
		"installed", result.Installed,
	)

	return result, nil
}

// validate checks namespaces, package name and PHP constraint, filling in
// the derived package name when none was given.
func (g *projectGenerator) validate(opts *Options) error {
	if err := naming.ValidateNamespaceSegment(opts.VendorNamespace); err != nil {
		return fmt.Errorf("%w: vendor namespace: %w", ErrInvalidOptions, err)
	}
	if err := naming.ValidateNamespaceSegment(opts.ProjectNamespace); err != nil {
		return fmt.Errorf("%w: project namespace: %w", ErrInvalidOptions, err)
	}

	if opts.PackageName == "" {
		slug := opts.VendorSlug
		if slug == "" {
			slug = opts.VendorNamespace
		}
		opts.PackageName = naming.DerivePackageName(slug, opts.ProjectNamespace)
	}
	if err := composer.ValidatePackageName(opts.PackageName); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	if err := composer.ValidateConstraint(opts.PHPConstraint); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	return nil
}

// createRoot creates the project root directory if it does not exist.
func (g *projectGenerator) createRoot(root string, result *Result) error {
	info, err := os.Stat(root)
	switch {
	case err == nil && !info.IsDir():
		return fmt.Errorf("%w: %s exists and is not a directory", ErrInvalidOptions, root)
	case err == nil:
		return nil
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: stat %s: %w", ErrGenerateFailed, root, err)
	}

	if err := os.MkdirAll(root, defs.DirPerm); err != nil {
		return fmt.Errorf("%w: mkdir %s: %w", ErrGenerateFailed, root, err)
	}
	result.CreatedDirs = append(result.CreatedDirs, root)
	return nil
}

// writeManifest writes composer.json unless it exists and Force is unset.
func (g *projectGenerator) writeManifest(opts Options, result *Result) error {
	manifestPath := filepath.Join(opts.ProjectRoot, defs.ComposerJSON)
	if !opts.Force {
		if _, err := os.Stat(manifestPath); err == nil {
			g.logger.Info("composer.json already exists, skipping", "path", manifestPath)
			result.SkippedFiles = append(result.SkippedFiles, defs.ComposerJSON)
			return nil
		}
	}

	manifestOpts := []composer.ManifestOption{
		composer.WithLicense(opts.License),
		composer.WithDescription(opts.Description),
		composer.WithPHP(opts.PHPConstraint),
	}
	for _, a := range opts.Authors {
		manifestOpts = append(manifestOpts, composer.WithAuthor(a.Name, a.Email))
	}
	manifest := composer.NewManifest(result.PackageName, result.Namespace, manifestOpts...)
	data, err := manifest.Marshal()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGenerateFailed, err)
	}
	if err := os.WriteFile(manifestPath, data, defs.FilePerm); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrGenerateFailed, defs.ComposerJSON, err)
	}

	result.CreatedFiles = append(result.CreatedFiles, defs.ComposerJSON)
	return nil
}

// checkPHP records a warning when the local PHP runtime does not satisfy
// constraint. A missing runtime is only logged.
func (g *projectGenerator) checkPHP(ctx context.Context, constraint string, result *Result) {
	if g.phpVersion == nil {
		return
	}
	v, err := g.phpVersion(ctx)
	if err != nil {
		g.logger.Debug("php version probe failed", "error", err)
		return
	}
	ok, err := composer.ConstraintAllows(constraint, v)
	if err != nil {
		g.logger.Debug("php version comparison failed", "version", v, "error", err)
		return
	}
	if !ok {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("local PHP %s does not satisfy %q", v, constraint))
	}
}
