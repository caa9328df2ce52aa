package template

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/libforge/phpgen/internal/defs"
)

// Deployer extracts the template tree and writes it into a project root.
type Deployer interface {
	// Deploy writes every template to projectRoot. Files ending in .tmpl
	// are rendered with tmplCtx and saved without the suffix. Existing files
	// are left alone unless overwrite is set.
	Deploy(ctx context.Context, projectRoot string, tmplCtx *TemplateContext, overwrite bool) (*DeployResult, error)

	// ListTemplates returns the deployment target paths of all templates.
	ListTemplates() []string
}

// DeployResult lists the project-relative paths touched by a deployment.
type DeployResult struct {
	Written []string // Files created or overwritten.
	Skipped []string // Files left untouched because they already existed.
}

// deployer is the concrete implementation of Deployer.
type deployer struct {
	fsys     fs.FS
	renderer Renderer
}

// NewDeployer creates a Deployer backed by the given filesystem. Templates
// are rendered with a Renderer over the same filesystem.
// In production the fs.FS comes from go:embed; in tests use testing/fstest.MapFS.
func NewDeployer(fsys fs.FS) Deployer {
	return &deployer{fsys: fsys, renderer: NewRenderer(fsys)}
}

// Deploy walks the template tree and writes every file to projectRoot.
// Context cancellation is checked before each file.
func (d *deployer) Deploy(ctx context.Context, projectRoot string, tmplCtx *TemplateContext, overwrite bool) (*DeployResult, error) {
	projectRoot = filepath.Clean(projectRoot)
	if tmplCtx == nil {
		tmplCtx = NewTemplateContext()
	}

	result := &DeployResult{}
	walkErr := fs.WalkDir(d.fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Directories are created on demand.
		if entry.IsDir() {
			return nil
		}

		target := TargetPath(path)
		if err := validateDeployPath(projectRoot, target); err != nil {
			return err
		}

		destPath := filepath.Join(projectRoot, filepath.FromSlash(target))
		if !overwrite {
			if _, statErr := os.Stat(destPath); statErr == nil {
				result.Skipped = append(result.Skipped, target)
				return nil
			} else if !errors.Is(statErr, fs.ErrNotExist) {
				return fmt.Errorf("template deploy stat %q: %w", destPath, statErr)
			}
		}

		content, err := d.content(path, tmplCtx)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(filepath.Dir(destPath), defs.DirPerm); err != nil {
			return fmt.Errorf("template deploy mkdir %q: %w", filepath.Dir(destPath), err)
		}

		perm := defs.FilePerm
		if isExecutable(target) {
			perm = defs.ExecPerm
		}
		if err := os.WriteFile(destPath, content, perm); err != nil {
			return fmt.Errorf("template deploy write %q: %w", destPath, err)
		}
		// WriteFile keeps the mode of an existing file; force it on overwrite.
		if err := os.Chmod(destPath, perm); err != nil {
			return fmt.Errorf("template deploy chmod %q: %w", destPath, err)
		}

		result.Written = append(result.Written, target)
		return nil
	})
	if walkErr != nil {
		return result, walkErr
	}

	return result, nil
}

// content returns the bytes to write for a template path, rendering .tmpl files.
func (d *deployer) content(path string, tmplCtx *TemplateContext) ([]byte, error) {
	if isTemplate(path) {
		rendered, err := d.renderer.Render(path, tmplCtx)
		if err != nil {
			return nil, fmt.Errorf("template render %q: %w", path, err)
		}
		return rendered, nil
	}

	raw, err := fs.ReadFile(d.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("template deploy read %q: %w", path, err)
	}
	return raw, nil
}

// ListTemplates returns sorted deployment target paths of all templates.
func (d *deployer) ListTemplates() []string {
	var list []string

	_ = fs.WalkDir(d.fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip errors during listing
		}
		if entry.IsDir() {
			return nil
		}
		list = append(list, TargetPath(path))
		return nil
	})

	slices.Sort(list)
	return list
}

// validateDeployPath ensures a target path does not escape projectRoot.
func validateDeployPath(projectRoot, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absProjectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}

	absPath := filepath.Join(absProjectRoot, cleaned)
	if !strings.HasPrefix(absPath, absProjectRoot+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q escapes project root", ErrPathTraversal, relPath)
	}

	return nil
}
