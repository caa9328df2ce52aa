package git

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// PreCommitScript is the project-relative path of the generated hook.
const PreCommitScript = "contrib/pre-commit"

// InstallPreCommitHook links projectDir's contrib/pre-commit into the
// repository hooks directory with a relative symlink, so later edits to
// the script take effect without reinstalling. projectDir may be a
// subdirectory of the work tree; the hook then runs that project's script
// for the whole repository. It reports whether a link was created; an
// existing link to the same script is left alone.
func (r *Repository) InstallPreCommitHook(projectDir string) (bool, error) {
	// git reports resolved paths; resolve projectDir too so Rel is exact.
	dir, err := filepath.EvalSymlinks(projectDir)
	if err != nil {
		return false, fmt.Errorf("resolve project dir: %w", err)
	}
	script := filepath.Join(dir, filepath.FromSlash(PreCommitScript))
	if _, err := os.Stat(script); err != nil {
		return false, fmt.Errorf("pre-commit script: %w", err)
	}

	hooksDir := filepath.Join(r.gitDir, "hooks")
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return false, fmt.Errorf("create hooks dir: %w", err)
	}

	target, err := filepath.Rel(hooksDir, script)
	if err != nil {
		return false, fmt.Errorf("relative hook target: %w", err)
	}
	hook := filepath.Join(hooksDir, "pre-commit")

	existing, err := os.Readlink(hook)
	switch {
	case err == nil && existing == target:
		r.logger.Debug("pre-commit hook already linked", "hook", hook)
		return false, nil
	case err == nil:
		return false, fmt.Errorf("%w: %s points to %s", ErrHookConflict, hook, existing)
	case !errors.Is(err, fs.ErrNotExist):
		// A regular file (Readlink reports EINVAL) is someone's own hook.
		if _, statErr := os.Lstat(hook); statErr == nil {
			return false, fmt.Errorf("%w: %s", ErrHookConflict, hook)
		}
		return false, fmt.Errorf("inspect hook: %w", err)
	}

	if err := os.Symlink(target, hook); err != nil {
		return false, fmt.Errorf("link pre-commit hook: %w", err)
	}
	r.logger.Debug("pre-commit hook linked", "hook", hook, "target", target)
	return true, nil
}
