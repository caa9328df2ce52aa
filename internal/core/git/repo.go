package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTimeout bounds a single git invocation.
const DefaultTimeout = 10 * time.Second

// Repository is a Git work tree on disk.
type Repository struct {
	root   string
	gitDir string
	logger *slog.Logger
}

// Open returns the repository containing path.
// Returns ErrNotRepository if path is not inside a Git work tree.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path %s: %w", path, err)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	root, err := execGit(ctx, absPath, "rev-parse", "--show-toplevel")
	if err != nil {
		if isNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("open repository at %s: %w", absPath, ErrNotRepository)
	}

	gitDir, err := execGit(ctx, absPath, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return nil, fmt.Errorf("locate git dir: %w", err)
	}

	r := &Repository{
		root:   filepath.Clean(root),
		gitDir: filepath.Clean(gitDir),
		logger: logger.With("module", "git"),
	}
	r.logger.Debug("repository opened", "root", r.root)
	return r, nil
}

// Init creates a repository in dir unless dir already belongs to one.
// The boolean reports whether a new repository was created.
func Init(ctx context.Context, dir string, logger *slog.Logger) (*Repository, bool, error) {
	r, err := Open(ctx, dir, logger)
	if err == nil {
		return r, false, nil
	}
	if isNotFound(err) {
		return nil, false, err
	}

	initCtx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()
	if _, err := execGit(initCtx, dir, "init", "--quiet"); err != nil {
		return nil, false, fmt.Errorf("init repository in %s: %w", dir, err)
	}

	r, err = Open(ctx, dir, logger)
	if err != nil {
		return nil, false, err
	}
	return r, true, nil
}

// Root returns the absolute path of the work tree.
func (r *Repository) Root() string {
	return r.root
}

// GitDir returns the absolute path of the repository's git directory.
func (r *Repository) GitDir() string {
	return r.gitDir
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrSystemGitNotFound)
}

// execGit executes a git command in the given directory and returns stdout.
// It sets GIT_TERMINAL_PROMPT=0 and LC_ALL=C for consistent behavior.
func execGit(ctx context.Context, dir string, args ...string) (string, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return "", fmt.Errorf("system git lookup: %w", ErrSystemGitNotFound)
	}

	cmd := exec.CommandContext(ctx, gitPath, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_TERMINAL_PROMPT=0",
		"LC_ALL=C",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		if len(args) > 0 {
			return "", fmt.Errorf("git %s: %s: %w", args[0], stderrStr, err)
		}
		return "", fmt.Errorf("git: %s: %w", stderrStr, err)
	}

	return strings.TrimRight(stdout.String(), "\n\r"), nil
}
