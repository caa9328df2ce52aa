package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/libforge/phpgen/internal/core/git"
)

// gitSetup is the outcome of preparing the project as a Git repository.
type gitSetup struct {
	created    bool
	hookLinked bool
	warning    string
}

// setupGit initializes a repository in root (unless it is already inside
// one) and links the generated pre-commit hook. Failures are returned as a
// warning because the project files are already in place.
func setupGit(ctx context.Context, root string, logger *slog.Logger) gitSetup {
	repo, created, err := git.Init(ctx, root, logger)
	if err != nil {
		return gitSetup{warning: fmt.Sprintf("git init: %s", err)}
	}
	s := gitSetup{created: created}

	linked, err := repo.InstallPreCommitHook(root)
	if err != nil {
		s.warning = fmt.Sprintf("pre-commit hook: %s", err)
		return s
	}
	// An existing link to the same script counts as installed.
	s.hookLinked = true
	logger.Debug("git ready", "root", repo.Root(), "created", created, "linked", linked)
	return s
}
