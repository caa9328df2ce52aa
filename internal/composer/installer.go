package composer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
)

// Installer installs the dependencies of a generated project.
type Installer interface {
	// Install runs the dependency installation inside dir.
	Install(ctx context.Context, dir string) error
}

// CommandInstaller runs "<bin> install" as a child process.
type CommandInstaller struct {
	bin      string
	stdout   io.Writer
	stderr   io.Writer
	lookPath func(string) (string, error)
	logger   *slog.Logger
}

// NewInstaller creates a CommandInstaller for the given Composer executable.
// Output of the child process goes to stdout and stderr; nil discards it.
func NewInstaller(bin string, stdout, stderr io.Writer, logger *slog.Logger) *CommandInstaller {
	if bin == "" {
		bin = "composer"
	}
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &CommandInstaller{
		bin:      bin,
		stdout:   stdout,
		stderr:   stderr,
		lookPath: exec.LookPath,
		logger:   logger,
	}
}

// Install runs "composer install" in dir. Cancelling ctx kills the process.
func (i *CommandInstaller) Install(ctx context.Context, dir string) error {
	path, err := i.lookPath(i.bin)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrComposerNotFound, i.bin)
	}

	i.logger.Info("running composer install", "bin", path, "dir", dir)

	cmd := exec.CommandContext(ctx, path, "install")
	cmd.Dir = dir
	cmd.Stdout = i.stdout
	cmd.Stderr = i.stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %w", ErrInstallFailed, err)
	}
	return nil
}

// PHPVersion asks the php binary for its version (e.g. "8.3.4").
func PHPVersion(ctx context.Context, phpBin string) (string, error) {
	if phpBin == "" {
		phpBin = "php"
	}
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, phpBin, "-r", "echo PHP_VERSION;")
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("run %s: %w", phpBin, err)
	}
	// Distribution builds append suffixes such as "-1ubuntu1".
	version, _, _ := strings.Cut(strings.TrimSpace(out.String()), "-")
	return version, nil
}
