// Package cli provides the Cobra command tree and dependency wiring for
// the phpgen CLI. This file defines the Dependencies struct that wires the
// environment, settings store, logger and terminal helpers together.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/libforge/phpgen/internal/config"
	"github.com/libforge/phpgen/internal/ui"
)

// errNoDeps is returned by commands run before InitDependencies.
var errNoDeps = errors.New("dependencies not initialized")

// Dependencies holds the services used by CLI commands. Only this file
// instantiates concrete types.
type Dependencies struct {
	Env      *config.Env
	Settings *config.Store // Opened lazily by EnsureSettings.
	Headless *ui.HeadlessManager
	Theme    *ui.Theme
	Logger   *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies reads the environment and creates the shared services.
// The settings file is opened on first use so that commands which do not
// need it never touch the disk.
func InitDependencies() error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	d, err := newDependencies(env, os.Stderr)
	if err != nil {
		return err
	}
	deps = d
	return nil
}

// newDependencies builds Dependencies from a parsed environment. Log
// output, when enabled by PHPGEN_LOG_LEVEL, goes to logOut.
func newDependencies(env *config.Env, logOut io.Writer) (*Dependencies, error) {
	level, enabled, err := env.SlogLevel()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if enabled {
		logger = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))
	}

	if env.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	return &Dependencies{
		Env:      env,
		Headless: ui.NewHeadlessManager(),
		Theme:    ui.NewTheme(env.NoColor),
		Logger:   logger,
	}, nil
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// EnsureSettings lazily opens the settings store.
// Subsequent calls are no-ops once the store is open.
func (d *Dependencies) EnsureSettings() error {
	if d.Settings != nil {
		return nil
	}
	store, err := config.Open(d.Env.SettingsPath)
	if err != nil {
		return fmt.Errorf("open settings: %w", err)
	}
	d.Settings = store
	d.Logger.Debug("settings opened", "path", store.Path(), "keys", len(store.Keys()))
	return nil
}

// EnableVerbose replaces the logger with a debug-level text logger on w.
func (d *Dependencies) EnableVerbose(w io.Writer) {
	d.Logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
