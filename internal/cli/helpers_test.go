package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/libforge/phpgen/internal/composer"
	"github.com/libforge/phpgen/internal/config"
)

// setupTestDeps installs headless, colorless dependencies backed by a
// settings file in a temp directory.
func setupTestDeps(t *testing.T) *Dependencies {
	t.Helper()

	env := &config.Env{
		SettingsPath: filepath.Join(t.TempDir(), "settings.json"),
		ComposerBin:  "composer",
		NoColor:      true,
	}
	d, err := newDependencies(env, io.Discard)
	if err != nil {
		t.Fatalf("newDependencies() error: %v", err)
	}
	d.Headless.ForceHeadless(true)

	orig := deps
	deps = d
	t.Cleanup(func() { deps = orig })
	return d
}

// newTestNewCmd returns a standalone copy of the new command.
func newTestNewCmd() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{
		Use:     "new-test",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: validateNewFlags,
		RunE:    runNew,
	}
	registerNewFlags(cmd)

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return cmd, buf
}

// runNewCmd executes the new command with args.
func runNewCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd, buf := newTestNewCmd()
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// readManifest decodes composer.json in dir.
func readManifest(t *testing.T, dir string) composer.Manifest {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "composer.json"))
	if err != nil {
		t.Fatalf("read composer.json: %v", err)
	}
	var m composer.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("decode composer.json: %v", err)
	}
	return m
}

// readSettings decodes the settings file of d.
func readSettings(t *testing.T, d *Dependencies) map[string]any {
	t.Helper()
	data, err := os.ReadFile(d.Env.SettingsPath)
	if err != nil {
		t.Fatalf("read settings: %v", err)
	}
	var v map[string]any
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("decode settings: %v", err)
	}
	return v
}
