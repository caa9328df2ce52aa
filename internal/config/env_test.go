package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// unsetEnv removes keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}

func TestLoadEnv_Defaults(t *testing.T) {
	unsetEnv(t, "PHPGEN_SETTINGS_PATH", "PHPGEN_COMPOSER_BIN", "PHPGEN_SKIP_INSTALL", "PHPGEN_LOG_LEVEL", "PHPGEN_NO_COLOR", "PHPGEN_INSTALL_RETRIES")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv() error: %v", err)
	}
	if e.ComposerBin != "composer" {
		t.Errorf("ComposerBin = %q, want composer", e.ComposerBin)
	}
	if e.SkipInstall || e.NoColor {
		t.Errorf("SkipInstall=%v NoColor=%v, want false", e.SkipInstall, e.NoColor)
	}
	if e.InstallRetries != 1 {
		t.Errorf("InstallRetries = %d, want 1", e.InstallRetries)
	}
	if !strings.HasSuffix(e.SettingsPath, filepath.Join("phpgen", "settings.json")) {
		t.Errorf("SettingsPath = %q, want .../phpgen/settings.json", e.SettingsPath)
	}
	if _, enabled, _ := e.SlogLevel(); enabled {
		t.Error("logging should be disabled by default")
	}
}

func TestLoadEnv_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	t.Setenv("PHPGEN_SETTINGS_PATH", path)
	t.Setenv("PHPGEN_COMPOSER_BIN", "/opt/composer.phar")
	t.Setenv("PHPGEN_SKIP_INSTALL", "true")
	t.Setenv("PHPGEN_LOG_LEVEL", "debug")
	t.Setenv("PHPGEN_NO_COLOR", "1")
	t.Setenv("PHPGEN_INSTALL_RETRIES", "3")

	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv() error: %v", err)
	}
	if e.SettingsPath != path {
		t.Errorf("SettingsPath = %q, want %q", e.SettingsPath, path)
	}
	if e.ComposerBin != "/opt/composer.phar" {
		t.Errorf("ComposerBin = %q", e.ComposerBin)
	}
	if !e.SkipInstall || !e.NoColor {
		t.Errorf("SkipInstall=%v NoColor=%v, want true", e.SkipInstall, e.NoColor)
	}
	if e.InstallRetries != 3 {
		t.Errorf("InstallRetries = %d, want 3", e.InstallRetries)
	}
	level, enabled, err := e.SlogLevel()
	if err != nil || !enabled || level != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, %v, %v; want debug, true, nil", level, enabled, err)
	}
}

func TestLoadEnv_InvalidValues(t *testing.T) {
	t.Setenv("PHPGEN_SETTINGS_PATH", filepath.Join(t.TempDir(), "s.json"))

	t.Run("bool", func(t *testing.T) {
		t.Setenv("PHPGEN_SKIP_INSTALL", "maybe")
		unsetEnv(t, "PHPGEN_LOG_LEVEL")
		if _, err := LoadEnv(); !errors.Is(err, ErrInvalidEnv) {
			t.Errorf("expected ErrInvalidEnv, got: %v", err)
		}
	})

	t.Run("log_level", func(t *testing.T) {
		unsetEnv(t, "PHPGEN_SKIP_INSTALL")
		t.Setenv("PHPGEN_LOG_LEVEL", "loud")
		if _, err := LoadEnv(); !errors.Is(err, ErrInvalidEnv) {
			t.Errorf("expected ErrInvalidEnv, got: %v", err)
		}
	})
	t.Run("negative_retries", func(t *testing.T) {
		unsetEnv(t, "PHPGEN_SKIP_INSTALL", "PHPGEN_LOG_LEVEL")
		t.Setenv("PHPGEN_INSTALL_RETRIES", "-1")
		if _, err := LoadEnv(); !errors.Is(err, ErrInvalidEnv) {
			t.Errorf("expected ErrInvalidEnv, got: %v", err)
		}
	})
}
