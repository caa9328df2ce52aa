package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Env holds settings taken from PHPGEN_* environment variables.
type Env struct {
	SettingsPath   string `env:"PHPGEN_SETTINGS_PATH"`
	ComposerBin    string `env:"PHPGEN_COMPOSER_BIN" envDefault:"composer"`
	SkipInstall    bool   `env:"PHPGEN_SKIP_INSTALL"`
	InstallRetries int    `env:"PHPGEN_INSTALL_RETRIES" envDefault:"1"`
	LogLevel       string `env:"PHPGEN_LOG_LEVEL"`
	NoColor        bool   `env:"PHPGEN_NO_COLOR"`
}

// LoadEnv parses the environment and fills in the default settings path.
func LoadEnv() (*Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnv, err)
	}
	if e.ComposerBin == "" {
		e.ComposerBin = "composer"
	}

	if e.InstallRetries < 0 {
		return nil, fmt.Errorf("%w: PHPGEN_INSTALL_RETRIES must not be negative, got %d", ErrInvalidEnv, e.InstallRetries)
	}

	if e.SettingsPath == "" {
		path, err := DefaultSettingsPath()
		if err != nil {
			return nil, err
		}
		e.SettingsPath = path
	}

	if _, _, err := e.SlogLevel(); err != nil {
		return nil, err
	}

	return &e, nil
}

// SlogLevel converts LogLevel to a slog.Level. The boolean is false when
// logging is disabled (LogLevel empty).
func (e *Env) SlogLevel() (slog.Level, bool, error) {
	if strings.TrimSpace(e.LogLevel) == "" {
		return 0, false, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(e.LogLevel))); err != nil {
		return 0, false, fmt.Errorf("%w: PHPGEN_LOG_LEVEL %q: %w", ErrInvalidEnv, e.LogLevel, err)
	}
	return level, true, nil
}
