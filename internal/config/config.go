// SPDX-License-Identifier: MPL-2.0

// Package config loads litr's own settings file (shell choice,
// executor, colors). This is not the per-project litr.toml the runner
// executes: litr keeps exactly one settings file in the user's config
// directory, and there is no search path.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// ExecutorNative runs scripts through the platform shell.
	ExecutorNative = "native"
	// ExecutorVirtual runs scripts through the embedded shell
	// interpreter.
	ExecutorVirtual = "virtual"
)

const (
	// AppName is the application name, also the settings directory.
	AppName = "litr"

	settingsFileName = "config.toml"
)

type (
	// Config holds the application configuration.
	Config struct {
		// Shell overrides the shell binary used by the native executor.
		Shell string `toml:"shell" mapstructure:"shell"`
		// Executor selects "native" or "virtual" script execution.
		Executor string `toml:"executor" mapstructure:"executor"`
		// UI configures the terminal output.
		UI UIConfig `toml:"ui" mapstructure:"ui"`
	}

	// UIConfig configures the terminal output.
	UIConfig struct {
		// ColorScheme sets the color scheme ("auto", "dark", "light").
		ColorScheme string `toml:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables debug logging.
		Verbose bool `toml:"verbose" mapstructure:"verbose"`
	}
)

// loaded caches the settings for the lifetime of the process; a run
// reads the file at most once.
var loaded *Config

// DefaultConfig returns the settings litr runs on when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Executor: ExecutorNative,
		UI: UIConfig{
			ColorScheme: "auto",
		},
	}
}

// Path returns the location of litr's single settings file:
// <user config dir>/litr/config.toml, where the user config directory
// follows the platform convention (XDG on Linux, Application Support
// on macOS, AppData on Windows).
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate the user config directory: %w", err)
	}
	return filepath.Join(base, AppName, settingsFileName), nil
}

// Load reads the settings file, falling back to the defaults when it
// does not exist. A file that exists but cannot be read or decoded is
// an error; callers decide whether that is fatal.
func Load() (*Config, error) {
	if loaded != nil {
		return loaded, nil
	}

	cfg := DefaultConfig()

	path, err := Path()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("shell", cfg.Shell)
	v.SetDefault("executor", cfg.Executor)
	v.SetDefault("ui.color_scheme", cfg.UI.ColorScheme)
	v.SetDefault("ui.verbose", cfg.UI.Verbose)

	switch readErr := v.ReadInConfig(); {
	case readErr == nil:
		if err := v.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("settings file %s is not usable: %w", path, err)
		}
	case errors.Is(readErr, fs.ErrNotExist):
		// No settings file; litr runs on its defaults.
	default:
		return nil, fmt.Errorf("settings file %s is not readable: %w", path, readErr)
	}

	loaded = cfg
	return cfg, nil
}

// Reset clears the cached settings, used by tests.
func Reset() {
	loaded = nil
}
