// SPDX-License-Identifier: MPL-2.0

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"litr-cli/internal/config"
)

// isolate points the user config directory at a fresh temp home.
func isolate(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	t.Setenv("AppData", dir)
	config.Reset()
	t.Cleanup(config.Reset)
}

// writeSettings places content at the resolved settings path.
func writeSettings(t *testing.T, content string) string {
	t.Helper()

	path, err := config.Path()
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestPathEndsWithSettingsFile(t *testing.T) {
	isolate(t)

	path, err := config.Path()
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	if !strings.HasSuffix(path, filepath.Join("litr", "config.toml")) {
		t.Errorf("path = %q, want a litr/config.toml suffix", path)
	}
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	isolate(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Executor != config.ExecutorNative {
		t.Errorf("executor = %q, want native", cfg.Executor)
	}
	if cfg.Shell != "" {
		t.Errorf("shell = %q, want empty", cfg.Shell)
	}
	if cfg.UI.ColorScheme != "auto" {
		t.Errorf("color scheme = %q, want auto", cfg.UI.ColorScheme)
	}
	if cfg.UI.Verbose {
		t.Error("verbose = true, want false")
	}
}

func TestLoadReadsSettingsFile(t *testing.T) {
	isolate(t)
	writeSettings(t, "executor = \"virtual\"\n\n[ui]\nverbose = true\n")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Executor != config.ExecutorVirtual {
		t.Errorf("executor = %q, want virtual", cfg.Executor)
	}
	if !cfg.UI.Verbose {
		t.Error("verbose = false, want true")
	}
	// Keys the file does not set keep their defaults.
	if cfg.UI.ColorScheme != "auto" {
		t.Errorf("color scheme = %q, want auto", cfg.UI.ColorScheme)
	}
}

func TestLoadCachesSettings(t *testing.T) {
	isolate(t)
	path := writeSettings(t, "shell = \"zsh\"\n")

	first, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// A change on disk is not observed until the cache is reset.
	if err := os.WriteFile(path, []byte("shell = \"fish\"\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	second, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if first != second || second.Shell != "zsh" {
		t.Errorf("shell = %q, want the cached zsh", second.Shell)
	}

	config.Reset()
	third, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if third.Shell != "fish" {
		t.Errorf("shell after reset = %q, want fish", third.Shell)
	}
}

func TestLoadRejectsBrokenSettingsFile(t *testing.T) {
	isolate(t)
	writeSettings(t, "executor = [broken\n")

	if _, err := config.Load(); err == nil {
		t.Fatal("Load() = nil error, want a decode failure")
	}
}
