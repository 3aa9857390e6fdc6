// SPDX-License-Identifier: MPL-2.0

// Package app wires the full pipeline for one invocation: argv is
// compiled to bytecode, hooks get a chance to short-circuit, the
// configuration is discovered and loaded, the interpreter dispatches
// scripts and the reporter prints whatever went wrong.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"litr-cli/internal/config"
	"litr-cli/internal/discovery"
	"litr-cli/internal/hook"
	"litr-cli/internal/runtime"
	"litr-cli/pkg/cli"
	"litr-cli/pkg/diag"
	"litr-cli/pkg/litrfile"
)

// Build-time variables set via ldflags.
var (
	// Version is the semantic version (set via -ldflags).
	Version = "1.0.0"
)

const (
	// ExitSuccess is returned when everything ran cleanly.
	ExitSuccess = 0
	// ExitFailure is returned on any failure.
	ExitFailure = 1
)

// Application runs one invocation from argv to exit code.
type Application struct {
	out    io.Writer
	errOut io.Writer
	errs   *diag.Collector
}

// New creates an application writing to the standard streams.
func New() *Application {
	return &Application{
		out:    os.Stdout,
		errOut: os.Stderr,
		errs:   diag.NewCollector(),
	}
}

// NewWithOutput creates an application writing to the given streams,
// used by tests.
func NewWithOutput(out, errOut io.Writer) *Application {
	return &Application{
		out:    out,
		errOut: errOut,
		errs:   diag.NewCollector(),
	}
}

// Run executes one invocation and returns the process exit code.
func (a *Application) Run(args []string) int {
	cfg := a.loadUserConfig()

	source := cli.SourceFromArguments(args)
	inst := cli.NewInstruction()
	cli.NewParser(inst, source, a.errs)

	// Litr called without any arguments.
	if inst.Count() == 0 && !a.errs.HasErrors() {
		fmt.Fprintln(a.out, "You can run `litr --help` to see what you can do here.")
		return ExitFailure
	}

	hooks := hook.NewHandler(inst)

	// The version hook runs before any configuration work.
	version := hook.NewVersion(Version, a.out)
	hooks.Add(cli.OpDefine, []string{"version", "v"}, version.Print)
	if hooks.Execute() {
		return ExitSuccess
	}

	configPath, ok := a.resolveConfigPath()
	if !ok {
		return ExitFailure
	}

	reporter := diag.NewReporter(configPath, a.errOut)

	// Invocation parse errors surface before any file is loaded.
	if a.errs.HasErrors() {
		reporter.PrintAll(a.errs.Diagnostics())
		return ExitFailure
	}

	file := litrfile.Load(configPath, a.errs)
	if a.errs.HasErrors() {
		reporter.PrintAll(a.errs.Diagnostics())
		return ExitFailure
	}

	help := hook.NewHelp(file, Version, a.out)
	hooks.Add(cli.OpDefine, []string{"help", "h"}, help.Print)
	if hooks.Execute() {
		return ExitSuccess
	}

	interpreter := cli.NewInterpreter(inst, file, a.errs, a.executor(cfg), a.out)
	interpreter.Run(context.Background())

	if a.errs.HasErrors() {
		reporter.PrintAll(a.errs.Diagnostics())
		return ExitFailure
	}

	return ExitSuccess
}

// loadUserConfig reads litr's own settings; failures fall back to the
// defaults with a warning.
func (a *Application) loadUserConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(a.errOut, WarningStyle.Render("Warning: ")+fmt.Sprintf("Failed to load config: %v", err))
		cfg = config.DefaultConfig()
	}

	if cfg.UI.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	return cfg
}

// executor picks the script executor from the user configuration.
func (a *Application) executor(cfg *config.Config) runtime.Executor {
	if cfg.Executor == config.ExecutorVirtual {
		return runtime.NewVirtualExecutor()
	}

	native := runtime.NewNativeExecutor()
	native.Shell = cfg.Shell
	return native
}

// resolveConfigPath discovers the configuration file from the working
// directory.
func (a *Application) resolveConfigPath() (string, bool) {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(a.errOut, ErrorStyle.Render("Cannot determine the current working directory!"))
		return "", false
	}

	resolver := discovery.NewResolver(cwd)

	switch resolver.Status() {
	case discovery.StatusNotFound:
		fmt.Fprintln(a.errOut, ErrorStyle.Render("No configuration file found!"))
		return "", false
	case discovery.StatusDuplicate:
		fmt.Fprintln(a.errOut, WarningStyle.Render(fmt.Sprintf(
			"You defined both, litr.toml and .litr.toml in %s. "+
				"This is probably an error and you only want one of them.",
			resolver.Directory())))
		return "", false
	default:
		log.Debug("configuration file found", "path", resolver.Path())
		return resolver.Path(), true
	}
}
