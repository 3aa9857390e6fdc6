// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"bufio"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
)

// NativeExecutor runs scripts through the platform shell: `sh -c` on
// Unix-likes, `cmd /C` on Windows. Directory changes happen inside the
// shell invocation (`cd <dir> && <cmd> && cd <back>`) so the parent
// process never changes its working directory, even when the script
// fails halfway.
type NativeExecutor struct {
	// Shell overrides the default shell binary.
	Shell string
}

// NewNativeExecutor creates a native executor using the platform shell.
func NewNativeExecutor() *NativeExecutor {
	return &NativeExecutor{}
}

// Name returns the executor name.
func (e *NativeExecutor) Name() string {
	return "native"
}

// Exec runs the script and blocks until it finishes.
func (e *NativeExecutor) Exec(ctx context.Context, script, dir string, onLine LineCallback) Result {
	shell, flag := e.shell()
	command := CommandString(script, dir)

	log.Debug("executing command", "shell", shell, "command", command)

	cmd := exec.CommandContext(ctx, shell, flag, command)

	// Stderr is already folded into stdout by the command string; the
	// pipe only needs stdout.
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Result{Status: StatusFailure, Message: err.Error()}
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return Result{Status: StatusFailure, Message: err.Error()}
	}

	var message strings.Builder
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := scanner.Text()
		message.WriteString(line)
		message.WriteString("\n")
		if onLine != nil {
			onLine(line)
		}
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{
				Status:  statusFromExitCode(exitErr.ExitCode()),
				Message: message.String(),
			}
		}
		return Result{Status: StatusFailure, Message: message.String()}
	}

	return Result{Status: StatusSuccess, Message: message.String()}
}

// shell resolves the shell binary and its command flag.
func (e *NativeExecutor) shell() (string, string) {
	if e.Shell != "" {
		return e.Shell, shellFlag(e.Shell)
	}

	if runtime.GOOS == "windows" {
		return "cmd", "/C"
	}
	return "sh", "-c"
}

// shellFlag returns the command flag for a configured shell override.
func shellFlag(shell string) string {
	base := strings.TrimSuffix(filepath.Base(shell), ".exe")
	switch base {
	case "cmd":
		return "/C"
	case "powershell", "pwsh":
		return "-Command"
	default:
		return "-c"
	}
}

// CommandString builds the final shell command: the script with stderr
// folded into stdout and, when a directory is set, the in-shell
// round-trip into it and back.
func CommandString(script, dir string) string {
	command := script + " 2>&1"
	if dir == "" {
		return command
	}

	depth := len(strings.Split(strings.Trim(filepath.ToSlash(filepath.Clean(dir)), "/"), "/"))
	back := strings.TrimSuffix(strings.Repeat("../", depth), "/")

	return "cd " + dir + " && " + command + " && cd " + back
}
