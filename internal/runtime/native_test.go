// SPDX-License-Identifier: MPL-2.0

package runtime_test

import (
	"context"
	"os"
	goruntime "runtime"
	"strings"
	"testing"

	"litr-cli/internal/runtime"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if goruntime.GOOS == "windows" {
		t.Skip("POSIX shell tests")
	}
}

func TestCommandStringPlain(t *testing.T) {
	t.Parallel()

	got := runtime.CommandString("echo hi", "")
	if got != "echo hi 2>&1" {
		t.Errorf("command = %q", got)
	}
}

func TestCommandStringWithDirectory(t *testing.T) {
	t.Parallel()

	got := runtime.CommandString("echo hi", "sub/dir")
	want := "cd sub/dir && echo hi 2>&1 && cd ../.."
	if got != want {
		t.Errorf("command = %q, want %q", got, want)
	}
}

func TestNativeExecSuccess(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	exec := runtime.NewNativeExecutor()
	result := exec.Exec(context.Background(), "echo hello", "", nil)

	if !result.Status.Success() {
		t.Fatalf("status = %v, want success", result.Status)
	}
	if result.Message != "hello\n" {
		t.Errorf("message = %q, want %q", result.Message, "hello\n")
	}
}

func TestNativeExecFailure(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	exec := runtime.NewNativeExecutor()
	result := exec.Exec(context.Background(), "exit 3", "", nil)

	if result.Status.Success() {
		t.Fatal("status = success, want failure")
	}
}

func TestNativeExecStreamsLines(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	var lines []string
	exec := runtime.NewNativeExecutor()
	result := exec.Exec(context.Background(), "echo one; echo two", "", func(line string) {
		lines = append(lines, line)
	})

	if !result.Status.Success() {
		t.Fatalf("status = %v, want success", result.Status)
	}
	if len(lines) != 2 || lines[0] != "one" || lines[1] != "two" {
		t.Errorf("lines = %v, want [one two]", lines)
	}
}

func TestNativeExecFoldsStderr(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	exec := runtime.NewNativeExecutor()
	result := exec.Exec(context.Background(), "echo oops 1>&2", "", nil)

	if !strings.Contains(result.Message, "oops") {
		t.Errorf("message = %q, want stderr folded into output", result.Message)
	}
}

func TestNativeExecDirectoryRoundTrip(t *testing.T) {
	skipOnWindows(t)

	// The directory change happens inside the shell invocation; the
	// process working directory must be untouched afterwards.
	dir := t.TempDir()

	before := mustGetwd(t)
	exec := runtime.NewNativeExecutor()
	result := exec.Exec(context.Background(), "pwd", dir, nil)
	after := mustGetwd(t)

	if !result.Status.Success() {
		t.Fatalf("status = %v, want success", result.Status)
	}
	if result.Message == "" {
		t.Error("message is empty, want the pwd output")
	}
	if before != after {
		t.Errorf("working directory changed: %q -> %q", before, after)
	}
}

func mustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	return wd
}
