// SPDX-License-Identifier: MPL-2.0

package runtime_test

import (
	"context"
	"testing"

	"litr-cli/internal/runtime"
)

func TestVirtualExecSuccess(t *testing.T) {
	t.Parallel()

	exec := runtime.NewVirtualExecutor()
	result := exec.Exec(context.Background(), "echo hello", "", nil)

	if !result.Status.Success() {
		t.Fatalf("status = %v, want success", result.Status)
	}
	if result.Message != "hello\n" {
		t.Errorf("message = %q, want %q", result.Message, "hello\n")
	}
}

func TestVirtualExecFailure(t *testing.T) {
	t.Parallel()

	exec := runtime.NewVirtualExecutor()
	result := exec.Exec(context.Background(), "exit 5", "", nil)

	if result.Status.Success() {
		t.Fatal("status = success, want failure")
	}
}

func TestVirtualExecStreamsLines(t *testing.T) {
	t.Parallel()

	var lines []string
	exec := runtime.NewVirtualExecutor()
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

func TestVirtualExecSyntaxError(t *testing.T) {
	t.Parallel()

	exec := runtime.NewVirtualExecutor()
	result := exec.Exec(context.Background(), "if then fi", "", nil)

	if result.Status.Success() {
		t.Fatal("status = success, want failure for invalid syntax")
	}
}

func TestVirtualExecDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	exec := runtime.NewVirtualExecutor()
	result := exec.Exec(context.Background(), "pwd", dir, nil)

	if !result.Status.Success() {
		t.Fatalf("status = %v, want success", result.Status)
	}
	if result.Message == "" {
		t.Error("message is empty, want the pwd output")
	}
}
