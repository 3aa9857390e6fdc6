// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// VirtualExecutor runs scripts through the embedded POSIX shell
// interpreter instead of spawning a platform shell. It honors the same
// contract as the native executor: stderr folded into stdout, streamed
// line delivery, directory confinement without touching the process
// working directory.
type VirtualExecutor struct{}

// NewVirtualExecutor creates a virtual executor.
func NewVirtualExecutor() *VirtualExecutor {
	return &VirtualExecutor{}
}

// Name returns the executor name.
func (e *VirtualExecutor) Name() string {
	return "virtual"
}

// Exec runs the script and blocks until it finishes.
func (e *VirtualExecutor) Exec(ctx context.Context, script, dir string, onLine LineCallback) Result {
	log.Debug("executing command", "shell", "virtual", "command", script, "dir", dir)

	prog, err := syntax.NewParser().Parse(strings.NewReader(script), "script")
	if err != nil {
		return Result{
			Status:  StatusFailure,
			Message: fmt.Sprintf("script syntax error: %v\n", err),
		}
	}

	out := newLineWriter(onLine)

	opts := []interp.RunnerOption{
		// Both streams share the writer: the stderr-into-stdout fold.
		interp.StdIO(nil, out, out),
	}
	if dir != "" {
		opts = append(opts, interp.Dir(dir))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return Result{Status: StatusFailure, Message: err.Error()}
	}

	runErr := runner.Run(ctx, prog)
	out.flush()

	if runErr != nil {
		var exitStatus interp.ExitStatus
		if errors.As(runErr, &exitStatus) {
			return Result{
				Status:  statusFromExitCode(int(exitStatus)),
				Message: out.String(),
			}
		}
		return Result{Status: StatusFailure, Message: out.String()}
	}

	return Result{Status: StatusSuccess, Message: out.String()}
}

// lineWriter accumulates everything written to it and forwards complete
// lines to the callback in write order.
type lineWriter struct {
	onLine  LineCallback
	buf     strings.Builder
	pending strings.Builder
}

func newLineWriter(onLine LineCallback) *lineWriter {
	return &lineWriter{onLine: onLine}
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)

	if w.onLine == nil {
		return len(p), nil
	}

	for _, b := range p {
		if b == '\n' {
			w.onLine(w.pending.String())
			w.pending.Reset()
			continue
		}
		w.pending.WriteByte(b)
	}
	return len(p), nil
}

// flush delivers a trailing unterminated line, if any.
func (w *lineWriter) flush() {
	if w.onLine != nil && w.pending.Len() > 0 {
		w.onLine(w.pending.String())
		w.pending.Reset()
	}
}

func (w *lineWriter) String() string {
	return w.buf.String()
}
