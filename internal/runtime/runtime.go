// SPDX-License-Identifier: MPL-2.0

// Package runtime provides the shell-executor abstraction the
// interpreter dispatches finalized scripts through: a native executor
// running the platform shell and a virtual executor interpreting the
// script in-process.
package runtime

import "context"

// LineCallback receives one line of combined output as the script
// produces it, without the trailing newline.
type LineCallback func(line string)

// Executor runs one finalized shell script. When dir is non-empty the
// script runs inside that directory; the process working directory is
// never touched. Stderr is folded into stdout, output is streamed
// line-by-line to onLine (when non-nil) in emission order and
// accumulated into the result message.
type Executor interface {
	// Name returns the executor name.
	Name() string
	// Exec runs the script and blocks until it finishes.
	Exec(ctx context.Context, script string, dir string, onLine LineCallback) Result
}
