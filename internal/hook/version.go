// SPDX-License-Identifier: MPL-2.0

package hook

import (
	"fmt"
	"io"

	"litr-cli/pkg/cli"
)

// Version prints the program version and consumes the invocation.
type Version struct {
	version string
	out     io.Writer
}

// NewVersion creates the version hook.
func NewVersion(version string, out io.Writer) *Version {
	return &Version{version: version, out: out}
}

// Print implements the hook callback.
func (v *Version) Print(_ *cli.Instruction) {
	fmt.Fprintln(v.out, v.version)
}
