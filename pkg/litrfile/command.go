// SPDX-License-Identifier: MPL-2.0

package litrfile

import (
	"errors"
	"fmt"

	"litr-cli/pkg/diag"
)

const (
	// OutputUnchanged streams script output to the user line by line.
	OutputUnchanged OutputMode = "unchanged"
	// OutputSilent captures script output without streaming it.
	OutputSilent OutputMode = "silent"
)

// ErrInvalidOutputMode is the sentinel error wrapped by
// InvalidOutputModeError.
var ErrInvalidOutputMode = errors.New("invalid output mode")

type (
	// OutputMode selects how a command's script output is surfaced.
	OutputMode string

	// InvalidOutputModeError is returned when an OutputMode is neither
	// "unchanged" nor "silent".
	InvalidOutputModeError struct {
		Value OutputMode
	}

	// Command is one named runnable unit from the configuration. It is
	// created during config load and immutable thereafter; the root
	// Litrfile owns the tree and queries hand out references.
	Command struct {
		// Name is the command identifier, unique among siblings.
		Name string
		// Script holds the template script lines, in declaration order.
		Script []string
		// Description provides help text for the command.
		Description string
		// Example is a usage example shown in help output.
		Example string
		// Directory lists the roots the scripts run in, resolved
		// relative to the configuration file's directory. Empty means
		// the current working directory.
		Directory []string
		// Output selects the output mode. Defaults to OutputUnchanged.
		Output OutputMode
		// ChildCommands holds nested commands, in declaration order.
		ChildCommands []*Command
		// Locations carries the TOML source location of each script
		// line; always the same length as Script.
		Locations []diag.Location
	}
)

// Error implements the error interface.
func (e *InvalidOutputModeError) Error() string {
	return fmt.Sprintf("invalid output mode %q (must be \"unchanged\" or \"silent\")", e.Value)
}

// Unwrap returns ErrInvalidOutputMode so callers can use errors.Is for
// programmatic detection.
func (e *InvalidOutputModeError) Unwrap() error { return ErrInvalidOutputMode }

// IsValid returns whether the OutputMode is one of the defined modes,
// and a list of validation errors if it is not.
func (m OutputMode) IsValid() (bool, []error) {
	switch m {
	case OutputUnchanged, OutputSilent:
		return true, nil
	default:
		return false, []error{&InvalidOutputModeError{Value: m}}
	}
}

// String returns the string representation of the OutputMode.
func (m OutputMode) String() string { return string(m) }

// NewCommand creates an empty command with the given name and the
// default output mode.
func NewCommand(name string) *Command {
	return &Command{Name: name, Output: OutputUnchanged}
}
