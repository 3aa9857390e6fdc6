// SPDX-License-Identifier: MPL-2.0

package litrfile

import "slices"

const (
	// ParamString is a free-form string parameter, the default.
	ParamString ParamType = iota
	// ParamBoolean is a true/false parameter.
	ParamBoolean
	// ParamArray is an enumerated parameter whose value must match one
	// of its type arguments.
	ParamArray
)

// reservedNames are parameter names and shortcuts litr keeps for
// itself: the help flags and the script-language keywords.
var reservedNames = []string{"help", "h", "or", "and"}

type (
	// ParamType discriminates the parameter value shapes.
	ParamType int

	// Parameter is one named option from the configuration, usable by
	// any command's scripts.
	Parameter struct {
		// Name is the unique long option name.
		Name string
		// Shortcut is an optional single-character alias, unique across
		// all parameters.
		Shortcut string
		// Description provides help text for the parameter.
		Description string
		// Type is the parameter value shape.
		Type ParamType
		// TypeArguments enumerates the accepted values; non-empty
		// exactly when Type is ParamArray.
		TypeArguments []string
		// Default is the value used when the invocation does not set
		// one. For ParamArray it is one of TypeArguments.
		Default string
	}
)

// NewParameter creates a string-typed parameter with the given name.
func NewParameter(name string) *Parameter {
	return &Parameter{Name: name, Type: ParamString}
}

// IsReservedName reports whether name may not be used as a parameter
// name or shortcut.
func IsReservedName(name string) bool {
	return slices.Contains(reservedNames, name)
}
