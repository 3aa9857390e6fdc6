// SPDX-License-Identifier: MPL-2.0

package script

const (
	// VarString is a variable holding a string value.
	VarString VarType = iota
	// VarBool is a variable holding a boolean value.
	VarBool
)

type (
	// VarType discriminates the two runtime variable shapes.
	VarType int

	// Variable is a runtime value bound by the CLI parser and consumed
	// by the template compiler. Booleans are always handled explicitly;
	// the string value of a VarBool variable stays empty.
	Variable struct {
		Name string
		Type VarType
		Str  string
		Bool bool
	}

	// Variables is the environment a script is compiled against,
	// usually the merged view of the interpreter's scope stack.
	Variables map[string]Variable
)

// StringVar creates a string-typed variable.
func StringVar(name, value string) Variable {
	return Variable{Name: name, Type: VarString, Str: value}
}

// BoolVar creates a boolean-typed variable.
func BoolVar(name string, value bool) Variable {
	return Variable{Name: name, Type: VarBool, Bool: value}
}
