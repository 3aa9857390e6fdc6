// SPDX-License-Identifier: MPL-2.0

package diag

const (
	// ReservedParam flags a reserved configuration parameter name.
	ReservedParam Kind = iota
	// MalformedFile flags a configuration file that is not valid TOML.
	MalformedFile
	// MalformedCommand flags a malformed command definition.
	MalformedCommand
	// MalformedParam flags a malformed parameter definition.
	MalformedParam
	// MalformedScript flags a malformed command script definition.
	MalformedScript
	// UnknownCommandProperty flags an unknown option on a command.
	UnknownCommandProperty
	// UnknownParamValue flags an unknown option used for a parameter.
	UnknownParamValue
	// ValueAlreadyInUse flags a value that is already taken, e.g. a shortcut.
	ValueAlreadyInUse
	// CLIParse flags an error while parsing command line arguments.
	CLIParse
	// ScriptParse flags an error while parsing a command script.
	ScriptParse
	// CommandNotFound flags a command that could not be resolved at run time.
	CommandNotFound
	// ExecutionFailure flags a problem executing a command.
	ExecutionFailure
)

// Kind enumerates the diagnostic categories emitted by the loader, the
// parsers and the interpreter.
type Kind int

// Title returns the static short description printed as the headline of
// a reported diagnostic.
func (k Kind) Title() string {
	switch k {
	case ReservedParam:
		return "Parameter name is reserved!"
	case MalformedFile:
		return "Invalid file format!"
	case MalformedCommand:
		return "Command format is wrong!"
	case MalformedParam:
		return "Parameter format is wrong!"
	case MalformedScript:
		return "Command script is wrong!"
	case UnknownCommandProperty:
		return "Command property does not exist!"
	case UnknownParamValue:
		return "Parameter value is not known!"
	case ValueAlreadyInUse:
		return "Value is already in use!"
	case CLIParse:
		return "Problem parsing command line arguments!"
	case ScriptParse:
		return "Problem parsing script!"
	case CommandNotFound:
		return "Command not found!"
	case ExecutionFailure:
		return "Problem executing command!"
	default:
		return "Unknown error!"
	}
}

// IsValid returns whether the Kind is one of the defined diagnostic
// categories, and a list of validation errors if it is not.
func (k Kind) IsValid() (bool, []error) {
	if k < ReservedParam || k > ExecutionFailure {
		return false, []error{&InvalidKindError{Value: k}}
	}
	return true, nil
}
