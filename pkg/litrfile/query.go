// SPDX-License-Identifier: MPL-2.0

package litrfile

import (
	"strings"

	"litr-cli/pkg/diag"
	"litr-cli/pkg/script"
)

// Query is the read-only lookup layer over a loaded configuration. All
// operations are pure; returned pointers alias the Litrfile's own
// entities.
type Query struct {
	file *Litrfile
}

// NewQuery creates a query over the given configuration.
func NewQuery(file *Litrfile) *Query {
	return &Query{file: file}
}

// Command resolves a dotted command name, walking child commands left
// to right. Returns nil when any segment misses.
func (q *Query) Command(name string) *Command {
	parts := strings.Split(name, ".")
	return commandByPath(parts, q.file.Commands)
}

// Commands returns the top-level commands in document order.
func (q *Query) Commands() []*Command {
	return q.file.Commands
}

// ChildCommands returns the child commands of the named command, empty
// when the command has no children or does not exist.
func (q *Query) ChildCommands(name string) []*Command {
	command := q.Command(name)
	if command == nil {
		return nil
	}
	return command.ChildCommands
}

// Parameter looks a parameter up by its long name first, then by its
// shortcut.
func (q *Query) Parameter(name string) *Parameter {
	for _, param := range q.file.Parameters {
		if param.Name == name || (param.Shortcut != "" && param.Shortcut == name) {
			return param
		}
	}
	return nil
}

// Parameters returns all parameters in document order.
func (q *Query) Parameters() []*Parameter {
	return q.file.Parameters
}

// CommandParameters returns the parameters referenced by the named
// command's scripts or by any of its descendants' scripts, deduplicated
// and in order of first appearance. References are discovered by
// compiling each script in reference-collection mode.
func (q *Query) CommandParameters(name string) []*Parameter {
	command := q.Command(name)
	if command == nil {
		return nil
	}

	names := q.usedParameterNames(command)

	parameters := make([]*Parameter, 0, len(names))
	for _, n := range names {
		if param := q.Parameter(n); param != nil {
			parameters = append(parameters, param)
		}
	}
	return parameters
}

// ParametersAsVariables builds the full-environment variable set used
// for reference-collection compilation: every parameter present, typed
// from its definition.
func (q *Query) ParametersAsVariables() script.Variables {
	variables := make(script.Variables, len(q.file.Parameters))
	for _, param := range q.file.Parameters {
		switch param.Type {
		case ParamBoolean:
			variables[param.Name] = script.BoolVar(param.Name, false)
		default:
			variables[param.Name] = script.StringVar(param.Name, "")
		}
	}
	return variables
}

// usedParameterNames collects the parameter names the command's and all
// descendants' scripts resolve, first appearance first.
func (q *Query) usedParameterNames(command *Command) []string {
	var names []string
	seen := make(map[string]bool)

	variables := q.ParametersAsVariables()
	// Reference collection must not leak diagnostics into the run.
	scratch := diag.NewCollector()

	var walk func(cmd *Command)
	walk = func(cmd *Command) {
		for index, line := range cmd.Script {
			result := script.Compile(line, cmd.Locations[index], variables, scratch)
			for _, name := range result.UsedVariables {
				if !seen[name] {
					seen[name] = true
					names = append(names, name)
				}
			}
		}
		for _, child := range cmd.ChildCommands {
			walk(child)
		}
	}
	walk(command)

	return names
}

func commandByPath(names []string, commands []*Command) *Command {
	if len(names) == 0 {
		return nil
	}

	command := commandByName(names[0], commands)
	if command == nil {
		return nil
	}

	if len(names) == 1 {
		return command
	}

	return commandByPath(names[1:], command.ChildCommands)
}

func commandByName(name string, commands []*Command) *Command {
	for _, command := range commands {
		if command.Name == name {
			return command
		}
	}
	return nil
}
