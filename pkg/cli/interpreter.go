// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"litr-cli/internal/runtime"
	"litr-cli/pkg/diag"
	"litr-cli/pkg/litrfile"
	"litr-cli/pkg/script"
)

// Interpreter walks the compiled bytecode: it binds variables on a
// scope stack, validates them against the configuration, expands each
// called command's scripts and dispatches them through the executor.
//
// The stop flag models cooperative cancellation between scripts: once a
// fatal problem is recorded no further scripts are launched, but a
// running script always finishes.
type Interpreter struct {
	inst  *Instruction
	query *litrfile.Query
	errs  *diag.Collector
	exec  runtime.Executor
	out   io.Writer

	offset          int
	currentVariable string
	stop            bool

	// scope is the variable stack: one frame per open command scope on
	// top of the bottom frame seeded with parameter defaults.
	scope []script.Variables
}

// NewInterpreter creates an interpreter over the given bytecode and
// configuration. Script output in unchanged mode is streamed to out.
func NewInterpreter(inst *Instruction, file *litrfile.Litrfile, errs *diag.Collector, exec runtime.Executor, out io.Writer) *Interpreter {
	i := &Interpreter{
		inst:  inst,
		query: litrfile.NewQuery(file),
		errs:  errs,
		exec:  exec,
		out:   out,
		scope: []script.Variables{{}},
	}
	i.defineDefaultVariables()
	return i
}

// Run executes the bytecode until the end of the stream or the first
// fatal problem.
func (i *Interpreter) Run(ctx context.Context) {
	i.offset = 0

	for i.offset < i.inst.Count() && !i.stop {
		i.executeInstruction(ctx)
	}
}

// defineDefaultVariables seeds the bottom scope frame: every boolean
// parameter starts false, string and array parameters start at their
// default when one is set.
func (i *Interpreter) defineDefaultVariables() {
	for _, param := range i.query.Parameters() {
		switch param.Type {
		case litrfile.ParamBoolean:
			i.scope[0][param.Name] = script.BoolVar(param.Name, false)
		default:
			if param.Default != "" {
				i.scope[0][param.Name] = script.StringVar(param.Name, param.Default)
			}
		}
	}
}

func (i *Interpreter) executeInstruction(ctx context.Context) {
	code := Opcode(i.inst.Read(i.offset))
	i.offset++

	switch code {
	case OpClear:
		i.clearScope()
	case OpDefine:
		i.defineVariable()
	case OpConstant:
		i.setConstant()
	case OpBeginScope:
		i.beginScope()
	case OpExecute:
		i.callInstruction(ctx)
	default:
		// Unknown opcodes are skipped for forward compatibility.
		i.offset++
	}
}

func (i *Interpreter) readCurrentValue() string {
	return i.inst.ReadConstant(i.inst.Read(i.offset))
}

func (i *Interpreter) beginScope() {
	i.scope = append(i.scope, script.Variables{})
	i.offset++
}

func (i *Interpreter) clearScope() {
	i.scope = i.scope[:len(i.scope)-1]
}

// defineVariable binds the named parameter in the top scope frame.
// Defining always resets the variable to the type's identity — true
// for booleans, default-or-empty otherwise — before any following
// constant is read.
func (i *Interpreter) defineVariable() {
	name := i.readCurrentValue()

	param := i.query.Parameter(name)
	if param == nil {
		i.handleError(diag.New(diag.CommandNotFound,
			fmt.Sprintf("Parameter with the name %q is not defined.\n  Run `litr --help` to see a list available options.",
				name)))
		return
	}

	var variable script.Variable
	switch param.Type {
	case litrfile.ParamBoolean:
		variable = script.BoolVar(param.Name, true)
	default:
		variable = script.StringVar(param.Name, param.Default)
	}

	i.currentVariable = variable.Name
	i.topFrame()[variable.Name] = variable
	i.offset++
}

// setConstant assigns the constant value to the most recently defined
// variable, applying the parameter's type validation.
func (i *Interpreter) setConstant() {
	value := i.readCurrentValue()

	variable, ok := i.topFrame()[i.currentVariable]
	if !ok {
		i.offset++
		return
	}
	param := i.query.Parameter(variable.Name)
	if param == nil {
		i.offset++
		return
	}

	switch param.Type {
	case litrfile.ParamString:
		variable.Str = value
	case litrfile.ParamArray:
		if !slices.Contains(param.TypeArguments, value) {
			options := make([]string, len(param.TypeArguments))
			for index, option := range param.TypeArguments {
				options[index] = fmt.Sprintf("%q", option)
			}
			i.handleError(diag.New(diag.UnknownParamValue,
				fmt.Sprintf("Parameter value %q is no valid option for %q.\n  Available options are: %s",
					value, param.Name, strings.Join(options, ", "))))
			return
		}
		variable.Str = value
	case litrfile.ParamBoolean:
		switch value {
		case "true":
			variable.Bool = true
		case "false":
			variable.Bool = false
		default:
			i.handleError(diag.New(diag.MalformedParam,
				fmt.Sprintf("Parameter value %q is not valid for boolean option %q.\n  Please use \"false\", \"true\" or no value for true as well.",
					value, param.Name)))
			return
		}
	}

	i.topFrame()[variable.Name] = variable
	i.offset++
}

func (i *Interpreter) callInstruction(ctx context.Context) {
	name := i.readCurrentValue()

	command := i.query.Command(name)
	if command == nil {
		i.handleError(diag.New(diag.CommandNotFound,
			fmt.Sprintf("Command %q could not be found.\n  Run `litr --help` to see a list of commands.",
				name)))
		return
	}

	i.callCommand(ctx, command, name, true)
	i.offset++
}

// callCommand runs one command: parameter validation (top-level calls
// only — children inherit the scope without revalidating), script
// expansion, per-directory execution, then the child commands.
func (i *Interpreter) callCommand(ctx context.Context, command *litrfile.Command, path string, validate bool) {
	if validate {
		i.validateRequiredParameters(path)
		if i.stop {
			return
		}
	}

	silent := command.Output == litrfile.OutputSilent

	scripts := i.parseScripts(command)
	if i.stop {
		return
	}

	displayPath := strings.ReplaceAll(path, ".", " ")

	if len(command.Directory) == 0 {
		i.runScripts(ctx, scripts, displayPath, "", silent)
	} else {
		for _, dir := range command.Directory {
			if i.stop {
				return
			}
			i.runScripts(ctx, scripts, displayPath, dir, silent)
		}
	}

	if i.stop {
		return
	}

	for _, child := range command.ChildCommands {
		if i.stop {
			return
		}
		i.callCommand(ctx, child, path+"."+child.Name, false)
	}
}

// validateRequiredParameters checks that every parameter the command's
// (or its descendants') scripts reference is bound — and, for string
// values, non-empty.
func (i *Interpreter) validateRequiredParameters(path string) {
	for _, param := range i.query.CommandParameters(path) {
		if !i.isVariableDefined(param.Name) {
			i.handleError(diag.New(diag.ExecutionFailure,
				fmt.Sprintf("The parameter --%s is required. You should run the command again with the required parameter.",
					param.Name)))
		}
	}
}

func (i *Interpreter) isVariableDefined(name string) bool {
	variable, ok := i.scopeVariables()[name]
	if !ok {
		return false
	}
	if variable.Type == script.VarString {
		return variable.Str != ""
	}
	return true
}

// parseScripts expands every script line against the merged scope. Any
// compile problem is fatal to the containing command.
func (i *Interpreter) parseScripts(command *litrfile.Command) []string {
	scripts := make([]string, 0, len(command.Script))
	variables := i.scopeVariables()

	for index, line := range command.Script {
		before := i.errs.Count()
		result := script.Compile(line, command.Locations[index], variables, i.errs)
		if i.errs.Count() > before {
			i.stop = true
			break
		}
		scripts = append(scripts, result.Script)
	}

	return scripts
}

func (i *Interpreter) runScripts(ctx context.Context, scripts []string, displayPath, dir string, silent bool) {
	var onLine runtime.LineCallback
	if !silent {
		onLine = func(line string) {
			fmt.Fprintln(i.out, line)
		}
	}

	for _, line := range scripts {
		result := i.exec.Exec(ctx, line, dir, onLine)
		if !result.Status.Success() {
			i.handleError(diag.New(diag.ExecutionFailure,
				fmt.Sprintf("Problem executing the command defined in %q.", displayPath)))
			return
		}
	}
}

// scopeVariables merges all frames bottom to top; later frames win.
func (i *Interpreter) scopeVariables() script.Variables {
	merged := script.Variables{}
	for _, frame := range i.scope {
		for name, variable := range frame {
			merged[name] = variable
		}
	}
	return merged
}

func (i *Interpreter) topFrame() script.Variables {
	return i.scope[len(i.scope)-1]
}

func (i *Interpreter) handleError(d diag.Diagnostic) {
	i.stop = true
	i.errs.Push(d)
}
