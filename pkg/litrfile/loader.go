// SPDX-License-Identifier: MPL-2.0

package litrfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"litr-cli/pkg/diag"
)

// Litrfile is the loaded configuration: the command tree and the
// parameter list, both in document order. It owns all entities; queries
// hand out references into it.
type Litrfile struct {
	// Path is the configuration file location.
	Path string
	// Directory is the directory the configuration file lives in;
	// command "dir" entries are resolved against it.
	Directory string
	// Commands holds the top-level commands in document order.
	Commands []*Command
	// Parameters holds all parameters in document order.
	Parameters []*Parameter
}

// Load reads and parses the configuration file at path. Problems are
// collected exhaustively into errs; the returned Litrfile contains
// whatever could be parsed.
func Load(path string, errs *diag.Collector) *Litrfile {
	data, err := os.ReadFile(path)
	if err != nil {
		errs.Push(diag.New(diag.MalformedFile,
			fmt.Sprintf("Cannot read the configuration file: %v.", err)))
		return &Litrfile{Path: path, Directory: filepath.Dir(path)}
	}

	return LoadBytes(data, path, errs)
}

// LoadBytes parses configuration content from bytes. The path is used
// for resolving "dir" entries and for reporting.
func LoadBytes(data []byte, path string, errs *diag.Collector) *Litrfile {
	file := &Litrfile{Path: path, Directory: filepath.Dir(path)}
	loader := &loader{file: file, errs: errs}

	root, ok := parseDocument(data, errs)
	if !ok {
		return file
	}

	if commands := root.get("commands"); commands != nil {
		loader.collectCommands(commands)
	}
	if params := root.get("params"); params != nil {
		loader.collectParams(params)
	}

	log.Debug("configuration loaded",
		"path", path, "commands", len(file.Commands), "params", len(file.Parameters))

	return file
}

type loader struct {
	file *Litrfile
	errs *diag.Collector
}

func (l *loader) collectCommands(commands *value) {
	if !commands.isTable() {
		return
	}

	for _, e := range commands.entries {
		l.file.Commands = append(l.file.Commands, l.createCommand(commands, e.val, e.key))
	}
}

// createCommand interprets one command definition: a plain string (one
// script line), an array of script lines, or a table of properties
// whose unrecognized table-valued keys become child commands.
func (l *loader) createCommand(commands, definition *value, name string) *Command {
	builder := newCommandBuilder(commands, definition, name, l.errs)

	// Simple string form.
	if definition.isString() {
		builder.addScriptLine(definition.str, definition)
		return builder.result()
	}

	// Simple string array form.
	if definition.isArray() {
		builder.addScriptArray(definition)
		return builder.result()
	}

	// From here on it needs to be a table to be valid.
	if !definition.isTable() {
		l.errs.Push(diag.NewAt(diag.MalformedCommand,
			"A command can be a string or table.", builder.commandKeyLocation()))
		return builder.result()
	}

	for _, property := range definition.entries {
		switch property.key {
		case "script":
			scripts := property.val
			switch {
			case scripts.isString():
				builder.addScriptLine(scripts.str, scripts)
			case scripts.isArray():
				builder.addScriptArray(scripts)
			default:
				l.errs.Push(diag.NewAt(diag.MalformedScript,
					"A command script can be either a string or array of strings.",
					property.keyLoc))
			}
		case "description":
			builder.addDescription()
		case "example":
			builder.addExample()
		case "dir":
			builder.addDirectory(l.file.Directory)
		case "output":
			builder.addOutput()
		default:
			// A table-valued unknown key is a nested child command;
			// anything else is an unknown property.
			if !property.val.isTable() {
				l.errs.Push(diag.NewAt(diag.UnknownCommandProperty,
					fmt.Sprintf("The command property %q does not exist. Please refer to the docs.",
						property.key),
					property.keyLoc))
				continue
			}
			builder.addChildCommand(l.createCommand(definition, property.val, property.key))
		}
	}

	return builder.result()
}

func (l *loader) collectParams(params *value) {
	if !params.isTable() {
		return
	}

	for _, e := range params.entries {
		name := e.key
		definition := e.val

		if IsReservedName(name) {
			l.errs.Push(diag.NewAt(diag.ReservedParam,
				fmt.Sprintf("The parameter name %q is reserved by Litr.", name),
				e.keyLoc))
			continue
		}

		builder := newParameterBuilder(params, definition, name, l.errs)

		// Simple string form.
		if definition.isString() {
			builder.addDescriptionValue(definition.str)
			l.file.Parameters = append(l.file.Parameters, builder.result())
			continue
		}

		// From here on it needs to be a table to be valid.
		if !definition.isTable() {
			l.errs.Push(diag.NewAt(diag.MalformedParam,
				"A parameter needs to be a string or table.", e.keyLoc))
			continue
		}

		builder.addDescription()
		builder.addShortcut(l.file.Parameters)
		builder.addType()
		builder.addDefault()

		l.file.Parameters = append(l.file.Parameters, builder.result())
	}
}
