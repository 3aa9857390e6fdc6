// SPDX-License-Identifier: MPL-2.0

package litrfile

import (
	"path/filepath"

	"litr-cli/pkg/diag"
)

// commandBuilder assembles one Command from its TOML definition,
// reporting malformed properties as it goes. The parent table is kept
// around for diagnostics that point at the command's own key.
type commandBuilder struct {
	file    *value
	table   *value
	errs    *diag.Collector
	command *Command
}

func newCommandBuilder(file, table *value, name string, errs *diag.Collector) *commandBuilder {
	return &commandBuilder{
		file:    file,
		table:   table,
		errs:    errs,
		command: NewCommand(name),
	}
}

func (b *commandBuilder) result() *Command {
	return b.command
}

func (b *commandBuilder) addScriptLine(line string, context *value) {
	b.command.Script = append(b.command.Script, line)
	b.addLocation(context)
}

// addScriptArray takes an array definition. Scanning stops at the first
// non-string element to avoid a diagnostic per element.
func (b *commandBuilder) addScriptArray(scripts *value) {
	for _, item := range scripts.items {
		if !item.isString() {
			b.errs.Push(diag.NewAt(diag.MalformedScript,
				"A command script can be either a string or array of strings.",
				b.commandKeyLocation()))
			break
		}
		b.addScriptLine(item.str, item)
	}
}

func (b *commandBuilder) addDescription() {
	description := b.table.get("description")
	if description == nil {
		return
	}

	if description.isString() {
		b.command.Description = description.str
		return
	}

	b.errs.Push(diag.NewAt(diag.MalformedCommand,
		`The "description" can only be a string.`,
		b.table.entryFor("description").keyLoc))
}

func (b *commandBuilder) addExample() {
	example := b.table.get("example")
	if example == nil {
		return
	}

	if example.isString() {
		b.command.Example = example.str
		return
	}

	b.errs.Push(diag.NewAt(diag.MalformedCommand,
		`The "example" can only be a string.`,
		b.table.entryFor("example").keyLoc))
}

// addDirectory resolves the "dir" property against the directory the
// configuration file lives in.
func (b *commandBuilder) addDirectory(root string) {
	directories := b.table.get("dir")
	if directories == nil {
		return
	}

	dirLoc := b.table.entryFor("dir").keyLoc

	if directories.isString() {
		b.command.Directory = append(b.command.Directory, filepath.Join(root, directories.str))
		return
	}

	if directories.isArray() {
		for _, dir := range directories.items {
			if !dir.isString() {
				b.errs.Push(diag.NewAt(diag.MalformedCommand,
					`A "dir" can either be a string or array of strings.`, dirLoc))
				continue
			}
			b.command.Directory = append(b.command.Directory, filepath.Join(root, dir.str))
		}
		return
	}

	b.errs.Push(diag.NewAt(diag.MalformedCommand,
		`A "dir" can either be a string or array of strings.`, dirLoc))
}

func (b *commandBuilder) addOutput() {
	output := b.table.get("output")
	if output == nil {
		return
	}

	if output.isString() {
		mode := OutputMode(output.str)
		if ok, _ := mode.IsValid(); ok {
			b.command.Output = mode
			return
		}
	}

	b.errs.Push(diag.NewAt(diag.MalformedCommand,
		`The "output" can either be "unchanged" or "silent".`,
		b.table.entryFor("output").keyLoc))
}

func (b *commandBuilder) addChildCommand(command *Command) {
	b.command.ChildCommands = append(b.command.ChildCommands, command)
}

func (b *commandBuilder) addLocation(context *value) {
	b.command.Locations = append(b.command.Locations, context.loc)
}

// commandKeyLocation points at the command's own key in the table that
// defines it, used when the definition as a whole is at fault.
func (b *commandBuilder) commandKeyLocation() diag.Location {
	if e := b.file.entryFor(b.command.Name); e != nil {
		return e.keyLoc
	}
	return diag.Location{}
}
