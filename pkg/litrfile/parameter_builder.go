// SPDX-License-Identifier: MPL-2.0

package litrfile

import (
	"fmt"
	"slices"

	"litr-cli/pkg/diag"
)

// parameterBuilder assembles one Parameter from its TOML definition.
type parameterBuilder struct {
	file      *value
	table     *value
	errs      *diag.Collector
	parameter *Parameter
}

func newParameterBuilder(file, table *value, name string, errs *diag.Collector) *parameterBuilder {
	return &parameterBuilder{
		file:      file,
		table:     table,
		errs:      errs,
		parameter: NewParameter(name),
	}
}

func (b *parameterBuilder) result() *Parameter {
	return b.parameter
}

// addDescriptionValue sets the description directly, used for the
// simple string parameter form.
func (b *parameterBuilder) addDescriptionValue(description string) {
	b.parameter.Description = description
}

func (b *parameterBuilder) addDescription() {
	description := b.table.get("description")
	if description == nil {
		b.errs.Push(diag.NewAt(diag.MalformedParam,
			`You're missing the "description" field.`,
			b.parameterKeyLocation()))
		return
	}

	if !description.isString() {
		b.errs.Push(diag.NewAt(diag.MalformedParam,
			`The "description" can only be a string.`,
			b.table.entryFor("description").keyLoc))
		return
	}

	b.parameter.Description = description.str
}

// addShortcut validates the shortcut against the reserved set, the
// already collected parameters and the single-character rule.
func (b *parameterBuilder) addShortcut(params []*Parameter) {
	shortcut := b.table.get("shortcut")
	if shortcut == nil {
		return
	}

	shortcutLoc := b.table.entryFor("shortcut").keyLoc

	if !shortcut.isString() {
		b.errs.Push(diag.NewAt(diag.MalformedParam,
			`A "shortcut" can only be a string.`, shortcutLoc))
		return
	}

	if IsReservedName(shortcut.str) {
		b.errs.Push(diag.NewAt(diag.ReservedParam,
			fmt.Sprintf("The shortcut name %q is reserved by Litr.", shortcut.str),
			shortcutLoc))
		return
	}

	if len(shortcut.str) != 1 {
		b.errs.Push(diag.NewAt(diag.MalformedParam,
			`A "shortcut" can only be a single character.`, shortcutLoc))
		return
	}

	for _, param := range params {
		if param.Shortcut == shortcut.str {
			b.errs.Push(diag.NewAt(diag.ValueAlreadyInUse,
				fmt.Sprintf("The shortcut name %q is already used for parameter %q.",
					shortcut.str, param.Name),
				shortcutLoc))
			return
		}
	}

	b.parameter.Shortcut = shortcut.str
}

func (b *parameterBuilder) addType() {
	typ := b.table.get("type")
	if typ == nil {
		return
	}

	typeLoc := b.table.entryFor("type").keyLoc

	if typ.isString() {
		switch typ.str {
		case "string":
			b.parameter.Type = ParamString
		case "boolean":
			b.parameter.Type = ParamBoolean
		default:
			b.errs.Push(diag.NewAt(diag.UnknownParamValue,
				fmt.Sprintf(`The "type" option as string can only be "string" or "boolean". Provided value %q is not known.`,
					typ.str),
				typeLoc))
		}
		return
	}

	if typ.isArray() {
		b.parameter.Type = ParamArray
		for _, option := range typ.items {
			if !option.isString() {
				b.errs.Push(diag.NewAt(diag.MalformedParam,
					`The options provided in "type" are not all strings.`, typeLoc))
				continue
			}
			b.parameter.TypeArguments = append(b.parameter.TypeArguments, option.str)
		}
		return
	}

	b.errs.Push(diag.NewAt(diag.MalformedParam,
		`A "type" can only be "string" or an array of options as strings.`, typeLoc))
}

func (b *parameterBuilder) addDefault() {
	def := b.table.get("default")
	if def == nil {
		return
	}

	defaultLoc := b.table.entryFor("default").keyLoc

	if !def.isString() {
		b.errs.Push(diag.NewAt(diag.MalformedParam,
			`The field "default" needs to be a string.`, defaultLoc))
		return
	}

	if b.parameter.Type == ParamArray && !slices.Contains(b.parameter.TypeArguments, def.str) {
		typeLine := uint32(0)
		if e := b.table.entryFor("type"); e != nil {
			typeLine = e.keyLoc.Line
		}
		b.errs.Push(diag.NewAt(diag.MalformedParam,
			fmt.Sprintf(`Cannot find default value %q inside "type" list defined in line %d.`,
				def.str, typeLine),
			defaultLoc))
		return
	}

	b.parameter.Default = def.str
}

// parameterKeyLocation points at the parameter's own key in the params
// table.
func (b *parameterBuilder) parameterKeyLocation() diag.Location {
	if e := b.file.entryFor(b.parameter.Name); e != nil {
		return e.keyLoc
	}
	return diag.Location{}
}
