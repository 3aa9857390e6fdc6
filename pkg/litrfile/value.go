// SPDX-License-Identifier: MPL-2.0

package litrfile

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/pelletier/go-toml/v2/unstable"

	"litr-cli/pkg/diag"
)

const (
	kindTable valueKind = iota
	kindArray
	kindString
	kindBool
	kindInteger
	kindFloat
	kindOther
)

type (
	valueKind int

	// value is one node of the ordered TOML document tree. Tables keep
	// their entries in document order; every node carries the location
	// of its first byte in the source.
	value struct {
		kind    valueKind
		str     string
		boolean bool
		entries []*entry
		items   []*value
		loc     diag.Location
	}

	// entry is a keyed slot in a table. The key location is kept
	// separately from the value location for key-targeted diagnostics.
	entry struct {
		key    string
		keyLoc diag.Location
		val    *value
	}
)

func newTable(loc diag.Location) *value {
	return &value{kind: kindTable, loc: loc}
}

func (v *value) entryFor(key string) *entry {
	for _, e := range v.entries {
		if e.key == key {
			return e
		}
	}
	return nil
}

func (v *value) get(key string) *value {
	if e := v.entryFor(key); e != nil {
		return e.val
	}
	return nil
}

func (v *value) isTable() bool  { return v.kind == kindTable }
func (v *value) isArray() bool  { return v.kind == kindArray }
func (v *value) isString() bool { return v.kind == kindString }

// docBuilder turns go-toml's expression stream into a document tree,
// reporting syntax and duplicate-key problems as MalformedFile.
type docBuilder struct {
	data []byte
	root *value
	errs *diag.Collector
}

// parseDocument parses raw TOML into an ordered document tree. The
// second return is false when the document could not be parsed at all.
func parseDocument(data []byte, errs *diag.Collector) (*value, bool) {
	b := &docBuilder{
		data: data,
		root: newTable(diag.Location{Line: 1, Column: 1}),
		errs: errs,
	}

	parser := &unstable.Parser{}
	parser.Reset(data)

	current := b.root
	for parser.NextExpression() {
		expr := parser.Expression()

		switch expr.Kind {
		case unstable.Table:
			current = b.openTable(expr)
		case unstable.ArrayTable:
			b.errs.Push(diag.NewAt(diag.MalformedFile,
				"Array of tables is not supported inside the configuration file.",
				b.locate(expr.Raw.Offset)))
			current = newTable(b.locate(expr.Raw.Offset))
		case unstable.KeyValue:
			b.insertKeyValue(current, expr)
		}
	}

	if err := parser.Error(); err != nil {
		loc := diag.Location{}
		var parserErr *unstable.ParserError
		if errors.As(err, &parserErr) && len(parserErr.Highlight) > 0 {
			loc = b.locate(uint32(subsliceOffset(data, parserErr.Highlight)))
		}
		b.errs.Push(diag.NewAt(diag.MalformedFile,
			"There is a syntax error inside the configuration file.", loc))
		return b.root, false
	}

	return b.root, true
}

// openTable resolves a `[a.b]` header, creating intermediate tables as
// needed. Reopening an existing table is allowed; colliding with a
// non-table value is a duplicate definition.
func (b *docBuilder) openTable(expr *unstable.Node) *value {
	table := b.root

	it := expr.Key()
	for it.Next() {
		node := it.Node()
		key := string(node.Data)
		keyLoc := b.locate(node.Raw.Offset)

		existing := table.entryFor(key)
		if existing == nil {
			child := newTable(keyLoc)
			table.entries = append(table.entries, &entry{key: key, keyLoc: keyLoc, val: child})
			table = child
			continue
		}

		if !existing.val.isTable() {
			b.errs.Push(diag.NewAt(diag.MalformedFile,
				fmt.Sprintf("The key %q is already defined.", key), keyLoc))
			return newTable(keyLoc)
		}
		table = existing.val
	}

	return table
}

// insertKeyValue places one `key = value` expression into the current
// table, descending through dotted key segments.
func (b *docBuilder) insertKeyValue(table *value, expr *unstable.Node) {
	type keyPart struct {
		name string
		loc  diag.Location
	}

	var parts []keyPart
	it := expr.Key()
	for it.Next() {
		node := it.Node()
		parts = append(parts, keyPart{name: string(node.Data), loc: b.locate(node.Raw.Offset)})
	}
	if len(parts) == 0 {
		return
	}

	for _, part := range parts[:len(parts)-1] {
		existing := table.entryFor(part.name)
		if existing == nil {
			child := newTable(part.loc)
			table.entries = append(table.entries, &entry{key: part.name, keyLoc: part.loc, val: child})
			table = child
			continue
		}
		if !existing.val.isTable() {
			b.errs.Push(diag.NewAt(diag.MalformedFile,
				fmt.Sprintf("The key %q is already defined.", part.name), part.loc))
			return
		}
		table = existing.val
	}

	last := parts[len(parts)-1]
	if table.entryFor(last.name) != nil {
		b.errs.Push(diag.NewAt(diag.MalformedFile,
			fmt.Sprintf("The key %q is already defined.", last.name), last.loc))
		return
	}

	table.entries = append(table.entries, &entry{
		key:    last.name,
		keyLoc: last.loc,
		val:    b.convertValue(expr.Value(), last.loc),
	})
}

// convertValue maps one go-toml value node into the document tree. The
// fallback location covers aggregate nodes whose raw range is unset.
func (b *docBuilder) convertValue(node *unstable.Node, fallback diag.Location) *value {
	loc := fallback
	if node.Raw.Length > 0 {
		loc = b.locate(node.Raw.Offset)
	}

	switch node.Kind {
	case unstable.String:
		return &value{kind: kindString, str: string(node.Data), loc: loc}
	case unstable.Bool:
		return &value{kind: kindBool, boolean: string(node.Data) == "true", loc: loc}
	case unstable.Integer:
		return &value{kind: kindInteger, str: string(node.Data), loc: loc}
	case unstable.Float:
		return &value{kind: kindFloat, str: string(node.Data), loc: loc}
	case unstable.Array:
		arr := &value{kind: kindArray, loc: loc}
		it := node.Children()
		for it.Next() {
			arr.items = append(arr.items, b.convertValue(it.Node(), loc))
		}
		return arr
	case unstable.InlineTable:
		table := newTable(loc)
		it := node.Children()
		for it.Next() {
			b.insertKeyValue(table, it.Node())
		}
		return table
	default:
		return &value{kind: kindOther, str: string(node.Data), loc: loc}
	}
}

// subsliceOffset returns the byte offset of subslice within data, assuming
// subslice shares data's backing array (as unstable.ParserError.Highlight
// does with the parser's input buffer).
func subsliceOffset(data, subslice []byte) int {
	if len(subslice) == 0 {
		return 0
	}
	return int(uintptr(unsafe.Pointer(&subslice[0])) - uintptr(unsafe.Pointer(&data[0])))
}

// locate converts a byte offset into a line/column location carrying
// the full source line for caret rendering.
func (b *docBuilder) locate(offset uint32) diag.Location {
	pos := int(offset)
	if pos > len(b.data) {
		pos = len(b.data)
	}

	line := uint32(1)
	lineStart := 0
	for i := 0; i < pos; i++ {
		if b.data[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	lineEnd := lineStart
	for lineEnd < len(b.data) && b.data[lineEnd] != '\n' {
		lineEnd++
	}

	return diag.Location{
		Line:     line,
		Column:   uint32(pos-lineStart) + 1,
		LineText: string(b.data[lineStart:lineEnd]),
	}
}
