// SPDX-License-Identifier: MPL-2.0

package script

import (
	"fmt"
	"strings"

	"litr-cli/pkg/diag"
)

type (
	// Result holds the output of one compilation: the final shell
	// string and the names of the variables the script resolved, in
	// order of first appearance.
	Result struct {
		Script        string
		UsedVariables []string
	}

	// compiler is the recursive-descent evaluator over the scanned
	// token stream. It reports at most one diagnostic per malformed
	// sequence (panic mode, cleared at the closing `}`).
	compiler struct {
		scanner  *Scanner
		location diag.Location
		vars     Variables
		errs     *diag.Collector

		current  Token
		previous Token

		panicMode bool
		out       strings.Builder
		used      []string
	}
)

// Compile resolves one script line against the given variable
// environment. Diagnostics go into errs with locations derived from the
// script's TOML location plus the token column inside the script.
//
// For reference-collection mode, pass the full parameter set as
// variables and a throwaway collector, and read UsedVariables only.
func Compile(source string, location diag.Location, vars Variables, errs *diag.Collector) Result {
	c := &compiler{
		scanner:  NewScanner(source),
		location: location,
		vars:     vars,
		errs:     errs,
	}

	c.advance()
	c.source()
	c.endOfScript()

	return Result{Script: c.out.String(), UsedVariables: c.used}
}

func (c *compiler) advance() {
	c.previous = c.current

	for {
		c.current = c.scanner.Scan()
		if c.current.Type != TokenError {
			break
		}
		c.errorAtCurrent(c.current.Lexeme)
	}
}

func (c *compiler) consume(t TokenType, message string) bool {
	if c.current.Type == t {
		c.advance()
		return true
	}

	c.errorAtCurrent(message)
	return false
}

func (c *compiler) match(t TokenType) bool {
	return c.previous.Type == t
}

func (c *compiler) peek(t TokenType) bool {
	return c.current.Type == t
}

func (c *compiler) source() {
	c.advance()

	if c.match(TokenUntouched) {
		c.untouched()
		c.source()
		return
	}

	if c.match(TokenStartSeq) {
		c.sequence()
	}
}

func (c *compiler) untouched() {
	c.out.WriteString(c.previous.Lexeme)
}

func (c *compiler) sequence() {
	c.advance()

	switch c.previous.Type {
	case TokenString:
		c.stringLiteral()
	case TokenIdentifier:
		c.identifier()
	default:
		c.errorAtPrevious("Unexpected character.")
	}

	c.endOfSequence()
	c.source()
}

func (c *compiler) identifier() {
	name := c.previous.Lexeme

	variable, ok := c.vars[name]
	if !ok {
		c.errorAtPrevious("Undefined parameter.")
		return
	}

	c.collectUsed(variable)

	switch variable.Type {
	case VarString:
		c.out.WriteString(variable.Str)
	case VarBool:
		c.statement(variable)
	}
}

func (c *compiler) statement(variable Variable) {
	c.advance()

	if c.peek(TokenOr) {
		c.orStatement(variable)
	} else {
		c.ifStatement(variable)
	}
}

func (c *compiler) orStatement(variable Variable) {
	if variable.Bool {
		c.expression()
		c.consume(TokenOr, "Expected `or` after expression.")
		// Skip the false clause.
		c.advance()
	} else {
		// Skip over the true branch.
		for !c.peek(TokenOr) && !c.peek(TokenEOS) {
			c.advance()
		}

		c.consume(TokenOr, "Expected `or` after expression.")
		c.advance()
		c.expression()
	}
}

func (c *compiler) ifStatement(variable Variable) {
	if variable.Bool {
		c.expression()
	}
}

func (c *compiler) expression() {
	if c.match(TokenString) {
		c.stringLiteral()
		return
	}

	if c.match(TokenIdentifier) {
		c.identifier()
	}
}

func (c *compiler) stringLiteral() {
	c.out.WriteString(strings.Trim(c.previous.Lexeme, "'"))
}

// endOfSequence expects the closing `}`. The brace is the
// synchronization boundary for panic mode.
func (c *compiler) endOfSequence() {
	if c.consume(TokenEndSeq, "Expected `}`.") {
		c.panicMode = false
	}
}

func (c *compiler) endOfScript() {
	c.consume(TokenEOS, "Expected end.")
}

func (c *compiler) collectUsed(variable Variable) {
	for _, name := range c.used {
		if name == variable.Name {
			return
		}
	}
	c.used = append(c.used, variable.Name)
}

func (c *compiler) errorAtPrevious(message string) {
	c.errorAt(c.previous, message)
}

func (c *compiler) errorAtCurrent(message string) {
	c.errorAt(c.current, message)
}

func (c *compiler) errorAt(token Token, message string) {
	if c.panicMode {
		return
	}
	c.panicMode = true

	out := "Cannot parse"
	switch token.Type {
	case TokenEOS:
		out += " at end"
	case TokenError:
		// The lexeme is the message itself.
	default:
		out += fmt.Sprintf(" at `%s`", token.Lexeme)
	}
	out += ": " + message

	c.errs.Push(diag.NewAt(diag.ScriptParse, out, diag.Location{
		Line:     c.location.Line,
		Column:   c.location.Column + token.Column + 1,
		LineText: c.location.LineText,
	}))
}
