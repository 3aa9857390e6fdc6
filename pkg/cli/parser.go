// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"strings"

	"litr-cli/pkg/diag"
)

// Parser compiles an invocation string into bytecode. It is recursive
// descent with panic-mode recovery: the first error in a malformed
// construct is reported, further ones are suppressed until the next
// top-level comma.
type Parser struct {
	source  string
	scanner *Scanner
	inst    *Instruction
	errs    *diag.Collector

	current  Token
	previous Token

	scope     []string
	panicMode bool
	hasError  bool
}

// SourceFromArguments builds the invocation string the scanner
// consumes: argv (without the program name) joined by single spaces,
// with any `--name=value` rewritten so the value becomes a
// double-quoted string literal.
func SourceFromArguments(args []string) string {
	var source strings.Builder

	for _, argument := range args {
		if name, value, found := strings.Cut(argument, "="); found {
			argument = name + `="` + value + `"`
		}
		source.WriteString(" ")
		source.WriteString(argument)
	}

	return source.String()
}

// NewParser parses the given source into the instruction stream.
// Diagnostics go into errs.
func NewParser(inst *Instruction, source string, errs *diag.Collector) *Parser {
	p := &Parser{
		source:  source,
		scanner: NewScanner(source),
		inst:    inst,
		errs:    errs,
	}

	p.advance()
	p.arguments()
	p.endOfString()

	return p
}

// HasErrors reports whether parsing produced any diagnostic.
func (p *Parser) HasErrors() bool {
	return p.hasError
}

func (p *Parser) advance() {
	p.previous = p.current

	for {
		p.current = p.scanner.Scan()
		if p.current.Type != TokenError {
			break
		}
		p.errorAtCurrent(p.current.Lexeme)
	}
}

func (p *Parser) consume(t TokenType, message string) bool {
	if p.current.Type == t {
		p.advance()
		return true
	}

	p.errorAtCurrent(message)
	return false
}

func (p *Parser) match(types ...TokenType) bool {
	for _, t := range types {
		if p.previous.Type == t {
			return true
		}
	}
	return false
}

func (p *Parser) peek(t TokenType) bool {
	return p.current.Type == t
}

func (p *Parser) arguments() {
	p.advance()

	if p.match(TokenEqual) {
		p.errorAtPrevious("You are missing a parameter in front of the assignment.")
		return
	}

	if p.match(TokenString, TokenNumber, TokenError) {
		p.errorAtPrevious("This is not allowed here.")
		return
	}

	if p.match(TokenCommand) {
		p.commands()
		p.arguments()
	}

	if p.match(TokenShortParameter, TokenLongParameter) {
		p.parameters()
		p.arguments()
	}

	if p.previous.Type == TokenComma {
		p.comma()
		p.arguments()
	}
}

func (p *Parser) commands() {
	p.emitScope(p.previous.Lexeme)
}

func (p *Parser) parameters() {
	p.emitDefinition(strings.TrimLeft(p.previous.Lexeme, "-"))

	if p.peek(TokenEqual) {
		p.advance()
		if p.consume(TokenString, "Value assignment missing.") {
			p.emitConstant(strings.Trim(p.previous.Lexeme, `"`))
		}
	}
}

// comma executes and clears the open scope. The top-level comma is the
// panic-mode synchronization boundary.
func (p *Parser) comma() {
	p.panicMode = false

	if len(p.scope) == 0 {
		p.errorAtPrevious("Unexpected comma.")
		return
	}

	if p.peek(TokenComma) {
		p.errorAtCurrent("Duplicated comma.")
		return
	}

	p.emitExecution()
	p.emitClear()
}

func (p *Parser) endOfString() {
	if len(p.scope) > 0 {
		p.emitExecution()
	}

	p.consume(TokenEOS, "Expected end.")
}

func (p *Parser) emitScope(value string) {
	p.scope = append(p.scope, value)
	p.inst.Write(OpBeginScope)
	p.inst.WriteOperand(p.inst.WriteConstant(value))
}

func (p *Parser) emitDefinition(value string) {
	p.inst.Write(OpDefine)
	p.inst.WriteOperand(p.inst.WriteConstant(value))
}

func (p *Parser) emitConstant(value string) {
	p.inst.Write(OpConstant)
	p.inst.WriteOperand(p.inst.WriteConstant(value))
}

func (p *Parser) emitExecution() {
	p.inst.Write(OpExecute)
	p.inst.WriteOperand(p.inst.WriteConstant(p.scopePath()))
}

func (p *Parser) emitClear() {
	p.inst.Write(OpClear)
	p.scope = p.scope[:len(p.scope)-1]
}

func (p *Parser) scopePath() string {
	return strings.Join(p.scope, ".")
}

func (p *Parser) errorAtPrevious(message string) {
	p.errorAt(p.previous, message)
}

func (p *Parser) errorAtCurrent(message string) {
	p.errorAt(p.current, message)
}

func (p *Parser) errorAt(token Token, message string) {
	if p.panicMode {
		return
	}
	p.panicMode = true

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

	p.errs.Push(diag.NewAt(diag.CLIParse, out, diag.Location{
		Line:     1,
		Column:   token.Column,
		LineText: strings.TrimSpace(p.source),
	}))

	p.hasError = true
}
