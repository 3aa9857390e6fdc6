// SPDX-License-Identifier: MPL-2.0

package cli_test

import (
	"testing"

	"litr-cli/pkg/cli"
)

func scanAll(t *testing.T, source string) []cli.Token {
	t.Helper()

	scanner := cli.NewScanner(source)
	var tokens []cli.Token
	for {
		token := scanner.Scan()
		tokens = append(tokens, token)
		if token.Type == cli.TokenEOS {
			return tokens
		}
		if len(tokens) > 64 {
			t.Fatalf("scanner did not terminate on %q", source)
		}
	}
}

func TestScanInvocation(t *testing.T) {
	t.Parallel()

	tokens := scanAll(t, `build --target="release" , run -q`)

	want := []struct {
		typ    cli.TokenType
		lexeme string
	}{
		{cli.TokenCommand, "build"},
		{cli.TokenLongParameter, "--target"},
		{cli.TokenEqual, "="},
		{cli.TokenString, `"release"`},
		{cli.TokenComma, ","},
		{cli.TokenCommand, "run"},
		{cli.TokenShortParameter, "-q"},
		{cli.TokenEOS, ""},
	}

	if len(tokens) != len(want) {
		t.Fatalf("token count = %d, want %d", len(tokens), len(want))
	}
	for i, w := range want {
		if tokens[i].Type != w.typ || tokens[i].Lexeme != w.lexeme {
			t.Errorf("tokens[%d] = %v %q, want %v %q",
				i, tokens[i].Type, tokens[i].Lexeme, w.typ, w.lexeme)
		}
	}
}

func TestScanNumbers(t *testing.T) {
	t.Parallel()

	tokens := scanAll(t, "42 3.14")

	if tokens[0].Type != cli.TokenNumber || tokens[0].Lexeme != "42" {
		t.Errorf("tokens[0] = %v %q, want number 42", tokens[0].Type, tokens[0].Lexeme)
	}
	if tokens[1].Type != cli.TokenNumber || tokens[1].Lexeme != "3.14" {
		t.Errorf("tokens[1] = %v %q, want number 3.14", tokens[1].Type, tokens[1].Lexeme)
	}
}

func TestScanErrors(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name    string
		source  string
		message string
	}{
		{"unterminated string", `"open`, "Unterminated string."},
		{"unexpected character", "?", "Unexpected character."},
		{"short parameter not alpha", "-1", "A short parameter can only be A-Za-z as name."},
		{"short parameter too long", "-abc", "A short parameter can only contain one character (A-Za-z)."},
		{"long parameter bad start", "--1x", "A parameter can only start with the characters A-Za-z."},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens := scanAll(t, tt.source)
			if tokens[0].Type != cli.TokenError {
				t.Fatalf("tokens[0].Type = %v, want error", tokens[0].Type)
			}
			if tokens[0].Lexeme != tt.message {
				t.Errorf("message = %q, want %q", tokens[0].Lexeme, tt.message)
			}
		})
	}
}

func TestScanContinuesAfterError(t *testing.T) {
	t.Parallel()

	tokens := scanAll(t, "? build")

	if tokens[0].Type != cli.TokenError {
		t.Fatalf("tokens[0].Type = %v, want error", tokens[0].Type)
	}
	if tokens[1].Type != cli.TokenCommand || tokens[1].Lexeme != "build" {
		t.Errorf("tokens[1] = %v %q, want command build", tokens[1].Type, tokens[1].Lexeme)
	}
}

func TestScanUnderscoreCommand(t *testing.T) {
	t.Parallel()

	tokens := scanAll(t, "_internal")

	if tokens[0].Type != cli.TokenCommand || tokens[0].Lexeme != "_internal" {
		t.Errorf("tokens[0] = %v %q, want command", tokens[0].Type, tokens[0].Lexeme)
	}
}
