// SPDX-License-Identifier: MPL-2.0

package cli

const (
	// TokenComma separates chained command invocations.
	TokenComma TokenType = iota
	// TokenEqual assigns a value to the preceding parameter.
	TokenEqual
	// TokenCommand is an identifier starting with a letter or
	// underscore.
	TokenCommand
	// TokenShortParameter is `-` followed by exactly one ASCII letter.
	TokenShortParameter
	// TokenLongParameter is `--` followed by a letter and then letters
	// or digits.
	TokenLongParameter
	// TokenString is a double-quoted string literal.
	TokenString
	// TokenNumber is digits with an optional fractional part.
	TokenNumber
	// TokenError carries a scanner error message as its lexeme.
	TokenError
	// TokenEOS marks the end of the invocation string.
	TokenEOS
)

type (
	// TokenType enumerates the lexical categories of the invocation
	// language.
	TokenType int

	// Token is one scanned lexeme. Column is the scanner column after
	// the token's last character.
	Token struct {
		Type   TokenType
		Lexeme string
		Column uint32
	}
)
