package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Identifiers + literals.
	TokIdentifier
	TokNumber
	TokString
	TokKeyword
	TokComment

	// Operators.
	TokPlus
	TokMinus
	TokStar
	TokSlash
	TokPercent

	// Delimiters.
	TokParenLeft
	TokParenRight

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	if s, ok := tokenTypeStrings[tt]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokIdentifier: "IDENTIFIER",
	TokNumber:     "NUMBER",
	TokString:     "STRING",
	TokKeyword:    "KEYWORD",
	TokComment:    "COMMENT",

	TokPlus:    "PLUS",
	TokMinus:   "MINUS",
	TokStar:    "STAR",
	TokSlash:   "SLASH",
	TokPercent: "PERCENT",

	TokParenLeft:  "PAREN_LEFT",
	TokParenRight: "PAREN_RIGHT",
}

// keywords are recognized but carry no meaning in the expression grammar.
var keywords = []string{"if", "else", "while", "for", "return"}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// IsTerminal reports whether no token can follow one of this type.
func (tt TokenType) IsTerminal() bool {
	return tt.IsOneOf(TokEOF, TokError)
}

// Location is a 1-based line:column position in the input.
type Location struct {
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Token represents a lexical token of an expression.
type Token struct {
	Type  TokenType
	Value string
	Loc   Location
}

func (t Token) String() string {
	switch {
	case t.Type == TokEOF:
		return fmt.Sprintf("EOF[%s]", t.Loc)
	case t.Type == TokError:
		return t.errorString()
	case len(t.Value) > 16:
		return fmt.Sprintf("%s[%s]: %.16q", t.Type, t.Loc, t.Value)
	}
	return fmt.Sprintf("%s[%s]: %q", t.Type, t.Loc, t.Value)
}

func (t Token) errorString() string {
	out := fmt.Sprintf("ERROR [%s]: %s", t.Loc, t.Value)
	return out
}
