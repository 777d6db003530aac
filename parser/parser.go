package parser

import (
	"errors"
	"fmt"

	"go.creack.net/arith/ast"
	"go.creack.net/arith/lexer"
)

// Parse failures. They are wrapped with the offending token,
// use errors.Is to classify them.
var (
	ErrLexical         = errors.New("lexical error")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrTrailingToken   = errors.New("unexpected trailing token")
	ErrMissingParen    = errors.New("expected ')'")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrAlreadyParsed   = errors.New("parser already consumed")
)

// Parser builds an expression tree out of the tokens of a single lexer.
// It holds one token of lookahead, primed at construction.
type Parser struct {
	lex *lexer.Lexer

	curToken lexer.Token

	parsed bool
}

// New creates a parser over lex and reads the first token.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{lex: lex}
	p.nextToken()
	return p
}

// Parse is a shorthand for New(lexer.New(input)).Parse().
func Parse(input string) (ast.Expr, error) {
	return New(lexer.New(input)).Parse()
}

// Parse builds the expression. It can be called only once.
// An empty input yields ast.VoidLiteral. The whole input must be consumed.
func (p *Parser) Parse() (ast.Expr, error) {
	if p.parsed {
		return nil, ErrAlreadyParsed
	}
	p.parsed = true

	if p.curToken.Type == lexer.TokEOF {
		return ast.VoidLiteral{}, nil
	}

	expr, err := parseExpr(p)
	if err != nil {
		return nil, err
	}
	if p.curToken.Type != lexer.TokEOF {
		return nil, p.unexpected(ErrTrailingToken)
	}
	return expr, nil
}

// nextToken advances the lookahead, skipping comments.
func (p *Parser) nextToken() lexer.Token {
	p.curToken = p.lex.NextToken()
	for p.curToken.Type == lexer.TokComment {
		p.curToken = p.lex.NextToken()
	}
	return p.curToken
}

// expect checks if the current token is of the expected type.
func (p *Parser) expect(kind lexer.TokenType, failure error) error {
	if p.curToken.Type == kind {
		return nil
	}
	if p.curToken.Type == lexer.TokError {
		return p.unexpected(failure)
	}
	return fmt.Errorf("%w, but got: %s", failure, p.curToken)
}

// unexpected reports the current token. An error token takes precedence
// over the given failure as it carries the reason why lexing stopped.
func (p *Parser) unexpected(failure error) error {
	if p.curToken.Type == lexer.TokError {
		return fmt.Errorf("%w at %s: %s", ErrLexical, p.curToken.Loc, p.curToken.Value)
	}
	return fmt.Errorf("%w: %s", failure, p.curToken)
}
