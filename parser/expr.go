package parser

import (
	"fmt"
	"strconv"

	"go.creack.net/arith/ast"
	"go.creack.net/arith/lexer"
)

type parseFn func(*Parser) (ast.Expr, error)

// expr := additive
func parseExpr(p *Parser) (ast.Expr, error) {
	return parseAdditiveExpr(p)
}

// additive := multiplicative ( ('+'|'-') multiplicative )*
func parseAdditiveExpr(p *Parser) (ast.Expr, error) {
	return parseBinaryExpr(p, additiveOps, parseMultiplicativeExpr)
}

// multiplicative := primary ( ('*'|'/') primary )*
func parseMultiplicativeExpr(p *Parser) (ast.Expr, error) {
	return parseBinaryExpr(p, multiplicativeOps, parsePrimaryExpr)
}

// parseBinaryExpr folds operands of a single tier from the left.
func parseBinaryExpr(p *Parser, ops lookupTable[ast.Operator], operand parseFn) (ast.Expr, error) {
	left, err := operand(p)
	if err != nil {
		return nil, err
	}
	for {
		op, ok := ops[p.curToken.Type]
		if !ok {
			return left, nil
		}
		p.nextToken()
		right, err := operand(p)
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{
			Left:     left,
			Operator: op,
			Right:    right,
		}
	}
}

// primary := NUMBER | IDENTIFIER | '(' expr ')'
func parsePrimaryExpr(p *Parser) (ast.Expr, error) {
	switch p.curToken.Type {
	case lexer.TokNumber:
		tok := p.curToken
		number, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q at %s", ErrInvalidNumber, tok.Value, tok.Loc)
		}
		p.nextToken()
		return ast.IntegerLiteral{Value: number}, nil
	case lexer.TokIdentifier:
		name := p.curToken.Value
		p.nextToken()
		return ast.Identifier{Name: name}, nil
	case lexer.TokParenLeft:
		p.nextToken()
		expr, err := parseExpr(p)
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.TokParenRight, ErrMissingParen); err != nil {
			return nil, err
		}
		p.nextToken()
		return expr, nil
	default:
		return nil, p.unexpected(ErrUnexpectedToken)
	}
}
