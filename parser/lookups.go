package parser

import (
	"go.creack.net/arith/ast"
	"go.creack.net/arith/lexer"
)

type lookupTable[T any] map[lexer.TokenType]T

// Operators of each precedence tier, lowest first.
var (
	additiveOps = lookupTable[ast.Operator]{
		lexer.TokPlus:  ast.OpAdd,
		lexer.TokMinus: ast.OpSub,
	}
	multiplicativeOps = lookupTable[ast.Operator]{
		lexer.TokStar:  ast.OpMul,
		lexer.TokSlash: ast.OpDiv,
	}
)
