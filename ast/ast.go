// Package ast defines the expression tree built by the parser.
package ast

import (
	"fmt"
	"strconv"
)

// Expr is any node of the expression tree.
// The set of nodes is closed: Integer, Void, Identifier and Binary.
type Expr interface {
	// Dump returns the fully parenthesized form of the expression.
	Dump() string
	expr()
}

// Operator is a binary arithmetic operator.
type Operator int

// Operators.
const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
)

func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// VoidLabel is how an empty expression is dumped.
const VoidLabel = "unit/void"

type IntegerLiteral struct {
	Value int64
}

func (IntegerLiteral) expr() {}

func (i IntegerLiteral) Dump() string { return strconv.FormatInt(i.Value, 10) }

// VoidLiteral stands for "no expression", i.e. an empty input.
type VoidLiteral struct{}

func (VoidLiteral) expr() {}

func (VoidLiteral) Dump() string { return VoidLabel }

type Identifier struct {
	Name string
}

func (Identifier) expr() {}

func (i Identifier) Dump() string { return i.Name }

// BinaryExpr is `Left Operator Right`.
type BinaryExpr struct {
	Left     Expr
	Operator Operator
	Right    Expr
}

func (BinaryExpr) expr() {}

func (b BinaryExpr) Dump() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.Dump(), b.Operator, b.Right.Dump())
}

// Dump returns the fully parenthesized form of e.
func Dump(e Expr) string {
	if e == nil {
		return ""
	}
	return e.Dump()
}
