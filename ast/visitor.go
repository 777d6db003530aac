package ast

import "fmt"

// Visitor handles every kind of node. Adding a node kind adds a method here,
// which every implementation then has to provide.
type Visitor[T any] interface {
	VisitIntegerLiteral(IntegerLiteral) (T, error)
	VisitVoidLiteral(VoidLiteral) (T, error)
	VisitIdentifier(Identifier) (T, error)
	VisitBinaryExpr(BinaryExpr) (T, error)
}

// Walk dispatches e to the matching method of v.
func Walk[T any](e Expr, v Visitor[T]) (T, error) {
	switch n := e.(type) {
	case IntegerLiteral:
		return v.VisitIntegerLiteral(n)
	case *IntegerLiteral:
		return v.VisitIntegerLiteral(*n)
	case VoidLiteral:
		return v.VisitVoidLiteral(n)
	case *VoidLiteral:
		return v.VisitVoidLiteral(*n)
	case Identifier:
		return v.VisitIdentifier(n)
	case *Identifier:
		return v.VisitIdentifier(*n)
	case BinaryExpr:
		return v.VisitBinaryExpr(n)
	case *BinaryExpr:
		return v.VisitBinaryExpr(*n)
	default:
		panic(fmt.Errorf("unsupported expression type %T", e))
	}
}
