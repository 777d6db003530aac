// Package interpreter evaluates expression trees to integers.
package interpreter

import (
	"errors"
	"fmt"

	"go.creack.net/arith/ast"
	"go.creack.net/arith/parser"
)

// Evaluation failures.
var (
	ErrVoid           = errors.New("unexpected void literal")
	ErrDivisionByZero = errors.New("division by zero")
)

// Interpreter parses and evaluates a single expression.
type Interpreter struct {
	parser   *parser.Parser
	env      *Env
	onParsed func(ast.Expr)
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithResolver sets the fallback for variables that were not Set.
func WithResolver(r Resolver) Option {
	return func(i *Interpreter) { i.env.fallback = r }
}

// WithParsedHook registers fn to be called with the tree before evaluation.
func WithParsedHook(fn func(ast.Expr)) Option {
	return func(i *Interpreter) { i.onParsed = fn }
}

// New creates an interpreter for the expression p will parse.
func New(p *parser.Parser, opts ...Option) *Interpreter {
	i := &Interpreter{
		parser: p,
		env:    NewEnv(nil),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Set defines a variable. It must be called before Interpret.
func (i *Interpreter) Set(name string, value int64) {
	i.env.Set(name, value)
}

// Env returns the environment used for evaluation.
func (i *Interpreter) Env() *Env { return i.env }

// Interpret parses the expression and evaluates it.
func (i *Interpreter) Interpret() (int64, error) {
	expr, err := i.parser.Parse()
	if err != nil {
		return 0, err
	}
	if i.onParsed != nil {
		i.onParsed(expr)
	}
	return Eval(expr, i.env)
}

// Eval reduces expr to an integer, resolving identifiers in env.
// A nil env has no variables.
func Eval(expr ast.Expr, env *Env) (int64, error) {
	if env == nil {
		env = NewEnv(nil)
	}
	return ast.Walk[int64](expr, evaluator{env: env})
}

type evaluator struct {
	env *Env
}

func (evaluator) VisitIntegerLiteral(n ast.IntegerLiteral) (int64, error) {
	return n.Value, nil
}

func (evaluator) VisitVoidLiteral(ast.VoidLiteral) (int64, error) {
	return 0, ErrVoid
}

func (e evaluator) VisitIdentifier(n ast.Identifier) (int64, error) {
	return e.env.Lookup(n.Name)
}

// VisitBinaryExpr evaluates the left operand first, its failure wins.
func (e evaluator) VisitBinaryExpr(n ast.BinaryExpr) (int64, error) {
	left, err := ast.Walk[int64](n.Left, e)
	if err != nil {
		return 0, err
	}
	right, err := ast.Walk[int64](n.Right, e)
	if err != nil {
		return 0, err
	}
	switch n.Operator {
	case ast.OpAdd:
		return left + right, nil
	case ast.OpSub:
		return left - right, nil
	case ast.OpMul:
		return left * right, nil
	case ast.OpDiv:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left / right, nil
	default:
		return 0, fmt.Errorf("unsupported operator %s", n.Operator)
	}
}
