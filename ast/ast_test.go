package ast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bin(l Expr, op Operator, r Expr) BinaryExpr {
	return BinaryExpr{Left: l, Operator: op, Right: r}
}

func TestDump(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{name: "integer", expr: IntegerLiteral{Value: 42}, want: "42"},
		{name: "negative integer", expr: IntegerLiteral{Value: -7}, want: "-7"},
		{name: "identifier", expr: Identifier{Name: "x"}, want: "x"},
		{name: "void", expr: VoidLiteral{}, want: "unit/void"},
		{name: "add", expr: bin(IntegerLiteral{1}, OpAdd, IntegerLiteral{2}), want: "(1 + 2)"},
		{
			name: "left nested",
			expr: bin(bin(IntegerLiteral{10}, OpSub, IntegerLiteral{2}), OpSub, IntegerLiteral{3}),
			want: "((10 - 2) - 3)",
		},
		{
			name: "right nested",
			expr: bin(Identifier{"a"}, OpAdd, bin(Identifier{"b"}, OpMul, Identifier{"c"})),
			want: "(a + (b * c))",
		},
		{
			name: "pointer nodes",
			expr: &BinaryExpr{Left: &IntegerLiteral{6}, Operator: OpDiv, Right: &Identifier{"d"}},
			want: "(6 / d)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dump(tt.expr))
		})
	}
}

func TestOperatorString(t *testing.T) {
	assert.Equal(t, "+", OpAdd.String())
	assert.Equal(t, "-", OpSub.String())
	assert.Equal(t, "*", OpMul.String())
	assert.Equal(t, "/", OpDiv.String())
	assert.Equal(t, "Operator(9)", Operator(9).String())
}

// depth counts the nodes of the longest path of a tree.
type depth struct{}

func (depth) VisitIntegerLiteral(IntegerLiteral) (int, error) { return 1, nil }
func (depth) VisitVoidLiteral(VoidLiteral) (int, error)       { return 0, errors.New("void") }
func (depth) VisitIdentifier(Identifier) (int, error)         { return 1, nil }
func (d depth) VisitBinaryExpr(b BinaryExpr) (int, error) {
	l, err := Walk[int](b.Left, d)
	if err != nil {
		return 0, err
	}
	r, err := Walk[int](b.Right, d)
	if err != nil {
		return 0, err
	}
	return 1 + max(l, r), nil
}

func TestWalk(t *testing.T) {
	tree := bin(bin(IntegerLiteral{1}, OpAdd, Identifier{"x"}), OpMul, &IntegerLiteral{3})
	n, err := Walk[int](tree, depth{})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = Walk[int](bin(IntegerLiteral{1}, OpAdd, VoidLiteral{}), depth{})
	require.EqualError(t, err, "void")

	assert.Panics(t, func() { _, _ = Walk[int](nil, depth{}) })
}
