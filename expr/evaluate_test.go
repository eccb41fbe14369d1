package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atopile/atopile-sub011/core"
	"github.com/atopile/atopile-sub011/expr"
	"github.com/atopile/atopile-sub011/literal"
	"github.com/atopile/atopile-sub011/units"
)

func TestEvaluateAddOfTwoLiterals(t *testing.T) {
	v := core.NewGraphView()

	a, err := expr.NewLiteralNode(v, literal.NewNumbers(literal.SetupFromSingleton(2), nil))
	require.NoError(t, err)
	b, err := expr.NewLiteralNode(v, literal.NewNumbers(literal.SetupFromSingleton(3), nil))
	require.NoError(t, err)

	sum, err := expr.NewOperatorNode(v, expr.OpAdd, 0, a.Node, b.Node)
	require.NoError(t, err)

	got, err := expr.EvaluateNumeric(v, sum)
	require.NoError(t, err)

	val, err := got.Set.GetSingle()
	require.NoError(t, err)
	require.InDelta(t, 5, val, 1e-9)
}

func TestEvaluateNestedExpression(t *testing.T) {
	v := core.NewGraphView()

	volt := units.Volt
	two, _ := expr.NewLiteralNode(v, literal.NewNumbers(literal.SetupFromSingleton(2), &volt))
	three, _ := expr.NewLiteralNode(v, literal.NewNumbers(literal.SetupFromSingleton(3), &volt))
	four, _ := expr.NewLiteralNode(v, literal.NewNumbers(literal.SetupFromSingleton(4), &volt))

	sum, err := expr.NewOperatorNode(v, expr.OpAdd, 0, two.Node, three.Node)
	require.NoError(t, err)
	product, err := expr.NewOperatorNode(v, expr.OpMul, 0, sum.Node, four.Node)
	require.NoError(t, err)

	got, err := expr.EvaluateNumeric(v, product)
	require.NoError(t, err)

	val, err := got.Set.GetSingle()
	require.NoError(t, err)
	require.InDelta(t, 20, val, 1e-9)
}

func TestEvaluateIsSubsetReturnsBoolean(t *testing.T) {
	v := core.NewGraphView()

	small, _ := expr.NewLiteralNode(v, literal.NewNumbers(literal.SetupFromValues([]literal.Interval{{Min: 2, Max: 4}}), nil))
	big, _ := expr.NewLiteralNode(v, literal.NewNumbers(literal.SetupFromValues([]literal.Interval{{Min: 0, Max: 10}}), nil))

	isSub, err := expr.NewOperatorNode(v, expr.OpIsSubset, 0, small.Node, big.Node)
	require.NoError(t, err)

	got, err := expr.EvaluatePredicate(v, isSub)
	require.NoError(t, err)
	b, err := got.GetSingle()
	require.NoError(t, err)
	require.True(t, b)
}

func TestEvaluateNumericRejectsPredicateRoot(t *testing.T) {
	v := core.NewGraphView()
	a, _ := expr.NewLiteralNode(v, literal.NewNumbers(literal.SetupFromSingleton(1), nil))
	b, _ := expr.NewLiteralNode(v, literal.NewNumbers(literal.SetupFromSingleton(1), nil))

	isSub, err := expr.NewOperatorNode(v, expr.OpIsSubset, 0, a.Node, b.Node)
	require.NoError(t, err)

	_, err = expr.EvaluateNumeric(v, isSub)
	require.ErrorIs(t, err, expr.ErrWrongResultKind)
}
