package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atopile/atopile-sub011/core"
)

func mustInsert(t *testing.T, v *core.GraphView, n *core.Node) core.BoundNodeRef {
	t.Helper()
	ref, err := v.InsertNode(n)
	require.NoError(t, err)

	return ref
}

func TestInsertEdgeRequiresBothEndpointsMember(t *testing.T) {
	v := core.NewGraphView()
	a := core.NewNode()
	outside := core.NewNode()
	mustInsert(t, v, a)

	e := core.NewEdge(a, outside, core.EdgePointer)
	_, err := v.InsertEdge(e)
	require.ErrorIs(t, err, core.ErrTargetNodeNotInGraph)
}

func TestCompositionEdgeRejectsSecondParent(t *testing.T) {
	v := core.NewGraphView()
	parent1 := core.NewNode()
	parent2 := core.NewNode()
	child := core.NewNode()
	mustInsert(t, v, parent1)
	mustInsert(t, v, parent2)
	mustInsert(t, v, child)

	_, err := v.AddComposition(parent1, child, "a")
	require.NoError(t, err)

	_, err = v.AddComposition(parent2, child, "b")
	require.ErrorIs(t, err, core.ErrCompositionMultipleParents)
}

func TestCompositionEdgeRejectsCycle(t *testing.T) {
	v := core.NewGraphView()
	a := core.NewNode()
	b := core.NewNode()
	mustInsert(t, v, a)
	mustInsert(t, v, b)

	_, err := v.AddComposition(a, b, "child")
	require.NoError(t, err)

	_, err = v.AddComposition(b, a, "back")
	require.ErrorIs(t, err, core.ErrCompositionCycle)
}

func TestEdgesReturnsInsertionOrder(t *testing.T) {
	v := core.NewGraphView()
	a := core.NewNode()
	b := core.NewNode()
	c := core.NewNode()
	mustInsert(t, v, a)
	mustInsert(t, v, b)
	mustInsert(t, v, c)

	e1, err := v.AddPointer(a, b, "x")
	require.NoError(t, err)
	e2, err := v.AddPointer(a, c, "y")
	require.NoError(t, err)

	edges := v.Edges()
	require.Len(t, edges, 2)
	require.Equal(t, e1.Edge.ID(), edges[0].ID())
	require.Equal(t, e2.Edge.ID(), edges[1].ID())
}

func TestCompositionParent(t *testing.T) {
	v := core.NewGraphView()
	parent := core.NewNode()
	child := core.NewNode()
	mustInsert(t, v, parent)
	mustInsert(t, v, child)

	_, err := v.AddComposition(parent, child, "slot")
	require.NoError(t, err)

	got, ok := v.CompositionParent(child)
	require.True(t, ok)
	require.True(t, got.Same(parent))

	_, ok = v.CompositionParent(parent)
	require.False(t, ok)
}
