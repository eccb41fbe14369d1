package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atopile/atopile-sub011/core"
)

func TestVisitChildrenEdgesOrderAndKind(t *testing.T) {
	v := core.NewGraphView()
	parent := core.NewNode()
	c1 := core.NewNode()
	c2 := core.NewNode()
	parentRef := mustInsert(t, v, parent)
	mustInsert(t, v, c1)
	mustInsert(t, v, c2)

	_, err := v.AddComposition(parent, c1, "first")
	require.NoError(t, err)
	_, err = v.AddComposition(parent, c2, "second")
	require.NoError(t, err)
	_, err = v.AddPointer(parent, c1, "ignored")
	require.NoError(t, err)

	var names []string
	err = v.VisitChildrenEdges(parentRef, nil, func(_ any, e core.BoundEdgeRef) (core.Signal, error) {
		names = append(names, e.Edge.Name)
		return core.Continue, nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second"}, names)
}

func TestVisitStopsEarly(t *testing.T) {
	v := core.NewGraphView()
	parent := core.NewNode()
	c1 := core.NewNode()
	c2 := core.NewNode()
	parentRef := mustInsert(t, v, parent)
	mustInsert(t, v, c1)
	mustInsert(t, v, c2)
	_, _ = v.AddComposition(parent, c1, "first")
	_, _ = v.AddComposition(parent, c2, "second")

	visited := 0
	err := v.VisitChildrenEdges(parentRef, nil, func(_ any, _ core.BoundEdgeRef) (core.Signal, error) {
		visited++
		return core.Stop, nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, visited)
}

func TestVisitWrapsCallbackError(t *testing.T) {
	v := core.NewGraphView()
	parent := core.NewNode()
	child := core.NewNode()
	parentRef := mustInsert(t, v, parent)
	mustInsert(t, v, child)
	_, _ = v.AddComposition(parent, child, "x")

	sentinel := errors.New("boom")
	err := v.VisitChildrenEdges(parentRef, nil, func(_ any, _ core.BoundEdgeRef) (core.Signal, error) {
		return core.Continue, sentinel
	})
	require.Error(t, err)
	require.ErrorIs(t, err, core.ErrCallback)
	require.ErrorIs(t, err, sentinel)
}

func TestDegreeOfCountsByKind(t *testing.T) {
	v := core.NewGraphView()
	a := core.NewNode()
	b := core.NewNode()
	aRef := mustInsert(t, v, a)
	bRef := mustInsert(t, v, b)
	_, _ = v.AddPointer(a, b, "p1")
	_, _ = v.AddPointer(a, b, "p2")

	out, err := v.OutDegreeOf(aRef, core.EdgePointer)
	require.NoError(t, err)
	require.Equal(t, 2, out)

	in, err := v.InDegreeOf(bRef, core.EdgePointer)
	require.NoError(t, err)
	require.Equal(t, 2, in)
}
