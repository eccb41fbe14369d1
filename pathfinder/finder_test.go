package pathfinder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atopile/atopile-sub011/attribute"
	"github.com/atopile/atopile-sub011/core"
	"github.com/atopile/atopile-sub011/pathfinder"
)

func mustNode(t *testing.T, v *core.GraphView) core.BoundNodeRef {
	t.Helper()
	ref, err := v.InsertNode(core.NewNode())
	require.NoError(t, err)

	return ref
}

func TestFindSimpleChain(t *testing.T) {
	v := core.NewGraphView()
	a := mustNode(t, v)
	b := mustNode(t, v)
	c := mustNode(t, v)

	_, err := v.AddComposition(a.Node, b.Node, "b")
	require.NoError(t, err)
	_, err = v.AddComposition(b.Node, c.Node, "c")
	require.NoError(t, err)

	f, err := pathfinder.NewFinder()
	require.NoError(t, err)

	res, err := f.Find(v, []core.BoundNodeRef{a}, []core.BoundNodeRef{c})
	require.NoError(t, err)
	require.Len(t, res.Paths, 1)
	require.Equal(t, 3, len(res.Paths[0].Nodes))
	require.True(t, res.Paths[0].IsStrong())
}

func TestFindNoPath(t *testing.T) {
	v := core.NewGraphView()
	a := mustNode(t, v)
	b := mustNode(t, v)

	f, err := pathfinder.NewFinder()
	require.NoError(t, err)

	res, err := f.Find(v, []core.BoundNodeRef{a}, []core.BoundNodeRef{b})
	require.NoError(t, err)
	require.Empty(t, res.Paths)
}

// TestFindSplitJoinConditionalLink mirrors the spec example: source S,
// destination D, hierarchical module M containing two children C1->D and
// C2->D, with a conditional link on C2 that the caller's filter refuses.
// The finder must return exactly the S->M->C1->D path.
func TestFindSplitJoinConditionalLink(t *testing.T) {
	v := core.NewGraphView()
	s := mustNode(t, v)
	m := mustNode(t, v)
	c1 := mustNode(t, v)
	c2 := mustNode(t, v)
	d := mustNode(t, v)

	_, err := v.AddComposition(s.Node, m.Node, "m")
	require.NoError(t, err)
	_, err = v.AddComposition(m.Node, c1.Node, "c1")
	require.NoError(t, err)
	_, err = v.AddComposition(m.Node, c2.Node, "c2")
	require.NoError(t, err)

	_, err = v.AddPointer(c1.Node, d.Node, "to_d")
	require.NoError(t, err)

	condEdge, err := v.AddPointer(c2.Node, d.Node, "to_d")
	require.NoError(t, err)
	require.NoError(t, condEdge.Edge.Attrs.Put("conditional", attribute.String("true")))

	f, err := pathfinder.NewFinder(
		pathfinder.WithConditionalLinkFilter(func(_ core.BoundEdgeRef) (bool, bool) {
			return false, false
		}),
	)
	require.NoError(t, err)

	res, err := f.Find(v, []core.BoundNodeRef{s}, []core.BoundNodeRef{d})
	require.NoError(t, err)
	require.Len(t, res.Paths, 1)

	last := res.Paths[0].Nodes[len(res.Paths[0].Nodes)-1]
	require.True(t, last.Node.Same(d.Node))

	viaC1 := false
	for _, n := range res.Paths[0].Nodes {
		if n.Node.Same(c1.Node) {
			viaC1 = true
		}
	}
	require.True(t, viaC1)
}

func TestFindMaxDepthFilter(t *testing.T) {
	v := core.NewGraphView()
	a := mustNode(t, v)
	b := mustNode(t, v)
	c := mustNode(t, v)

	_, err := v.AddComposition(a.Node, b.Node, "b")
	require.NoError(t, err)
	_, err = v.AddComposition(b.Node, c.Node, "c")
	require.NoError(t, err)

	f, err := pathfinder.NewFinder(pathfinder.WithMaxDepth(1))
	require.NoError(t, err)

	res, err := f.Find(v, []core.BoundNodeRef{a}, []core.BoundNodeRef{c})
	require.NoError(t, err)
	require.Empty(t, res.Paths)
}

func TestNewFinderRejectsNegativeMaxDepth(t *testing.T) {
	_, err := pathfinder.NewFinder(pathfinder.WithMaxDepth(-1))
	require.ErrorIs(t, err, pathfinder.ErrOptionViolation)
}

func TestFindRejectsNilGraph(t *testing.T) {
	f, err := pathfinder.NewFinder()
	require.NoError(t, err)

	_, err = f.Find(nil, nil, nil)
	require.ErrorIs(t, err, pathfinder.ErrGraphNil)
}

func TestFindRejectsNoSources(t *testing.T) {
	v := core.NewGraphView()
	f, err := pathfinder.NewFinder()
	require.NoError(t, err)

	_, err = f.Find(v, nil, nil)
	require.ErrorIs(t, err, pathfinder.ErrNoSources)
}
