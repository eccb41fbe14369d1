package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atopile/atopile-sub011/core"
)

func TestNewGraphViewHasSelfNodeFirst(t *testing.T) {
	v := core.NewGraphView()
	require.Equal(t, 1, v.NodeCount())

	nodes := v.Nodes()
	require.Len(t, nodes, 1)
	require.True(t, nodes[0].Same(v.Self().Node))
}

func TestNodeSameComparesIdentityNotValue(t *testing.T) {
	a := core.NewNode()
	b := core.NewNode()
	require.False(t, a.Same(b))
	require.True(t, a.Same(a))
}

func TestInsertNodeRejectsAlreadyBound(t *testing.T) {
	v := core.NewGraphView()
	n := core.NewNode()

	_, err := v.InsertNode(n)
	require.NoError(t, err)

	_, err = v.InsertNode(n)
	require.ErrorIs(t, err, core.ErrNodeAlreadyBound)
}

func TestInsertNodeRejectsNil(t *testing.T) {
	v := core.NewGraphView()
	_, err := v.InsertNode(nil)
	require.ErrorIs(t, err, core.ErrNilNode)
}

func TestSeqIsUniqueAndMonotonicPerNode(t *testing.T) {
	a := core.NewNode()
	b := core.NewNode()
	require.NotEqual(t, a.Seq(), b.Seq())
	require.Less(t, a.Seq(), b.Seq())
}
