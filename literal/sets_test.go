package literal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atopile/atopile-sub011/literal"
)

func TestStringsSeticOps(t *testing.T) {
	a := literal.NewStrings([]string{"b", "a", "a"})
	require.Equal(t, []string{"a", "b"}, a.Values())

	b := literal.NewStrings([]string{"b", "c"})
	require.True(t, a.Intersect(b).SeticEquals(literal.NewStrings([]string{"b"})))
	require.True(t, a.Union(b).SeticEquals(literal.NewStrings([]string{"a", "b", "c"})))
	require.True(t, a.SymmetricDifference(b).SeticEquals(literal.NewStrings([]string{"a", "c"})))
}

func TestStringsGetSingleAndAny(t *testing.T) {
	single := literal.NewStrings([]string{"only"})
	v, err := single.GetSingle()
	require.NoError(t, err)
	require.Equal(t, "only", v)

	empty := literal.NewStrings(nil)
	_, err = empty.Any()
	require.ErrorIs(t, err, literal.ErrInvalidArgument)
}

func TestCountsSeticOps(t *testing.T) {
	a := literal.NewCounts([]int64{3, 1, 2})
	require.Equal(t, []int64{1, 2, 3}, a.Values())

	b := literal.NewCounts([]int64{2, 3, 4})
	require.True(t, a.Intersect(b).SeticEquals(literal.NewCounts([]int64{2, 3})))
}

func TestBooleansSeticOps(t *testing.T) {
	both := literal.BothBooleans()
	onlyTrue := literal.Only(true)

	require.True(t, onlyTrue.SeticIsSubsetOf(both))
	require.False(t, both.SeticIsSubsetOf(onlyTrue))

	require.True(t, both.Intersect(onlyTrue).SeticEquals(onlyTrue))
	union := onlyTrue.Union(literal.Only(false))
	require.True(t, union.SeticEquals(both))
}

func TestAbstractEnumsSeticOps(t *testing.T) {
	a := literal.NewAbstractEnums([]string{"red", "green"})
	b := literal.NewAbstractEnums([]string{"green", "blue"})
	require.True(t, a.Intersect(b).SeticEquals(literal.NewAbstractEnums([]string{"green"})))
}
