package literal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atopile/atopile-sub011/literal"
)

func TestSetupFromValuesMergesOverlapping(t *testing.T) {
	s := literal.SetupFromValues([]literal.Interval{{Min: 5, Max: 10}, {Min: 0, Max: 5}, {Min: 20, Max: 25}})
	ivs := s.Intervals()
	require.Len(t, ivs, 2)
	require.Equal(t, literal.Interval{Min: 0, Max: 10}, ivs[0])
	require.Equal(t, literal.Interval{Min: 20, Max: 25}, ivs[1])
}

func TestGetSingleRequiresSingleton(t *testing.T) {
	s := literal.SetupFromSingleton(3.5)
	v, err := s.GetSingle()
	require.NoError(t, err)
	require.Equal(t, 3.5, v)

	multi := literal.SetupFromValues([]literal.Interval{{Min: 0, Max: 1}, {Min: 5, Max: 6}})
	_, err = multi.GetSingle()
	require.ErrorIs(t, err, literal.ErrNotSingleton)
}

func TestAnyFailsOnEmpty(t *testing.T) {
	var s literal.NumericSet
	_, err := s.Any()
	require.ErrorIs(t, err, literal.ErrInvalidArgument)
}

func TestIntersectUnionSymmetricDifference(t *testing.T) {
	a := literal.SetupFromValues([]literal.Interval{{Min: 0, Max: 10}})
	b := literal.SetupFromValues([]literal.Interval{{Min: 5, Max: 15}})

	inter := a.Intersect(b)
	require.True(t, inter.SeticEquals(literal.SetupFromValues([]literal.Interval{{Min: 5, Max: 10}})))

	union := a.Union(b)
	require.True(t, union.SeticEquals(literal.SetupFromValues([]literal.Interval{{Min: 0, Max: 15}})))

	symDiff := a.SymmetricDifference(b)
	expected := literal.SetupFromValues([]literal.Interval{{Min: 0, Max: 5}, {Min: 10, Max: 15}})
	require.True(t, symDiff.SeticEquals(expected))
}

func TestSeticIsSubsetOf(t *testing.T) {
	small := literal.SetupFromValues([]literal.Interval{{Min: 2, Max: 4}})
	big := literal.SetupFromValues([]literal.Interval{{Min: 0, Max: 10}})
	require.True(t, small.SeticIsSubsetOf(big))
	require.False(t, big.SeticIsSubsetOf(small))
	require.True(t, big.SeticIsSupersetOf(small))
}

func TestUnboundedAndIsFinite(t *testing.T) {
	u := literal.Unbounded()
	require.True(t, u.IsUnbounded())
	require.False(t, u.IsFinite())

	finite := literal.SetupFromSingleton(1)
	require.True(t, finite.IsFinite())
}

func TestAsGaplessConvexHull(t *testing.T) {
	s := literal.SetupFromValues([]literal.Interval{{Min: 0, Max: 1}, {Min: 5, Max: 6}})
	hull, err := s.AsGapless()
	require.NoError(t, err)
	iv := hull.Intervals()[0]
	require.Equal(t, 0.0, iv.Min)
	require.Equal(t, 6.0, iv.Max)
}

func TestNewIntervalRejectsMinGreaterThanMax(t *testing.T) {
	_, err := literal.NewInterval(5, 1)
	require.ErrorIs(t, err, literal.ErrInvalidInterval)
}

func TestSetupFromCenterRel(t *testing.T) {
	s, err := literal.SetupFromCenterRel(10, 0.1)
	require.NoError(t, err)
	iv := s.Intervals()[0]
	require.InDelta(t, 9, iv.Min, 1e-9)
	require.InDelta(t, 11, iv.Max, 1e-9)
}

func TestIsIntegerRequiresSingletonIntegers(t *testing.T) {
	ints := literal.SetupFromSingletons([]float64{1, 2, 3})
	require.True(t, ints.IsInteger())

	notInt := literal.SetupFromSingleton(1.5)
	require.False(t, notInt.IsInteger())

	interval := literal.SetupFromValues([]literal.Interval{{Min: 1, Max: 2}})
	require.False(t, interval.IsInteger())
}

func TestContains(t *testing.T) {
	s := literal.SetupFromValues([]literal.Interval{{Min: 0, Max: 10}})
	require.True(t, s.Contains(5))
	require.False(t, s.Contains(math.NaN()))
	require.False(t, s.Contains(20))
}
