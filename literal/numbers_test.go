package literal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atopile/atopile-sub011/literal"
	"github.com/atopile/atopile-sub011/units"
)

func singleton(v float64, u *units.Unit) literal.Numbers {
	return literal.NewNumbers(literal.SetupFromSingleton(v), u)
}

func TestMulVoltAmpereIsWatt(t *testing.T) {
	v, a := units.Volt, units.Ampere
	got, err := singleton(2, &v).Mul(singleton(3, &a))
	require.NoError(t, err)

	val, err := got.Set.GetSingle()
	require.NoError(t, err)
	require.InDelta(t, 6, val, 1e-9)
	require.Equal(t, units.Watt.Basis, got.Unit.Basis)
}

func TestAddRejectsIncommensurableUnits(t *testing.T) {
	v, s := units.Volt, units.Second
	_, err := singleton(1, &v).Add(singleton(1, &s))
	require.ErrorIs(t, err, literal.ErrUnitsNotCommensurable)
}

func TestAddConvertsUnits(t *testing.T) {
	volt, milliVolt := units.Volt, units.MilliVolt
	got, err := singleton(1, &volt).Add(singleton(500, &milliVolt))
	require.NoError(t, err)

	val, err := got.Set.GetSingle()
	require.NoError(t, err)
	require.InDelta(t, 1.5, val, 1e-9)
}

func TestDivByIntervalCrossingZero(t *testing.T) {
	num := literal.NewNumbers(literal.SetupFromValues([]literal.Interval{{Min: 1, Max: 2}}), nil)
	den := literal.NewNumbers(literal.SetupFromValues([]literal.Interval{{Min: -1, Max: 1}}), nil)

	got, err := num.Div(den)
	require.NoError(t, err)
	iv := got.Set.Intervals()[0]
	require.True(t, math.IsInf(iv.Min, -1))
	require.True(t, math.IsInf(iv.Max, 1))
}

func TestPowRejectsNegativeBaseNonIntegerExponent(t *testing.T) {
	n := literal.NewNumbers(literal.SetupFromSingleton(-4), nil)
	_, err := n.Pow(0.5)
	require.ErrorIs(t, err, literal.ErrInvalidArgument)
}

func TestPowAllowsNegativeBaseIntegerExponent(t *testing.T) {
	n := literal.NewNumbers(literal.SetupFromSingleton(-2), nil)
	got, err := n.Pow(2)
	require.NoError(t, err)
	v, _ := got.Set.GetSingle()
	require.InDelta(t, 4, v, 1e-9)
}

func TestAbsEntirelyNegativeInterval(t *testing.T) {
	n := literal.NewNumbers(literal.SetupFromValues([]literal.Interval{{Min: -5, Max: -2}}), nil)
	got := n.Abs()
	iv := got.Set.Intervals()[0]
	require.Equal(t, 2.0, iv.Min)
	require.Equal(t, 5.0, iv.Max)
}

func TestAbsStraddlingZero(t *testing.T) {
	n := literal.NewNumbers(literal.SetupFromValues([]literal.Interval{{Min: -3, Max: 1}}), nil)
	got := n.Abs()
	iv := got.Set.Intervals()[0]
	require.Equal(t, 0.0, iv.Min)
	require.Equal(t, 3.0, iv.Max)
}

func TestGeComparisons(t *testing.T) {
	a := singleton(10, nil)
	b := singleton(5, nil)

	res, err := a.Ge(b)
	require.NoError(t, err)
	v, _ := res.GetSingle()
	require.True(t, v)

	res, err = b.Ge(a)
	require.NoError(t, err)
	v, _ = res.GetSingle()
	require.False(t, v)
}

func TestUncertaintyEqualsSingletonVsDisjoint(t *testing.T) {
	a := singleton(1, nil)
	b := singleton(1, nil)
	res, err := a.UncertaintyEquals(b)
	require.NoError(t, err)
	v, _ := res.GetSingle()
	require.True(t, v)

	c := singleton(2, nil)
	res, err = a.UncertaintyEquals(c)
	require.NoError(t, err)
	v, _ = res.GetSingle()
	require.False(t, v)
}

func TestPrettyStrSingleton(t *testing.T) {
	volt := units.Volt
	n := singleton(1.5, &volt)
	require.Equal(t, "1.5V", n.PrettyStr())
}

func TestPrettyStrCenterTolerance(t *testing.T) {
	n := literal.NewNumbers(literal.SetupFromValues([]literal.Interval{{Min: 9, Max: 11}}), nil)
	require.Equal(t, "10±10%", n.PrettyStr())
}

func TestPrettyStrUnboundedRenders(t *testing.T) {
	n := literal.NewNumbers(literal.Unbounded(), nil)
	require.Equal(t, "ℝ", n.PrettyStr())
}
