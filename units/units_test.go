package units_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atopile/atopile-sub011/units"
)

func TestIsCommensurableWithAbsence(t *testing.T) {
	v := units.Volt
	require.True(t, units.IsCommensurableWith(nil, nil))
	require.True(t, units.IsCommensurableWith(nil, &v))
	require.True(t, units.IsCommensurableWith(&v, nil))
}

func TestIsCommensurableWithBasis(t *testing.T) {
	v, a := units.Volt, units.Ampere
	require.True(t, units.IsCommensurableWith(&v, &v))
	require.False(t, units.IsCommensurableWith(&v, &a))
}

func TestConvertValueMilliVoltToVolt(t *testing.T) {
	mv, v := units.MilliVolt, units.Volt
	got, err := units.ConvertValue(500, &mv, &v)
	require.NoError(t, err)
	require.InDelta(t, 0.5, got, 1e-12)
}

func TestConvertValueRejectsIncommensurable(t *testing.T) {
	v, s := units.Volt, units.Second
	_, err := units.ConvertValue(1, &v, &s)
	require.ErrorIs(t, err, units.ErrNotCommensurable)
}

func TestMultiplyVoltAmpereIsWatt(t *testing.T) {
	v, a := units.Volt, units.Ampere
	got := units.Multiply(&v, &a)
	require.Equal(t, units.Watt.Basis, got.Basis)
	require.Equal(t, "W", units.CompactRepr(&got))
}

func TestDivideVoltAmpereIsOhm(t *testing.T) {
	v, a := units.Volt, units.Ampere
	got := units.Divide(&v, &a)
	require.Equal(t, units.Ohm.Basis, got.Basis)
	require.Equal(t, "Ω", units.CompactRepr(&got))
}

func TestInvertIsOwnInverse(t *testing.T) {
	v := units.Volt
	inv := units.Invert(&v)
	back := units.Invert(&inv)
	require.Equal(t, v.Basis, back.Basis)
	require.InDelta(t, v.Scale, back.Scale, 1e-12)
}

func TestCompactReprDimensionless(t *testing.T) {
	require.Equal(t, "", units.CompactRepr(nil))
	require.Equal(t, "", units.CompactRepr(&units.Dimensionless))
}

func TestCompactReprUnknownDimensionalExpression(t *testing.T) {
	weird := units.New(units.Basis{units.DimMass: 2, units.DimTime: -1}, 1)
	require.Equal(t, "kg^2/s", units.CompactRepr(&weird))
}
