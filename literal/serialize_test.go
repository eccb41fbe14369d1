package literal_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/atopile/atopile-sub011/literal"
	"github.com/atopile/atopile-sub011/units"
)

func TestStringsRoundTrip(t *testing.T) {
	s := literal.NewStrings([]string{"b", "a"})
	b, err := json.Marshal(s)
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"StringSet","data":{"values":["a","b"]}}`, string(b))

	var back literal.Strings
	require.NoError(t, json.Unmarshal(b, &back))
	require.True(t, back.SeticEquals(s))
}

func TestNumericSetRoundTrip(t *testing.T) {
	s := literal.SetupFromValues([]literal.Interval{{Min: 0, Max: 1}})
	b, err := json.Marshal(s)
	require.NoError(t, err)

	var back literal.NumericSet
	require.NoError(t, json.Unmarshal(b, &back))
	require.True(t, back.SeticEquals(s))
}

func TestNumbersRoundTripWithUnit(t *testing.T) {
	volt := units.Volt
	n := literal.NewNumbers(literal.SetupFromSingleton(1.5), &volt)
	b, err := json.Marshal(n)
	require.NoError(t, err)

	var back literal.Numbers
	require.NoError(t, json.Unmarshal(b, &back))
	require.True(t, back.Set.SeticEquals(n.Set))
	require.Equal(t, volt.Basis, back.Unit.Basis)
}

func TestNumericSetRoundTripPreservesIntervalStructure(t *testing.T) {
	s := literal.SetupFromValues([]literal.Interval{{Min: -2, Max: -1}, {Min: 3, Max: 5}})
	b, err := json.Marshal(s)
	require.NoError(t, err)

	var back literal.NumericSet
	require.NoError(t, json.Unmarshal(b, &back))

	if diff := cmp.Diff(s.Intervals(), back.Intervals()); diff != "" {
		t.Errorf("interval structure changed across round trip (-want +got):\n%s", diff)
	}
}

func TestUnmarshalRejectsUnknownType(t *testing.T) {
	var s literal.Strings
	err := json.Unmarshal([]byte(`{"type":"NotARealType","data":{}}`), &s)
	require.ErrorIs(t, err, literal.ErrInvalidSerializedType)
}
