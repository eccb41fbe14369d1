// File: registry.go
// Role: the well-known SI and SI-derived unit table backing CompactRepr and
// used directly by callers/tests that want a named unit instead of building
// a Basis by hand (spec §4.4 "the SI symbol (V, A, W, Ω, ...)").

package units

import (
	"fmt"
	"strings"
)

// Named well-known units, all at Scale 1 relative to their own dimension
// (prefixed variants like MilliVolt reuse the same Basis with a different
// Scale -- see MilliVolt/KiloOhm below).
var (
	Kilogram = Unit{Basis: Basis{DimMass: 1}, Scale: 1}
	Meter    = Unit{Basis: Basis{DimLength: 1}, Scale: 1}
	Second   = Unit{Basis: Basis{DimTime: 1}, Scale: 1}
	Ampere   = Unit{Basis: Basis{DimCurrent: 1}, Scale: 1}
	Kelvin   = Unit{Basis: Basis{DimTemperature: 1}, Scale: 1}
	Mole     = Unit{Basis: Basis{DimAmount: 1}, Scale: 1}
	Candela  = Unit{Basis: Basis{DimLuminousIntensity: 1}, Scale: 1}

	// Volt: kg*m^2*s^-3*A^-1.
	Volt = Unit{Basis: Basis{DimMass: 1, DimLength: 2, DimTime: -3, DimCurrent: -1}, Scale: 1}
	// Ohm: kg*m^2*s^-3*A^-2.
	Ohm = Unit{Basis: Basis{DimMass: 1, DimLength: 2, DimTime: -3, DimCurrent: -2}, Scale: 1}
	// Watt: kg*m^2*s^-3.
	Watt = Unit{Basis: Basis{DimMass: 1, DimLength: 2, DimTime: -3}, Scale: 1}
	// Hertz: s^-1.
	Hertz = Unit{Basis: Basis{DimTime: -1}, Scale: 1}
	// Farad: kg^-1*m^-2*s^4*A^2.
	Farad = Unit{Basis: Basis{DimMass: -1, DimLength: -2, DimTime: 4, DimCurrent: 2}, Scale: 1}

	// MilliVolt is Volt scaled by 1e-3 (spec §4.4 worked example).
	MilliVolt = Unit{Basis: Volt.Basis, Scale: 1e-3}
	// KiloOhm is Ohm scaled by 1e3.
	KiloOhm = Unit{Basis: Ohm.Basis, Scale: 1e3}
	// MilliAmpere is Ampere scaled by 1e-3.
	MilliAmpere = Unit{Basis: Ampere.Basis, Scale: 1e-3}
)

// named maps a basis vector to its canonical SI symbol, independent of
// scale (CompactRepr never reports a prefix -- that's the literal
// package's pretty-printer's job, driven by the value's magnitude, not the
// unit's declared scale).
var named = map[Basis]string{
	{}:                                                                    "",
	{DimMass: 1}:                                                         "kg",
	{DimLength: 1}:                                                       "m",
	{DimTime: 1}:                                                         "s",
	{DimCurrent: 1}:                                                      "A",
	{DimTemperature: 1}:                                                  "K",
	{DimAmount: 1}:                                                       "mol",
	{DimLuminousIntensity: 1}:                                            "cd",
	{DimMass: 1, DimLength: 2, DimTime: -3, DimCurrent: -1}:              "V",
	{DimMass: 1, DimLength: 2, DimTime: -3, DimCurrent: -2}:              "Ω",
	{DimMass: 1, DimLength: 2, DimTime: -3}:                              "W",
	{DimTime: -1}:                                                        "Hz",
	{DimMass: -1, DimLength: -2, DimTime: 4, DimCurrent: 2}:              "F",
}

var dimSymbols = [7]string{"kg", "m", "s", "A", "K", "mol", "cd"}

func symbolOf(b Basis) (string, bool) {
	sym, ok := named[b]

	return sym, ok
}

// dimensionalExpr renders a basis vector as e.g. "kg*m^2/s^3*A" when it
// doesn't match a named unit (spec §4.4 "otherwise a dimensional
// expression").
func dimensionalExpr(b Basis) string {
	var num, den []string
	for i, exp := range b {
		switch {
		case exp == 0:
			continue
		case exp == 1:
			num = append(num, dimSymbols[i])
		case exp > 0:
			num = append(num, fmt.Sprintf("%s^%d", dimSymbols[i], exp))
		case exp == -1:
			den = append(den, dimSymbols[i])
		default:
			den = append(den, fmt.Sprintf("%s^%d", dimSymbols[i], -exp))
		}
	}

	switch {
	case len(num) == 0 && len(den) == 0:
		return ""
	case len(den) == 0:
		return strings.Join(num, "*")
	case len(num) == 0:
		return "1/" + strings.Join(den, "*")
	default:
		return strings.Join(num, "*") + "/" + strings.Join(den, "*")
	}
}
