// Package units implements the seven-component SI basis-vector unit system:
// commensurability checks, unit composition (multiply/divide/invert), value
// conversion, and a compact textual representation.
//
// A Unit is a plain value -- basis vector plus a linear scale factor
// relative to the SI base -- rather than a graph node; packages that attach
// a unit to a graph node (literal.Numbers) do so by holding a *Unit in the
// node's typed attribute. No is_unit trait or unit node is added to the
// graph for it.
package units

import "errors"

// ErrNotCommensurable indicates two units have different basis vectors and
// cannot be compared, converted, added, or subtracted.
var ErrNotCommensurable = errors.New("units: not commensurable")

// Basis indexes the seven SI base dimensions, in the fixed order the whole
// package agrees on: kg, m, s, A, K, mol, cd.
type Basis [7]int

// Indices into a Basis vector, in the fixed (kg, m, s, A, K, mol, cd) order.
const (
	DimMass = iota
	DimLength
	DimTime
	DimCurrent
	DimTemperature
	DimAmount
	DimLuminousIntensity
)

// Unit is a basis vector plus a linear scale factor relative to the SI base
// unit of that dimension (e.g. MilliVolt has the same basis as Volt and
// Scale 1e-3).
type Unit struct {
	Basis Basis
	Scale float64
}

// New constructs a Unit from an explicit basis vector and scale.
func New(basis Basis, scale float64) Unit {
	return Unit{Basis: basis, Scale: scale}
}

// Dimensionless is the empty-basis, scale-1 unit.
var Dimensionless = Unit{Scale: 1}

// IsCommensurableWith reports whether a and b can appear together in
// arithmetic: both nil is commensurable, exactly one nil is commensurable
// with anything (spec: "one-sided absence matches any"), and two non-nil
// units are commensurable iff their basis vectors are equal.
func IsCommensurableWith(a, b *Unit) bool {
	if a == nil || b == nil {
		return true
	}

	return a.Basis == b.Basis
}

// ConvertValue rescales v from unit `from` into unit `to`. Returns
// ErrNotCommensurable if the two units are not commensurable. A nil `from`
// or `to` is treated as Dimensionless.
func ConvertValue(v float64, from, to *Unit) (float64, error) {
	if !IsCommensurableWith(from, to) {
		return 0, ErrNotCommensurable
	}

	fromScale, toScale := 1.0, 1.0
	if from != nil {
		fromScale = from.Scale
	}
	if to != nil {
		toScale = to.Scale
	}

	return v * fromScale / toScale, nil
}

// Multiply returns the unit obtained by composing a and b: basis vectors
// add component-wise, scales multiply. A nil operand is treated as
// Dimensionless.
func Multiply(a, b *Unit) Unit {
	ab, bb := basisOf(a), basisOf(b)
	as, bs := scaleOf(a), scaleOf(b)

	var out Basis
	for i := range out {
		out[i] = ab[i] + bb[i]
	}

	return Unit{Basis: out, Scale: as * bs}
}

// Divide returns a/b: basis vectors subtract, scales divide. A nil operand
// is treated as Dimensionless.
func Divide(a, b *Unit) Unit {
	ab, bb := basisOf(a), basisOf(b)
	as, bs := scaleOf(a), scaleOf(b)

	var out Basis
	for i := range out {
		out[i] = ab[i] - bb[i]
	}

	return Unit{Basis: out, Scale: as / bs}
}

// Invert returns 1/u: basis negated, scale reciprocated. A nil u is treated
// as Dimensionless (its own inverse).
func Invert(u *Unit) Unit {
	ub, us := basisOf(u), scaleOf(u)

	var out Basis
	for i := range out {
		out[i] = -ub[i]
	}

	return Unit{Basis: out, Scale: 1 / us}
}

func basisOf(u *Unit) Basis {
	if u == nil {
		return Basis{}
	}

	return u.Basis
}

func scaleOf(u *Unit) float64 {
	if u == nil {
		return 1
	}

	return u.Scale
}

// CompactRepr returns the SI symbol for u's basis vector when it matches a
// known entry in the named table (ignoring scale -- prefix selection for display
// magnitude is a concern of the literal package's pretty-printer, not this
// one), a dimensional expression like "kg*m/s^2" otherwise, or "" for the
// dimensionless basis. A nil u is dimensionless.
func CompactRepr(u *Unit) string {
	basis := basisOf(u)
	if basis == (Basis{}) {
		return ""
	}
	if sym, ok := symbolOf(basis); ok {
		return sym
	}

	return dimensionalExpr(basis)
}
