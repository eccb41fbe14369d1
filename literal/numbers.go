// File: numbers.go
// Role: Numbers -- a NumericSet plus an optional unit (spec §4.7). Additive
// and comparison operations check commensurability first and convert the
// other operand into self's unit before delegating to NumericSet/Interval
// math; Mul and Div instead compose the two units (units.Multiply/Divide)
// without a commensurability check.

package literal

import (
	"math"

	"github.com/atopile/atopile-sub011/units"
)

// Numbers wraps a NumericSet with an optional unit. A nil Unit means
// dimensionless.
type Numbers struct {
	Set  NumericSet
	Unit *units.Unit
}

// NewNumbers pairs a NumericSet with a unit (nil for dimensionless).
func NewNumbers(set NumericSet, unit *units.Unit) Numbers {
	return Numbers{Set: set, Unit: unit}
}

// TypedKind implements attribute.TypedRecord, letting a Numbers value be
// stamped directly as a graph node's typed attribute (package expr's
// literal leaf nodes).
func (Numbers) TypedKind() string { return "Numbers" }

// convertedSet returns other.Set rescaled into self.Unit, or
// ErrUnitsNotCommensurable if the two units aren't commensurable (spec
// §4.7: "the other operand is converted into self.unit before
// arithmetic").
func (n Numbers) convertedSet(other Numbers) (NumericSet, error) {
	if !units.IsCommensurableWith(n.Unit, other.Unit) {
		return NumericSet{}, ErrUnitsNotCommensurable
	}
	if n.Unit == nil && other.Unit == nil {
		return other.Set, nil
	}

	out := make([]Interval, len(other.Set.intervals))
	for i, iv := range other.Set.intervals {
		lo, err := units.ConvertValue(iv.Min, other.Unit, n.Unit)
		if err != nil {
			return NumericSet{}, err
		}
		hi, err := units.ConvertValue(iv.Max, other.Unit, n.Unit)
		if err != nil {
			return NumericSet{}, err
		}
		out[i] = Interval{Min: lo, Max: hi}
	}

	return NumericSet{intervals: out}, nil
}

// Add returns the interval-wise sum; output unit is self's unit (spec
// §4.7: "[a_min+b_min, a_max+b_max]").
func (n Numbers) Add(other Numbers) (Numbers, error) {
	converted, err := n.convertedSet(other)
	if err != nil {
		return Numbers{}, err
	}

	return Numbers{Set: cornerCombine(n.Set, converted, func(a, b float64) float64 { return a + b }), Unit: n.Unit}, nil
}

// Sub returns the interval-wise difference (spec §4.7: "[a_min-b_max,
// a_max-b_min]").
func (n Numbers) Sub(other Numbers) (Numbers, error) {
	converted, err := n.convertedSet(other)
	if err != nil {
		return Numbers{}, err
	}

	var out []Interval
	for _, a := range n.Set.intervals {
		for _, b := range converted.intervals {
			out = append(out, Interval{Min: a.Min - b.Max, Max: a.Max - b.Min})
		}
	}

	return Numbers{Set: SetupFromValues(out), Unit: n.Unit}, nil
}

// Mul returns the interval-wise product over all four corner products per
// pair of intervals; output unit = Multiply(a.Unit, b.Unit) (spec §4.7).
func (n Numbers) Mul(other Numbers) (Numbers, error) {
	var out []Interval
	for _, a := range n.Set.intervals {
		for _, b := range other.Set.intervals {
			corners := [4]float64{a.Min * b.Min, a.Min * b.Max, a.Max * b.Min, a.Max * b.Max}
			lo, hi := corners[0], corners[0]
			for _, c := range corners[1:] {
				lo = math.Min(lo, c)
				hi = math.Max(hi, c)
			}
			out = append(out, Interval{Min: lo, Max: hi})
		}
	}

	outUnit := units.Multiply(n.Unit, other.Unit)

	return Numbers{Set: SetupFromValues(out), Unit: &outUnit}, nil
}

// Div returns the interval-wise quotient; output unit = Divide(a.Unit,
// b.Unit). A divisor interval crossing zero produces [-Inf, +Inf] for that
// pair (spec §4.7).
func (n Numbers) Div(other Numbers) (Numbers, error) {
	var out []Interval
	for _, a := range n.Set.intervals {
		for _, b := range other.Set.intervals {
			if b.Min <= 0 && b.Max >= 0 {
				out = append(out, Interval{Min: math.Inf(-1), Max: math.Inf(1)})
				continue
			}
			invLo, invHi := 1/b.Max, 1/b.Min
			corners := [4]float64{a.Min * invLo, a.Min * invHi, a.Max * invLo, a.Max * invHi}
			lo, hi := corners[0], corners[0]
			for _, c := range corners[1:] {
				lo = math.Min(lo, c)
				hi = math.Max(hi, c)
			}
			out = append(out, Interval{Min: lo, Max: hi})
		}
	}

	outUnit := units.Divide(n.Unit, other.Unit)

	return Numbers{Set: SetupFromValues(out), Unit: &outUnit}, nil
}

// Pow evaluates min^e, max^e per interval (spec §4.7: "the spec treats
// monotone-on-domain only"). Negative bases with a non-integer exponent
// return ErrInvalidArgument (DESIGN.md Open Question 2).
func (n Numbers) Pow(exp float64) (Numbers, error) {
	isIntExp := exp == math.Trunc(exp)

	var out []Interval
	for _, iv := range n.Set.intervals {
		if (iv.Min < 0 || iv.Max < 0) && !isIntExp {
			return Numbers{}, ErrInvalidArgument
		}
		lo, hi := math.Pow(iv.Min, exp), math.Pow(iv.Max, exp)
		if lo > hi {
			lo, hi = hi, lo
		}
		out = append(out, Interval{Min: lo, Max: hi})
	}

	return Numbers{Set: SetupFromValues(out), Unit: n.Unit}, nil
}

// Abs returns, per interval, [|max|,|min|] if entirely negative, the
// interval itself if entirely positive, else [0, max(|min|,max)] (spec
// §4.7).
func (n Numbers) Abs() Numbers {
	var out []Interval
	for _, iv := range n.Set.intervals {
		switch {
		case iv.Max <= 0:
			out = append(out, Interval{Min: math.Abs(iv.Max), Max: math.Abs(iv.Min)})
		case iv.Min >= 0:
			out = append(out, iv)
		default:
			out = append(out, Interval{Min: 0, Max: math.Max(math.Abs(iv.Min), iv.Max)})
		}
	}

	return Numbers{Set: SetupFromValues(out), Unit: n.Unit}
}

// Neg negates each bound, swapping Min/Max.
func (n Numbers) Neg() Numbers {
	var out []Interval
	for _, iv := range n.Set.intervals {
		out = append(out, Interval{Min: -iv.Max, Max: -iv.Min})
	}

	return Numbers{Set: SetupFromValues(out), Unit: n.Unit}
}

// Round applies math.Round to each bound at n decimal digits.
func (n Numbers) Round(digits int) Numbers { return n.componentwise(roundTo(digits)) }

// Floor applies math.Floor to each bound.
func (n Numbers) Floor() Numbers { return n.componentwise(math.Floor) }

// Ceil applies math.Ceil to each bound.
func (n Numbers) Ceil() Numbers { return n.componentwise(math.Ceil) }

// ComponentwiseMath applies f to each interval bound independently (used by
// package expr for Sin/Cos/Log, whose interval semantics spec.md leaves to
// the implementation beyond "monotone-on-domain").
func (n Numbers) ComponentwiseMath(f func(float64) float64) Numbers { return n.componentwise(f) }

func (n Numbers) componentwise(f func(float64) float64) Numbers {
	var out []Interval
	for _, iv := range n.Set.intervals {
		out = append(out, Interval{Min: f(iv.Min), Max: f(iv.Max)})
	}

	return Numbers{Set: SetupFromValues(out), Unit: n.Unit}
}

func roundTo(digits int) func(float64) float64 {
	factor := math.Pow(10, float64(digits))

	return func(v float64) float64 { return math.Round(v*factor) / factor }
}

// cornerCombine applies f to every pair of intervals from a and b, pairing
// Min with Min and Max with Max, used by Add (where the combine is a
// direct bound-to-bound match rather than a full corner product).
func cornerCombine(a, b NumericSet, f func(x, y float64) float64) NumericSet {
	var out []Interval
	for _, x := range a.intervals {
		for _, y := range b.intervals {
			out = append(out, Interval{Min: f(x.Min, y.Min), Max: f(x.Max, y.Max)})
		}
	}

	return SetupFromValues(out)
}

// Ge returns {true} if a.Min >= b.Max, {false} if a.Max < b.Min, else
// {false,true} (spec §4.7).
func (n Numbers) Ge(other Numbers) (Booleans, error) {
	converted, err := n.convertedSet(other)
	if err != nil {
		return Booleans{}, err
	}
	aLo, _ := n.Set.MinElem()
	aHi, _ := n.Set.MaxElem()
	bLo, _ := converted.MinElem()
	bHi, _ := converted.MaxElem()

	switch {
	case aLo >= bHi:
		return Only(true), nil
	case aHi < bLo:
		return Only(false), nil
	default:
		return BothBooleans(), nil
	}
}

// Gt is the strict form of Ge.
func (n Numbers) Gt(other Numbers) (Booleans, error) {
	converted, err := n.convertedSet(other)
	if err != nil {
		return Booleans{}, err
	}
	aLo, _ := n.Set.MinElem()
	aHi, _ := n.Set.MaxElem()
	bLo, _ := converted.MinElem()
	bHi, _ := converted.MaxElem()

	switch {
	case aLo > bHi:
		return Only(true), nil
	case aHi <= bLo:
		return Only(false), nil
	default:
		return BothBooleans(), nil
	}
}

// Le returns the symmetric of Ge.
func (n Numbers) Le(other Numbers) (Booleans, error) { return other.Ge(n) }

// Lt returns the symmetric of Gt.
func (n Numbers) Lt(other Numbers) (Booleans, error) { return other.Gt(n) }

// UncertaintyEquals returns {true} iff both are the same singleton,
// {false} iff disjoint, else {false,true} (spec §4.5/§4.7).
func (n Numbers) UncertaintyEquals(other Numbers) (Booleans, error) {
	converted, err := n.convertedSet(other)
	if err != nil {
		return Booleans{}, err
	}

	definitelyEqual := n.Set.IsSingleton() && converted.IsSingleton()
	if definitelyEqual {
		av, _ := n.Set.GetSingle()
		bv, _ := converted.GetSingle()
		definitelyEqual = math.Abs(av-bv) <= EpsilonAbs
	}
	definitelyDisjoint := n.Set.Intersect(converted).IsEmpty()

	return uncertaintyEqualsBool(definitelyEqual, definitelyDisjoint), nil
}

// OpTotalSpan returns Sigma|max-min| over all intervals (spec §4.7).
func (n Numbers) OpTotalSpan() float64 {
	var total float64
	for _, iv := range n.Set.intervals {
		total += math.Abs(iv.Max - iv.Min)
	}

	return total
}

// OpDeviationTo returns TotalSpan(SymmetricDifference(n,other)), optionally
// divided by max(|n|,|other|) when relative is true (spec §4.7).
func (n Numbers) OpDeviationTo(other Numbers, relative bool) (float64, error) {
	converted, err := n.convertedSet(other)
	if err != nil {
		return 0, err
	}

	symDiff := Numbers{Set: n.Set.SymmetricDifference(converted), Unit: n.Unit}
	span := symDiff.OpTotalSpan()
	if !relative {
		return span, nil
	}

	denom := math.Max(n.OpTotalSpan(), Numbers{Set: converted, Unit: n.Unit}.OpTotalSpan())
	if denom == 0 {
		return 0, nil
	}

	return span / denom, nil
}
