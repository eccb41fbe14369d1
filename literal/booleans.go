// File: booleans.go
// Role: Booleans -- a subset of {false, true} (spec §4.5), and the
// UncertaintyEquals comparison helper shared by Numbers and the other set
// types (spec §4.5: "uncertainty_equals(a,b) -> Booleans").

package literal

// Booleans is a canonical subset of {false, true}, represented as two
// flags rather than a slice (the domain has exactly two elements).
type Booleans struct {
	hasFalse, hasTrue bool
}

// NewBooleans builds a Booleans set from arbitrary input values.
func NewBooleans(values []bool) Booleans {
	var b Booleans
	for _, v := range values {
		if v {
			b.hasTrue = true
		} else {
			b.hasFalse = true
		}
	}

	return b
}

// Only returns the singleton {v}.
func Only(v bool) Booleans {
	if v {
		return Booleans{hasTrue: true}
	}

	return Booleans{hasFalse: true}
}

// BothBooleans returns {false, true}.
func BothBooleans() Booleans { return Booleans{hasFalse: true, hasTrue: true} }

// Values returns the canonical set contents, false before true.
func (b Booleans) Values() []bool {
	var out []bool
	if b.hasFalse {
		out = append(out, false)
	}
	if b.hasTrue {
		out = append(out, true)
	}

	return out
}

// IsEmpty reports whether b has no values.
func (b Booleans) IsEmpty() bool { return !b.hasFalse && !b.hasTrue }

// IsSingleton reports whether b has exactly one value.
func (b Booleans) IsSingleton() bool { return b.hasFalse != b.hasTrue }

// GetSingle returns the sole value, or ErrNotSingleton.
func (b Booleans) GetSingle() (bool, error) {
	if !b.IsSingleton() {
		return false, ErrNotSingleton
	}

	return b.hasTrue, nil
}

// Any returns an arbitrary member, or ErrInvalidArgument when empty.
func (b Booleans) Any() (bool, error) {
	if b.IsEmpty() {
		return false, ErrInvalidArgument
	}

	return b.hasTrue, nil
}

// SeticEquals reports whether b and other hold the same values.
func (b Booleans) SeticEquals(other Booleans) bool { return b == other }

// SeticIsSubsetOf reports whether every value of b is in other.
func (b Booleans) SeticIsSubsetOf(other Booleans) bool {
	return (!b.hasFalse || other.hasFalse) && (!b.hasTrue || other.hasTrue)
}

// SeticIsSupersetOf is the symmetric of SeticIsSubsetOf.
func (b Booleans) SeticIsSupersetOf(other Booleans) bool { return other.SeticIsSubsetOf(b) }

// Intersect returns the largest subset of b contained in other.
func (b Booleans) Intersect(other Booleans) Booleans {
	return Booleans{hasFalse: b.hasFalse && other.hasFalse, hasTrue: b.hasTrue && other.hasTrue}
}

// Union returns the smallest superset containing b and other.
func (b Booleans) Union(other Booleans) Booleans {
	return Booleans{hasFalse: b.hasFalse || other.hasFalse, hasTrue: b.hasTrue || other.hasTrue}
}

// SymmetricDifference returns (b∪other) \ (b∩other).
func (b Booleans) SymmetricDifference(other Booleans) Booleans {
	return Booleans{hasFalse: b.hasFalse != other.hasFalse, hasTrue: b.hasTrue != other.hasTrue}
}

// uncertaintyEqualsBool implements the shared "uncertainty_equals" policy
// (spec §4.5/§4.7): {true} iff definitely equal, {false} iff definitely
// disjoint, else {false,true}.
func uncertaintyEqualsBool(definitelyEqual, definitelyDisjoint bool) Booleans {
	switch {
	case definitelyEqual:
		return Only(true)
	case definitelyDisjoint:
		return Only(false)
	default:
		return BothBooleans()
	}
}
