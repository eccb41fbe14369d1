// Package traits implements the small bitset used to tag which capability
// edges (spec §3: is_expression, can_be_operand, is_predicate, is_literal,
// is_unit, is_parameter_operatable) a node exposes.
//
// DESIGN NOTES §9 describes trait polymorphism as "tagged-variant node
// payloads and a traits: small_bitset on the node, with the bitset indices
// registered at type-graph-registration time" -- this package is that
// bitset. It has no dependency on core so that core can embed a traits.Set
// field without an import cycle; the actual trait *edges* (graph structure
// connecting a holder node to its trait-child node) are wired by core's
// AddTraitEdge; typegraph, literal and expr only set the bitset.
package traits

// Trait identifies one capability bit. The zero value (Trait(0)) is never a
// valid trait -- it is reserved to catch a missed trait registration the
// same way attribute.KindInvalid catches an unset Literal.
type Trait uint32

const (
	_ Trait = iota // reserve the zero value

	// IsExpression marks an expression-DAG operator node.
	IsExpression
	// CanBeOperand marks a node eligible as an operand pointer target.
	CanBeOperand
	// IsPredicate marks an expression node that asserts a boolean claim
	// (e.g. IsSubset with assert=true).
	IsPredicate
	// IsLiteral marks a literal leaf or set-container node.
	IsLiteral
	// IsUnit marks a unit descriptor node (spec §4.4).
	IsUnit
	// IsParameterOperatable marks a node that participates in the
	// constraint/expression algebra as an operatable parameter.
	IsParameterOperatable

	numTraits = iota
)

// names is indexed by Trait for String(); keep in sync with the const block.
var names = [numTraits]string{
	"",
	"is_expression",
	"can_be_operand",
	"is_predicate",
	"is_literal",
	"is_unit",
	"is_parameter_operatable",
}

// String returns the trait's spec-vocabulary name, or "" for an unknown bit.
func (t Trait) String() string {
	if int(t) < len(names) {
		return names[t]
	}

	return ""
}

// Set is a small bitset of Trait values. The zero value is the empty set.
type Set uint32

// With returns a new Set with t added.
func (s Set) With(t Trait) Set {
	return s | (1 << t)
}

// Without returns a new Set with t removed.
func (s Set) Without(t Trait) Set {
	return s &^ (1 << t)
}

// Has reports whether t is present in s.
func (s Set) Has(t Trait) bool {
	return s&(1<<t) != 0
}

// Union returns the bitwise union of s and other.
func (s Set) Union(other Set) Set {
	return s | other
}

// NewSet builds a Set from a list of traits.
func NewSet(ts ...Trait) Set {
	var s Set
	for _, t := range ts {
		s = s.With(t)
	}

	return s
}
