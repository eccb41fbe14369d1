// File: methods_adjacent.go
// Role: Convenience constructors for the three well-known edge kinds
// (spec §3): AddComposition, AddPointer, AddTraitEdge. Each wraps NewEdge +
// InsertEdge so call sites never need to set Kind by hand.
// Determinism: delegates straight to InsertEdge; no extra bookkeeping here
// beyond picking the right EdgeType.

package core

import (
	"github.com/atopile/atopile-sub011/attribute"
	"github.com/atopile/atopile-sub011/traits"
)

// AddComposition inserts a COMPOSITION edge parent -> child into v. Fails
// with ErrCompositionMultipleParents or ErrCompositionCycle per spec
// invariant 2, or ErrSourceNodeNotInGraph/ErrTargetNodeNotInGraph if either
// endpoint is not yet a member of v.
func (v *GraphView) AddComposition(parent, child *Node, name string) (BoundEdgeRef, error) {
	e := NewEdge(parent, child, EdgeComposition)
	e.Name = name

	return v.InsertEdge(e)
}

// AddPointer inserts a POINTER edge from a pointer-holder node to an
// operand target (spec §3: "operand pointer edge"). The target must carry
// the CanBeOperand trait; AddPointer does not enforce that, and neither does
// package expr's NewOperatorNode when it wires operands through it.
func (v *GraphView) AddPointer(holder, target *Node, slot string) (BoundEdgeRef, error) {
	e := NewEdge(holder, target, EdgePointer)
	e.Name = slot

	return v.InsertEdge(e)
}

// AddTraitEdge inserts a TRAIT edge from holder to traitChild and records
// the trait bit on holder.Traits. traitChild is typically a small marker
// node representing the capability (spec §3: "trait edge... from a
// trait-holder node to a trait-child node").
func (v *GraphView) AddTraitEdge(holder, traitChild *Node, t traits.Trait) (BoundEdgeRef, error) {
	e := NewEdge(holder, traitChild, EdgeTrait)
	e.Name = t.String()

	ref, err := v.InsertEdge(e)
	if err != nil {
		return BoundEdgeRef{}, err
	}
	holder.Traits = holder.Traits.With(t)

	return ref, nil
}

// NewTraitChild creates and inserts a minimal marker node for trait t,
// returning its bound reference, so a caller can pre-build one trait child
// before wiring several holders to the same capability marker with
// AddTraitEdge.
func (v *GraphView) NewTraitChild(t traits.Trait) (BoundNodeRef, error) {
	n := NewNode()
	n.Attrs.Put("trait", attribute.String(t.String())) //nolint:errcheck -- KindString always valid

	return v.InsertNode(n)
}
