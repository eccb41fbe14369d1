// File: leaf.go
// Role: NewLiteralNode -- wraps a literal.Numbers value as a graph node
// usable as an expression operand (spec §4.8 "subgraphs referencing
// operand pointers"; the pointed-to node is typically a literal value).

package expr

import (
	"github.com/atopile/atopile-sub011/core"
	"github.com/atopile/atopile-sub011/literal"
	"github.com/atopile/atopile-sub011/traits"
)

// NewLiteralNode builds and inserts a node whose Typed attribute is value,
// carrying the IsLiteral and CanBeOperand traits.
func NewLiteralNode(v *core.GraphView, value literal.Numbers) (core.BoundNodeRef, error) {
	n := core.NewNode()
	n.Typed = value
	n.Traits = traits.NewSet(traits.IsLiteral, traits.CanBeOperand)

	return v.InsertNode(n)
}
