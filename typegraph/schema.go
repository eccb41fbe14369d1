// File: schema.go
// Role: ready-made Factory constructors for the node shapes spec §4 needs
// in a registry: literal leaves, operator nodes, and trait-bearing
// composites with named composition children. Mirrors builder/api.go's
// "topology factories" section -- each public function here returns a
// Factory closure over its own parameters, all declared together.

package typegraph

import (
	"github.com/atopile/atopile-sub011/core"
	"github.com/atopile/atopile-sub011/expr"
	"github.com/atopile/atopile-sub011/literal"
	"github.com/atopile/atopile-sub011/traits"
)

// LiteralFactory returns a Factory that inserts a single literal leaf node
// carrying value, via expr.NewLiteralNode.
func LiteralFactory(value literal.Numbers) Factory {
	return func(scratch *core.GraphView) (core.BoundNodeRef, error) {
		return expr.NewLiteralNode(scratch, value)
	}
}

// OperatorFactory returns a Factory that builds each operand sub-factory in
// argument order, then wires an operator node of kind over their roots
// (spec §4.8 "operand pointer edges in argument order").
func OperatorFactory(kind expr.OperatorKind, param float64, operands ...Factory) Factory {
	return func(scratch *core.GraphView) (core.BoundNodeRef, error) {
		operandNodes := make([]*core.Node, 0, len(operands))
		for _, build := range operands {
			ref, err := build(scratch)
			if err != nil {
				return core.BoundNodeRef{}, err
			}
			operandNodes = append(operandNodes, ref.Node)
		}

		return expr.NewOperatorNode(scratch, kind, param, operandNodes...)
	}
}

// CompositeFactory returns a Factory that builds a root node carrying
// traitSet, then attaches each named child factory's subgraph as a
// composition child of the root (spec §4.3/§4.4 composition forest). Child
// names are the edge names used by VisitChildrenEdges, not registry
// identifiers.
func CompositeFactory(traitSet traits.Set, children map[string]Factory) Factory {
	return func(scratch *core.GraphView) (core.BoundNodeRef, error) {
		root := core.NewNode()
		root.Traits = traitSet

		rootRef, err := scratch.InsertNode(root)
		if err != nil {
			return core.BoundNodeRef{}, err
		}

		for name, build := range children {
			childRef, err := build(scratch)
			if err != nil {
				return core.BoundNodeRef{}, err
			}
			if _, err := scratch.AddComposition(rootRef.Node, childRef.Node, name); err != nil {
				return core.BoundNodeRef{}, err
			}
		}

		return rootRef, nil
	}
}
