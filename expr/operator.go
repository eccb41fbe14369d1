// File: operator.go
// Role: OperatorKind enum, OperatorRecord typed payload, and
// NewOperatorNode -- the non-eager DAG-building half of the package.
// Determinism: operand pointer edges are inserted in argument order, so
// VisitOperandEdges always replays operands in the order the caller gave.

package expr

import (
	"github.com/atopile/atopile-sub011/core"
	"github.com/atopile/atopile-sub011/traits"
)

// OperatorKind is the closed set of expression operators (spec §4.8).
type OperatorKind int

const (
	OpAdd OperatorKind = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpSqrt
	OpLog
	OpSin
	OpCos
	OpNegate
	OpRound
	OpAbs
	OpFloor
	OpCeil
	OpIsSubset
)

// OperatorRecord is the typed attribute payload stamped on every operator
// node. Param carries the operator's single scalar argument where one
// applies: the exponent for Pow, the digit count for Round, the base for
// Log (0 means natural log -- DESIGN.md Open Question 3).
type OperatorRecord struct {
	Kind  OperatorKind
	Param float64
}

// TypedKind implements attribute.TypedRecord.
func (OperatorRecord) TypedKind() string { return "Operator" }

// NewOperatorNode builds and inserts a new operator node of the given kind
// into v, wiring an operand pointer edge to each of operands in order. The
// node carries the IsExpression and CanBeOperand traits (spec §3: operator
// nodes can themselves feed other operators).
func NewOperatorNode(v *core.GraphView, kind OperatorKind, param float64, operands ...*core.Node) (core.BoundNodeRef, error) {
	n := core.NewNode()
	n.Typed = OperatorRecord{Kind: kind, Param: param}
	n.Traits = traits.NewSet(traits.IsExpression, traits.CanBeOperand)

	ref, err := v.InsertNode(n)
	if err != nil {
		return core.BoundNodeRef{}, err
	}

	for i, operand := range operands {
		if _, err := v.AddPointer(n, operand, operandSlotName(i)); err != nil {
			return core.BoundNodeRef{}, err
		}
	}

	return ref, nil
}

func operandSlotName(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	if i < len(letters) {
		return "arg_" + string(letters[i])
	}

	return "arg"
}
