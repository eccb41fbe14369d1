// File: evaluate.go
// Role: bottom-up evaluation of an operator-node subgraph, grounded on
// other_examples' ExpressionGraph.buildEvaluationOrder/evaluateNode:
// collect every node reachable from the root via operand-pointer edges,
// count each node's out-degree (its operand count), queue the out-degree-0
// leaves first, and propagate as each parent's operands complete --
// exactly that file's "reverse dependency map + decrement outDegree" loop,
// ported from its generic Node[N,E] substrate onto core.GraphView.
// Determinism: the initial leaf queue follows the view's node insertion
// order (v.Nodes()), and each node's operand order comes from
// VisitOperandEdges' insertion-order guarantee.

package expr

import (
	"math"

	"github.com/google/uuid"

	"github.com/atopile/atopile-sub011/core"
	"github.com/atopile/atopile-sub011/literal"
)

// Value is the result of evaluating one node: either a Numbers (arithmetic
// operators) or a Booleans (IsSubset). Exactly one of the two accessors
// below will succeed for a given root.
type Value struct {
	numbers  literal.Numbers
	booleans literal.Booleans
	isBool   bool
}

// EvaluateNumeric evaluates root and asserts the result is a Numbers,
// failing with ErrWrongResultKind if root is an IsSubset (or other
// predicate) operator.
func EvaluateNumeric(v *core.GraphView, root core.BoundNodeRef) (literal.Numbers, error) {
	val, err := Evaluate(v, root)
	if err != nil {
		return literal.Numbers{}, err
	}
	if val.isBool {
		return literal.Numbers{}, ErrWrongResultKind
	}

	return val.numbers, nil
}

// EvaluatePredicate evaluates root and asserts the result is a Booleans.
func EvaluatePredicate(v *core.GraphView, root core.BoundNodeRef) (literal.Booleans, error) {
	val, err := Evaluate(v, root)
	if err != nil {
		return literal.Booleans{}, err
	}
	if !val.isBool {
		return literal.Booleans{}, ErrWrongResultKind
	}

	return val.booleans, nil
}

// Evaluate computes root's value, evaluating every operand it transitively
// depends on exactly once.
func Evaluate(v *core.GraphView, root core.BoundNodeRef) (Value, error) {
	nodeSet := map[uuid.UUID]*core.Node{}
	if err := collectReachable(v, root.Node, nodeSet); err != nil {
		return Value{}, err
	}

	order := make([]*core.Node, 0, len(nodeSet))
	for _, n := range v.Nodes() {
		if _, ok := nodeSet[n.ID()]; ok {
			order = append(order, n)
		}
	}

	outDegree := make(map[uuid.UUID]int, len(order))
	parents := make(map[uuid.UUID][]*core.Node, len(order))
	for _, n := range order {
		count := 0
		err := v.VisitOperandEdges(core.BoundNodeRef{Node: n, View: v}, nil, func(_ any, e core.BoundEdgeRef) (core.Signal, error) {
			count++
			parents[e.Edge.Target.ID()] = append(parents[e.Edge.Target.ID()], n)
			return core.Continue, nil
		})
		if err != nil {
			return Value{}, err
		}
		outDegree[n.ID()] = count
	}

	queue := make([]*core.Node, 0, len(order))
	for _, n := range order {
		if outDegree[n.ID()] == 0 {
			queue = append(queue, n)
		}
	}

	computed := make(map[uuid.UUID]Value, len(order))
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		val, err := evaluateNode(v, n, computed)
		if err != nil {
			return Value{}, err
		}
		computed[n.ID()] = val

		for _, p := range parents[n.ID()] {
			outDegree[p.ID()]--
			if outDegree[p.ID()] == 0 {
				queue = append(queue, p)
			}
		}
	}

	out, ok := computed[root.Node.ID()]
	if !ok {
		return Value{}, ErrNotAnOperatorNode
	}

	return out, nil
}

func collectReachable(v *core.GraphView, n *core.Node, seen map[uuid.UUID]*core.Node) error {
	if _, ok := seen[n.ID()]; ok {
		return nil
	}
	seen[n.ID()] = n

	return v.VisitOperandEdges(core.BoundNodeRef{Node: n, View: v}, nil, func(_ any, e core.BoundEdgeRef) (core.Signal, error) {
		return core.Continue, collectReachable(v, e.Edge.Target, seen)
	})
}

func evaluateNode(v *core.GraphView, n *core.Node, computed map[uuid.UUID]Value) (Value, error) {
	if num, ok := n.Typed.(literal.Numbers); ok {
		return Value{numbers: num}, nil
	}

	rec, ok := n.Typed.(OperatorRecord)
	if !ok {
		return Value{}, ErrNotAnOperatorNode
	}

	var operands []Value
	err := v.VisitOperandEdges(core.BoundNodeRef{Node: n, View: v}, nil, func(_ any, e core.BoundEdgeRef) (core.Signal, error) {
		val, ok := computed[e.Edge.Target.ID()]
		if !ok {
			return core.Continue, ErrOperandNotEvaluated
		}
		operands = append(operands, val)
		return core.Continue, nil
	})
	if err != nil {
		return Value{}, err
	}

	return applyOperator(rec, operands)
}

func applyOperator(rec OperatorRecord, operands []Value) (Value, error) {
	numeric := func(i int) literal.Numbers { return operands[i].numbers }
	for _, op := range operands {
		if op.isBool {
			return Value{}, literal.ErrIncompatibleTypes
		}
	}

	switch rec.Kind {
	case OpAdd:
		out, err := numeric(0).Add(numeric(1))
		return Value{numbers: out}, err
	case OpSub:
		out, err := numeric(0).Sub(numeric(1))
		return Value{numbers: out}, err
	case OpMul:
		out, err := numeric(0).Mul(numeric(1))
		return Value{numbers: out}, err
	case OpDiv:
		out, err := numeric(0).Div(numeric(1))
		return Value{numbers: out}, err
	case OpPow:
		out, err := numeric(0).Pow(rec.Param)
		return Value{numbers: out}, err
	case OpSqrt:
		out, err := numeric(0).Pow(0.5)
		return Value{numbers: out}, err
	case OpLog:
		return Value{numbers: applyLog(numeric(0), rec.Param)}, nil
	case OpSin:
		return Value{numbers: numeric(0).ComponentwiseMath(math.Sin)}, nil
	case OpCos:
		return Value{numbers: numeric(0).ComponentwiseMath(math.Cos)}, nil
	case OpNegate:
		return Value{numbers: numeric(0).Neg()}, nil
	case OpRound:
		return Value{numbers: numeric(0).Round(int(rec.Param))}, nil
	case OpAbs:
		return Value{numbers: numeric(0).Abs()}, nil
	case OpFloor:
		return Value{numbers: numeric(0).Floor()}, nil
	case OpCeil:
		return Value{numbers: numeric(0).Ceil()}, nil
	case OpIsSubset:
		b := numeric(0).Set.SeticIsSubsetOf(numeric(1).Set)
		return Value{booleans: literal.Only(b), isBool: true}, nil
	default:
		return Value{}, ErrNotAnOperatorNode
	}
}

// applyLog evaluates natural log (base == 0, spec §9 "Log's default base
// is e") or log base `base` otherwise, componentwise.
func applyLog(n literal.Numbers, base float64) literal.Numbers {
	if base == 0 {
		return n.ComponentwiseMath(math.Log)
	}
	divisor := math.Log(base)

	return n.ComponentwiseMath(func(v float64) float64 { return math.Log(v) / divisor })
}
