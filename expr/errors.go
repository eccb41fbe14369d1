// Package expr implements the expression DAG: operator nodes (Add, Sub,
// Mul, Div, Pow, Sqrt, Log, Sin, Cos, Negate, Round, Abs, Floor, Ceil,
// IsSubset) modelled as subgraphs referencing operand pointers (spec
// §4/4.8). Operator nodes are non-eager -- building one never evaluates
// it; Evaluate walks the DAG bottom-up on demand.
package expr

import "errors"

// ErrNotAnOperatorNode is returned when Evaluate encounters a node whose
// Typed attribute is neither an operator record nor a literal leaf value.
var ErrNotAnOperatorNode = errors.New("expr: node is not an operator or literal leaf")

// ErrOperandNotEvaluated indicates an internal ordering bug: an operand was
// read before its own evaluation completed. Evaluate's topological order
// construction should make this unreachable.
var ErrOperandNotEvaluated = errors.New("expr: operand evaluated out of order")

// ErrWrongResultKind is returned by EvaluateNumeric/EvaluatePredicate when
// the root operator produces the other result kind (Numbers vs Booleans).
var ErrWrongResultKind = errors.New("expr: operator produced the wrong result kind for this accessor")
