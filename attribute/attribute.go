// Package attribute implements the dynamic string-keyed literal dictionary
// attached to every core.Node and core.Edge, plus the read-only typed
// attribute records a node's class may stamp at construction.
//
// Dynamic attributes favor discoverability (visit every key, regardless of
// kind); typed attributes favor a fixed, known-at-compile-time payload
// (Numeric{value}, NumericInterval{min,max}, ...). Both live alongside each
// other on a node, never merged into one representation.
package attribute

import "errors"

// ErrUnsupportedKind is returned by Put when a Literal has a Kind this
// package does not recognize (a zero-value Literal{} or a future kind added
// without updating Visit-callers).
var ErrUnsupportedKind = errors.New("attribute: unsupported literal kind")

// Kind tags which field of Literal is populated.
type Kind int

const (
	// KindInvalid marks an unset Literal; Put rejects it.
	KindInvalid Kind = iota
	KindInt
	KindUint
	KindFloat
	KindBool
	KindString
)

// Literal is a closed tagged union over the value kinds spec §4.1 allows:
// {Int i64, Uint u64, Float f64, Bool, String}.
type Literal struct {
	Kind Kind
	I    int64
	U    uint64
	F    float64
	B    bool
	S    string
}

// Int builds an Int-kind Literal.
func Int(v int64) Literal { return Literal{Kind: KindInt, I: v} }

// Uint builds a Uint-kind Literal.
func Uint(v uint64) Literal { return Literal{Kind: KindUint, U: v} }

// Float builds a Float-kind Literal.
func Float(v float64) Literal { return Literal{Kind: KindFloat, F: v} }

// Bool builds a Bool-kind Literal.
func Bool(v bool) Literal { return Literal{Kind: KindBool, B: v} }

// String builds a String-kind Literal.
func String(v string) Literal { return Literal{Kind: KindString, S: v} }

// Map is an ordered, insertion-preserving string -> Literal dictionary.
// The zero value is not usable; construct with NewMap.
//
// Ordering is kept the same way core/methods_edges.go keeps edge iteration
// deterministic: a parallel key slice records insertion order, while the
// map gives O(1) lookup/replace.
type Map struct {
	values map[string]Literal
	order  []string
}

// NewMap returns an empty, ready-to-use Map.
func NewMap() *Map {
	return &Map{values: make(map[string]Literal)}
}

// Put stores or replaces the literal at key. Replacing an existing key keeps
// its original position in iteration order. Returns ErrUnsupportedKind for
// a zero-value Literal or any Kind outside KindInt..KindString.
func (m *Map) Put(key string, lit Literal) error {
	if lit.Kind < KindInt || lit.Kind > KindString {
		return ErrUnsupportedKind
	}
	if _, exists := m.values[key]; !exists {
		m.order = append(m.order, key)
	}
	m.values[key] = lit

	return nil
}

// Get returns the literal at key and whether it was present.
func (m *Map) Get(key string) (Literal, bool) {
	lit, ok := m.values[key]

	return lit, ok
}

// Delete removes key, if present, and drops it from iteration order.
func (m *Map) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of stored keys.
func (m *Map) Len() int { return len(m.order) }

// Visit calls fn(key, literal) for every entry in insertion order. Visitors
// must not mutate m; Visit does not hold a lock (attribute.Map is not
// concurrency-safe on its own -- callers serialize via the owning
// core.GraphView, per spec §5).
func (m *Map) Visit(fn func(key string, lit Literal)) {
	for _, k := range m.order {
		fn(k, m.values[k])
	}
}

// Clone returns a deep, independent copy of m.
func (m *Map) Clone() *Map {
	out := &Map{
		values: make(map[string]Literal, len(m.values)),
		order:  append([]string(nil), m.order...),
	}
	for k, v := range m.values {
		out.values[k] = v
	}

	return out
}

// TypedRecord is a read-only, construction-time-stamped attribute payload.
// Records that node classes stamp (literal.Numbers, expr.OperatorRecord)
// implement this interface and are stored in core.Node.Typed; callers that
// hold a core.Node recover the concrete record with a type assertion.
type TypedRecord interface {
	// TypedKind names the concrete record, e.g. "Numeric", "NumericInterval".
	TypedKind() string
}
