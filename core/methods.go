// File: methods.go
// Role: The visitor contract -- VisitEdgesOfType, VisitChildrenEdges,
// VisitOperandEdges (spec §4.2, §6). The latter two are thin wrappers over
// VisitEdgesOfType, parameterized by edge kind and direction filter.
// Determinism: edges are visited in insertion order (spec §4.2 "Ordering
// guarantee... for stability of path-finder tie-breaks").
// Concurrency: visitors run synchronously on the caller's goroutine
// (spec §5); callers must not mutate the view from within a callback.

package core

import "github.com/google/uuid"

// Signal is a visitor callback's verdict for one edge (spec §6).
type Signal int

const (
	// Continue tells the walk to keep visiting further edges.
	Continue Signal = iota
	// Stop ends the walk early without error.
	Stop
)

// VisitFunc is the callback shape shared by every visitor entry point.
// Returning (Stop, nil) ends the walk cleanly; returning a non-nil error
// ends the walk and that error is wrapped in ErrCallback and propagated.
type VisitFunc func(ctx any, edge BoundEdgeRef) (Signal, error)

// VisitEdgesOfType enumerates bound edges incident to start with
// edge.Kind == kind, in insertion order. When directed is non-nil, the walk
// follows only out-edges (directed != nil && *directed == true, i.e.
// start == edge.Source) or only in-edges (*directed == false, i.e.
// start == edge.Target); when directed is nil, both directions are visited.
func (v *GraphView) VisitEdgesOfType(start BoundNodeRef, kind EdgeType, ctx any, cb VisitFunc, directed *bool) error {
	if start.View != v {
		return ErrNodeNotInGraph
	}

	v.muEdgeAdj.RLock()
	ids, ok := v.incident[start.Node.id]
	var snapshot []uuid.UUID
	if ok {
		snapshot = make([]uuid.UUID, 0, len(v.edgeOrder))
		for _, eid := range v.edgeOrder {
			if _, present := ids[eid]; present {
				snapshot = append(snapshot, eid)
			}
		}
	}
	edges := make([]*Edge, 0, len(snapshot))
	for _, eid := range snapshot {
		edges = append(edges, v.edges[eid])
	}
	v.muEdgeAdj.RUnlock()

	for _, e := range edges {
		if e.Kind != kind {
			continue
		}
		isOut := e.Source.id == start.Node.id
		if directed != nil {
			if *directed && !isOut {
				continue
			}
			if !*directed && e.Target.id != start.Node.id {
				continue
			}
		}

		signal, err := cb(ctx, BoundEdgeRef{Edge: e, View: v})
		if err != nil {
			return wrapCallbackError(err)
		}
		if signal == Stop {
			return nil
		}
	}

	return nil
}

// VisitChildrenEdges enumerates outgoing composition edges from parent, in
// insertion order (spec §3: "visit_children_edges(parent) enumerates
// outgoing composition edges").
func (v *GraphView) VisitChildrenEdges(parent BoundNodeRef, ctx any, cb VisitFunc) error {
	out := true

	return v.VisitEdgesOfType(parent, EdgeComposition, ctx, cb, &out)
}

// VisitOperandEdges enumerates outgoing pointer edges from node (its
// operand slots), in insertion order.
func (v *GraphView) VisitOperandEdges(node BoundNodeRef, ctx any, cb VisitFunc) error {
	out := true

	return v.VisitEdgesOfType(node, EdgePointer, ctx, cb, &out)
}

func wrapCallbackError(err error) error {
	return &callbackError{inner: err}
}

// callbackError implements spec §7's CallbackError(inner) kind; Unwrap lets
// callers still errors.Is/As against both ErrCallback and the inner cause.
type callbackError struct{ inner error }

func (c *callbackError) Error() string { return "core: callback error: " + c.inner.Error() }
func (c *callbackError) Unwrap() []error {
	return []error{ErrCallback, c.inner}
}
