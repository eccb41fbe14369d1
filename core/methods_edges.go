// File: methods_edges.go
// Role: Edge lifecycle -- InsertEdge, GetEdge, Edges, plus the composition
// parent-forest bookkeeping used by composition edges specifically.
// Determinism: Edges() returns edges in insertion order.
// Concurrency: mutations under muEdgeAdj write lock; membership checks on
// endpoints take muNode read lock first, released before muEdgeAdj is taken,
// matching the teacher's "never hold both locks at once" discipline
// (core/api.go's Stats() comment).

package core

import "github.com/google/uuid"

// InsertEdge adds e to the view. Requires e.Source and e.Target to already
// be members of v (spec §3 invariant: "an edge may be inserted only into a
// view that already contains both endpoints"). Composition edges
// additionally enforce the parent-forest invariant (spec invariant 2).
func (v *GraphView) InsertEdge(e *Edge) (BoundEdgeRef, error) {
	if e == nil {
		return BoundEdgeRef{}, ErrNilNode
	}

	v.muNode.RLock()
	sourceOK := v.isMember(e.Source)
	targetOK := v.isMember(e.Target)
	v.muNode.RUnlock()

	if !sourceOK {
		return BoundEdgeRef{}, ErrSourceNodeNotInGraph
	}
	if !targetOK {
		return BoundEdgeRef{}, ErrTargetNodeNotInGraph
	}

	v.muEdgeAdj.Lock()
	defer v.muEdgeAdj.Unlock()

	if e.Kind == EdgeComposition {
		if _, hasParent := v.compositionParent[e.Target.id]; hasParent {
			return BoundEdgeRef{}, ErrCompositionMultipleParents
		}
		if wouldCycle(v, e.Source.id, e.Target.id) {
			return BoundEdgeRef{}, ErrCompositionCycle
		}
		v.compositionParent[e.Target.id] = e.Source.id
	}

	e.view = v
	v.edges[e.id] = e
	v.edgeOrder = append(v.edgeOrder, e.id)

	ensureIncident(v, e.Source.id)
	v.incident[e.Source.id][e.id] = struct{}{}
	if e.Target.id != e.Source.id {
		ensureIncident(v, e.Target.id)
		v.incident[e.Target.id][e.id] = struct{}{}
	}

	return BoundEdgeRef{Edge: e, View: v}, nil
}

// wouldCycle reports whether adding a composition edge parent->child would
// create a cycle in the composition forest: true iff parent is already a
// composition descendant of child. Callers must hold muEdgeAdj.
func wouldCycle(v *GraphView, parent, child uuid.UUID) bool {
	cur := parent
	for {
		next, ok := v.compositionParent[cur]
		if !ok {
			return false
		}
		if next == child {
			return true
		}
		cur = next
	}
}

// ensureIncident lazily allocates the incidence bucket for id. Callers must
// hold muEdgeAdj.
func ensureIncident(v *GraphView, id uuid.UUID) {
	if v.incident[id] == nil {
		v.incident[id] = make(map[uuid.UUID]struct{})
	}
}

// GetEdge returns the edge with the given ID, or ErrEdgeNotFound-equivalent
// (core has no standalone ErrEdgeNotFound sentinel; callers compare the
// returned bool).
func (v *GraphView) GetEdge(id uuid.UUID) (*Edge, bool) {
	v.muEdgeAdj.RLock()
	defer v.muEdgeAdj.RUnlock()

	e, ok := v.edges[id]

	return e, ok
}

// Edges returns all edges in insertion order.
func (v *GraphView) Edges() []*Edge {
	v.muEdgeAdj.RLock()
	defer v.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(v.edgeOrder))
	for _, id := range v.edgeOrder {
		out = append(out, v.edges[id])
	}

	return out
}

// CompositionParent returns the composition parent of n, if any.
func (v *GraphView) CompositionParent(n *Node) (*Node, bool) {
	v.muEdgeAdj.RLock()
	parentID, ok := v.compositionParent[n.id]
	v.muEdgeAdj.RUnlock()
	if !ok {
		return nil, false
	}

	v.muNode.RLock()
	defer v.muNode.RUnlock()

	return v.nodes[parentID], true
}
