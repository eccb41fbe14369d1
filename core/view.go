// File: view.go
// Role: GetSubgraphFromNodes -- an induced subgraph over a caller-chosen
// node set, handed back as a standalone view. No other package in the
// module calls it.
// Determinism: nodes and edges are copied in the source view's insertion
// order, restricted to the kept set.
// Concurrency: read locks only on the source view; the result is a fresh
// GraphView nobody else can reach yet, so its own locks are uncontended.

package core

// GetSubgraphFromNodes returns a new GraphView containing copies of the
// given nodes and every edge of v whose Source and Target are both in that
// set. Node and edge identity (UUID) is preserved; the copies are detached
// from v (mutating one view never affects the other). ids not present in v
// are silently skipped.
func (v *GraphView) GetSubgraphFromNodes(ids []BoundNodeRef) (*GraphView, error) {
	out := NewGraphView()

	keep := make(map[*Node]bool, len(ids))
	for _, ref := range ids {
		if ref.View != v {
			continue
		}
		keep[ref.Node] = true
	}

	v.muNode.RLock()
	ordered := make([]*Node, 0, len(keep))
	for _, id := range v.nodeOrder {
		n := v.nodes[id]
		if n == v.self || !keep[n] {
			continue
		}
		ordered = append(ordered, n)
	}
	v.muNode.RUnlock()

	copied := make(map[*Node]*Node, len(ordered)+1)
	copied[v.self] = out.self

	for _, n := range ordered {
		clone := cloneNode(n)
		if _, err := out.InsertNode(clone); err != nil {
			return nil, err
		}
		copied[n] = clone
	}

	v.muEdgeAdj.RLock()
	defer v.muEdgeAdj.RUnlock()

	for _, id := range v.edgeOrder {
		e := v.edges[id]
		src, srcOK := copied[e.Source]
		dst, dstOK := copied[e.Target]
		if !srcOK || !dstOK {
			continue
		}
		clone := cloneEdge(e, src, dst)
		if _, err := out.InsertEdge(clone); err != nil {
			return nil, err
		}
	}

	return out, nil
}
