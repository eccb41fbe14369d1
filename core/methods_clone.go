// File: methods_clone.go
// Role: Node/edge cloning helpers and whole-view Clone/InsertSubgraph, used
// by GetSubgraphFromNodes (view.go) and by callers splicing one view's
// nodes and edges into another (typegraph.InstantiateNode builds into a
// scratch view and moves the result into its target with InsertSubgraph).
// Determinism: Clone walks nodeOrder/edgeOrder, so the copy's own order
// matches the source's.

package core

import "github.com/google/uuid"

// cloneNode returns a detached copy of n: same UUID and Seq (identity is
// preserved across views), independent Attrs map, same Typed/Traits.
func cloneNode(n *Node) *Node {
	return &Node{
		id:     n.id,
		seq:    n.seq,
		Attrs:  n.Attrs.Clone(),
		Typed:  n.Typed,
		Traits: n.Traits,
	}
}

// cloneEdge returns a detached copy of e rebound to the given (already
// cloned) endpoints.
func cloneEdge(e *Edge, src, dst *Node) *Edge {
	return &Edge{
		id:          e.id,
		Source:      src,
		Target:      dst,
		Kind:        e.Kind,
		Directional: e.Directional,
		Name:        e.Name,
		Attrs:       e.Attrs.Clone(),
	}
}

// Clone returns a deep, detached copy of v: every node and edge keeps its
// UUID identity but belongs to the new view, independent of v.
func (v *GraphView) Clone() (*GraphView, error) {
	out := NewGraphView()

	v.muNode.RLock()
	nodes := make([]*Node, 0, len(v.nodeOrder))
	for _, id := range v.nodeOrder {
		if n := v.nodes[id]; n != v.self {
			nodes = append(nodes, n)
		}
	}
	v.muNode.RUnlock()

	copied := map[*Node]*Node{v.self: out.self}
	for _, n := range nodes {
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
		clone := cloneEdge(e, copied[e.Source], copied[e.Target])
		if _, err := out.InsertEdge(clone); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// InsertSubgraph moves every non-self node and edge of src into v, preserving
// UUID identity, and drains src in the process (spec §4.2:
// "insert_subgraph(other) moves nodes+edges ... and drains it"). Each moved
// node/edge is detached from src (its view cleared, its entry removed from
// src's bookkeeping) before being rebound into v, so the move never trips
// InsertNode's ErrNodeAlreadyBound guard. Nodes already present in v (by ID)
// are skipped rather than duplicated -- they are still drained out of src,
// but the copy already owned by v is left untouched; their edges are still
// considered for insertion.
func (v *GraphView) InsertSubgraph(src *GraphView) error {
	src.muNode.Lock()
	nodes := make([]*Node, 0, len(src.nodeOrder))
	for _, id := range src.nodeOrder {
		if n := src.nodes[id]; n != src.self {
			nodes = append(nodes, n)
		}
	}
	for _, n := range nodes {
		delete(src.nodes, n.id)
		n.view = nil
	}
	src.nodeOrder = src.nodeOrder[:0]
	if src.self != nil {
		src.nodeOrder = append(src.nodeOrder, src.self.id)
	}
	src.muNode.Unlock()

	for _, n := range nodes {
		if v.HasNode(n.ID()) {
			continue
		}
		if _, err := v.InsertNode(n); err != nil {
			return err
		}
	}

	src.muEdgeAdj.Lock()
	edges := make([]*Edge, 0, len(src.edgeOrder))
	for _, id := range src.edgeOrder {
		edges = append(edges, src.edges[id])
	}
	for _, e := range edges {
		delete(src.edges, e.id)
		e.view = nil
	}
	src.edgeOrder = src.edgeOrder[:0]
	src.incident = make(map[uuid.UUID]map[uuid.UUID]struct{})
	src.compositionParent = make(map[uuid.UUID]uuid.UUID)
	src.muEdgeAdj.Unlock()

	for _, e := range edges {
		if _, err := v.InsertEdge(e); err != nil {
			return err
		}
	}

	return nil
}
