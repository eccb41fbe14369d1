// File: methods_nodes.go
// Role: Node lifecycle -- InsertNode, Bind, HasNode, GetNode, Nodes.
// Determinism: Nodes() returns nodes in insertion order (spec §4.2 "Ordering
// guarantee"); self node is always first (it was inserted at NewGraphView).
// Concurrency: mutations under muNode write lock, reads under muNode read lock.

package core

import "github.com/google/uuid"

// InsertNode adds n to the view's node set and returns a bound reference.
// Fails with ErrNilNode for a nil n, or ErrNodeAlreadyBound if n is already
// inserted into any view (this one or another).
func (v *GraphView) InsertNode(n *Node) (BoundNodeRef, error) {
	if n == nil {
		return BoundNodeRef{}, ErrNilNode
	}

	v.muNode.Lock()
	defer v.muNode.Unlock()

	if n.view != nil {
		return BoundNodeRef{}, ErrNodeAlreadyBound
	}

	n.view = v
	v.nodes[n.id] = n
	v.nodeOrder = append(v.nodeOrder, n.id)

	return BoundNodeRef{Node: n, View: v}, nil
}

// Bind returns a bound reference to n without re-inserting it. The caller
// asserts n already belongs to v (spec §4.2: "used for the view's self
// node"); Bind does not mutate view membership.
func (v *GraphView) Bind(n *Node) (BoundNodeRef, error) {
	if n == nil {
		return BoundNodeRef{}, ErrNilNode
	}

	v.muNode.RLock()
	defer v.muNode.RUnlock()

	if _, ok := v.nodes[n.id]; !ok {
		return BoundNodeRef{}, ErrNodeNotInGraph
	}

	return BoundNodeRef{Node: n, View: v}, nil
}

// HasNode reports whether a node with the given ID is a member of v.
func (v *GraphView) HasNode(id uuid.UUID) bool {
	v.muNode.RLock()
	defer v.muNode.RUnlock()
	_, ok := v.nodes[id]

	return ok
}

// GetNode returns the node with the given ID, or ErrNodeNotInGraph.
func (v *GraphView) GetNode(id uuid.UUID) (*Node, error) {
	v.muNode.RLock()
	defer v.muNode.RUnlock()

	n, ok := v.nodes[id]
	if !ok {
		return nil, ErrNodeNotInGraph
	}

	return n, nil
}

// Nodes returns all nodes in insertion order (includes the self node first).
func (v *GraphView) Nodes() []*Node {
	v.muNode.RLock()
	defer v.muNode.RUnlock()

	out := make([]*Node, 0, len(v.nodeOrder))
	for _, id := range v.nodeOrder {
		out = append(out, v.nodes[id])
	}

	return out
}

// isMember reports membership without acquiring a lock; callers must already
// hold muNode (read or write).
func (v *GraphView) isMember(n *Node) bool {
	if n == nil {
		return false
	}
	_, ok := v.nodes[n.id]

	return ok
}
