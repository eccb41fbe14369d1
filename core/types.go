// Package core implements the mutable, directed, typed-attribute graph that
// is the substrate for every other package in this module: a GraphView owns
// Node and Edge values, hands out BoundNodeRef/BoundEdgeRef pairs, and
// exposes typed traversal primitives (SPEC_FULL.md §1, spec.md §3/§4.2).
//
// The shape is a direct generalization of the original lvlath core.Graph:
// two catalogs (nodes, edges) plus an adjacency index, guarded by separate
// RWMutex locks for node and edge/adjacency state (muNode / muEdgeAdj), with
// deterministic (insertion-order) iteration everywhere the spec requires it.
//
// Errors:
//
//	ErrNilNode                     - nil *Node passed to InsertNode/Bind.
//	ErrNodeAlreadyBound             - node already inserted into some view.
//	ErrNodeNotInGraph               - node reference does not belong to this view.
//	ErrSourceNodeNotInGraph         - edge's source endpoint is absent.
//	ErrTargetNodeNotInGraph         - edge's target endpoint is absent.
//	ErrCompositionCycle             - composition edge would break the parent-forest invariant.
//	ErrCompositionMultipleParents   - child already has a composition parent.
//	ErrCallback                     - a visitor callback returned an error.
package core

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/atopile/atopile-sub011/attribute"
	"github.com/atopile/atopile-sub011/traits"
)

// Sentinel errors for graph operations (spec §7).
var (
	// ErrNilNode is returned when a nil *Node is passed to InsertNode/Bind.
	ErrNilNode = errors.New("core: nil node")

	// ErrNodeAlreadyBound indicates a node is already inserted into some view.
	ErrNodeAlreadyBound = errors.New("core: node already bound to a view")

	// ErrNodeNotInGraph indicates a node reference does not belong to this view.
	ErrNodeNotInGraph = errors.New("core: node not in graph")

	// ErrSourceNodeNotInGraph indicates an edge's source endpoint is absent.
	ErrSourceNodeNotInGraph = errors.New("core: source node not in graph")

	// ErrTargetNodeNotInGraph indicates an edge's target endpoint is absent.
	ErrTargetNodeNotInGraph = errors.New("core: target node not in graph")

	// ErrCompositionCycle indicates a composition edge would break the
	// parent-forest invariant (spec invariant 2).
	ErrCompositionCycle = errors.New("core: composition edges must form a forest")

	// ErrCompositionMultipleParents indicates a child already has a
	// composition parent (spec invariant 2: "at most one composition parent").
	ErrCompositionMultipleParents = errors.New("core: node already has a composition parent")

	// ErrCallback wraps an error returned by a visitor callback (spec §6).
	ErrCallback = errors.New("core: callback error")
)

// EdgeType is the small closed enum carried by every Edge (spec §3).
// Values 0-2 are reserved by this package; callers may register their own
// types starting at EdgeTypeReservedBase.
type EdgeType int32

const (
	// EdgeComposition is the ownership, parent->child edge kind; composition
	// edges form a forest (spec invariant 2).
	EdgeComposition EdgeType = iota
	// EdgePointer is a non-owning operand-pointer edge kind.
	EdgePointer
	// EdgeTrait is the "node X has trait T" edge kind.
	EdgeTrait
	// EdgeTypeReservedBase is the first value available to caller-defined
	// edge types (spec §3: "reserved namespace for caller-defined types").
	EdgeTypeReservedBase EdgeType = 1000
)

// nodeSeq is the process-wide monotonic counter backing Node.seq (DESIGN.md
// Open Question 1).
var nodeSeq uint64

// Node is a graph vertex: UUID identity, a dynamic attribute map, and an
// optional typed-attribute payload plus trait bitset stamped at
// construction.
type Node struct {
	id  uuid.UUID
	seq uint64 // process-local monotonic tiebreaker, not identity

	Attrs  *attribute.Map
	Typed  attribute.TypedRecord // nil if this node class has none
	Traits traits.Set

	view *GraphView // non-nil once bound
}

// NewNode constructs a detached (unbound) Node with a fresh UUID identity.
func NewNode() *Node {
	return &Node{
		id:    uuid.New(),
		seq:   atomic.AddUint64(&nodeSeq, 1),
		Attrs: attribute.NewMap(),
	}
}

// ID returns the node's UUID identity.
func (n *Node) ID() uuid.UUID { return n.id }

// Seq returns the node's monotonic construction sequence number (DESIGN.md
// Open Question 1). Two distinct nodes never share a Seq. Views do not order
// by it; they iterate in insertion order.
func (n *Node) Seq() uint64 { return n.seq }

// Same reports whether n and other share identity (spec: "two nodes are
// the same iff their UUIDs match").
func (n *Node) Same(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}

	return n.id == other.id
}

// View returns the GraphView this node is bound to, or nil if detached.
func (n *Node) View() *GraphView { return n.view }

// Edge is a directed connection between two nodes within one GraphView.
type Edge struct {
	id uuid.UUID

	Source, Target *Node
	Kind           EdgeType
	Directional    bool
	Name           string
	Attrs          *attribute.Map

	view *GraphView
}

// NewEdge constructs a detached Edge of the given kind between source and
// target. Attrs starts empty; callers Put into it before insertion.
func NewEdge(source, target *Node, kind EdgeType) *Edge {
	return &Edge{
		id:     uuid.New(),
		Source: source,
		Target: target,
		Kind:   kind,
		Attrs:  attribute.NewMap(),
	}
}

// ID returns the edge's UUID identity.
func (e *Edge) ID() uuid.UUID { return e.id }

// View returns the GraphView this edge is bound to, or nil if detached.
func (e *Edge) View() *GraphView { return e.view }

// GraphView is the owning container for nodes and edges (spec §3). It holds
// a self node so graph metadata is itself expressible in graph form.
type GraphView struct {
	muNode    sync.RWMutex
	muEdgeAdj sync.RWMutex

	nodes map[uuid.UUID]*Node
	edges map[uuid.UUID]*Edge

	// nodeOrder/edgeOrder mirror the teacher's "parallel slice alongside a
	// map for determinism" idiom (Nodes() and Edges() walk these slices):
	// insertion order is preserved for BFS tie-breaks (spec §4.2 "Ordering
	// guarantee").
	nodeOrder []uuid.UUID
	edgeOrder []uuid.UUID

	// incident[nodeID][edgeID] = struct{} for O(1) incident-edge lookup,
	// independent of direction; Edge.Source/Edge.Target distinguish
	// in-edges from out-edges at read time.
	incident map[uuid.UUID]map[uuid.UUID]struct{}

	// compositionParent maps a child node ID to its single composition
	// parent's ID, enforcing the forest invariant in O(1).
	compositionParent map[uuid.UUID]uuid.UUID

	self *Node
}

// NewGraphView constructs an empty view and binds a fresh self node into it.
func NewGraphView() *GraphView {
	v := &GraphView{
		nodes:             make(map[uuid.UUID]*Node),
		edges:             make(map[uuid.UUID]*Edge),
		incident:          make(map[uuid.UUID]map[uuid.UUID]struct{}),
		compositionParent: make(map[uuid.UUID]uuid.UUID),
	}
	self := NewNode()
	self.view = v
	v.nodes[self.id] = self
	v.nodeOrder = append(v.nodeOrder, self.id)
	v.self = self

	return v
}

// BoundNodeRef is the (node, owning view) pair through which all traversal
// APIs are invoked (spec §3).
type BoundNodeRef struct {
	Node *Node
	View *GraphView
}

// BoundEdgeRef is the edge analogue of BoundNodeRef.
type BoundEdgeRef struct {
	Edge *Edge
	View *GraphView
}

// Self returns a bound reference to the view's self node.
func (v *GraphView) Self() BoundNodeRef {
	return BoundNodeRef{Node: v.self, View: v}
}

// NodeCount returns the number of nodes currently in the view.
func (v *GraphView) NodeCount() int {
	v.muNode.RLock()
	defer v.muNode.RUnlock()

	return len(v.nodes)
}

// EdgeCount returns the number of edges currently in the view.
func (v *GraphView) EdgeCount() int {
	v.muEdgeAdj.RLock()
	defer v.muEdgeAdj.RUnlock()

	return len(v.edges)
}
