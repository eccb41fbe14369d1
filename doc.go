// Package atopile is the module root for a typed attributed graph engine
// with a unit-aware constraint/expression algebra layered on top.
//
// The graph substrate lives in package core: a GraphView owns Node and Edge
// values, hands out BoundNodeRef/BoundEdgeRef pairs, and exposes typed
// traversal primitives over three well-known edge kinds -- composition,
// pointer, and trait. Package typegraph registers named node-construction
// schemas and instantiates them atomically into a GraphView. Package
// traits carries the small capability bitset stamped on nodes.
//
// The value side lives in package units (a dimensional-analysis basis plus
// scale factor), package literal (disjoint-interval set types over
// strings, counts, booleans, enums, and unit-aware numeric ranges, with
// setic and interval arithmetic and a stable JSON encoding), and package
// expr (a non-eager operator DAG wired through operand pointer edges and
// evaluated bottom-up).
//
// Package pathfinder walks a GraphView breadth-first from source nodes to
// destination nodes, honoring hierarchical composition split/join
// hand-offs and a fixed chain of named filter stages, several of which
// apply caller-supplied predicates.
//
//	go get github.com/atopile/atopile-sub011
package atopile
