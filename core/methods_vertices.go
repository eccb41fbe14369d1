// File: methods_vertices.go
// Role: Degree queries broken down by edge kind -- InDegreeOf, OutDegreeOf,
// DegreeOf (spec §6 path-finder filters count edges per kind at each hop).
// Determinism: counts are computed from the same insertion-ordered
// incidence snapshot VisitEdgesOfType uses, so repeated calls on an
// unmutated view always agree.

package core

// OutDegreeOf counts edges of kind leaving node (node == edge.Source),
// including self-loops once.
func (v *GraphView) OutDegreeOf(node BoundNodeRef, kind EdgeType) (int, error) {
	n := 0
	err := v.VisitEdgesOfType(node, kind, nil, func(_ any, _ BoundEdgeRef) (Signal, error) {
		n++
		return Continue, nil
	}, boolPtr(true))

	return n, err
}

// InDegreeOf counts edges of kind arriving at node (node == edge.Target),
// including self-loops once.
func (v *GraphView) InDegreeOf(node BoundNodeRef, kind EdgeType) (int, error) {
	n := 0
	err := v.VisitEdgesOfType(node, kind, nil, func(_ any, _ BoundEdgeRef) (Signal, error) {
		n++
		return Continue, nil
	}, boolPtr(false))

	return n, err
}

// DegreeOf counts all edges of kind incident to node, regardless of
// direction. A self-loop of kind counts once (it appears once in the
// incidence snapshot), matching InsertEdge's dedup of self-loop incidence.
func (v *GraphView) DegreeOf(node BoundNodeRef, kind EdgeType) (int, error) {
	n := 0
	err := v.VisitEdgesOfType(node, kind, nil, func(_ any, _ BoundEdgeRef) (Signal, error) {
		n++
		return Continue, nil
	}, nil)

	return n, err
}

func boolPtr(b bool) *bool { return &b }
