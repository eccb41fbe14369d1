package pathfinder

import (
	"github.com/atopile/atopile-sub011/core"
)

// stage is one named step of the filter pipeline. It inspects candidate (a
// path that was just extended by one edge) and reports whether it survives.
// A returned error marks candidate filtered without aborting the overall
// search (spec failure model: "a filter that errors marks the path
// filtered; the search continues").
type stage struct {
	name string
	run  func(fc *findCtx, candidate *Path, via core.BoundEdgeRef) (bool, error)
}

// defaultPipeline returns the ordered stage list applied to every newly
// extended path, before the batch split/join pass.
func defaultPipeline() []stage {
	return []stage{
		{"count", countStage},
		{"node_type", nodeTypeStage},
		{"edge_kind", edgeKindStage},
		{"dead_end_split", deadEndSplitStage},
		{"stack_building", stackBuildingStage},
		{"end_in_self", endInSelfStage},
		{"same_end_type", sameEndTypeStage},
		{"stack_consistency", stackConsistencyStage},
		{"shallow", shallowStage},
		{"conditional_link", conditionalLinkStage},
		{"valid_split_branch", validSplitBranchStage},
		{"incompleteness", incompletenessStage},
	}
}

// countStage is bookkeeping only: it never filters, it exists so the
// pipeline's first counter reflects the number of extensions attempted.
func countStage(_ *findCtx, _ *Path, _ core.BoundEdgeRef) (bool, error) {
	return true, nil
}

func nodeTypeStage(fc *findCtx, candidate *Path, _ core.BoundEdgeRef) (bool, error) {
	last := candidate.Nodes[len(candidate.Nodes)-1]

	return fc.opts.NodeFilter(last), nil
}

func edgeKindStage(fc *findCtx, _ *Path, via core.BoundEdgeRef) (bool, error) {
	return fc.opts.EdgeFilter(via), nil
}

// deadEndSplitStage drops a path that has nowhere left to go and has not
// reached a destination; when the path is inside a split branch it also
// records the branch as dead in the owning SplitState (joinPass does not
// read that record).
func deadEndSplitStage(fc *findCtx, candidate *Path, _ core.BoundEdgeRef) (bool, error) {
	if fc.isDestination(candidate.Last()) {
		return true, nil
	}
	if fc.hasOutgoing(candidate.Last()) {
		return true, nil
	}
	if len(candidate.SplitStack) > 0 {
		ref := candidate.SplitStack[len(candidate.SplitStack)-1]
		fc.markBranchDead(ref, candidate)
	}

	return false, nil
}

// stackBuildingStage pushes a StackEnter when the edge just crossed was a
// composition edge descending into a child of a node with more than one
// composition child, and registers that branch with the node's SplitState
// (spec §4.9 "whenever a hierarchical enter element appears"). A pointer
// edge or a descent into an only child pushes nothing.
func stackBuildingStage(fc *findCtx, candidate *Path, via core.BoundEdgeRef) (bool, error) {
	if via.Edge == nil || via.Edge.Kind != core.EdgeComposition {
		return true, nil
	}

	parent := via.Edge.Source
	child := via.Edge.Target

	siblingCount, err := fc.view.OutDegreeOf(core.BoundNodeRef{Node: parent, View: fc.view}, core.EdgeComposition)
	if err != nil {
		return false, err
	}
	if siblingCount <= 1 {
		return true, nil
	}
	candidate.UnresolvedStack = append(candidate.UnresolvedStack, StackElem{Op: StackEnter, Node: parent})

	ref := SplitRef{SplitPoint: parent, Prefix: prefixKey(candidate.Nodes[:len(candidate.Nodes)-1])}
	candidate.SplitStack = append(candidate.SplitStack, ref)
	fc.registerBranch(ref, child, candidate)

	return true, nil
}

// endInSelfStage drops a path that has wandered onto the view's meta self
// node, which never represents a real destination.
func endInSelfStage(fc *findCtx, candidate *Path, _ core.BoundEdgeRef) (bool, error) {
	return !candidate.Last().Same(fc.view.Self().Node), nil
}

// sameEndTypeStage applies the caller's SameEndType predicate only once a
// path has actually reached a destination node.
func sameEndTypeStage(fc *findCtx, candidate *Path, _ core.BoundEdgeRef) (bool, error) {
	if !fc.isDestination(candidate.Last()) {
		return true, nil
	}
	last := candidate.Nodes[len(candidate.Nodes)-1]

	return fc.opts.SameEndType(last), nil
}

// stackConsistencyStage is intentionally inert: this walk only ever
// descends composition edges Source->Target (stackBuildingStage is the only
// stage that pushes UnresolvedStack entries, and it never pops), so there is
// no Leave an Enter could ever be out of order with. The named slot is kept
// in the pipeline -- rather than omitted -- so the stage order and counter
// names stay as documented, and so an ascending edge kind added later has
// an obvious place to add the out-of-order-pop check this name promises.
func stackConsistencyStage(_ *findCtx, _ *Path, _ core.BoundEdgeRef) (bool, error) {
	return true, nil
}

// shallowStage enforces the caller's MaxDepth cap on path length.
func shallowStage(fc *findCtx, candidate *Path, _ core.BoundEdgeRef) (bool, error) {
	if fc.opts.MaxDepth <= 0 {
		return true, nil
	}

	return len(candidate.Nodes)-1 <= fc.opts.MaxDepth, nil
}

// conditionalLinkStage applies the caller's ConditionalLinkFilter to any
// pointer edge carrying a "conditional" attribute; a path that is allowed
// through an uncertain conditional link has its confidence halved, making
// it weak rather than strong.
func conditionalLinkStage(fc *findCtx, candidate *Path, via core.BoundEdgeRef) (bool, error) {
	if via.Edge == nil || via.Edge.Kind != core.EdgePointer {
		return true, nil
	}
	if _, ok := via.Edge.Attrs.Get("conditional"); !ok {
		return true, nil
	}

	follow, certain := fc.opts.ConditionalLinkFilter(via)
	if !follow {
		return false, nil
	}
	if !certain {
		candidate.Confidence *= 0.5
	}

	return true, nil
}

// validSplitBranchStage drops a path whose most recent split has already
// been resolved (every sibling settled) by the time this branch extends
// further -- it arrived too late to contribute.
func validSplitBranchStage(fc *findCtx, candidate *Path, _ core.BoundEdgeRef) (bool, error) {
	if len(candidate.SplitStack) == 0 {
		return true, nil
	}
	ref := candidate.SplitStack[len(candidate.SplitStack)-1]

	return !fc.isSplitResolved(ref), nil
}

// incompletenessStage is the final stage: a path that claims to have
// reached a destination but still has unmatched composition enters open is
// incomplete and is dropped (spec: "a path is strong when confidence==1 and
// its unresolved stack is empty"; an incomplete arrival is neither strong
// nor a valid weak completion).
func incompletenessStage(fc *findCtx, candidate *Path, _ core.BoundEdgeRef) (bool, error) {
	if !fc.isDestination(candidate.Last()) {
		return true, nil
	}
	candidate.closeOwnSplits()

	return len(candidate.UnresolvedStack) == 0, nil
}
