// Package pathfinder walks a core.GraphView breadth-first from one or more
// source nodes to one or more destination nodes, honoring hierarchical
// composition hand-offs (split/join) and a fixed chain of named filter
// stages, several of which apply caller-supplied predicates.
//
// Grounded on bfs/bfs.go's walker/queue/hook architecture (FIFO queue,
// functional Options, sentinel errors, a *Result accumulating Order-style
// state) generalized from a flat neighbor walk to one that tracks a
// confidence value and a hierarchical "enter parent / leave parent" stack
// per in-flight path, and that can fan a path out into sibling branches at
// a composition split and settle the split as soon as one sibling reaches
// a destination.
package pathfinder

import (
	"errors"

	"github.com/atopile/atopile-sub011/core"
)

// Sentinel errors for path-finder execution.
var (
	// ErrGraphNil is returned if a nil view is passed to Find.
	ErrGraphNil = errors.New("pathfinder: graph view is nil")

	// ErrNoSources is returned when Find is called with no source nodes.
	ErrNoSources = errors.New("pathfinder: no source nodes given")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfinder: invalid option supplied")
)

// StackOp distinguishes the two kinds of hierarchical stack element: a path
// descending into a composition child pushes Enter, ascending back out
// pops the matching Leave.
type StackOp int

const (
	// StackEnter marks a path descending into a composition child awaiting
	// its matching exit.
	StackEnter StackOp = iota
	// StackLeave marks a path ascending back out of a composition child.
	StackLeave
)

// StackElem is one entry of a Path's UnresolvedStack.
type StackElem struct {
	Op   StackOp
	Node *core.Node
}

// SplitRef identifies which pending SplitState a Path's current branch
// belongs to: the composition node where siblings fanned out, plus the
// node sequence leading up to it (so two splits at the same node but
// reached via different prefixes don't collide).
type SplitRef struct {
	SplitPoint *core.Node
	Prefix     string
}

// Path is one path under construction: the node sequence so far, the
// hierarchical stack of unmatched composition enters, the stack of pending
// split branches this path is a member of, and a confidence in (0,1]. A
// candidate a filter stage rejects is simply dropped by the caller rather
// than flagged and kept around, so Path carries no standing "filtered" bit.
//
// This implementation resolves a split the moment one sibling completes
// (DESIGN.md Open Question 4: one winning branch per split, not every
// complete sibling); it never parks a path waiting on a sibling, so there
// is no hibernate/wake state to track here either.
type Path struct {
	Nodes           []core.BoundNodeRef
	UnresolvedStack []StackElem
	SplitStack      []SplitRef
	Confidence      float64
}

// Last returns the node at the end of the path.
func (p *Path) Last() *core.Node { return p.Nodes[len(p.Nodes)-1].Node }

// IsStrong reports whether the path has full confidence and no unmatched
// composition enters still open.
func (p *Path) IsStrong() bool {
	return p.Confidence == 1 && len(p.UnresolvedStack) == 0
}

// closeOwnSplits removes every UnresolvedStack entry whose node is the
// split point of a branch this path itself took (recorded in SplitStack).
// Reaching a destination demonstrates the branch decision paid off, so the
// corresponding "enter" closes at that point rather than staying open
// indefinitely the way a plain composition descent with no sibling
// fan-out never opens one at all.
func (p *Path) closeOwnSplits() {
	if len(p.SplitStack) == 0 || len(p.UnresolvedStack) == 0 {
		return
	}

	own := make(map[*core.Node]bool, len(p.SplitStack))
	for _, ref := range p.SplitStack {
		own[ref.SplitPoint] = true
	}

	out := p.UnresolvedStack[:0:0]
	for _, elem := range p.UnresolvedStack {
		if own[elem.Node] {
			continue
		}
		out = append(out, elem)
	}
	p.UnresolvedStack = out
}

// clone returns a deep-enough copy of p for branching: the node slice,
// stack slices, and split-ref slice are all copied so mutating one branch
// never affects a sibling.
func (p *Path) clone() *Path {
	out := &Path{
		Nodes:      append([]core.BoundNodeRef(nil), p.Nodes...),
		Confidence: p.Confidence,
	}
	out.UnresolvedStack = append([]StackElem(nil), p.UnresolvedStack...)
	out.SplitStack = append([]SplitRef(nil), p.SplitStack...)

	return out
}

// prefixKey renders the given node sequence as a stable split-state key
// component.
func prefixKey(nodes []core.BoundNodeRef) string {
	var b []byte
	for _, n := range nodes {
		b = append(b, n.Node.ID().String()...)
		b = append(b, ';')
	}

	return string(b)
}

// Result is the outcome of a Find call: the accepted complete paths plus
// per-filter-stage counters (spec "(complete_paths, per-filter counters)").
type Result struct {
	Paths    []*Path
	Counters map[string]int
	// Timings holds per-stage cumulative durations; populated only when
	// WithIndivMeasure(true) was set.
	Timings map[string]int64 // nanoseconds
}
