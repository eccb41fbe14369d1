// File: finder.go
// Role: Finder.Find -- the FIFO walker loop, grounded on bfs/bfs.go's
// walker/enqueue/dequeue/loop shape, extended to run every extension
// through the named filter pipeline and to fan a path out into split
// branches that later rejoin (spec §4.9).

package pathfinder

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/atopile/atopile-sub011/core"
)

// Finder runs path searches with a fixed configuration; construct one with
// NewFinder and reuse it across calls to Find.
type Finder struct {
	opts     options
	pipeline []stage
}

// NewFinder builds a Finder from functional options. Returns
// ErrOptionViolation if any option was invalid.
func NewFinder(opts ...Option) (*Finder, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Finder{opts: o, pipeline: defaultPipeline()}, nil
}

// findCtx carries the per-call mutable state the filter stages need:
// destination membership, split-state bookkeeping, and the view being
// searched.
type findCtx struct {
	view     *core.GraphView
	opts     *options
	dests    map[uuid.UUID]struct{}
	splits   map[string]*splitState
	pipeline []stage
	counters map[string]int
	timings  map[string]int64
}

type splitState struct {
	ref      SplitRef
	branches map[uuid.UUID]*Path // first extension per child
	dead     map[uuid.UUID]bool
	resolved bool
}

func splitStateKey(ref SplitRef) string {
	return ref.SplitPoint.ID().String() + "|" + ref.Prefix
}

func (fc *findCtx) isDestination(n *core.Node) bool {
	_, ok := fc.dests[n.ID()]

	return ok
}

func (fc *findCtx) hasOutgoing(n *core.Node) bool {
	var found bool
	_ = fc.view.VisitChildrenEdges(core.BoundNodeRef{Node: n, View: fc.view}, nil, func(_ any, _ core.BoundEdgeRef) (core.Signal, error) {
		found = true

		return core.Stop, nil
	})
	if found {
		return true
	}
	_ = fc.view.VisitOperandEdges(core.BoundNodeRef{Node: n, View: fc.view}, nil, func(_ any, _ core.BoundEdgeRef) (core.Signal, error) {
		found = true

		return core.Stop, nil
	})

	return found
}

func (fc *findCtx) registerBranch(ref SplitRef, child *core.Node, p *Path) {
	key := splitStateKey(ref)
	st, ok := fc.splits[key]
	if !ok {
		st = &splitState{ref: ref, branches: map[uuid.UUID]*Path{}, dead: map[uuid.UUID]bool{}}
		fc.splits[key] = st
	}
	if _, exists := st.branches[child.ID()]; !exists {
		st.branches[child.ID()] = p
	}
}

func (fc *findCtx) markBranchDead(ref SplitRef, p *Path) {
	st, ok := fc.splits[splitStateKey(ref)]
	if !ok {
		return
	}
	// Identify which child this dead path descended through: the node
	// immediately after ref.SplitPoint in the path's own sequence.
	for i, bn := range p.Nodes {
		if bn.Node.Same(ref.SplitPoint) && i+1 < len(p.Nodes) {
			st.dead[p.Nodes[i+1].Node.ID()] = true

			return
		}
	}
}

func (fc *findCtx) isSplitResolved(ref SplitRef) bool {
	st, ok := fc.splits[splitStateKey(ref)]
	if !ok {
		return false
	}

	return st.resolved
}

// neighbor pairs a reachable next node with the edge used to reach it.
type neighbor struct {
	edge core.BoundEdgeRef
	node *core.Node
}

func (fc *findCtx) neighbors(n *core.Node) ([]neighbor, error) {
	var out []neighbor
	ref := core.BoundNodeRef{Node: n, View: fc.view}

	err := fc.view.VisitChildrenEdges(ref, nil, func(_ any, e core.BoundEdgeRef) (core.Signal, error) {
		out = append(out, neighbor{edge: e, node: e.Edge.Target})

		return core.Continue, nil
	})
	if err != nil {
		return nil, err
	}

	err = fc.view.VisitOperandEdges(ref, nil, func(_ any, e core.BoundEdgeRef) (core.Signal, error) {
		out = append(out, neighbor{edge: e, node: e.Edge.Target})

		return core.Continue, nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Find walks view breadth-first from sources to destinations, returning
// every accepted complete path and per-stage counters. Returns ErrGraphNil
// or ErrNoSources for invalid input.
func (f *Finder) Find(view *core.GraphView, sources, destinations []core.BoundNodeRef) (*Result, error) {
	if view == nil {
		return nil, ErrGraphNil
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	fc := &findCtx{
		view:     view,
		opts:     &f.opts,
		dests:    make(map[uuid.UUID]struct{}, len(destinations)),
		splits:   make(map[string]*splitState),
		pipeline: f.pipeline,
		counters: make(map[string]int, len(f.pipeline)+1),
		timings:  make(map[string]int64, len(f.pipeline)),
	}
	for _, d := range destinations {
		fc.dests[d.Node.ID()] = struct{}{}
	}

	queue := make([]*Path, 0, len(sources))
	for _, s := range sources {
		queue = append(queue, &Path{Nodes: []core.BoundNodeRef{s}, Confidence: 1})
	}

	var accepted []*Path
	var weakCount int

	weakCap := func() bool {
		if fc.opts.NoWeak > 0 && weakCount >= fc.opts.NoWeak {
			return true
		}

		return false
	}

	for len(queue) > 0 {
		select {
		case <-fc.opts.Ctx.Done():
			return nil, fc.opts.Ctx.Err()
		default:
		}

		p := queue[0]
		queue = queue[1:]

		if fc.opts.AbsoluteMax > 0 && len(accepted) >= fc.opts.AbsoluteMax {
			break
		}

		if fc.isDestination(p.Last()) && p.IsStrong() {
			accepted = append(accepted, p)
			fc.resolveSiblings(p)

			continue
		}

		nbrs, err := fc.neighbors(p.Last())
		if err != nil {
			return nil, fmt.Errorf("pathfinder: %w", err)
		}

		for _, nb := range nbrs {
			candidate := p.clone()
			candidate.Nodes = append(candidate.Nodes, core.BoundNodeRef{Node: nb.node, View: view})

			keep, err := fc.runPipeline(candidate, nb.edge)
			if err != nil || !keep {
				continue
			}

			if fc.isDestination(nb.node) {
				if candidate.IsStrong() {
					if fc.opts.AbsoluteMax > 0 && len(accepted) >= fc.opts.AbsoluteMax {
						continue
					}
					accepted = append(accepted, candidate)
					fc.resolveSiblings(candidate)

					continue
				}

				if weakCap() {
					continue
				}
				if fc.opts.NoNewWeak > 0 && weakCount >= fc.opts.NoNewWeak {
					continue
				}
				weakCount++
				accepted = append(accepted, candidate)
				fc.resolveSiblings(candidate)

				continue
			}

			queue = append(queue, candidate)
		}
	}

	fc.joinPass(&accepted)

	result := &Result{Paths: accepted, Counters: fc.counters}
	if fc.opts.IndivMeasure {
		result.Timings = fc.timings
		logger := fc.opts.Logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Debug("pathfinder: search complete", "accepted", len(accepted), "counters", fc.counters)
	}

	return result, nil
}

// runPipeline applies every stage in order to candidate, short-circuiting
// (and marking candidate filtered) on the first stage that rejects it or
// errors. Per-stage counters and, if enabled, per-stage timings are
// recorded regardless of outcome.
func (fc *findCtx) runPipeline(candidate *Path, via core.BoundEdgeRef) (bool, error) {
	for _, s := range fc.pipeline {
		var start time.Time
		if fc.opts.IndivMeasure {
			start = time.Now()
		}

		keep, err := s.run(fc, candidate, via)

		fc.counters[s.name]++
		if fc.opts.IndivMeasure {
			fc.timings[s.name] += time.Since(start).Nanoseconds()
		}

		if err != nil {
			return false, nil //nolint:nilerr -- filter errors mark the path filtered, they do not abort the search
		}
		if !keep {
			return false, nil
		}
	}

	return true, nil
}

// resolveSiblings marks every split on p's SplitStack as resolved once p
// itself completed through it, so validSplitBranchStage drops any
// later-arriving sibling at the same split (DESIGN.md Open Question 4).
func (fc *findCtx) resolveSiblings(p *Path) {
	for _, ref := range p.SplitStack {
		st, ok := fc.splits[splitStateKey(ref)]
		if !ok {
			continue
		}
		st.resolved = true
	}
}
