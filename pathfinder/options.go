package pathfinder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atopile/atopile-sub011/core"
)

// NodeFilter reports whether node is an acceptable member of a path at all
// (the "node-type filter" stage). Returning false marks the path filtered.
type NodeFilter func(node core.BoundNodeRef) bool

// EdgeFilter reports whether the edge a path just crossed is acceptable
// (the "edge-kind filter" stage).
type EdgeFilter func(edge core.BoundEdgeRef) bool

// ConditionalLinkFilter reports whether a pointer edge flagged conditional
// should be followed at all (false drops the path) and, if followed,
// whether traversal should be treated as certain (true) or merely possible
// (false, halving confidence so the resulting path is weak).
type ConditionalLinkFilter func(edge core.BoundEdgeRef) (follow bool, certain bool)

// Option configures a Finder via functional arguments, mirroring
// bfs.Option/BFSOptions.
type Option func(*options)

type options struct {
	Ctx context.Context

	NodeFilter            NodeFilter
	EdgeFilter            EdgeFilter
	ConditionalLinkFilter ConditionalLinkFilter
	MaxDepth              int
	SameEndType           func(node core.BoundNodeRef) bool

	AbsoluteMax  int
	NoNewWeak    int
	NoWeak       int
	IndivMeasure bool
	Logger       *slog.Logger

	err error
}

// DefaultOptions returns sane defaults: unbounded depth, no caps, all
// filters permissive, and a nil logger (Find falls back to slog.Default()
// only when IndivMeasure diagnostics are actually emitted).
func DefaultOptions() options {
	return options{
		Ctx:                   context.Background(),
		NodeFilter:            func(core.BoundNodeRef) bool { return true },
		EdgeFilter:            func(core.BoundEdgeRef) bool { return true },
		ConditionalLinkFilter: func(core.BoundEdgeRef) (bool, bool) { return true, true },
		SameEndType:           func(core.BoundNodeRef) bool { return true },
		MaxDepth:              0,
		AbsoluteMax:           0,
		NoNewWeak:             0,
		NoWeak:                0,
	}
}

// WithContext sets a cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithNodeFilter installs the node-type filter stage predicate.
func WithNodeFilter(fn NodeFilter) Option {
	return func(o *options) {
		if fn != nil {
			o.NodeFilter = fn
		}
	}
}

// WithEdgeFilter installs the edge-kind filter stage predicate.
func WithEdgeFilter(fn EdgeFilter) Option {
	return func(o *options) {
		if fn != nil {
			o.EdgeFilter = fn
		}
	}
}

// WithConditionalLinkFilter installs the conditional-link filter stage.
func WithConditionalLinkFilter(fn ConditionalLinkFilter) Option {
	return func(o *options) {
		if fn != nil {
			o.ConditionalLinkFilter = fn
		}
	}
}

// WithSameEndType installs the same-end-type filter stage, applied only to
// paths that have reached a destination node.
func WithSameEndType(fn func(node core.BoundNodeRef) bool) Option {
	return func(o *options) {
		if fn != nil {
			o.SameEndType = fn
		}
	}
}

// WithMaxDepth caps path length (the "shallow filter" stage). d == 0 means
// unbounded; a negative d makes NewFinder fail with ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxPaths sets the three global caps: absolute (hard cap on stored
// paths), noNewWeak (stop admitting new weak paths beyond this count), and
// noWeak (drop all weak paths beyond this count). Zero means unbounded for
// that cap.
func WithMaxPaths(absolute, noNewWeak, noWeak int) Option {
	return func(o *options) {
		if absolute < 0 || noNewWeak < 0 || noWeak < 0 {
			o.err = fmt.Errorf("%w: path caps cannot be negative", ErrOptionViolation)
			return
		}
		o.AbsoluteMax = absolute
		o.NoNewWeak = noNewWeak
		o.NoWeak = noWeak
	}
}

// WithIndivMeasure toggles per-filter timing counters in Result.Timings.
func WithIndivMeasure(on bool) Option {
	return func(o *options) { o.IndivMeasure = on }
}

// WithLogger sets the diagnostic logger used when IndivMeasure is on. A nil
// logger (the default) falls back to slog.Default() at call time.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.Logger = l }
}
