// Package typegraph implements the type registry and atomic node
// instantiation described in spec §4.3: register_type stores a factory
// keyed by identifier; instantiate_node builds the factory's entire
// subgraph (root, composition children, trait edges, pointer edges) on a
// scratch view and splices it into the caller's view only once the whole
// build succeeds, so a failure partway through leaves nothing inserted.
//
// Grounded on builder/api.go's BuildGraph/Constructor shape: a uniform
// function type applied under one orchestrator, errors wrapped once at the
// API boundary.
package typegraph

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atopile/atopile-sub011/core"
)

// ErrUnknownType is returned by InstantiateNode for an unregistered
// identifier.
var ErrUnknownType = errors.New("typegraph: unknown type identifier")

// ClassTag is the concrete node kind the caller implemented (spec §3:
// "class tag"), carried on NodeKind so InstantiateNode's caller can branch
// on it without reflection.
type ClassTag int

const (
	ClassUnknown ClassTag = iota
	ClassLiteral
	ClassOperator
	ClassUnit
	ClassComposite
)

// Factory materializes one instance of a registered type into scratch,
// returning a bound reference to the root node of the new subgraph.
// Factories must build atomically: any returned error means nothing in
// scratch should be relied upon by the caller (InstantiateNode discards
// scratch entirely on error).
type Factory func(scratch *core.GraphView) (core.BoundNodeRef, error)

// NodeKind pairs a Factory with its ClassTag descriptor.
type NodeKind struct {
	Identifier string
	ClassTag   ClassTag
	Build      Factory
}

// TypeGraph is a string-keyed registry of NodeKind factories.
type TypeGraph struct {
	mu    sync.RWMutex
	kinds map[string]NodeKind
}

// NewTypeGraph returns an empty registry.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{kinds: make(map[string]NodeKind)}
}

// RegisterType stores kind under kind.Identifier. Identifier collisions are
// allowed -- the latest registration wins -- but discouraged (spec §4.3).
func (tg *TypeGraph) RegisterType(kind NodeKind) {
	tg.mu.Lock()
	defer tg.mu.Unlock()

	tg.kinds[kind.Identifier] = kind
}

// Lookup returns the registered NodeKind for identifier, if any.
func (tg *TypeGraph) Lookup(identifier string) (NodeKind, bool) {
	tg.mu.RLock()
	defer tg.mu.RUnlock()

	kind, ok := tg.kinds[identifier]

	return kind, ok
}

// InstantiateNode builds identifier's registered factory on a fresh scratch
// view, then splices the whole result into target in one step. On any
// factory error, scratch is discarded and target is left unmodified.
func (tg *TypeGraph) InstantiateNode(target *core.GraphView, identifier string) (core.BoundNodeRef, error) {
	kind, ok := tg.Lookup(identifier)
	if !ok {
		return core.BoundNodeRef{}, fmt.Errorf("typegraph: instantiate %q: %w", identifier, ErrUnknownType)
	}

	scratch := core.NewGraphView()

	root, err := kind.Build(scratch)
	if err != nil {
		return core.BoundNodeRef{}, fmt.Errorf("typegraph: instantiate %q: %w", identifier, err)
	}

	if err := target.InsertSubgraph(scratch); err != nil {
		return core.BoundNodeRef{}, fmt.Errorf("typegraph: instantiate %q: %w", identifier, err)
	}

	return core.BoundNodeRef{Node: root.Node, View: target}, nil
}
