// SPDX-License-Identifier: MIT

// Package core implements the typed attributed graph engine: Node, Edge,
// GraphView and the bound-reference pair types that carry identity and
// membership together. See types.go for the concurrency model and
// composition-forest invariant, methods.go for the visitor contract.
package core
