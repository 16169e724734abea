// Package routegraph is an in-memory data model for weighted route maps:
// a mutable adjacency-list graph keyed by normalized identifiers, and an
// immutable cost-accumulating tree node.
//
// 🚀 What is routegraph?
//
//	A small, focused library that brings together:
//		• graph:     mutable labeled multigraph — nodes, directed arcs,
//		             paired bidirectional edges, deep-copy snapshots
//		• pathtree:  immutable parent-linked tree nodes that accumulate
//		             path cost from the root at construction time
//		• routefile: loader for comma-separated route lines
//		             ("Arad,Zerind,75") feeding straight into a graph
//
// ✨ Why choose routegraph?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable – insertion-ordered node enumeration, snapshot accessors
//     that never alias internal state
//   - Pure data model – no traversal algorithms, no persistence, no hidden
//     goroutines; the containers are the product
//
// Under the hood, everything is organized under three subpackages:
//
//	graph/     — Graph container, identifier normalization, snapshots
//	pathtree/  — Node with parent back-reference and total path cost
//	routefile/ — Route parsing and graph building from route files
//
// Quick ASCII example:
//
//	    Arad──75──Zerind
//	      │
//	     140
//	      │
//	    Sibiu
//
// See each subpackage's doc.go for semantics, complexity notes and the
// exact mutation rules (idempotent node creation, first-writer-wins arcs,
// unsynchronized edge pairs).
package routegraph
