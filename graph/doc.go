// Package graph provides a mutable labeled multigraph container keyed by
// normalized node identifiers, storing adjacency lists of (neighbor, cost)
// pairs.
//
// What:
//
//   - Graph maps each node identifier to an ordered list of outgoing Arcs.
//   - Identifiers are normalized by title-casing before use, so "bob",
//     "Bob" and "BOB" name the same node ("Bob").
//   - AddArc inserts a directed connection; AddEdge inserts a pair of
//     independent directed connections, one per direction.
//   - Nodes and AdjacencyMap return snapshots with no aliasing into the
//     internal state; mutating a returned value never mutates the Graph.
//
// Why:
//
//   - Route maps: city-to-city connections with travel costs.
//   - Any storage-and-retrieval use of a weighted adjacency structure where
//     callers, not the container, run the algorithms.
//
// Mutation rules:
//
//   - AddNode is idempotent: adding an existing identifier is a no-op.
//   - AddArc suppresses duplicates by destination only. A second arc to the
//     same destination is a no-op even when its cost differs — the stored
//     cost is NOT updated. First writer wins.
//   - AddArc auto-creates the origin key but never the destination; a
//     destination may dangle (appear in a list without being a key).
//   - AddEdge creates both endpoint keys, then both arcs. The two directions
//     are separate records and are not kept in sync afterwards: a later
//     one-sided AddArc leaves the edge asymmetric, which is expected.
//   - Nothing is ever removed; the container has no deletion operations.
//
// Complexity:
//
//   - AddNode / HasNode / NodeCount: O(1) amortized.
//   - AddArc / AddEdge: O(deg) scan of the origin's list for the duplicate
//     check.
//   - Nodes: O(V). AdjacencyMap: O(V + A) deep copy.
//
// Thread safety:
//
//   - Graph carries no internal locking. Mutating the same Graph from
//     multiple goroutines requires external synchronization; snapshots taken
//     while no mutation is in flight are safe to share freely.
//
// See also:
//
//   - routefile: builds a Graph from comma-separated route lines.
package graph
