// Package pathtree provides a parent-linked tree node that accumulates
// cumulative path cost from a root.
//
// What:
//
//   - Node holds an opaque identifier, a reference to its parent (nil for a
//     root), and the total cost of the path from the root down to itself.
//   - The total is fixed at construction: parent total + edge cost, or the
//     edge cost alone when there is no parent.
//   - AddChild spawns a new Node below the receiver without mutating it;
//     parents keep no child list, so children are discovered only through
//     the references AddChild returns.
//   - PathFromRoot retraces the identifiers from the root to a node by
//     walking the parent links.
//
// Why:
//
//   - Route reconstruction: a chain of Nodes records how a destination was
//     reached and what the trip cost, without the host algorithm keeping
//     separate bookkeeping.
//   - Any tree whose per-node invariant is "my cost = parent's cost + my
//     edge", e.g. cumulative latency or toll along a path.
//
// Immutability:
//
//   - A Node never changes after construction — no identifier, parent or
//     cost mutation exists. Parents may therefore be shared by any number of
//     children and read concurrently without synchronization.
//   - The parent link is one-directional: the child holds the only
//     reference, and constructing a child leaves the parent untouched.
//
// Complexity:
//
//   - New / NewRoot / AddChild / accessors: O(1).
//   - PathFromRoot: O(depth).
package pathtree
