package pathtree

// Node is one node of a cost-annotated tree. It is immutable once built:
// the identifier, parent reference and total path cost are fixed at
// construction and the only permitted operation afterwards is spawning
// children.
type Node struct {
	id     any
	parent *Node
	total  int64
}

// New constructs a Node with the given identifier, parent reference and the
// cost of the edge leading from the parent to this node.
//
// The total path cost is computed once, here: parent's total plus edgeCost
// when a parent is present, edgeCost alone otherwise. A nil parent is how a
// root is expressed; anything unable to report a total cost simply cannot be
// a parent, so the "treat a costless parent as no parent" policy collapses
// into this single branch.
//
// The identifier is opaque — any value the caller can compare is fine; the
// tree itself never inspects it.
func New(id any, parent *Node, edgeCost int64) *Node {
	n := &Node{id: id, parent: parent}
	if parent != nil {
		n.total = parent.TotalCost() + edgeCost
	} else {
		n.total = edgeCost
	}

	return n
}

// NewRoot constructs a parentless Node with total path cost 0.
func NewRoot(id any) *Node {
	return New(id, nil, 0)
}

// ID returns the node's identifier as given at construction.
func (n *Node) ID() any { return n.id }

// Parent returns the live reference to the parent Node, or nil for a root.
// The reference is safe to hand out: Node exposes no mutators, so nothing
// can be changed through it.
func (n *Node) Parent() *Node { return n.parent }

// TotalCost returns the cumulative path cost from the root to this node.
func (n *Node) TotalCost() int64 { return n.total }

// AddChild constructs and returns a new Node with the receiver as parent and
// the given edge cost. The receiver is not mutated and keeps no record of
// the child; the returned reference is the only link to it.
func (n *Node) AddChild(id any, cost int64) *Node {
	return New(id, n, cost)
}

// PathFromRoot retraces the parent links and returns the identifiers on the
// path from the root down to this node, root first.
func (n *Node) PathFromRoot() []any {
	var path []any
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur.id)
	}

	// Collected leaf-to-root; reverse in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
