package graph

import "sort"

// New creates and returns an empty Graph.
func New() *Graph {
	return &Graph{adj: make(Adjacency)}
}

// NewFrom creates a Graph backed by the supplied adjacency mapping.
// Ownership of adj transfers to the Graph: it becomes the live backing
// store (aliased, not copied), and the caller must not retain or mutate it
// afterwards. A nil adj behaves like New().
//
// Seed keys are used exactly as given — they are not re-normalized — and
// are recorded in lexicographic order so that Nodes() stays deterministic
// for seeded graphs. Keys created later append in insertion order as usual.
func NewFrom(adj Adjacency) *Graph {
	if adj == nil {
		return New()
	}

	order := make([]string, 0, len(adj))
	for id := range adj {
		order = append(order, id)
	}
	sort.Strings(order)

	return &Graph{adj: adj, order: order}
}

// AddNode inserts the node under its normalized identifier with an empty
// adjacency list. If the node already exists this method does nothing.
func (g *Graph) AddNode(id string) {
	key := NormalizeID(id)
	if _, exists := g.adj[key]; exists {
		return
	}
	g.adj[key] = make([]Arc, 0)
	g.order = append(g.order, key)
}

// AddArc inserts a directed connection origin→destination with the given
// cost. The origin is auto-created if missing; the destination is NOT — a
// destination may dangle without ever becoming a key.
//
// Duplicates are suppressed by destination only: if origin already has an
// arc to destination, the call is a no-op and the stored cost is NOT
// updated, even when the new cost differs. First writer wins.
func (g *Graph) AddArc(origin, destination string, cost int64) {
	from := NormalizeID(origin)
	to := NormalizeID(destination)

	g.AddNode(from)

	for _, a := range g.adj[from] {
		if a.To == to {
			return
		}
	}
	g.adj[from] = append(g.adj[from], Arc{To: to, Cost: cost})
}

// AddEdge inserts a bidirectional connection between origin and destination:
// both endpoints are created as keys if missing, then one arc is added in
// each direction with the same cost.
//
// The two arcs are independent records. Nothing re-synchronizes them later:
// a subsequent one-sided AddArc leaves the edge asymmetric.
func (g *Graph) AddEdge(origin, destination string, cost int64) {
	g.AddNode(origin)
	g.AddNode(destination)

	g.AddArc(origin, destination, cost)
	g.AddArc(destination, origin, cost)
}

// HasNode reports whether the identifier exists as a key after
// normalization. Dangling arc destinations do not count.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.adj[NormalizeID(id)]
	return ok
}

// NodeCount returns the current number of node keys.
func (g *Graph) NodeCount() int {
	return len(g.adj)
}

// Nodes returns a snapshot of all node keys in insertion order.
// The returned slice is a copy; mutating it does not affect the Graph.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// AdjacencyMap returns a deep-copy snapshot of the full adjacency mapping:
// a fresh map holding fresh arc slices. The snapshot shares no memory with
// the Graph, so callers may mutate it freely.
func (g *Graph) AdjacencyMap() Adjacency {
	out := make(Adjacency, len(g.adj))
	for id, arcs := range g.adj {
		cp := make([]Arc, len(arcs))
		copy(cp, arcs)
		out[id] = cp
	}

	return out
}
