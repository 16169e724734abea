package graph

// DefaultCost is the arc cost applied when a caller has no explicit cost,
// e.g. a two-field route line. Go has no default arguments, so callers that
// want the classic "cost defaults to 1" behavior pass this constant.
const DefaultCost int64 = 1

// Arc represents one directed weighted connection to a neighboring node.
// To holds the normalized destination identifier; Cost is the path cost.
type Arc struct {
	To   string
	Cost int64
}

// Adjacency is the full adjacency mapping shape: normalized node identifier
// to the ordered list of outgoing arcs. It is the type returned by
// AdjacencyMap and accepted by NewFrom.
type Adjacency map[string][]Arc

// Graph is the mutable adjacency-list container.
// adj holds the live adjacency mapping; order tracks key insertion order,
// which Go maps do not preserve and Nodes() must.
type Graph struct {
	adj   Adjacency
	order []string
}
