// Package routefile loads weighted route data from comma-separated text and
// turns it into a graph.Graph.
//
// Format:
//
//	One route per line: origin, destination, and an optional integer cost.
//
//	    Arad,Zerind,75
//	    Arad,Sibiu,140
//	    Arad,Timisoara
//
//	A missing cost column falls back to graph.DefaultCost. Blank lines are
//	skipped; surrounding whitespace around fields is trimmed.
//
// Errors:
//
//   - ErrBadRoute: a record with fewer than two fields.
//   - ErrBadCost: a cost column that does not parse as an integer. This is
//     fatal to the load — it propagates to the caller wrapped, never
//     silently skipped.
//
// Every parsed route becomes a bidirectional edge (graph.AddEdge), so the
// resulting map is symmetric at build time.
package routefile
