package routefile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/routegraph/graph"
)

// Route is one parsed route line: two endpoint identifiers (as written in
// the file, not yet normalized) and the travel cost between them.
type Route struct {
	From string
	To   string
	Cost int64
}

// Parse reads comma-separated route records from r until EOF.
//
// Records carry two or three fields: origin, destination, optional cost.
// A missing or empty cost column falls back to graph.DefaultCost; fields
// beyond the third are ignored. Blank lines are skipped.
//
// Returns ErrBadRoute for a record with fewer than two fields and ErrBadCost
// (wrapped, with the offending value) when the cost column is not an
// integer. Parsing stops at the first bad record.
func Parse(r io.Reader) ([]Route, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // record lengths vary: cost is optional
	cr.TrimLeadingSpace = true

	var routes []Route
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("routefile: read: %w", err)
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("%w: %q", ErrBadRoute, rec)
		}

		rt := Route{
			From: strings.TrimSpace(rec[0]),
			To:   strings.TrimSpace(rec[1]),
			Cost: graph.DefaultCost,
		}
		if len(rec) > 2 {
			raw := strings.TrimSpace(rec[2])
			if raw != "" {
				cost, err := strconv.ParseInt(raw, 10, 64)
				if err != nil {
					return nil, fmt.Errorf("%w: %q", ErrBadCost, raw)
				}
				rt.Cost = cost
			}
		}
		routes = append(routes, rt)
	}

	return routes, nil
}

// Load opens the file at path and parses it with Parse.
func Load(path string) ([]Route, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("routefile: open: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// BuildGraph builds a fresh Graph from the routes, inserting each one as a
// bidirectional edge. Identifier normalization happens inside the graph
// package, so spelling variants in the file collapse into single nodes.
func BuildGraph(routes []Route) *graph.Graph {
	g := graph.New()
	for _, rt := range routes {
		g.AddEdge(rt.From, rt.To, rt.Cost)
	}

	return g
}
