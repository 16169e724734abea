package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/routegraph/graph"
)

type GraphSuite struct {
	suite.Suite
	g *graph.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = graph.New()
}

func (s *GraphSuite) TestAddNodeNormalizesAndDeduplicates() {
	require := require.New(s.T())

	// Three spellings of the same identifier resolve to a single key.
	s.g.AddNode("bob")
	s.g.AddNode("Bob")
	s.g.AddNode("BOB")

	require.Equal(1, s.g.NodeCount(), "case variants should collapse into one node")
	require.Equal([]string{"Bob"}, s.g.Nodes(), "stored key should be the title-cased form")
	require.True(s.g.HasNode("bOb"), "HasNode should normalize its argument")
}

func (s *GraphSuite) TestAddNodeIdempotent() {
	require := require.New(s.T())

	s.g.AddNode("Arad")
	before := s.g.Nodes()
	s.g.AddNode("Arad")
	require.Equal(before, s.g.Nodes(), "re-adding an existing node should be a no-op")
}

func (s *GraphSuite) TestAddArcFirstWriterWins() {
	require := require.New(s.T())

	// Second arc to the same destination is dropped, cost included.
	s.g.AddArc("A", "B", 5)
	s.g.AddArc("A", "B", 9)

	arcs := s.g.AdjacencyMap()["A"]
	require.Len(arcs, 1, "duplicate destination should be suppressed")
	require.Equal(graph.Arc{To: "B", Cost: 5}, arcs[0], "original cost should survive the second call")
}

func (s *GraphSuite) TestAddArcDestinationMayDangle() {
	require := require.New(s.T())

	s.g.AddArc("A", "B", 2)

	require.True(s.g.HasNode("A"), "origin should be auto-created")
	require.False(s.g.HasNode("B"), "destination must not be auto-created by AddArc")
	require.Equal([]graph.Arc{{To: "B", Cost: 2}}, s.g.AdjacencyMap()["A"])
}

func (s *GraphSuite) TestAddEdgeSymmetricAtCreation() {
	require := require.New(s.T())

	s.g.AddEdge("A", "B", 3)

	dict := s.g.AdjacencyMap()
	require.Equal([]graph.Arc{{To: "B", Cost: 3}}, dict["A"])
	require.Equal([]graph.Arc{{To: "A", Cost: 3}}, dict["B"])
	require.True(s.g.HasNode("A") && s.g.HasNode("B"), "AddEdge should create both endpoints")
}

func (s *GraphSuite) TestEdgeDesyncAfterOneSidedArc() {
	require := require.New(s.T())

	s.g.AddEdge("A", "B", 3)
	s.g.AddArc("A", "C", 1)

	dict := s.g.AdjacencyMap()
	require.Len(dict["A"], 2, "A should have two outgoing arcs")
	require.Empty(dict["C"], "C should have no arc back to A")
	require.False(s.g.HasNode("C"), "one-sided AddArc leaves C dangling")
}

func (s *GraphSuite) TestNodesInsertionOrder() {
	require := require.New(s.T())

	s.g.AddNode("Zerind")
	s.g.AddNode("Arad")
	s.g.AddEdge("Sibiu", "Fagaras", 99)

	require.Equal([]string{"Zerind", "Arad", "Sibiu", "Fagaras"}, s.g.Nodes(),
		"Nodes should preserve key insertion order, not sort")
}

func (s *GraphSuite) TestSnapshotIsolation() {
	require := require.New(s.T())

	s.g.AddEdge("A", "B", 3)

	// Mutating returned snapshots must not leak back into the Graph.
	nodes := s.g.Nodes()
	nodes[0] = "Mutated"
	dict := s.g.AdjacencyMap()
	dict["A"][0] = graph.Arc{To: "Mutated", Cost: -1}
	dict["Injected"] = []graph.Arc{{To: "A", Cost: 1}}

	require.Equal([]string{"A", "B"}, s.g.Nodes(), "Nodes snapshot should be isolated")
	require.Equal([]graph.Arc{{To: "B", Cost: 3}}, s.g.AdjacencyMap()["A"],
		"AdjacencyMap snapshot should be isolated")
	require.False(s.g.HasNode("Injected"), "map-level mutation should not reach the Graph")
}

func (s *GraphSuite) TestNewFromAliasesSeed() {
	require := require.New(s.T())

	seed := graph.Adjacency{
		"Zerind": {{To: "Arad", Cost: 75}},
		"Arad":   {{To: "Zerind", Cost: 75}},
	}
	g := graph.NewFrom(seed)

	// Seed keys enumerate lexicographically; later keys append after them.
	require.Equal([]string{"Arad", "Zerind"}, g.Nodes())

	// The seed is the live backing store, not a copy.
	g.AddArc("Arad", "Sibiu", 140)
	require.Len(seed["Arad"], 2, "mutations through the Graph should be visible in the seed mapping")

	// A nil seed degrades to an empty graph.
	empty := graph.NewFrom(nil)
	require.Zero(empty.NodeCount())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
