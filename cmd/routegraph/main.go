// Package main provides the routegraph CLI: load a route file and inspect
// the resulting adjacency graph.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/routegraph/graph"
	"github.com/katalvlaran/routegraph/routefile"
)

// Version is the current routegraph CLI version
var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "routegraph",
	Short:   "Inspect route maps as weighted adjacency graphs",
	Long:    `routegraph loads comma-separated route lines ("Arad,Zerind,75"), builds an in-memory adjacency graph with normalized node identifiers, and prints the nodes or the full adjacency snapshot.`,
	Version: Version,
}

var nodesCmd = &cobra.Command{
	Use:   "nodes <route-file>",
	Short: "List node identifiers in insertion order",
	Args:  cobra.ExactArgs(1),
	RunE:  runNodes,
}

var dumpFormat string

var dumpCmd = &cobra.Command{
	Use:   "dump <route-file>",
	Short: "Print the full adjacency snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "yaml", "output format: yaml or text")
	rootCmd.AddCommand(nodesCmd, dumpCmd)
}

// loadGraph parses the route file at path and builds the graph.
func loadGraph(path string) (*graph.Graph, error) {
	routes, err := routefile.Load(path)
	if err != nil {
		return nil, err
	}

	return routefile.BuildGraph(routes), nil
}

func runNodes(cmd *cobra.Command, args []string) error {
	g, err := loadGraph(args[0])
	if err != nil {
		return err
	}

	for _, id := range g.Nodes() {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}

	return nil
}

func runDump(cmd *cobra.Command, args []string) error {
	g, err := loadGraph(args[0])
	if err != nil {
		return err
	}

	switch dumpFormat {
	case "yaml":
		out, err := yaml.Marshal(g.AdjacencyMap())
		if err != nil {
			return fmt.Errorf("render adjacency: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)

		return err
	case "text":
		dict := g.AdjacencyMap()
		for _, id := range g.Nodes() {
			for _, a := range dict[id] {
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%d)\n", id, a.To, a.Cost)
			}
		}

		return nil
	default:
		return fmt.Errorf("unknown format %q (want yaml or text)", dumpFormat)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
