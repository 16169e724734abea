// Package pathtree_test provides runnable examples for cost-annotated tree
// nodes. Each example is runnable via “go test -run Example”.
package pathtree_test

import (
	"fmt"

	"github.com/katalvlaran/routegraph/pathtree"
)

// ExampleNode_AddChild demonstrates cost accumulation down a chain of nodes.
func ExampleNode_AddChild() {
	// 1) Start a tree at Arad; a root costs nothing to reach.
	root := pathtree.NewRoot("Arad")
	// 2) Reaching Sibiu from Arad costs 140.
	sibiu := root.AddChild("Sibiu", 140)
	// 3) Reaching Fagaras from Sibiu costs another 99.
	fagaras := sibiu.AddChild("Fagaras", 99)

	// 4) Totals accumulate from the root; the parent is never mutated.
	fmt.Println(root.TotalCost(), sibiu.TotalCost(), fagaras.TotalCost())
	// 5) The path retraces root-first through the parent links.
	fmt.Println(fagaras.PathFromRoot())
	// Output:
	// 0 140 239
	// [Arad Sibiu Fagaras]
}
