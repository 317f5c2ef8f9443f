package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dfs"
)

// ExampleAllPaths lists both routes around a small loop, cheapest first.
func ExampleAllPaths() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		_ = g.AddVertex(id, id)
	}
	_ = g.AddEdge("A", "B", 5)
	_ = g.AddEdge("B", "D", 5)
	_ = g.AddEdge("A", "C", 2)
	_ = g.AddEdge("C", "D", 3)

	paths, _ := dfs.AllPaths(g, "A", "D")
	for _, p := range paths {
		fmt.Println(p.Nodes, p.Distance)
	}
	// Output:
	// [A C D] 5
	// [A B D] 10
}
