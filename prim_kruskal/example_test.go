package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/prim_kruskal"
)

// ExampleKruskal keeps the two cheapest walkways of a triangle.
func ExampleKruskal() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddVertex(id, id)
	}
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 4)

	edges, total, _ := prim_kruskal.Kruskal(g)
	fmt.Printf("Total: %d, Edges:", total)
	for _, e := range edges {
		fmt.Printf(" %s-%s", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 3, Edges: A-B B-C
}

// ExamplePrim grows the backbone of a pentagon from A; the long A–E side is dropped.
func ExamplePrim() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		_ = g.AddVertex(id, id)
	}
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("A", "E", 12)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("C", "D", 3)
	_ = g.AddEdge("D", "E", 5)

	edges, total, _ := prim_kruskal.Prim(g, "A")
	fmt.Printf("Total: %d, Edges:", total)
	for _, e := range edges {
		fmt.Printf(" %s-%s", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 11, Edges: A-B B-C C-D D-E
}
