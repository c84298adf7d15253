package hag_test

import (
	"fmt"

	"github.com/MasoudKargar/HAG/pkg/hag"
)

func ExampleGraph_basic() {
	// Model a small call graph: A calls B, B uses C.
	g := hag.New()
	g.AddEdge("A", "B", "calls")
	g.AddEdge("B", "C", "uses")

	fmt.Println("Vertices:", g.VertexCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Neighbors of A:", g.Neighbors("A"))
	// Output:
	// Vertices: 3
	// Edges: 2
	// Neighbors of A: [B]
}

func ExampleGraph_CollapseHyperVertex() {
	g := hag.New()
	g.AddEdge("A", "B", "calls")
	g.AddEdge("B", "C", "uses")

	// Group A and B into a single abstract node and collapse it.
	g.AddHyperVertex("H1", []hag.ID{"A", "B"})
	g.CollapseHyperVertex("H1")

	for _, e := range g.Edges() {
		fmt.Println(e)
	}
	// Output:
	// H1->C (uses)
	// H1->H1 (calls)
}

func ExampleGraph_PathExists() {
	g := hag.New()
	g.AddEdge("A", "B", "calls")
	g.AddEdge("B", "C", "uses")
	g.AddEdge("C", "D", "flows")

	fmt.Println("A reaches D:", g.PathExists("A", "D"))
	fmt.Println("D reaches A:", g.PathExists("D", "A"))

	// Abstraction preserves reachability: collapse {A, B} into Module1
	// and the path to D still exists.
	g.AddHyperVertex("Module1", []hag.ID{"A", "B"})
	g.CollapseHyperVertex("Module1")
	fmt.Println("Module1 reaches D:", g.PathExists("Module1", "D"))
	// Output:
	// A reaches D: true
	// D reaches A: false
	// Module1 reaches D: true
}

func ExampleGraph_Union() {
	a := hag.New()
	a.AddEdge("ui", "api", "calls")

	b := hag.New()
	b.AddEdge("api", "db", "reads")

	u := a.Union(b)
	fmt.Println("Vertices:", u.Vertices())
	fmt.Println("Edges:", u.EdgeCount())
	// Output:
	// Vertices: [api db ui]
	// Edges: 2
}
