package core_test

import (
	"fmt"

	"github.com/katalvlaran/graphquest/core"
)

// ExampleGraph builds a small embedded square and prints its segments.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddVertex("A", 0, 0)
	_ = g.AddVertex("B", 10, 0)
	_ = g.AddVertex("C", 10, 10)
	_ = g.AddVertex("D", 0, 10)
	for _, uv := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		_, _ = g.AddEdge(uv[0], uv[1])
	}

	for _, e := range g.Edges() {
		s, _ := g.Segment(e.ID)
		fmt.Println(e.ID, s.A, s.B)
	}
	fmt.Println(g.VertexCount(), g.EdgeCount())
	// Output:
	// e1 (0,0) (10,0)
	// e2 (10,0) (10,10)
	// e3 (10,10) (0,10)
	// e4 (0,10) (0,0)
	// 4 4
}
