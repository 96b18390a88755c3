package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphquest/bfs"
	"github.com/katalvlaran/graphquest/core"
)

// ExampleBFS finds the hop distance between two corners of a unit square
// drawn with one diagonal.
func ExampleBFS() {
	g := core.NewGraph()
	_ = g.AddVertex("a", 0, 0)
	_ = g.AddVertex("b", 10, 0)
	_ = g.AddVertex("c", 10, 10)
	_ = g.AddVertex("d", 0, 10)
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "a"}, {"a", "c"}} {
		_, _ = g.AddEdge(e[0], e[1])
	}

	res, _ := bfs.BFS(g, "b")
	p, _ := res.PathTo("d")
	fmt.Println(res.Order, p)

	ok, _ := bfs.IsConnected(g)
	fmt.Println("connected:", ok)
	// Output:
	// [b a c d] [b a d]
	// connected: true
}
