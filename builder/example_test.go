package builder_test

import (
	"fmt"

	"github.com/katalvlaran/graphquest/builder"
)

// ExampleGenerate draws a small connected planar graph from a fixed random
// stream and lists its edges shortest first.
func ExampleGenerate() {
	res, err := builder.Generate(5, true, 0.3, withLCG(42))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range res.Graph.Edges() {
		s, _ := res.Graph.Segment(e.ID)
		fmt.Println(e.ID, s.A, s.B)
	}
	fmt.Println("satisfied:", res.Satisfied, "stop:", res.Stats.StopIndex)
	// Output:
	// e1 (82,45) (65,22)
	// e2 (100,75) (82,45)
	// e3 (82,45) (46,72)
	// e4 (46,72) (9,37)
	// e5 (46,72) (65,22)
	// satisfied: true stop: 4
}

// ExampleGenerate_invalid shows that parameters are checked before any
// sampling takes place.
func ExampleGenerate_invalid() {
	_, err := builder.Generate(4, true, 1.5, builder.WithSeed(1))
	fmt.Println(err)
	// Output:
	// Generate: RandomPlanar: sparseness=1.5 not in [0.0,1.0]: builder: sparseness out of range
}
