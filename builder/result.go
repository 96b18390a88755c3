package builder

import "github.com/katalvlaran/graphquest/core"

// Result is the outcome of Generate.
type Result struct {
	// Graph holds only the points that ended up on an accepted edge.
	Graph *core.Graph
	// Points is the full sampled set, including unused points.
	Points PointSet
	// Satisfied reports whether every sampled point became a vertex and,
	// when connectivity was required, the graph is connected. It is true
	// whenever the walk stopped early, and vacuously for n = 0.
	Satisfied bool
	Stats     Stats
}
