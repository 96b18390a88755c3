package bfs

import "github.com/katalvlaran/graphquest/core"

// Components returns the connected components of g. Each component lists
// its vertices in BFS order from its smallest vertex ID; components are
// ordered by that smallest ID.
//
// Complexity: O(V + E·log d).
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]bool, g.VertexCount())
	var comps [][]string
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			return nil, err
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		comps = append(comps, res.Order)
	}

	return comps, nil
}

// IsConnected reports whether g consists of exactly one component.
// The empty graph is not connected; a single vertex is.
//
// Only one traversal is needed: the graph is connected iff a BFS from any
// vertex reaches all of them.
func IsConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	ids := g.Vertices()
	if len(ids) == 0 {
		return false, nil
	}
	res, err := BFS(g, ids[0])
	if err != nil {
		return false, err
	}

	return len(res.Order) == len(ids), nil
}
