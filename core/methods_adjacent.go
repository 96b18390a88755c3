// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList).
// Determinism:
//   - Neighbors() sorts by edge creation order.
//   - NeighborIDs() returns IDs sorted lex asc.
//   - AdjacencyList() returns per-vertex neighbor slices sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.

package core

import "sort"

// Neighbors returns all edges incident to the vertex id, in creation order.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.adjacency[id]))
	for _, eid := range g.adjacency[id] {
		out = append(out, g.edges[eid])
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the IDs adjacent to id, sorted ascending.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	ids := make([]string, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		ids = append(ids, nbr)
	}
	sort.Strings(ids)

	return ids, nil
}

// AdjacencyList returns a snapshot mapping every vertex ID to its sorted
// neighbor IDs. Isolated vertices map to an empty, non-nil slice.
// Returned slices are freshly allocated and safe to retain.
//
// Complexity: O(V + E log E), Space O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	result := make(map[string][]string, len(g.vertices))
	for id := range g.vertices {
		buf := make([]string, 0, len(g.adjacency[id]))
		for nbr := range g.adjacency[id] {
			buf = append(buf, nbr)
		}
		sort.Strings(buf)
		result[id] = buf
	}

	return result
}
