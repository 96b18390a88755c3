// File: methods_clone.go
// Role: Cloning and induced views.
// Determinism:
//   - Clone/InducedSubgraph keep edge IDs and carry nextEdgeID so later
//     AddEdge calls never collide with copied IDs.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// Clone returns a deep copy of vertices, edges and adjacency.
// Vertex Metadata maps are shared, not copied.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return InducedSubgraph(g, nil)
}

// InducedSubgraph returns a new Graph containing only the vertices v with
// keep[v] == true and the edges whose endpoints are both kept. A nil keep
// map keeps everything. The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	kept := func(id string) bool { return keep == nil || keep[id] }
	out := NewGraph()

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	for id, v := range g.vertices {
		if kept(id) {
			out.vertices[id] = &Vertex{ID: v.ID, X: v.X, Y: v.Y, Metadata: v.Metadata}
			out.adjacency[id] = make(map[string]string)
		}
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for eid, e := range g.edges {
		if !kept(e.From) || !kept(e.To) {
			continue
		}
		out.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To}
		out.adjacency[e.From][e.To] = eid
		out.adjacency[e.To][e.From] = eid
	}
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	return out
}
