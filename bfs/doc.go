// Package bfs answers the reachability questions asked of a generated
// core.Graph: hop distances and shortest paths from one vertex, the
// connected components, and whether the graph is connected.
//
// IsConnected is one of the planar generator's stopping conditions.
// BFS, PathTo and Components are there for inspecting what it produced.
//
// Determinism
//
//	core.NeighborIDs returns sorted IDs and BFS expands them in that order,
//	so visit orders and component listings are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d) (neighbor lists are sorted per vertex)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             for a nil graph.
//   - ErrStartVertexNotFound  when BFS starts from an unknown vertex.
//   - ErrUnreached            from PathTo for a vertex outside the tree.
//   - ErrNeighbors            if a neighbor lookup fails mid-traversal.
package bfs
