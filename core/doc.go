// Package core provides the embedded graph produced by the planar generator:
// an undirected, simple, thread-safe in-memory Graph whose vertices carry
// integer (x, y) coordinates.
//
// The Graph G = (V,E) enforces the structural invariants every generated
// graph must satisfy:
//
//   - Undirected edges, stored once in the edge catalog and mirrored in the
//     adjacency map: adjacency[u][v] == adjacency[v][u] == edgeID.
//   - No self-loops (AddEdge(v,v) → ErrLoopNotAllowed).
//   - No parallel edges (second AddEdge(u,v) → ErrMultiEdgeNotAllowed).
//   - Every edge endpoint is a placed vertex (AddEdge on a missing vertex →
//     ErrVertexNotFound); vertices are never created implicitly because a
//     vertex without a position has no place in an embedding.
//   - Collision-free monotonic Edge.ID generation (“e1”, “e2”, …).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj); lock order is always muVert → muEdgeAdj.
//
// Determinism:
//
//	Vertices() and NeighborIDs() return IDs sorted lexicographically,
//	Edges() returns edges in creation order ("e1" < "e2" < … < "e10").
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string, x, y int) error  // O(1)
//	HasVertex(id string) bool             // O(1)
//	Position(id string) (geom.Point, error)
//	RemoveVertex(id string) error         // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error                     // O(1)
//	HasEdge(from, to string) bool                       // O(1)
//	Segment(edgeID string) (geom.Segment, error)        // O(1)
//
//	// Query
//	NeighborIDs(id string) ([]string, error) // O(d·log d)
//	Neighbors(id string) ([]*Edge, error)    // O(d·log d)
//	AdjacencyList() map[string][]string      // O(V+E)
//	Vertices() []string                      // O(V·log V)
//	Edges() []*Edge                          // O(E·log E)
//
//	// Cloning
//	Clone() *Graph                           // O(V+E)
//	InducedSubgraph(g, keep) *Graph          // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrPositionConflict    – re-adding a vertex at another position
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – parallel edge
package core
