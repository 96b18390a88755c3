// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building, querying, and cloning
// embedded graphs.
//
// This file declares Vertex, Edge, Graph, sentinel errors, and the NewGraph
// constructor.
package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/graphquest/geom"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrPositionConflict indicates an existing vertex was re-added at a different position.
	ErrPositionConflict = errors.New("core: vertex already placed at another position")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is a placed node of the embedding.
//
// ID uniquely identifies this Vertex within its Graph; X and Y are its
// coordinates. Metadata stores arbitrary key-value data and is shared on
// clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// X and Y are the integer coordinates of the vertex.
	X, Y int

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Point returns the vertex position as a geom.Point.
func (v *Vertex) Point() geom.Point { return geom.Point{X: v.X, Y: v.Y} }

// Edge is an undirected straight-line connection between two vertices.
// From and To keep the order given to AddEdge; the edge itself has no
// orientation.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the first endpoint ID.
	From string

	// To is the second endpoint ID.
	To string
}

// Other returns the endpoint of e opposite to id.
// The result is meaningless if id is not an endpoint of e.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// Graph is the embedded, undirected, simple graph.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[u][v] = Edge.ID, mirrored for v→u.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
}
