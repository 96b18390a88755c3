// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/EdgeCount/Segment,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in creation order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"

	"github.com/katalvlaran/graphquest/geom"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge connects two placed vertices with an undirected edge.
//
// Steps:
//  1. Validate IDs and reject loops.
//  2. Check both endpoints exist (ErrVertexNotFound).
//  3. Lock muEdgeAdj, reject a parallel edge.
//  4. Generate eid atomically, store the edge and both adjacency mirrors.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[from]; !ok {
		return "", fmt.Errorf("AddEdge(%s,%s): %s: %w", from, to, from, ErrVertexNotFound)
	}
	if _, ok := g.vertices[to]; !ok {
		return "", fmt.Errorf("AddEdge(%s,%s): %s: %w", from, to, to, ErrVertexNotFound)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, dup := g.adjacency[from][to]; dup {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to}
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid

	return eid, nil
}

// RemoveEdge deletes one edge and its adjacency mirror.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	delete(g.adjacency[e.From], e.To)
	delete(g.adjacency[e.To], e.From)

	return nil
}

// HasEdge reports whether from and to are adjacent (in either order).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Segment returns the straight segment drawn for edge edgeID.
// Complexity: O(1).
func (g *Graph) Segment(edgeID string) (geom.Segment, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return geom.Segment{}, ErrEdgeNotFound
	}

	return geom.Seg(g.vertices[e.From].Point(), g.vertices[e.To].Point()), nil
}

// Edges returns all edges in creation order.
// Complexity: O(E log E) for sorting; O(E) to assemble the slice.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// sortEdges orders edges by creation: IDs share the "e" prefix, so a shorter
// ID always carries a smaller sequence number.
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool {
		if len(es[i].ID) != len(es[j].ID) {
			return len(es[i].ID) < len(es[j].ID)
		}
		return es[i].ID < es[j].ID
	})
}

// nextEdgeID returns a new unique textual edge ID ("e1", "e2", ...).
// Safe for concurrent callers; atomic.AddUint64 reserves the next number.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
