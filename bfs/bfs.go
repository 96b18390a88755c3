package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphquest/core"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrNeighbors is returned when a neighbor lookup fails mid-traversal,
	// which only happens if the graph is mutated concurrently.
	ErrNeighbors = errors.New("bfs: neighbor lookup failed")

	// ErrUnreached is returned by PathTo for a vertex the search never saw.
	ErrUnreached = errors.New("bfs: vertex not reached")
)

// Result is the breadth-first tree grown from one start vertex.
type Result struct {
	Start  string
	Order  []string          // vertices in visit order, Start first
	Depth  map[string]int    // hop distance from Start
	Parent map[string]string // tree parent; Start has none
}

// BFS visits every vertex reachable from start, nearest first. Neighbors are
// taken in core.NeighborIDs order (sorted), so Order is reproducible.
//
// Complexity: O(V + E·log d) time, O(V) space.
func BFS(g *core.Graph, start string) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	res := &Result{
		Start:  start,
		Order:  make([]string, 1, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}
	res.Order[0] = start
	res.Depth[start] = 0

	// Order doubles as the queue: head walks it while the tail grows.
	for head := 0; head < len(res.Order); head++ {
		cur := res.Order[head]
		nbrs, err := g.NeighborIDs(cur)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrNeighbors, cur, err)
		}
		for _, nb := range nbrs {
			if _, seen := res.Depth[nb]; seen {
				continue
			}
			res.Depth[nb] = res.Depth[cur] + 1
			res.Parent[nb] = cur
			res.Order = append(res.Order, nb)
		}
	}

	return res, nil
}

// PathTo returns a shortest path Start..dest, both ends included.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %q from %q", ErrUnreached, dest, r.Start)
	}

	path := make([]string, d+1)
	for cur := dest; d >= 0; d-- {
		path[d] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
