package converters

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/graphquest/core"
	"github.com/katalvlaran/graphquest/geom"
)

// ErrForeignNode is returned by FromGonum for nodes that are not *Node.
var ErrForeignNode = errors.New("converters: node carries no vertex data")

// Node is a gonum graph.Node that remembers the core vertex it came from.
type Node struct {
	id     int64
	Vertex string
	Pos    geom.Point
}

// ID implements graph.Node.
func (n *Node) ID() int64 { return n.id }

// ToGonum copies g into a gonum undirected graph. Node IDs are assigned
// 0..n-1 in sorted vertex order; the returned map resolves vertex IDs to
// them.
//
// Complexity: O(V log V + E).
func ToGonum(g *core.Graph) (*simple.UndirectedGraph, map[string]int64) {
	ug := simple.NewUndirectedGraph()
	ids := make(map[string]int64, g.VertexCount())

	for i, vid := range g.Vertices() {
		p, err := g.Position(vid)
		if err != nil {
			// removed concurrently; skip like a snapshot would
			continue
		}
		ids[vid] = int64(i)
		ug.AddNode(&Node{id: int64(i), Vertex: vid, Pos: p})
	}
	for _, e := range g.Edges() {
		from, okF := ids[e.From]
		to, okT := ids[e.To]
		if !okF || !okT {
			continue
		}
		ug.SetEdge(ug.NewEdge(ug.Node(from), ug.Node(to)))
	}

	return ug, ids
}

// FromGonum rebuilds a core.Graph from an undirected gonum graph whose
// nodes are *Node. Edges are added in ascending (from, to) node-ID order.
func FromGonum(ug graph.Undirected) (*core.Graph, error) {
	g := core.NewGraph()

	nodes := graph.NodesOf(ug.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })

	byID := make(map[int64]*Node, len(nodes))
	for _, n := range nodes {
		vn, ok := n.(*Node)
		if !ok {
			return nil, fmt.Errorf("FromGonum: node %d: %w", n.ID(), ErrForeignNode)
		}
		if err := g.AddVertex(vn.Vertex, vn.Pos.X, vn.Pos.Y); err != nil {
			return nil, fmt.Errorf("FromGonum: AddVertex(%s): %w", vn.Vertex, err)
		}
		byID[vn.ID()] = vn
	}

	for _, n := range nodes {
		nbrs := graph.NodesOf(ug.From(n.ID()))
		sort.Slice(nbrs, func(i, j int) bool { return nbrs[i].ID() < nbrs[j].ID() })
		for _, m := range nbrs {
			if m.ID() <= n.ID() {
				continue
			}
			if _, err := g.AddEdge(byID[n.ID()].Vertex, byID[m.ID()].Vertex); err != nil {
				return nil, fmt.Errorf("FromGonum: AddEdge: %w", err)
			}
		}
	}

	return g, nil
}
