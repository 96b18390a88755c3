package converters

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/graphquest/core"
)

// ErrUnsupportedDocument is returned for directed or multigraph documents.
var ErrUnsupportedDocument = errors.New("converters: unsupported node-link document")

// NodeLinkNode is a positioned vertex in a node-link document.
type NodeLinkNode struct {
	ID string `json:"id"`
	X  int    `json:"x"`
	Y  int    `json:"y"`
}

// NodeLinkLink is an undirected edge in a node-link document.
type NodeLinkLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// NodeLinkGraph is the node-link document of a generated graph.
type NodeLinkGraph struct {
	Directed   bool           `json:"directed"`
	Multigraph bool           `json:"multigraph"`
	Nodes      []NodeLinkNode `json:"nodes"`
	Links      []NodeLinkLink `json:"links"`
}

// NodeLink builds the node-link document of g. Nodes follow sorted vertex
// order and links follow edge creation order.
func NodeLink(g *core.Graph) NodeLinkGraph {
	doc := NodeLinkGraph{
		Nodes: make([]NodeLinkNode, 0, g.VertexCount()),
		Links: make([]NodeLinkLink, 0, g.EdgeCount()),
	}
	for _, vid := range g.Vertices() {
		p, err := g.Position(vid)
		if err != nil {
			continue
		}
		doc.Nodes = append(doc.Nodes, NodeLinkNode{ID: vid, X: p.X, Y: p.Y})
	}
	for _, e := range g.Edges() {
		doc.Links = append(doc.Links, NodeLinkLink{Source: e.From, Target: e.To})
	}

	return doc
}

// MarshalNodeLink encodes g as node-link JSON, indented when pretty is set.
func MarshalNodeLink(g *core.Graph, pretty bool) ([]byte, error) {
	doc := NodeLink(g)
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}

	return json.Marshal(doc)
}

// ParseNodeLink decodes a node-link document into a new core.Graph.
// Directed or multigraph documents are rejected.
func ParseNodeLink(data []byte) (*core.Graph, error) {
	var doc NodeLinkGraph
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("ParseNodeLink: %w", err)
	}
	if doc.Directed || doc.Multigraph {
		return nil, fmt.Errorf("ParseNodeLink: directed=%t multigraph=%t: %w",
			doc.Directed, doc.Multigraph, ErrUnsupportedDocument)
	}

	g := core.NewGraph()
	for _, n := range doc.Nodes {
		if err := g.AddVertex(n.ID, n.X, n.Y); err != nil {
			return nil, fmt.Errorf("ParseNodeLink: node %q: %w", n.ID, err)
		}
	}
	for _, l := range doc.Links {
		if _, err := g.AddEdge(l.Source, l.Target); err != nil {
			return nil, fmt.Errorf("ParseNodeLink: link %s-%s: %w", l.Source, l.Target, err)
		}
	}

	return g, nil
}
