// Package converters provides adapters between core.Graph and the formats
// its consumers read:
//   - gonum/graph: ToGonum / FromGonum over simple.UndirectedGraph, with
//     nodes that keep their vertex ID and position, so gonum's traversal
//     and topology packages can run on a generated graph.
//   - node-link JSON: NodeLink / MarshalNodeLink / ParseNodeLink, the
//     {nodes:[{id,x,y}], links:[{source,target}]} document a UI layer draws
//     from.
//
// All exports are deterministic: nodes are emitted in sorted vertex order
// and links in edge creation order.
package converters
