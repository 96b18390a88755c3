// Package graphquest generates random planar embedded graphs: graphs whose
// vertices sit at integer coordinates in a rectangle and whose straight-line
// edges never cross and never meet at a small angle.
//
// What is graphquest?
//
//	A small, deterministic, thread-safe toolkit that brings together:
//		• Geometry: exact orientation and segment-intersection predicates
//		• Spatial indexing: R-trees over sampled points and accepted edges
//		• Core primitives: an embedded, undirected, simple graph under RW locks
//		• Generation: spaced point sampling + greedy shortest-first assembly
//		• Traversal: BFS, connected components, connectivity
//		• Export: gonum graphs and node-link JSON
//
// Layout:
//
//	geom/       - points, segments, angles (gonum spatial/r2)
//	spatial/    - point and segment R-trees (rtreego)
//	core/       - Graph, Vertex, Edge with positions
//	builder/    - SamplePoints, Candidates, RandomPlanar, Generate
//	bfs/        - BFS, Components, IsConnected
//	converters/ - ToGonum/FromGonum, NodeLink JSON
//	cmd/planargen - command-line generator
//
// Quick example:
//
//	res, err := builder.Generate(8, true, 0.3, builder.WithSeed(7))
//	if err != nil { ... }
//	data, _ := converters.MarshalNodeLink(res.Graph, true)
//
// The same seed always yields the same graph.
package graphquest
