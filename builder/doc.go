// Package builder generates random planar embedded graphs: vertices carry
// integer coordinates, straight-line edges never cross, and no two edges
// sharing a vertex meet at a small angle.
//
// Pipeline (data flows strictly forward):
//
//  1. SamplePoints draws n points in [0,W]×[0,H] with pairwise spacing
//     ≥ sqrt(W²+H²)/n (rejection sampling over an R-tree).
//  2. Candidates enumerates every pair, shortest first.
//  3. The assembler walks the candidates once and keeps an edge iff it
//     keeps the drawing planar and makes an angle greater than the tolerance
//     (15° by default) with every edge already at either endpoint.
//  4. The walk stops once all n points are vertices, more than a sparseness
//     fraction of candidates has been considered and, if requested, the
//     graph is connected.
//
// The package offers the following key components:
//
//   - Entry points:
//     – Generate, GenerateDefault: return a Result (graph, points, stats).
//     – RandomPlanar:      the same algorithm as a Constructor for BuildGraph.
//     – SamplePoints, Candidates: the first two stages on their own.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed/WithRand, WithRegion, WithAngleTolerance, WithMaxAttempts,
//       WithSpacingRelax, WithStrict, WithLogger, WithIDScheme.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…), the point index.
//     – LetterIDFn (A..Z, AA, …) and PrefixIDFn(prefix) ("p0","p1",…).
//     – Any IDFn is resolved for all n points before sampling; a scheme that
//       panics or repeats a name fails the run with ErrConstructFailed.
//
// Guarantees:
//
//   - Determinism: the RNG stream fully determines the output.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidSparseness, …)
//     wrapped with method context.
//   - Bounded sampling: a run of maxAttempts rejections either relaxes the
//     spacing or fails with ErrSamplingExhausted; it never loops forever.
package builder
