// SPDX-License-Identifier: MIT
// Package: graphquest/builder
//
// impl_random_planar.go - implementation of RandomPlanar(n, connected, s).
//
// Canonical model:
//   - Sample n spaced points (sampler.go), enumerate all pairs shortest
//     first (candidates.go), then walk the list once.
//   - A candidate is accepted iff it keeps the drawing planar and makes no
//     small angle at either endpoint (guards.go). Rejected candidates are
//     never revisited.
//   - After every step i (accepted or not) the walk stops iff
//       |V| == n  AND  i > s·|C|  AND  (!connected OR graph is connected).
//   - Vertices appear only through accepted edges, so the result is already
//     pruned to the points actually used; n = 1 yields an empty graph.
//
// Contract:
//   - n ≥ 0 (else ErrTooFewVertices); 0 ≤ s ≤ 1 (else ErrInvalidSparseness).
//   - cfg.rng must be non-nil when n > 0 (else ErrNeedRandSource).
//   - Target graph must be empty (else ErrGraphNotEmpty).
//   - cfg.idFn must name n points distinctly without panicking (else
//     ErrConstructFailed); names are resolved before any sampling.
//   - Exhausting the list is not a failure by itself: the run is satisfied
//     iff all n points became vertices and, when required, the graph is
//     connected. Otherwise the result is best-effort (Satisfied=false), or
//     ErrTargetUnreachable when cfg.strict.
//
// Complexity:
//   - Time: O(n² log n) for enumeration, plus per candidate O(log E + k)
//     for the planarity query and O(deg) for the angle check; connectivity
//     is recomputed in O(V+E) only after an accepted edge.
//   - Space: O(n²) for the candidate list.
//
// Determinism:
//   - The RNG stream fixes the points; everything after sampling is a pure
//     function of the PointSet and parameters.

package builder

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphquest/bfs"
	"github.com/katalvlaran/graphquest/core"
	"github.com/katalvlaran/graphquest/internal/logging"
)

// Stats summarizes one run of the assembler.
type Stats struct {
	Candidates       int     // |C|
	Considered       int     // candidates examined before stopping
	Accepted         int     // edges added
	RejectedCrossing int     // rejected by the planarity guard
	RejectedAngle    int     // rejected by the angle guard
	StopIndex        int     // index at which the walk stopped, -1 if it never did
	Spacing          float64 // spacing threshold the sampler ended with
	Relaxations      int     // spacing relaxations performed by the sampler
}

// RandomPlanar returns a Constructor that samples points and assembles a
// random planar embedded graph into an empty target graph.
func RandomPlanar(n int, connected bool, sparseness float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		_, err := randomPlanar(g, n, connected, sparseness, cfg)
		return err
	}
}

// randomPlanar validates, names the points, samples and assembles. The returned Result's Graph
// is g.
func randomPlanar(g *core.Graph, n int, connected bool, sparseness float64, cfg builderConfig) (*Result, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: nil graph: %w", MethodRandomPlanar, ErrConstructFailed)
	}
	if err := validateParams(MethodRandomPlanar, n, sparseness, cfg); err != nil {
		return nil, err
	}
	if g.VertexCount() > 0 {
		return nil, fmt.Errorf("%s: target has %d vertices: %w", MethodRandomPlanar, g.VertexCount(), ErrGraphNotEmpty)
	}

	ids, err := vertexIDs(n, cfg.idFn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodRandomPlanar, err)
	}

	ps, err := samplePoints(n, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodRandomPlanar, err)
	}

	res, err := assemble(g, ps, ids, n, connected, sparseness, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodRandomPlanar, err)
	}
	if !res.Satisfied {
		if cfg.strict {
			return nil, fmt.Errorf("%s: n=%d connected=%t sparseness=%g: placed %d vertices: %w",
				MethodRandomPlanar, n, connected, sparseness, g.VertexCount(), ErrTargetUnreachable)
		}
		cfg.logger.Debug("stopping condition unmet, returning best effort",
			"n", n, "vertices", g.VertexCount(), "edges", g.EdgeCount())
	}

	return res, nil
}

// assemble walks the sorted candidates of ps and grows g; ids[i] names
// point i.
//
// Implementation:
//   - Stage 1: enumerate candidates.
//   - Stage 2: for each candidate run planarity then angle guard; accept
//     when both pass.
//   - Stage 3: evaluate the stopping condition. Connectivity only changes
//     when an edge is accepted, so it is cached between acceptances.
func assemble(g *core.Graph, ps PointSet, ids []string, n int, connected bool, sparseness float64, cfg builderConfig) (*Result, error) {
	cands := Candidates(ps)
	a := newAssembler(g, ps, ids, cfg)

	st := Stats{
		Candidates:  len(cands),
		StopIndex:   noStop,
		Spacing:     ps.Spacing,
		Relaxations: ps.Relaxations,
	}
	threshold := sparseness * float64(len(cands))
	ctx := context.Background()
	trace := cfg.logger.Enabled(ctx, logging.LevelTrace)

	var (
		isConn     bool
		connStale  = true
		satisfied  = n == 0
		planar, ok bool
		err        error
	)
	for i, c := range cands {
		st.Considered++

		planar = a.keepsPlanarity(c)
		ok = false
		if !planar {
			st.RejectedCrossing++
		} else if ok, err = a.largeAngles(c); err != nil {
			return nil, err
		} else if !ok {
			st.RejectedAngle++
		}

		if ok {
			if err = a.accept(c); err != nil {
				return nil, err
			}
			st.Accepted++
			connStale = true
		}

		if trace {
			cfg.logger.Log(ctx, logging.LevelTrace, "candidate",
				"index", i, "u", a.ids[c.U], "v", a.ids[c.V], "length", c.Length,
				"verdict", verdict(planar, ok))
		}

		if g.VertexCount() != n || float64(i) <= threshold {
			continue
		}
		if connected && connStale {
			if isConn, err = bfs.IsConnected(g); err != nil {
				return nil, err
			}
			connStale = false
		}
		if !connected || isConn {
			st.StopIndex = i
			satisfied = true
			break
		}
	}

	// Once every candidate has been considered the sparseness clause can no
	// longer be the missing piece; only the vertex and connectivity targets can.
	if !satisfied && st.StopIndex == noStop && g.VertexCount() == n {
		if connected && connStale {
			if isConn, err = bfs.IsConnected(g); err != nil {
				return nil, err
			}
		}
		satisfied = !connected || isConn
	}

	cfg.logger.Debug("assembled planar graph",
		"vertices", g.VertexCount(), "edges", g.EdgeCount(),
		"candidates", st.Candidates, "considered", st.Considered,
		"rejected_crossing", st.RejectedCrossing, "rejected_angle", st.RejectedAngle,
		"stop_index", st.StopIndex, "satisfied", satisfied)

	return &Result{Graph: g, Points: ps, Satisfied: satisfied, Stats: st}, nil
}

// verdict names the guard outcome of one candidate for trace records.
func verdict(planar, ok bool) string {
	switch {
	case !planar:
		return "crossing"
	case !ok:
		return "angle"
	default:
		return "accepted"
	}
}
