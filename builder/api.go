// SPDX-License-Identifier: MIT
// Package: graphquest/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Generate is the direct form of RandomPlanar and also returns the sampled
//     points, the satisfied flag and run statistics.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed ⇒ identical graphs.
//
// AI-Hints:
//   - Use WithSeed(...) to freeze the point sample.
//   - GenerateDefault mirrors the classic entry point: connected, sparseness 0.3.
//   - Check Result.Satisfied, or pass WithStrict(), when the exact vertex
//     count matters.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphquest/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors and never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error
// is wrapped with the context "BuildGraph: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
		}
	}

	return g, nil
}

// Generate produces a random planar embedded graph on up to n vertices.
//
// connected requires the result to be connected before the walk may stop;
// sparseness ∈ [0,1] sets how far down the candidate list the walk must get
// (0 stops as early as possible, 1 considers every candidate).
//
// A random source (WithSeed or WithRand) is required whenever n > 0.
// All preconditions are checked before any sampling. See RandomPlanar for
// the algorithm and Result for what is returned.
func Generate(n int, connected bool, sparseness float64, opts ...BuilderOption) (*Result, error) {
	res, err := randomPlanar(core.NewGraph(), n, connected, sparseness, newBuilderConfig(opts...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}

	return res, nil
}

// GenerateDefault calls Generate with DefaultConnected and DefaultSparseness.
//
// Unlike the classic generate(n), it has no implicit global randomness: for
// n > 0 the caller must pass WithSeed or WithRand, or the call fails with
// ErrNeedRandSource. n = 0 needs no source and returns an empty graph.
func GenerateDefault(n int, opts ...BuilderOption) (*Result, error) {
	return Generate(n, DefaultConnected, DefaultSparseness, opts...)
}
