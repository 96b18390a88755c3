// SPDX-License-Identifier: MIT
// Package: graphquest/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generation itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.
//
// AI-Hints:
//   • Prefer WithSeed for reproducible graphs in tests and golden files.
//   • WithSpacingRelax trades the spacing guarantee for termination on
//     crowded regions; the threshold actually used is reported on PointSet.
//   • WithStrict turns an unmet stopping condition into ErrTargetUnreachable.

package builder

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator: point index -> string.
// The function must be injective over [0,n). Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for point sampling.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRegion sets the coordinate region to [0,w]×[0,h].
// Panics if either side is smaller than 1.
func WithRegion(w, h int) BuilderOption {
	if w < 1 || h < 1 {
		panic(fmt.Sprintf("builder: WithRegion(%d,%d): sides must be ≥ 1", w, h))
	}
	return func(c *builderConfig) {
		c.width, c.height = w, h
	}
}

// WithAngleTolerance sets the angle (radians) at or below which two edges
// sharing a vertex are rejected. Panics unless 0 ≤ rad < π.
func WithAngleTolerance(rad float64) BuilderOption {
	if math.IsNaN(rad) || rad < 0 || rad >= math.Pi {
		panic(fmt.Sprintf("builder: WithAngleTolerance(%g): must be in [0,π)", rad))
	}
	return func(c *builderConfig) {
		c.angleTol = rad
	}
}

// WithMaxAttempts sets how many consecutive rejected draws the sampler
// tolerates before applying its exhaustion policy. Panics if k < 1.
func WithMaxAttempts(k int) BuilderOption {
	if k < 1 {
		panic(fmt.Sprintf("builder: WithMaxAttempts(%d): must be ≥ 1", k))
	}
	return func(c *builderConfig) {
		c.maxAttempts = k
	}
}

// WithSpacingRelax makes the sampler shrink its spacing threshold by factor
// whenever it exhausts its attempts, down to MinSpacing, instead of failing
// immediately. Panics unless 0 < factor < 1.
func WithSpacingRelax(factor float64) BuilderOption {
	if !(factor > 0 && factor < 1) {
		panic(fmt.Sprintf("builder: WithSpacingRelax(%g): must be in (0,1)", factor))
	}
	return func(c *builderConfig) {
		c.relax = factor
	}
}

// WithStrict makes generation fail with ErrTargetUnreachable when the
// candidate list runs out before the stopping condition holds.
func WithStrict() BuilderOption {
	return func(c *builderConfig) {
		c.strict = true
	}
}

// WithLogger routes the builder's debug records to l. At logging.LevelTrace
// every candidate's guard verdict is logged as well. Panics on nil.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}
