// SPDX-License-Identifier: MIT
// Package: graphquest/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • idFn        = DefaultIDFn        ("0","1","2",...)
//   • rng         = nil                (sampling fails with ErrNeedRandSource)
//   • width×height= 100×100
//   • angleTol    = 15°
//   • maxAttempts = 10000 consecutive rejections
//   • relax       = 0                  (strict spacing: exhaustion is an error)
//   • strict      = false              (unmet stopping condition is best-effort)
//   • logger      = discard

package builder

import (
	"log/slog"
	"math/rand"
)

// builderConfig aggregates all knobs used by the sampler and assembler.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: point index -> ID.
	idFn IDFn
	// RNG for sampling; nil means "no randomness available".
	rng *rand.Rand

	// Coordinate region [0,width]×[0,height].
	width, height int
	// Incident edges at an angle ≤ angleTol are rejected.
	angleTol float64

	// Consecutive rejected draws before the exhaustion policy applies.
	maxAttempts int
	// Spacing shrink factor in (0,1); 0 disables relaxation.
	relax float64
	// Fail with ErrTargetUnreachable instead of returning best-effort output.
	strict bool

	logger *slog.Logger
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		rng:         nil,
		width:       DefaultWidth,
		height:      DefaultHeight,
		angleTol:    DefaultAngleTolerance,
		maxAttempts: DefaultMaxAttempts,
		relax:       0,
		strict:      false,
		logger:      slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
