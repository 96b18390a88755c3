// SPDX-License-Identifier: MIT
// Package: graphquest/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` and a method prefix:
//       fmt.Errorf("%s: n=%d: %w", MethodRandomPlanar, n, ErrTooFewVertices)
//   • Generation never panics at runtime; validation panics are confined to
//     option constructors (WithX...).
//
// Priority when several validations fail:
//   ErrTooFewVertices → ErrInvalidSparseness → ErrNeedRandSource →
//   ErrGraphNotEmpty → ErrConstructFailed (ID scheme) → ErrSamplingExhausted →
//   ErrTargetUnreachable.

package builder

import "errors"

// ErrTooFewVertices indicates a negative vertex count.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidSparseness indicates a sparseness outside [0,1] (NaN included).
var ErrInvalidSparseness = errors.New("builder: sparseness out of range")

// ErrNeedRandSource indicates that sampling was requested without a random
// source (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrSamplingExhausted indicates that the point sampler hit its attempt cap
// and the exhaustion policy could not relax the spacing any further.
// Usage: if errors.Is(err, ErrSamplingExhausted) { /* enlarge the region or lower n */ }.
var ErrSamplingExhausted = errors.New("builder: point sampling exhausted")

// ErrTargetUnreachable indicates that strict mode was requested and the
// candidate list ran out before the stopping condition held.
var ErrTargetUnreachable = errors.New("builder: target unreachable")

// ErrGraphNotEmpty indicates RandomPlanar was applied to a graph that
// already has vertices.
var ErrGraphNotEmpty = errors.New("builder: graph not empty")

// ErrConstructFailed indicates a programmer error during composition
// (nil constructor, nil graph, an ID scheme that panics or repeats a name)
// or an unexpected core failure.
var ErrConstructFailed = errors.New("builder: construction failed")
