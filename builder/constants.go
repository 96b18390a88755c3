package builder

import "github.com/katalvlaran/graphquest/geom"

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the operation name for context.
//-----------------------------------------------------------------------------

const (
	// MethodSamplePoints is the canonical name for the point sampler.
	MethodSamplePoints = "SamplePoints"
	// MethodRandomPlanar is the canonical name for the RandomPlanar constructor.
	MethodRandomPlanar = "RandomPlanar"
	// MethodGenerate is the canonical name for the Generate entry point.
	MethodGenerate = "Generate"
	// MethodBuildGraph is the canonical name for the BuildGraph orchestrator.
	MethodBuildGraph = "BuildGraph"
)

//-----------------------------------------------------------------------------
// Coordinate Region
//-----------------------------------------------------------------------------

// DefaultWidth is the width of the coordinate region; x ∈ [0, DefaultWidth].
const DefaultWidth = 100

// DefaultHeight is the height of the coordinate region; y ∈ [0, DefaultHeight].
const DefaultHeight = 100

//-----------------------------------------------------------------------------
// Generation Defaults
//-----------------------------------------------------------------------------

// DefaultConnected is the connectivity requirement used by GenerateDefault.
const DefaultConnected = true

// DefaultSparseness is the sparseness used by GenerateDefault.
const DefaultSparseness = 0.3

// MinSparseness and MaxSparseness bound the sparseness parameter, inclusive.
const (
	MinSparseness = 0.0
	MaxSparseness = 1.0
)

// DefaultAngleTolerance is the largest angle two incident edges may form
// and still be rejected (15°).
const DefaultAngleTolerance = geom.DefaultAngleTolerance

// DefaultMaxAttempts is the number of consecutive rejected draws after which
// the sampler applies its exhaustion policy.
const DefaultMaxAttempts = 10000

// MinSpacing is the floor for a relaxed spacing threshold. Coordinates are
// integers, so any two distinct points are at least one unit apart.
const MinSpacing = 1.0

// noStop marks Stats.StopIndex when the candidate list was exhausted.
const noStop = -1
