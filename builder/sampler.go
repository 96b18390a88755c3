package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphquest/geom"
	"github.com/katalvlaran/graphquest/spatial"
)

// PointSet is the ordered output of the sampler. A point's index in Points
// is its identifier throughout generation.
type PointSet struct {
	Points []geom.Point
	// Spacing is the threshold every pair of Points respects. It equals
	// Diagonal(W,H)/n unless the sampler had to relax it.
	Spacing float64
	// Relaxations counts how many times Spacing was shrunk.
	Relaxations int
}

// Len returns the number of points.
func (ps PointSet) Len() int { return len(ps.Points) }

// SamplePoints draws n points with integer coordinates in the configured
// region such that every two accepted points are at least Spacing apart.
//
// Each draw takes x first, then y. A draw closer than the threshold to an
// accepted point is discarded. n = 0 returns an empty set without touching
// the RNG.
//
// Errors: ErrTooFewVertices (n < 0), ErrNeedRandSource,
// ErrSamplingExhausted (see WithMaxAttempts, WithSpacingRelax).
func SamplePoints(n int, opts ...BuilderOption) (PointSet, error) {
	return samplePoints(n, newBuilderConfig(opts...))
}

// samplePoints is SamplePoints over a resolved config.
//
// Implementation:
//   - Accepted points live in a spatial.PointIndex, so each draw costs
//     O(log n + k) instead of a scan over all accepted points.
//   - misses counts consecutive rejections; an acceptance resets it.
//   - On exhaustion, relax > 0 shrinks the threshold (never below
//     MinSpacing) and resets misses; otherwise sampling fails.
//
// Complexity: O(D·log n) for D draws; D is bounded by maxAttempts per
// accepted point and relaxation step.
func samplePoints(n int, cfg builderConfig) (PointSet, error) {
	if n < 0 {
		return PointSet{}, fmt.Errorf("%s: n=%d < 0: %w", MethodSamplePoints, n, ErrTooFewVertices)
	}
	if n == 0 {
		return PointSet{Points: []geom.Point{}}, nil
	}
	if cfg.rng == nil {
		return PointSet{}, fmt.Errorf("%s: %w", MethodSamplePoints, ErrNeedRandSource)
	}

	ps := PointSet{
		Points:  make([]geom.Point, 0, n),
		Spacing: geom.Diagonal(cfg.width, cfg.height) / float64(n),
	}
	cfg.logger.Debug("sampling points",
		"n", n, "width", cfg.width, "height", cfg.height, "spacing", ps.Spacing)

	idx := spatial.NewPointIndex()
	misses := 0
	for len(ps.Points) < n {
		x := cfg.rng.Intn(cfg.width + 1)
		y := cfg.rng.Intn(cfg.height + 1)
		p := geom.Pt(x, y)

		if !idx.AnyCloser(p, ps.Spacing) {
			idx.Insert(p)
			ps.Points = append(ps.Points, p)
			misses = 0
			continue
		}

		misses++
		if misses < cfg.maxAttempts {
			continue
		}
		if cfg.relax == 0 || ps.Spacing <= MinSpacing {
			return PointSet{}, fmt.Errorf("%s: %d of %d points placed, %d consecutive rejections at spacing %.4f: %w",
				MethodSamplePoints, len(ps.Points), n, misses, ps.Spacing, ErrSamplingExhausted)
		}
		ps.Spacing = math.Max(ps.Spacing*cfg.relax, MinSpacing)
		ps.Relaxations++
		misses = 0
		cfg.logger.Debug("relaxed spacing",
			"placed", len(ps.Points), "spacing", ps.Spacing, "relaxations", ps.Relaxations)
	}

	cfg.logger.Debug("sampled points", "n", n, "spacing", ps.Spacing)

	return ps, nil
}
