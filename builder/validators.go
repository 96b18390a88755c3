package builder

import (
	"fmt"
	"math"
)

// validateParams enforces the preconditions shared by RandomPlanar and
// Generate, in error-priority order. RNG presence is only checked when
// sampling will actually draw (n > 0).
//
// Complexity: O(1) time and space.
func validateParams(method string, n int, sparseness float64, cfg builderConfig) error {
	if n < 0 {
		return fmt.Errorf("%s: n=%d < 0: %w", method, n, ErrTooFewVertices)
	}
	if math.IsNaN(sparseness) || sparseness < MinSparseness || sparseness > MaxSparseness {
		return fmt.Errorf("%s: sparseness=%g not in [%.1f,%.1f]: %w",
			method, sparseness, MinSparseness, MaxSparseness, ErrInvalidSparseness)
	}
	if n > 0 && cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}
