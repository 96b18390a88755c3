// Package spatial wraps R-trees (github.com/dhconnelly/rtreego) behind two
// small indexes used by the planar generator:
//
//   - PointIndex answers "is any accepted point closer than r to p?" for the
//     point sampler's spacing rule.
//   - SegmentIndex answers "does this segment intersect any accepted one
//     that shares no endpoint with it?" for the planarity guard.
//
// Both indexes use the tree only as a broad phase: boxes that overlap are
// confirmed with exact geom predicates, so answers are identical to an
// exhaustive scan over everything inserted.
package spatial

// R-tree branching bounds; small nodes suit the few hundred entries a
// generated graph holds.
const (
	minBranch = 3
	maxBranch = 8
)

// pad inflates every box so degenerate (zero-width) segments and points
// still have a positive extent, which rtreego requires.
const pad = 0.5
