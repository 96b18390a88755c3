package spatial_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphquest/geom"
	"github.com/katalvlaran/graphquest/spatial"
)

func TestPointIndexAnyCloser(t *testing.T) {
	ix := spatial.NewPointIndex()
	assert.False(t, ix.AnyCloser(geom.Pt(0, 0), 10), "empty index has no neighbors")

	ix.Insert(geom.Pt(10, 10))
	ix.Insert(geom.Pt(50, 50))
	require.Equal(t, 2, ix.Len())

	assert.True(t, ix.AnyCloser(geom.Pt(12, 10), 3))
	// distance exactly r is not closer
	assert.False(t, ix.AnyCloser(geom.Pt(13, 14), 5))
	assert.True(t, ix.AnyCloser(geom.Pt(13, 14), 5.0001))
	assert.False(t, ix.AnyCloser(geom.Pt(30, 30), 20))
}

// TestPointIndexMatchesScan cross-checks the R-tree answer with a full scan.
func TestPointIndexMatchesScan(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ix := spatial.NewPointIndex()
	var pts []geom.Point
	for i := 0; i < 200; i++ {
		p := geom.Pt(rng.Intn(101), rng.Intn(101))
		ix.Insert(p)
		pts = append(pts, p)
	}
	for i := 0; i < 500; i++ {
		q := geom.Pt(rng.Intn(101), rng.Intn(101))
		r := 0.5 + rng.Float64()*8
		want := false
		for _, p := range pts {
			if geom.Dist(p, q) < r {
				want = true
				break
			}
		}
		require.Equal(t, want, ix.AnyCloser(q, r), "query %v r=%.3f", q, r)
	}
}

func TestSegmentIndexCrosses(t *testing.T) {
	ix := spatial.NewSegmentIndex()
	assert.False(t, ix.Crosses(spatial.Edge{U: 0, V: 1, Seg: geom.Seg(geom.Pt(0, 0), geom.Pt(1, 1))}))

	ix.Insert(spatial.Edge{U: 0, V: 1, Seg: geom.Seg(geom.Pt(0, 0), geom.Pt(10, 10))})
	require.Equal(t, 1, ix.Len())

	// crossing, no shared endpoint
	assert.True(t, ix.Crosses(spatial.Edge{U: 2, V: 3, Seg: geom.Seg(geom.Pt(0, 10), geom.Pt(10, 0))}))
	// sharing endpoint 1 is exempt even though the segments touch
	assert.False(t, ix.Crosses(spatial.Edge{U: 1, V: 4, Seg: geom.Seg(geom.Pt(10, 10), geom.Pt(20, 0))}))
	// touching at an interior point counts
	assert.True(t, ix.Crosses(spatial.Edge{U: 5, V: 6, Seg: geom.Seg(geom.Pt(5, 5), geom.Pt(9, 0))}))
	// horizontal segment far away
	assert.False(t, ix.Crosses(spatial.Edge{U: 7, V: 8, Seg: geom.Seg(geom.Pt(20, 30), geom.Pt(40, 30))}))
}

// TestSegmentIndexMatchesScan cross-checks the R-tree with an exhaustive
// pairwise scan on random segments.
func TestSegmentIndexMatchesScan(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	ix := spatial.NewSegmentIndex()
	var edges []spatial.Edge
	for i := 0; i < 60; i++ {
		e := spatial.Edge{U: 2 * i, V: 2*i + 1, Seg: geom.Seg(
			geom.Pt(rng.Intn(101), rng.Intn(101)),
			geom.Pt(rng.Intn(101), rng.Intn(101)),
		)}
		ix.Insert(e)
		edges = append(edges, e)
	}
	for i := 0; i < 300; i++ {
		q := spatial.Edge{U: 1000 + i, V: 2000 + i, Seg: geom.Seg(
			geom.Pt(rng.Intn(101), rng.Intn(101)),
			geom.Pt(rng.Intn(101), rng.Intn(101)),
		)}
		want := false
		for _, e := range edges {
			if geom.SegmentsIntersect(e.Seg, q.Seg) {
				want = true
				break
			}
		}
		require.Equal(t, want, ix.Crosses(q), "query %v", q.Seg)
	}
}
