package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphquest/builder"
	"github.com/katalvlaran/graphquest/geom"
)

func TestSamplePoints_Spacing(t *testing.T) {
	for _, n := range []int{1, 2, 5, 20, 60} {
		ps, err := builder.SamplePoints(n, builder.WithSeed(int64(n)))
		require.NoError(t, err)
		require.Equal(t, n, ps.Len())
		assert.InDelta(t, geom.Diagonal(100, 100)/float64(n), ps.Spacing, 1e-12)
		assert.Zero(t, ps.Relaxations)
		for _, p := range ps.Points {
			assert.True(t, p.X >= 0 && p.X <= 100 && p.Y >= 0 && p.Y <= 100, "%v outside region", p)
		}
		requireSpaced(t, ps)
	}
}

func TestSamplePoints_Golden(t *testing.T) {
	ps, err := builder.SamplePoints(5, withLCG(42))
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{
		geom.Pt(100, 75), geom.Pt(82, 45), geom.Pt(46, 72), geom.Pt(9, 37), geom.Pt(65, 22),
	}, ps.Points)
}

func TestSamplePoints_ZeroDrawsNothing(t *testing.T) {
	ps, err := builder.SamplePoints(0)
	require.NoError(t, err)
	assert.Zero(t, ps.Len())
}

func TestSamplePoints_Errors(t *testing.T) {
	_, err := builder.SamplePoints(-1, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.SamplePoints(3)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

// A 1×1 region has four lattice points, so a fifth distinct point never fits.
func TestSamplePoints_Exhausted(t *testing.T) {
	_, err := builder.SamplePoints(5, withLCG(3), builder.WithRegion(1, 1), builder.WithMaxAttempts(50))
	assert.ErrorIs(t, err, builder.ErrSamplingExhausted)

	// The threshold is already below MinSpacing, so relaxation cannot help.
	_, err = builder.SamplePoints(5, withLCG(3), builder.WithRegion(1, 1),
		builder.WithMaxAttempts(50), builder.WithSpacingRelax(0.5))
	assert.ErrorIs(t, err, builder.ErrSamplingExhausted)

	ps, err := builder.SamplePoints(4, withLCG(3), builder.WithRegion(1, 1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []geom.Point{geom.Pt(0, 0), geom.Pt(0, 1), geom.Pt(1, 0), geom.Pt(1, 1)}, ps.Points)
}

func TestSamplePoints_Relax(t *testing.T) {
	ps, err := builder.SamplePoints(20, withLCG(1), builder.WithMaxAttempts(1), builder.WithSpacingRelax(0.5))
	require.NoError(t, err)
	require.Equal(t, 20, ps.Len())
	assert.Equal(t, 2, ps.Relaxations)
	assert.InDelta(t, geom.Diagonal(100, 100)/20/4, ps.Spacing, 1e-12)
	requireSpaced(t, ps)

	// Whatever the stream, the reported threshold follows the relax schedule.
	for seed := int64(1); seed <= 10; seed++ {
		ps, err := builder.SamplePoints(30, builder.WithSeed(seed), builder.WithMaxAttempts(2), builder.WithSpacingRelax(0.8))
		require.NoError(t, err)
		want := geom.Diagonal(100, 100) / 30
		for i := 0; i < ps.Relaxations; i++ {
			want *= 0.8
		}
		if want < builder.MinSpacing {
			want = builder.MinSpacing
		}
		assert.InDelta(t, want, ps.Spacing, 1e-9)
		requireSpaced(t, ps)
	}
}

func TestCandidates_OrderAndTies(t *testing.T) {
	ps := builder.PointSet{Points: []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1), geom.Pt(1, 1)}}
	got := builder.Candidates(ps)
	require.Len(t, got, 6)

	var pairs [][2]int
	for _, c := range got {
		pairs = append(pairs, [2]int{c.U, c.V})
	}
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {0, 3}, {1, 2}}, pairs)
	assert.InDelta(t, 1.0, got[0].Length, 1e-12)
	assert.InDelta(t, 1.4142135623730951, got[5].Length, 1e-12)

	assert.Empty(t, builder.Candidates(builder.PointSet{}))
	assert.Empty(t, builder.Candidates(builder.PointSet{Points: []geom.Point{geom.Pt(3, 3)}}))
}

func TestCandidates_CompleteAndSorted(t *testing.T) {
	ps, err := builder.SamplePoints(25, builder.WithSeed(11))
	require.NoError(t, err)
	cs := builder.Candidates(ps)
	require.Len(t, cs, 25*24/2)

	seen := make(map[[2]int]bool, len(cs))
	for i, c := range cs {
		require.Less(t, c.U, c.V)
		require.False(t, seen[[2]int{c.U, c.V}], "duplicate pair")
		seen[[2]int{c.U, c.V}] = true
		if i > 0 {
			require.LessOrEqual(t, cs[i-1].Length, c.Length)
		}
	}
}
