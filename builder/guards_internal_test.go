package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphquest/core"
	"github.com/katalvlaran/graphquest/geom"
)

// fixture points:
//
//	3 (0,10)      2 (10,10)
//
//	0 (0,0)       1 (10,0)      4 (20,1)
func guardFixture(t *testing.T) *assembler {
	t.Helper()
	ps := PointSet{Points: []geom.Point{
		geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10), geom.Pt(20, 1),
	}}

	ids, err := vertexIDs(ps.Len(), DefaultIDFn)
	require.NoError(t, err)

	return newAssembler(core.NewGraph(), ps, ids, newBuilderConfig())
}

func TestKeepsPlanarity(t *testing.T) {
	a := guardFixture(t)
	require.NoError(t, a.accept(Candidate{U: 0, V: 2}))

	assert.False(t, a.keepsPlanarity(Candidate{U: 1, V: 3}), "diagonals cross")
	assert.True(t, a.keepsPlanarity(Candidate{U: 0, V: 1}), "shared endpoint is ignored")
	assert.True(t, a.keepsPlanarity(Candidate{U: 1, V: 4}))
}

func TestLargeAngles(t *testing.T) {
	a := guardFixture(t)

	ok, err := a.largeAngles(Candidate{U: 0, V: 1})
	require.NoError(t, err)
	assert.True(t, ok, "fresh endpoints pass")

	require.NoError(t, a.accept(Candidate{U: 0, V: 1}))

	// At 1: 1→0 points west, 1→4 points east-north-east; wide angle.
	ok, err = a.largeAngles(Candidate{U: 1, V: 4})
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, a.accept(Candidate{U: 1, V: 4}))

	// At 0: 0→1 is east, 0→4 is ~2.9° above east.
	ok, err = a.largeAngles(Candidate{U: 0, V: 4})
	require.NoError(t, err)
	assert.False(t, ok)

	// At 0: 0→2 is 45° from 0→1.
	ok, err = a.largeAngles(Candidate{U: 0, V: 2})
	require.NoError(t, err)
	assert.True(t, ok)

	a.tol = geom.Radians(50)
	ok, err = a.largeAngles(Candidate{U: 0, V: 2})
	require.NoError(t, err)
	assert.False(t, ok, "45° is within a 50° tolerance")
}

func TestAcceptAddsPlacedVertices(t *testing.T) {
	a := guardFixture(t)
	require.NoError(t, a.accept(Candidate{U: 3, V: 2}))

	p, err := a.g.Position("3")
	require.NoError(t, err)
	assert.Equal(t, geom.Pt(0, 10), p)
	assert.Equal(t, 1, a.segs.Len())
	assert.False(t, a.g.HasVertex("0"))
}
