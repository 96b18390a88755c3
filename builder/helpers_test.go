package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphquest/builder"
	"github.com/katalvlaran/graphquest/core"
	"github.com/katalvlaran/graphquest/geom"
)

// lcgSource is a 64-bit linear congruential rand.Source. Its stream is
// fixed by definition, so golden outputs do not depend on the runtime's
// own generator.
type lcgSource struct{ state uint64 }

func (s *lcgSource) Seed(seed int64) { s.state = uint64(seed) }

func (s *lcgSource) Int63() int64 {
	s.state = s.state*6364136223846793005 + 1442695040888963407
	return int64(s.state >> 1)
}

// withLCG seeds the builder with an lcgSource.
func withLCG(seed int64) builder.BuilderOption {
	return builder.WithRand(rand.New(&lcgSource{state: uint64(seed)}))
}

// edgePairs lists edges in creation order as [from, to] pairs.
func edgePairs(g *core.Graph) [][2]string {
	var out [][2]string
	for _, e := range g.Edges() {
		out = append(out, [2]string{e.From, e.To})
	}

	return out
}

// requirePlanar checks every pair of edges without a shared endpoint.
func requirePlanar(t *testing.T, g *core.Graph) {
	t.Helper()
	edges := g.Edges()
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			a, b := edges[i], edges[j]
			if a.From == b.From || a.From == b.To || a.To == b.From || a.To == b.To {
				continue
			}
			sa, err := g.Segment(a.ID)
			require.NoError(t, err)
			sb, err := g.Segment(b.ID)
			require.NoError(t, err)
			require.Falsef(t, geom.SegmentsIntersect(sa, sb), "%s %v crosses %s %v", a.ID, sa, b.ID, sb)
		}
	}
}

// requireLargeAngles checks every pair of edges meeting at a vertex.
func requireLargeAngles(t *testing.T, g *core.Graph, tol float64) {
	t.Helper()
	for _, v := range g.Vertices() {
		pv, err := g.Position(v)
		require.NoError(t, err)
		nbrs, err := g.NeighborIDs(v)
		require.NoError(t, err)
		for i := 0; i < len(nbrs); i++ {
			for j := i + 1; j < len(nbrs); j++ {
				pw, _ := g.Position(nbrs[i])
				pu, _ := g.Position(nbrs[j])
				require.Greaterf(t, geom.Angle(pv, pw, pu), tol, "angle at %s between %s and %s", v, nbrs[i], nbrs[j])
			}
		}
	}
}

// requireSpaced checks the pairwise spacing invariant of a PointSet.
func requireSpaced(t *testing.T, ps builder.PointSet) {
	t.Helper()
	for i := 0; i < ps.Len(); i++ {
		for j := i + 1; j < ps.Len(); j++ {
			require.GreaterOrEqualf(t, geom.Dist(ps.Points[i], ps.Points[j]), ps.Spacing,
				"points %d %v and %d %v too close", i, ps.Points[i], j, ps.Points[j])
		}
	}
}
