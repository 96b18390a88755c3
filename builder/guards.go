package builder

import (
	"fmt"

	"github.com/katalvlaran/graphquest/core"
	"github.com/katalvlaran/graphquest/geom"
	"github.com/katalvlaran/graphquest/spatial"
)

// assembler owns the in-progress graph together with the lookup structures
// the two guards consult. It is used by exactly one goroutine.
type assembler struct {
	g    *core.Graph
	ps   PointSet
	ids  []string // ids[i] is the vertex ID of point i
	segs *spatial.SegmentIndex
	tol  float64
}

func newAssembler(g *core.Graph, ps PointSet, ids []string, cfg builderConfig) *assembler {
	return &assembler{
		g:    g,
		ps:   ps,
		ids:  ids,
		segs: spatial.NewSegmentIndex(),
		tol:  cfg.angleTol,
	}
}

// keepsPlanarity reports whether c's segment avoids every accepted edge it
// shares no endpoint with. Any contact counts: a proper crossing, touching
// at an interior point, or collinear overlap.
func (a *assembler) keepsPlanarity(c Candidate) bool {
	return !a.segs.Crosses(spatial.Edge{U: c.U, V: c.V, Seg: c.segment(a.ps)})
}

// largeAngles reports whether c makes an angle greater than the tolerance
// with every accepted edge at both of its endpoints.
func (a *assembler) largeAngles(c Candidate) (bool, error) {
	ok, err := a.largeAngle(c.U, c.V)
	if err != nil || !ok {
		return false, err
	}

	return a.largeAngle(c.V, c.U)
}

// largeAngle checks the prospective edge v→u against every edge already
// incident to v. A point that is not yet a vertex passes trivially.
func (a *assembler) largeAngle(v, u int) (bool, error) {
	vid := a.ids[v]
	if !a.g.HasVertex(vid) {
		return true, nil
	}
	nbrs, err := a.g.NeighborIDs(vid)
	if err != nil {
		return false, err
	}

	pv, pu := a.ps.Points[v], a.ps.Points[u]
	for _, wid := range nbrs {
		pw, err := a.g.Position(wid)
		if err != nil {
			return false, err
		}
		if geom.Angle(pv, pw, pu) <= a.tol {
			return false, nil
		}
	}

	return true, nil
}

// accept places c's endpoints (idempotent for existing vertices), adds the
// edge and indexes its segment.
func (a *assembler) accept(c Candidate) error {
	for _, i := range [2]int{c.U, c.V} {
		p := a.ps.Points[i]
		if err := a.g.AddVertex(a.ids[i], p.X, p.Y); err != nil {
			return fmt.Errorf("AddVertex(%s): %w", a.ids[i], err)
		}
	}
	if _, err := a.g.AddEdge(a.ids[c.U], a.ids[c.V]); err != nil {
		return fmt.Errorf("AddEdge(%s,%s): %w", a.ids[c.U], a.ids[c.V], err)
	}
	a.segs.Insert(spatial.Edge{U: c.U, V: c.V, Seg: c.segment(a.ps)})

	return nil
}
