package aesthetic

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/circuitcode/gridmodel"
)

const (
	// BaseArcProbability is the acceptance probability of a corner arc in a
	// quadrant at or above average density.
	BaseArcProbability = 0.30
	// MaxArcProbability is reached in an empty quadrant.
	MaxArcProbability = 0.60
	// FillPercent bounds Pass 2 at this share of all cells.
	FillPercent = 5

	// fillSalt separates cell hashes from node hashes that share coordinates.
	fillSalt uint64 = 0x5f1e
)

// FillQuota is the maximum number of Pass 2 diagonals per panel.
const FillQuota = gridmodel.CellCount * FillPercent / 100

// Report lists the diagonals added by each pass, in acceptance order.
type Report struct {
	Arcs  []gridmodel.Diagonal
	Fills []gridmodel.Diagonal
}

// Solve returns a copy of in decorated for the given variant. in is not modified.
func Solve(in gridmodel.Grid, dataSeed uint64, variant int) (gridmodel.Grid, Report) {
	g := in.Clone()
	var rep Report
	rep.Arcs = cornerArcs(&g, dataSeed, variant)
	rep.Fills = fillDiagonals(&g, dataSeed, variant)
	return g, rep
}

// ArcProbability returns the Pass 1 acceptance threshold for a quadrant
// holding q edges when the panel average is avg.
func ArcProbability(q int, avg float64) float64 {
	if avg <= 0 || float64(q) >= avg {
		return BaseArcProbability
	}
	deficit := (avg - float64(q)) / avg
	return BaseArcProbability + (MaxArcProbability-BaseArcProbability)*deficit
}

// cornerArcs runs Pass 1 over nodes in row-major order.
func cornerArcs(g *gridmodel.Grid, dataSeed uint64, variant int) []gridmodel.Diagonal {
	density := g.QuadrantEdges(false)
	avg := gridmodel.Mean(density)

	var arcs []gridmodel.Diagonal
	for idx := 0; idx < gridmodel.NodeCount; idx++ {
		n := gridmodel.NodeAt(idx)
		h, v, ok := bend(g, n)
		if !ok {
			continue
		}
		p := ArcProbability(density[n.Quadrant()], avg)
		if gridmodel.Unit(gridmodel.Hash(n.Row, n.Col, dataSeed, variant)) >= p {
			continue
		}
		d := diagonalBetween(h, v)
		d.Shape = gridmodel.Arc
		d.Pivot = n
		if g.AddDiagonal(d) != nil {
			continue // degree limit
		}
		arcs = append(arcs, d)
	}
	return arcs
}

// bend reports whether n has exactly one horizontal and one vertical edge,
// returning the far endpoints of each.
func bend(g *gridmodel.Grid, n gridmodel.Node) (h, v gridmodel.Node, ok bool) {
	var hs, vs []gridmodel.Node
	for _, m := range g.Neighbors(n) {
		if m.Row == n.Row {
			hs = append(hs, m)
		} else {
			vs = append(vs, m)
		}
	}
	if len(hs) != 1 || len(vs) != 1 {
		return h, v, false
	}
	return hs[0], vs[0], true
}

// diagonalBetween returns the line diagonal joining two opposite corners of a cell.
func diagonalBetween(a, b gridmodel.Node) gridmodel.Diagonal {
	cell := gridmodel.Node{Row: min(a.Row, b.Row), Col: min(a.Col, b.Col)}
	orient := gridmodel.Rising
	if (a.Row-b.Row)*(a.Col-b.Col) > 0 {
		orient = gridmodel.Falling
	}
	return gridmodel.Diagonal{Cell: cell, Orient: orient, Shape: gridmodel.Line}
}

type cellCandidate struct {
	cell    gridmodel.Node
	density int
	hash    uint64
}

// fillDiagonals runs Pass 2.
func fillDiagonals(g *gridmodel.Grid, dataSeed uint64, variant int) []gridmodel.Diagonal {
	uf := newUnionFind(gridmodel.NodeCount)
	presence := g.Presence()
	for i, ok := range presence {
		if ok {
			a, b := gridmodel.SlotAt(i).Endpoints()
			uf.union(a.Index(), b.Index())
		}
	}
	for _, d := range g.Diagonals() {
		a, b := d.Endpoints()
		uf.union(a.Index(), b.Index())
	}

	density := g.QuadrantEdges(true)
	cands := make([]cellCandidate, 0, gridmodel.CellCount)
	for r := 0; r < gridmodel.CellRows; r++ {
		for c := 0; c < gridmodel.CellCols; c++ {
			cell := gridmodel.Node{Row: r, Col: c}
			if g.HasCellDiagonal(cell) {
				continue
			}
			q := gridmodel.Diagonal{Cell: cell}.Quadrant()
			cands = append(cands, cellCandidate{
				cell:    cell,
				density: density[q],
				hash:    gridmodel.Hash(r, c, dataSeed^fillSalt, variant),
			})
		}
	}
	slices.SortFunc(cands, func(a, b cellCandidate) int {
		return cmp.Or(cmp.Compare(a.density, b.density), cmp.Compare(a.hash, b.hash))
	})

	var fills []gridmodel.Diagonal
	for _, cand := range cands {
		if len(fills) == FillQuota {
			break
		}
		first := gridmodel.Orientation(cand.hash & 1)
		for _, o := range []gridmodel.Orientation{first, 1 - first} {
			d, ok := tryFill(g, uf, cand, o)
			if ok {
				fills = append(fills, d)
				break
			}
		}
	}
	return fills
}

// tryFill evaluates one orientation of a candidate cell and adds it on success.
func tryFill(g *gridmodel.Grid, uf *unionFind, cand cellCandidate, o gridmodel.Orientation) (gridmodel.Diagonal, bool) {
	d := gridmodel.Diagonal{Cell: cand.cell, Orient: o, Shape: gridmodel.Line}
	a, b := d.Endpoints()
	if !g.CanConnect(a, b) || uf.connected(a.Index(), b.Index()) {
		return d, false
	}
	if boundaryEdges(g, cand.cell) >= 2 {
		d.Shape = gridmodel.Arc
		d.Pivot = pivot(g, d, cand.hash)
	} else if g.ShareNeighbor(a, b) {
		return d, false
	}
	if err := g.AddDiagonal(d); err != nil {
		return d, false
	}
	uf.union(a.Index(), b.Index())
	return d, true
}

// boundaryEdges counts the present orthogonal edges around cell.
func boundaryEdges(g *gridmodel.Grid, cell gridmodel.Node) int {
	r, c := cell.Row, cell.Col
	tl, tr := gridmodel.Node{Row: r, Col: c}, gridmodel.Node{Row: r, Col: c + 1}
	bl, br := gridmodel.Node{Row: r + 1, Col: c}, gridmodel.Node{Row: r + 1, Col: c + 1}
	n := 0
	for _, e := range [4][2]gridmodel.Node{{tl, tr}, {bl, br}, {tl, bl}, {tr, br}} {
		if g.HasEdge(e[0], e[1]) {
			n++
		}
	}
	return n
}

// pivot picks the arc centre: the off-diagonal corner touching more present
// boundary edges, with a hash bit breaking ties.
func pivot(g *gridmodel.Grid, d gridmodel.Diagonal, h uint64) gridmodel.Node {
	p, q := d.Corners()
	a, b := d.Endpoints()
	score := func(n gridmodel.Node) int {
		s := 0
		if g.HasEdge(n, a) {
			s++
		}
		if g.HasEdge(n, b) {
			s++
		}
		return s
	}
	sp, sq := score(p), score(q)
	switch {
	case sp > sq:
		return p
	case sq > sp:
		return q
	case h>>1&1 == 0:
		return p
	default:
		return q
	}
}
