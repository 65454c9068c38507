package gridmodel

import (
	"fmt"
	"slices"
)

// Grid stores one panel's edges for one variant. The zero value is an empty
// grid ready for use.
type Grid struct {
	slots     [SlotCount]bool
	degree    [NodeCount]uint8
	diagonals []Diagonal
}

// New returns an empty grid.
func New() Grid { return Grid{} }

// Clone returns a deep copy of g. The diagonal list is copied, so the
// result can be mutated without affecting g.
func (g *Grid) Clone() Grid {
	out := *g
	out.diagonals = slices.Clone(g.diagonals)
	return out
}

// Has reports whether slot i is present. Out-of-range indices report false.
func (g *Grid) Has(i int) bool {
	return i >= 0 && i < SlotCount && g.slots[i]
}

// Presence returns a copy of the slot presence table in natural order.
func (g *Grid) Presence() Bits { return g.slots }

// Degree returns the current degree of n.
func (g *Grid) Degree(n Node) int { return int(g.degree[n.Index()]) }

// CanConnect reports whether one more edge between a and b keeps both
// endpoint degrees within MaxDegree.
func (g *Grid) CanConnect(a, b Node) bool {
	return g.Degree(a) < MaxDegree && g.Degree(b) < MaxDegree
}

// CanSet reports whether slot i is absent and can be set without breaking
// the degree limit.
func (g *Grid) CanSet(i int) bool {
	if i < 0 || i >= SlotCount || g.slots[i] {
		return false
	}
	a, b := SlotAt(i).Endpoints()
	return g.CanConnect(a, b)
}

// Set marks slot i present and updates endpoint degrees.
//
// Errors:
//   - ErrSlotRange if i is outside [0, SlotCount).
//   - ErrSlotOccupied if the slot is already present.
//   - ErrDegreeExceeded if an endpoint is already at MaxDegree.
func (g *Grid) Set(i int) error {
	if i < 0 || i >= SlotCount {
		return fmt.Errorf("gridmodel: Set(%d): %w", i, ErrSlotRange)
	}
	if g.slots[i] {
		return fmt.Errorf("gridmodel: Set(%s): %w", SlotAt(i), ErrSlotOccupied)
	}
	a, b := SlotAt(i).Endpoints()
	if !g.CanConnect(a, b) {
		return fmt.Errorf("gridmodel: Set(%s): %w", SlotAt(i), ErrDegreeExceeded)
	}
	g.slots[i] = true
	g.degree[a.Index()]++
	g.degree[b.Index()]++
	return nil
}

// AddDiagonal appends d and updates endpoint degrees.
func (g *Grid) AddDiagonal(d Diagonal) error {
	if !d.Valid() {
		return fmt.Errorf("gridmodel: AddDiagonal(%v): %w", d, ErrBadDiagonal)
	}
	a, b := d.Endpoints()
	if !g.CanConnect(a, b) {
		return fmt.Errorf("gridmodel: AddDiagonal(%v): %w", d, ErrDegreeExceeded)
	}
	g.diagonals = append(g.diagonals, d)
	g.degree[a.Index()]++
	g.degree[b.Index()]++
	return nil
}

// Diagonals returns a copy of the diagonal list in insertion order.
func (g *Grid) Diagonals() []Diagonal { return slices.Clone(g.diagonals) }

// HasCellDiagonal reports whether any diagonal already spans cell.
func (g *Grid) HasCellDiagonal(cell Node) bool {
	return slices.ContainsFunc(g.diagonals, func(d Diagonal) bool { return d.Cell == cell })
}

// HasEdge reports whether an orthogonal edge joins a and b.
func (g *Grid) HasEdge(a, b Node) bool {
	s, ok := SlotBetween(a, b)
	return ok && g.slots[s.Index()]
}

// Neighbors returns the nodes joined to n by present orthogonal edges,
// in the order up, left, right, down.
func (g *Grid) Neighbors(n Node) []Node {
	out := make([]Node, 0, 4)
	for _, d := range [4][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}} {
		m := Node{Row: n.Row + d[0], Col: n.Col + d[1]}
		if m.InBounds() && g.HasEdge(n, m) {
			out = append(out, m)
		}
	}
	return out
}

// ShareNeighbor reports whether a and b have a common orthogonal neighbour,
// i.e. whether a straight diagonal a–b would close a triangle.
func (g *Grid) ShareNeighbor(a, b Node) bool {
	for _, n := range g.Neighbors(a) {
		if g.HasEdge(n, b) {
			return true
		}
	}
	return false
}

// ClosesTriangle reports whether adding slot s would form a triangle with an
// existing straight diagonal and one present orthogonal edge. Arcs are exempt.
func (g *Grid) ClosesTriangle(s Slot) bool {
	u, v := s.Endpoints()
	for _, d := range g.diagonals {
		if d.Shape != Line {
			continue
		}
		a, b := d.Endpoints()
		switch {
		case a == u && g.HasEdge(b, v), b == u && g.HasEdge(a, v),
			a == v && g.HasEdge(b, u), b == v && g.HasEdge(a, u):
			return true
		}
	}
	return false
}

// Counts returns the number of present horizontal, vertical and diagonal edges.
func (g *Grid) Counts() (h, v, d int) {
	for i, ok := range g.slots {
		if !ok {
			continue
		}
		if SlotAt(i).Kind == Horizontal {
			h++
		} else {
			v++
		}
	}
	return h, v, len(g.diagonals)
}

// QuadrantEdges counts present orthogonal and diagonal edges per quadrant.
// When withDiagonals is false only orthogonal edges are counted.
func (g *Grid) QuadrantEdges(withDiagonals bool) [QuadrantCount]int {
	var q [QuadrantCount]int
	for i, ok := range g.slots {
		if ok {
			q[SlotAt(i).Quadrant()]++
		}
	}
	if withDiagonals {
		for _, d := range g.diagonals {
			q[d.Quadrant()]++
		}
	}
	return q
}
