package gridmodel

import "fmt"

// Lattice dimensions. These are frozen: the slot permutation, the text
// payload length and the decoder all depend on them.
const (
	Cols = 17 // nodes per row
	Rows = 5  // node rows

	HPerRow = Cols - 1 // horizontal slots per node row
	VPerRow = Cols     // vertical slots per gap row

	HSlots    = Rows * HPerRow       // 80
	VSlots    = (Rows - 1) * VPerRow // 68
	SlotCount = HSlots + VSlots      // 148

	NodeCount = Rows * Cols // 85

	CellRows  = Rows - 1
	CellCols  = Cols - 1
	CellCount = CellRows * CellCols // 64

	MaxDegree = 4

	QuadCols      = 4
	QuadRows      = 2
	QuadrantCount = QuadCols * QuadRows

	// rowStride is the number of natural-order slots emitted per node row 0..3.
	rowStride = HPerRow + VPerRow
)

// Bits is one panel's fixed-length payload, also used as a slot presence table.
type Bits [SlotCount]bool

// Geometry carries the frozen pixel configuration consumed by the renderer,
// the decoder and the density heuristics. Use DefaultGeometry; the values
// are not meant to be tuned at runtime.
type Geometry struct {
	Cell        float64 // node spacing in user units
	Pad         float64 // offset of node (0,0) from the viewbox origin
	StrokeWidth float64
	ViewWidth   int
	ViewHeight  int
	Kappa       float64 // cubic control-arm factor for a quarter circle
	PanelGap    int     // vertical gap between stacked panels
	TargetEdges int     // target visual edges per panel
	StrokeColor string
}

// DefaultGeometry returns the frozen geometry derived from the reference artwork.
func DefaultGeometry() Geometry {
	return Geometry{
		Cell:        111.141,
		Pad:         30.8725,
		StrokeWidth: 61.745,
		ViewWidth:   1840,
		ViewHeight:  507,
		Kappa:       0.5523,
		PanelGap:    60,
		TargetEdges: 58,
		StrokeColor: "#FFFFFF",
	}
}

// X returns the pixel x-coordinate of node column col.
func (g Geometry) X(col int) float64 { return g.Pad + float64(col)*g.Cell }

// Y returns the pixel y-coordinate of node row row, relative to the panel top.
func (g Geometry) Y(row int) float64 { return g.Pad + float64(row)*g.Cell }

// PanelOffset returns the y offset of panel p inside a stacked document.
func (g Geometry) PanelOffset(p int) float64 {
	return float64(p * (g.ViewHeight + g.PanelGap))
}

// DocumentHeight returns the total height of a document holding n panels.
func (g Geometry) DocumentHeight(n int) int {
	if n <= 0 {
		return 0
	}
	return n*g.ViewHeight + (n-1)*g.PanelGap
}

// Node is a lattice coordinate: Row ∈ [0,Rows), Col ∈ [0,Cols).
type Node struct {
	Row, Col int
}

// InBounds reports whether n lies on the lattice.
func (n Node) InBounds() bool {
	return n.Row >= 0 && n.Row < Rows && n.Col >= 0 && n.Col < Cols
}

// Index maps n to its row-major index.
func (n Node) Index() int { return n.Row*Cols + n.Col }

// NodeAt is the inverse of Node.Index.
func NodeAt(idx int) Node { return Node{Row: idx / Cols, Col: idx % Cols} }

func (n Node) String() string { return fmt.Sprintf("(%d,%d)", n.Row, n.Col) }

// SlotKind distinguishes horizontal and vertical data slots.
type SlotKind uint8

const (
	// Horizontal joins (Row,Col)-(Row,Col+1); Col is the gap index.
	Horizontal SlotKind = iota
	// Vertical joins (Row,Col)-(Row+1,Col); Row is the gap index.
	Vertical
)

func (k SlotKind) String() string {
	if k == Horizontal {
		return "H"
	}
	return "V"
}

// Slot identifies one orthogonal edge position.
type Slot struct {
	Kind     SlotKind
	Row, Col int
}

// Endpoints returns the two nodes joined by s.
func (s Slot) Endpoints() (Node, Node) {
	a := Node{Row: s.Row, Col: s.Col}
	if s.Kind == Horizontal {
		return a, Node{Row: s.Row, Col: s.Col + 1}
	}
	return a, Node{Row: s.Row + 1, Col: s.Col}
}

// Index returns the natural-order index of s.
func (s Slot) Index() int {
	if s.Kind == Horizontal {
		return s.Row*rowStride + s.Col
	}
	return s.Row*rowStride + HPerRow + s.Col
}

// Valid reports whether s addresses one of the 148 slots.
func (s Slot) Valid() bool {
	switch s.Kind {
	case Horizontal:
		return s.Row >= 0 && s.Row < Rows && s.Col >= 0 && s.Col < HPerRow
	case Vertical:
		return s.Row >= 0 && s.Row < Rows-1 && s.Col >= 0 && s.Col < VPerRow
	}
	return false
}

func (s Slot) String() string { return fmt.Sprintf("%s(%d,%d)", s.Kind, s.Row, s.Col) }

// SlotAt returns the slot at natural-order index i. Callers guarantee
// 0 ≤ i < SlotCount.
func SlotAt(i int) Slot {
	row, off := i/rowStride, i%rowStride
	if off < HPerRow {
		return Slot{Kind: Horizontal, Row: row, Col: off}
	}
	return Slot{Kind: Vertical, Row: row, Col: off - HPerRow}
}

// SlotBetween returns the slot joining two orthogonally adjacent nodes.
func SlotBetween(a, b Node) (Slot, bool) {
	if a.Row == b.Row && abs(a.Col-b.Col) == 1 {
		s := Slot{Kind: Horizontal, Row: a.Row, Col: min(a.Col, b.Col)}
		return s, s.Valid()
	}
	if a.Col == b.Col && abs(a.Row-b.Row) == 1 {
		s := Slot{Kind: Vertical, Row: min(a.Row, b.Row), Col: a.Col}
		return s, s.Valid()
	}
	return Slot{}, false
}

// Orientation selects which pair of opposite corners a diagonal joins.
type Orientation uint8

const (
	// Falling joins the top-left and bottom-right corners of a cell.
	Falling Orientation = iota
	// Rising joins the top-right and bottom-left corners of a cell.
	Rising
)

// Shape is the drawn form of a diagonal.
type Shape uint8

const (
	Line Shape = iota
	Arc
)

func (s Shape) String() string {
	if s == Arc {
		return "arc"
	}
	return "line"
}

// Diagonal is a decorative edge across one cell. Cell is the cell's top-left
// node. For arcs, Pivot is the quarter-circle centre and must be one of the
// two corners the diagonal does not touch.
type Diagonal struct {
	Cell   Node
	Orient Orientation
	Shape  Shape
	Pivot  Node
}

// Endpoints returns the two corners joined by d.
func (d Diagonal) Endpoints() (Node, Node) {
	r, c := d.Cell.Row, d.Cell.Col
	if d.Orient == Falling {
		return Node{r, c}, Node{r + 1, c + 1}
	}
	return Node{r, c + 1}, Node{r + 1, c}
}

// Corners returns the two cell corners d does not touch.
func (d Diagonal) Corners() (Node, Node) {
	r, c := d.Cell.Row, d.Cell.Col
	if d.Orient == Falling {
		return Node{r, c + 1}, Node{r + 1, c}
	}
	return Node{r, c}, Node{r + 1, c + 1}
}

// Valid reports whether d lies inside the lattice and, for arcs, whether the
// pivot is an off-diagonal corner.
func (d Diagonal) Valid() bool {
	if d.Cell.Row < 0 || d.Cell.Row >= CellRows || d.Cell.Col < 0 || d.Cell.Col >= CellCols {
		return false
	}
	if d.Shape == Line {
		return true
	}
	p, q := d.Corners()
	return d.Pivot == p || d.Pivot == q
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
