package render

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/circuitcode/gridmodel"
)

// Point is an absolute position in document units.
type Point struct {
	X, Y float64
}

// Op is a path drawing verb.
type Op uint8

const (
	MoveTo Op = iota
	HorizTo
	VertTo
	LineTo
	CubicTo
)

// Element is one drawing command. HorizTo uses P[0].X, VertTo uses P[0].Y,
// MoveTo/LineTo use P[0], CubicTo uses P[0] and P[1] as control points and
// P[2] as the end point.
type Element struct {
	Op Op
	P  [3]Point
}

func (el Element) String() string {
	var b strings.Builder
	switch el.Op {
	case MoveTo:
		b.WriteString("M")
		writePoint(&b, el.P[0])
	case HorizTo:
		b.WriteString("H")
		writeNum(&b, el.P[0].X)
	case VertTo:
		b.WriteString("V")
		writeNum(&b, el.P[0].Y)
	case LineTo:
		b.WriteString("L")
		writePoint(&b, el.P[0])
	case CubicTo:
		b.WriteString("C")
		writePoint(&b, el.P[0])
		writePoint(&b, el.P[1])
		writePoint(&b, el.P[2])
	}
	return b.String()
}

func writePoint(b *strings.Builder, p Point) {
	writeNum(b, p.X)
	writeNum(b, p.Y)
}

func writeNum(b *strings.Builder, v float64) {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		s = "0"
	}
	b.WriteByte(' ')
	b.WriteString(s)
}

// Elements converts one chain to drawing commands for a panel whose top
// sits at yOff. Consecutive horizontal (or vertical) moves merge into one
// command.
func Elements(ch Chain, geo gridmodel.Geometry, yOff float64) []Element {
	pos := func(n gridmodel.Node) Point {
		return Point{X: geo.X(n.Col), Y: yOff + geo.Y(n.Row)}
	}

	els := make([]Element, 0, len(ch.Steps)+1)
	els = append(els, Element{Op: MoveTo, P: [3]Point{pos(ch.Start)}})
	cur := ch.Start
	for _, st := range ch.Steps {
		from, to := pos(cur), pos(st.To)
		last := &els[len(els)-1]
		switch {
		case st.Diagonal == nil && st.To.Row == cur.Row:
			if last.Op == HorizTo {
				last.P[0].X = to.X
			} else {
				els = append(els, Element{Op: HorizTo, P: [3]Point{to}})
			}
		case st.Diagonal == nil:
			if last.Op == VertTo {
				last.P[0].Y = to.Y
			} else {
				els = append(els, Element{Op: VertTo, P: [3]Point{to}})
			}
		case st.Diagonal.Shape == gridmodel.Line:
			els = append(els, Element{Op: LineTo, P: [3]Point{to}})
		default:
			els = append(els, quarterArc(from, to, cur.Col == st.Diagonal.Pivot.Col, geo.Kappa))
		}
		cur = st.To
	}
	return els
}

// quarterArc approximates a quarter circle from p to t with one cubic.
// When p sits directly above or below the centre (sameColumn) the curve
// departs along the horizontal tangent and arrives along the vertical one;
// otherwise the roles are mirrored.
func quarterArc(p, t Point, sameColumn bool, k float64) Element {
	dx, dy := t.X-p.X, t.Y-p.Y
	var c1, c2 Point
	if sameColumn {
		c1 = Point{X: p.X + dx*k, Y: p.Y}
		c2 = Point{X: t.X, Y: t.Y - dy*k}
	} else {
		c1 = Point{X: p.X, Y: p.Y + dy*k}
		c2 = Point{X: t.X - dx*k, Y: t.Y}
	}
	return Element{Op: CubicTo, P: [3]Point{c1, c2, t}}
}

// PathData returns one SVG path string per chain of g.
func PathData(g *gridmodel.Grid, geo gridmodel.Geometry, yOff float64) []string {
	chains := Chains(g)
	out := make([]string, 0, len(chains))
	for _, ch := range chains {
		els := Elements(ch, geo, yOff)
		parts := make([]string, len(els))
		for i, el := range els {
			parts[i] = el.String()
		}
		out = append(out, strings.Join(parts, " "))
	}
	return out
}
