package decoder

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/katalvlaran/circuitcode/bitmapper"
	"github.com/katalvlaran/circuitcode/gridmodel"
	"github.com/katalvlaran/circuitcode/textcodec"
	"github.com/samber/lo"
)

// Variants is the number of documents Decode requires.
const Variants = 3

// PanelResult is the outcome for one panel. Err is a *PanelError wrapping
// ErrChecksumMismatch when the payload failed validation.
type PanelResult struct {
	Index int
	Text  string
	Err   error
}

// Message is the decoded result: the concatenated text of every valid panel
// plus the per-panel outcome.
type Message struct {
	Text   string
	Panels []PanelResult
}

// Err joins the errors of all failed panels, or returns nil.
func (m *Message) Err() error {
	var errs []error
	for _, p := range m.Panels {
		if p.Err != nil {
			errs = append(errs, p.Err)
		}
	}
	return errors.Join(errs...)
}

// Decode recovers the message from exactly three variant documents, in any
// order. A structural failure of any document aborts the decode; checksum
// failures are reported per panel on the returned Message.
func Decode(docs ...[]byte) (*Message, error) {
	switch {
	case len(docs) < Variants:
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientVariants, len(docs))
	case len(docs) > Variants:
		return nil, fmt.Errorf("%w: got %d", ErrTooManyVariants, len(docs))
	}

	tables := make([][]gridmodel.Bits, len(docs))
	errs := make([]error, len(docs))
	var wg sync.WaitGroup
	for i := range docs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			doc, err := Parse(docs[i])
			if err == nil {
				tables[i], err = Presence(doc)
			}
			if err != nil {
				errs[i] = fmt.Errorf("decoder: document %d: %w", i, err)
			}
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	inter, err := Intersect(tables...)
	if err != nil {
		return nil, err
	}
	return Recover(inter), nil
}

// Presence returns the orthogonal slot presence table of every panel of doc.
// Every panel band must hold at least one segment: an encoded panel always
// carries decorations, so an empty band means a missing or blank document.
func Presence(doc *Document) ([]gridmodel.Bits, error) {
	geo := gridmodel.DefaultGeometry()
	n, err := panelCount(geo, doc.Height, len(doc.Segments))
	if err != nil {
		return nil, err
	}
	out := make([]gridmodel.Bits, n)
	drawn := make([]bool, n)
	for _, s := range doc.Segments {
		p, ok := panelOf(geo, n, s)
		if !ok {
			continue
		}
		drawn[p] = true
		if s.Curved {
			continue
		}
		yOff := geo.PanelOffset(p)
		a, okA := snap(geo, s.From, yOff)
		b, okB := snap(geo, s.To, yOff)
		if !okA || !okB {
			continue
		}
		markRun(&out[p], a, b)
	}
	for p, ok := range drawn {
		if !ok {
			return nil, fmt.Errorf("decoder: panel %d has no segments: %w", p, ErrStructuralParse)
		}
	}
	return out, nil
}

// panelCount derives the number of stacked panels from the document height.
// A document cannot hold more panels than segments, which bounds the count
// before anything is allocated.
func panelCount(geo gridmodel.Geometry, h float64, segments int) (int, error) {
	pitch := float64(geo.ViewHeight + geo.PanelGap)
	f := math.Round((h + float64(geo.PanelGap)) / pitch)
	if !(f >= 1 && f <= float64(segments)) {
		return 0, fmt.Errorf("decoder: height %g declares %g panels for %d segments: %w", h, f, segments, ErrStructuralParse)
	}
	n := int(f)
	if math.Abs(float64(geo.DocumentHeight(n))-h) > 1 {
		return 0, fmt.Errorf("decoder: height %g is not a whole number of panels: %w", h, ErrStructuralParse)
	}
	return n, nil
}

// panelOf returns the panel whose node band holds both endpoints of s.
func panelOf(geo gridmodel.Geometry, n int, s Segment) (int, bool) {
	half := geo.Cell / 2
	for p := 0; p < n; p++ {
		yOff := geo.PanelOffset(p)
		top, bottom := yOff+geo.Y(0)-half, yOff+geo.Y(gridmodel.Rows-1)+half
		if s.From.Y >= top && s.From.Y <= bottom && s.To.Y >= top && s.To.Y <= bottom {
			return p, true
		}
	}
	return 0, false
}

// snap maps a point to the nearest node within a quarter cell.
func snap(geo gridmodel.Geometry, pt Point, yOff float64) (gridmodel.Node, bool) {
	tol := geo.Cell / 4
	col := int(math.Round((pt.X - geo.Pad) / geo.Cell))
	row := int(math.Round((pt.Y - yOff - geo.Pad) / geo.Cell))
	n := gridmodel.Node{Row: row, Col: col}
	if !n.InBounds() {
		return n, false
	}
	if math.Abs(pt.X-geo.X(col)) > tol || math.Abs(pt.Y-yOff-geo.Y(row)) > tol {
		return n, false
	}
	return n, true
}

// markRun sets every unit slot covered by an orthogonal run from a to b.
// Runs that are neither horizontal nor vertical are diagonals and ignored.
func markRun(bits *gridmodel.Bits, a, b gridmodel.Node) {
	switch {
	case a == b:
	case a.Row == b.Row:
		for c := min(a.Col, b.Col); c < max(a.Col, b.Col); c++ {
			bits[gridmodel.Slot{Kind: gridmodel.Horizontal, Row: a.Row, Col: c}.Index()] = true
		}
	case a.Col == b.Col:
		for r := min(a.Row, b.Row); r < max(a.Row, b.Row); r++ {
			bits[gridmodel.Slot{Kind: gridmodel.Vertical, Row: r, Col: a.Col}.Index()] = true
		}
	}
}

// Intersect ANDs the presence tables of the variants panel by panel. All
// variants must carry the same number of panels.
func Intersect(variants ...[]gridmodel.Bits) ([]gridmodel.Bits, error) {
	if len(variants) == 0 {
		return nil, ErrInsufficientVariants
	}
	n := len(variants[0])
	for i, v := range variants[1:] {
		if len(v) != n {
			return nil, fmt.Errorf("decoder: document %d has %d panels, document 0 has %d: %w",
				i+1, len(v), n, ErrStructuralParse)
		}
	}
	out := make([]gridmodel.Bits, n)
	for p := range out {
		for s := range out[p] {
			all := true
			for _, v := range variants {
				all = all && v[p][s]
			}
			out[p][s] = all
		}
	}
	return out, nil
}

// Recover inverts the slot permutation of each intersected panel and
// validates its payload.
func Recover(panels []gridmodel.Bits) *Message {
	m := &Message{Panels: make([]PanelResult, len(panels))}
	for p, presence := range panels {
		text, err := textcodec.Decode(bitmapper.Invert(presence))
		res := PanelResult{Index: p, Text: text}
		if err != nil {
			res.Text = ""
			res.Err = &PanelError{Panel: p, Err: err}
		}
		m.Panels[p] = res
	}
	m.Text = strings.Join(lo.FilterMap(m.Panels, func(r PanelResult, _ int) (string, bool) {
		return r.Text, r.Err == nil
	}), "")
	return m
}
