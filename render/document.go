package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/katalvlaran/circuitcode/gridmodel"
)

// ErrNoPanels indicates a document was requested without any panel.
var ErrNoPanels = errors.New("render: no panels")

// Style returns the fixed stroke style applied to every path.
func Style(geo gridmodel.Geometry) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g;stroke-linecap:round;stroke-linejoin:round",
		geo.StrokeColor, geo.StrokeWidth)
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// Document writes the panels, in order, as one SVG document to w.
func Document(w io.Writer, panels []gridmodel.Grid) error {
	if len(panels) == 0 {
		return ErrNoPanels
	}
	geo := gridmodel.DefaultGeometry()
	width, height := geo.ViewWidth, geo.DocumentHeight(len(panels))

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Startview(width, height, 0, 0, width, height)
	canvas.Gstyle(Style(geo))
	for p := range panels {
		for _, d := range PathData(&panels[p], geo, geo.PanelOffset(p)) {
			canvas.Path(d)
		}
	}
	canvas.Gend()
	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("render: write document: %w", ew.err)
	}
	return nil
}

// Bytes renders the panels into a new byte slice.
func Bytes(panels []gridmodel.Grid) ([]byte, error) {
	var buf bytes.Buffer
	if err := Document(&buf, panels); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Stats summarises the chain decomposition of one panel.
type Stats struct {
	Chains  int
	Edges   int
	Longest int
}

// ChainStats reports chain count, consumed edges and the longest chain of g.
func ChainStats(g *gridmodel.Grid) Stats {
	var st Stats
	for _, ch := range Chains(g) {
		st.Chains++
		st.Edges += len(ch.Steps)
		st.Longest = max(st.Longest, len(ch.Steps))
	}
	return st
}
