package decoder

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/canvas"
)

// Point is an absolute document position.
type Point struct {
	X, Y float64
}

// Segment is one drawn piece between two absolute points. Curved segments
// come from curve commands and are always treated as diagonals.
type Segment struct {
	From, To Point
	Curved   bool
}

// Document is the geometry extracted from one SVG document.
type Document struct {
	Height   float64
	Segments []Segment
}

// Parse reads an SVG document and flattens every <path> into absolute segments.
// The document height comes from the viewBox, falling back to the height
// attribute of the root element.
func Parse(doc []byte) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(doc))
	out := &Document{}
	root := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoder: xml: %v: %w", err, ErrStructuralParse)
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "svg":
			if root {
				continue
			}
			root = true
			h, err := documentHeight(se.Attr)
			if err != nil {
				return nil, err
			}
			out.Height = h
		case "path":
			for _, a := range se.Attr {
				if a.Name.Local != "d" {
					continue
				}
				segs, err := PathSegments(a.Value)
				if err != nil {
					return nil, err
				}
				out.Segments = append(out.Segments, segs...)
			}
		}
	}
	if !root {
		return nil, fmt.Errorf("decoder: no <svg> root: %w", ErrStructuralParse)
	}
	return out, nil
}

func documentHeight(attrs []xml.Attr) (float64, error) {
	var viewBox, height string
	for _, a := range attrs {
		switch a.Name.Local {
		case "viewBox":
			viewBox = a.Value
		case "height":
			height = a.Value
		}
	}
	if viewBox != "" {
		f := strings.Fields(strings.ReplaceAll(viewBox, ",", " "))
		if len(f) == 4 {
			if h, err := strconv.ParseFloat(f[3], 64); err == nil {
				return h, nil
			}
		}
	}
	if h, err := strconv.ParseFloat(strings.TrimSuffix(height, "px"), 64); err == nil {
		return h, nil
	}
	return 0, fmt.Errorf("decoder: missing document height: %w", ErrStructuralParse)
}

// PathSegments converts SVG path data into absolute segments. Relative,
// implicit and shorthand commands are resolved by the canvas path parser;
// every curve becomes one Curved segment between its end points.
func PathSegments(d string) ([]Segment, error) {
	p, err := canvas.ParseSVGPath(d)
	if err != nil {
		return nil, fmt.Errorf("decoder: path data: %v: %w", err, ErrStructuralParse)
	}
	var segs []Segment
	for sc := p.Scanner(); sc.Scan(); {
		seg := Segment{From: point(sc.Start()), To: point(sc.End())}
		switch sc.Cmd() {
		case canvas.MoveToCmd:
			continue
		case canvas.LineToCmd, canvas.CloseCmd:
		default:
			seg.Curved = true
		}
		if seg.From == seg.To {
			continue
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

func point(p canvas.Point) Point { return Point{X: p.X, Y: p.Y} }
