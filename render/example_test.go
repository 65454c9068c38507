package render_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/circuitcode/gridmodel"
	"github.com/katalvlaran/circuitcode/render"
)

// ExamplePathData draws an L-shaped run: two horizontal edges merge into one
// H command, followed by a V.
func ExamplePathData() {
	g := gridmodel.New()
	for _, pair := range [][2]gridmodel.Node{
		{{Row: 1, Col: 1}, {Row: 1, Col: 2}},
		{{Row: 1, Col: 2}, {Row: 1, Col: 3}},
		{{Row: 1, Col: 3}, {Row: 2, Col: 3}},
	} {
		s, _ := gridmodel.SlotBetween(pair[0], pair[1])
		_ = g.Set(s.Index())
	}

	for _, d := range render.PathData(&g, gridmodel.DefaultGeometry(), 0) {
		var verbs []string
		for _, f := range strings.Fields(d) {
			if f[0] >= 'A' && f[0] <= 'Z' {
				verbs = append(verbs, f)
			}
		}
		fmt.Println(strings.Join(verbs, " "))
	}
	fmt.Printf("%+v\n", render.ChainStats(&g))
	// Output:
	// M H V
	// {Chains:1 Edges:3 Longest:3}
}
