package decoder_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/circuitcode/aesthetic"
	"github.com/katalvlaran/circuitcode/bitmapper"
	"github.com/katalvlaran/circuitcode/decoder"
	"github.com/katalvlaran/circuitcode/gridmodel"
	"github.com/katalvlaran/circuitcode/randfill"
	"github.com/katalvlaran/circuitcode/render"
	"github.com/katalvlaran/circuitcode/textcodec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// variants renders the three documents of text.
func variants(t testing.TB, text string) [3][]byte {
	t.Helper()
	panels, err := textcodec.Encode(text)
	require.NoError(t, err)
	var out [3][]byte
	for v := range out {
		grids := make([]gridmodel.Grid, len(panels))
		for i, p := range panels {
			g, _ := aesthetic.Solve(bitmapper.Apply(p.Bits), p.Seed, v)
			grids[i], _ = randfill.Fill(g, p.Seed, v)
		}
		out[v], err = render.Bytes(grids)
		require.NoError(t, err)
	}
	return out
}

func TestDecode_RoundTrip(t *testing.T) {
	for _, text := range []string{"", "A", "HELLO WORLD", "THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG 0123456789"} {
		docs := variants(t, text)
		msg, err := decoder.Decode(docs[0], docs[1], docs[2])
		require.NoError(t, err, text)
		require.NoError(t, msg.Err(), text)
		assert.Equal(t, text, msg.Text)
	}
}

func TestDecode_AnyOrder(t *testing.T) {
	docs := variants(t, "ORDER DOES NOT MATTER")
	msg, err := decoder.Decode(docs[2], docs[0], docs[1])
	require.NoError(t, err)
	assert.Equal(t, "ORDER DOES NOT MATTER", msg.Text)
}

func TestDecode_PanelResults(t *testing.T) {
	text := "ABCDEFGHIJKLMNOPQRSTUVWXYZ" // 23 + 3
	docs := variants(t, text)
	msg, err := decoder.Decode(docs[0], docs[1], docs[2])
	require.NoError(t, err)
	require.Len(t, msg.Panels, 2)
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVW", msg.Panels[0].Text)
	assert.Equal(t, "XYZ", msg.Panels[1].Text)
	assert.Equal(t, 1, msg.Panels[1].Index)
}

func TestDecode_VariantCount(t *testing.T) {
	docs := variants(t, "HI")
	_, err := decoder.Decode(docs[0], docs[1])
	assert.ErrorIs(t, err, decoder.ErrInsufficientVariants)
	_, err = decoder.Decode()
	assert.ErrorIs(t, err, decoder.ErrInsufficientVariants)
	_, err = decoder.Decode(docs[0], docs[1], docs[2], docs[0])
	assert.ErrorIs(t, err, decoder.ErrTooManyVariants)
}

func TestDecode_StructuralFailures(t *testing.T) {
	docs := variants(t, "HI")
	long := variants(t, "THIS TEXT NEEDS TWO PANELS")

	cases := map[string][]byte{
		"not xml":       []byte("<svg"),
		"no svg root":   []byte(`<html></html>`),
		"no height":     []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`),
		"odd height":    []byte(`<svg viewBox="0 0 1840 800"></svg>`),
		"bad command":   []byte(`<svg viewBox="0 0 1840 507"><path d="M 0 0 X 1 1 2 2"/></svg>`),
		"missing coord": []byte(`<svg viewBox="0 0 1840 507"><path d="M 0 0 L 5"/></svg>`),
		"bad number":    []byte(`<svg viewBox="0 0 1840 507"><path d="M 0 0 L 5 x"/></svg>`),
	}
	for name, bad := range cases {
		_, err := decoder.Decode(docs[0], bad, docs[2])
		assert.ErrorIs(t, err, decoder.ErrStructuralParse, name)
	}

	// Panel counts must agree.
	_, err := decoder.Decode(docs[0], docs[1], long[2])
	assert.ErrorIs(t, err, decoder.ErrStructuralParse)
}

// TestDecode_BlankVariant: a document with the right height but no drawing
// must fail instead of intersecting to an empty panel.
func TestDecode_BlankVariant(t *testing.T) {
	docs := variants(t, "HELLO")
	blank := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1840 507"></svg>`)
	msg, err := decoder.Decode(docs[0], docs[1], blank)
	assert.ErrorIs(t, err, decoder.ErrStructuralParse)
	assert.Nil(t, msg)

	// A second, undrawn panel band is just as blank.
	two := strings.Replace(string(docs[2]), `0 0 1840 507"`, `0 0 1840 1074"`, 1)
	_, err = decoder.Decode(docs[0], docs[1], []byte(two))
	assert.ErrorIs(t, err, decoder.ErrStructuralParse)
}

// TestDecode_InflatedHeight: the declared panel count is bounded by the
// drawing before any table is allocated.
func TestDecode_InflatedHeight(t *testing.T) {
	geo := gridmodel.DefaultGeometry()
	huge := []byte(fmt.Sprintf(`<svg viewBox="0 0 1840 %d"><path d="M 30.873 30.873 H 142.014"/></svg>`,
		geo.DocumentHeight(2_000_000)))
	_, err := decoder.Decode(huge, huge, huge)
	assert.ErrorIs(t, err, decoder.ErrStructuralParse)

	_, err = decoder.Presence(&decoder.Document{Height: float64(geo.DocumentHeight(3))})
	assert.ErrorIs(t, err, decoder.ErrStructuralParse)
}

func TestDecode_ChecksumMismatch(t *testing.T) {
	docs := variants(t, "HELLO")
	tables := make([][]gridmodel.Bits, 3)
	for i, d := range docs {
		doc, err := decoder.Parse(d)
		require.NoError(t, err)
		tables[i], err = decoder.Presence(doc)
		require.NoError(t, err)
	}
	inter, err := decoder.Intersect(tables...)
	require.NoError(t, err)
	require.Equal(t, "HELLO", decoder.Recover(inter).Text)

	// Payload bit 5 is the top checksum bit, always covered by validation.
	s := bitmapper.Slot(5)
	inter[0][s] = !inter[0][s]
	msg := decoder.Recover(inter)
	assert.Empty(t, msg.Text)
	require.Error(t, msg.Err())
	assert.ErrorIs(t, msg.Err(), decoder.ErrChecksumMismatch)

	var pe *decoder.PanelError
	require.ErrorAs(t, msg.Panels[0].Err, &pe)
	assert.Equal(t, 0, pe.Panel)
}

func TestPresence_SplitsMergedRuns(t *testing.T) {
	geo := gridmodel.DefaultGeometry()
	doc := &decoder.Document{
		Height: 507,
		Segments: []decoder.Segment{
			{From: decoder.Point{X: geo.X(0), Y: geo.Y(1)}, To: decoder.Point{X: geo.X(3), Y: geo.Y(1)}},
			{From: decoder.Point{X: geo.X(5), Y: geo.Y(4)}, To: decoder.Point{X: geo.X(5), Y: geo.Y(2)}},
			// diagonal and arc are discarded
			{From: decoder.Point{X: geo.X(8), Y: geo.Y(0)}, To: decoder.Point{X: geo.X(9), Y: geo.Y(1)}},
			{From: decoder.Point{X: geo.X(10), Y: geo.Y(0)}, To: decoder.Point{X: geo.X(11), Y: geo.Y(0)}, Curved: true},
		},
	}
	tables, err := decoder.Presence(doc)
	require.NoError(t, err)
	require.Len(t, tables, 1)

	var want gridmodel.Bits
	for c := 0; c < 3; c++ {
		want[gridmodel.Slot{Kind: gridmodel.Horizontal, Row: 1, Col: c}.Index()] = true
	}
	for r := 2; r < 4; r++ {
		want[gridmodel.Slot{Kind: gridmodel.Vertical, Row: r, Col: 5}.Index()] = true
	}
	assert.Equal(t, want, tables[0])
}

func TestPresence_IgnoresCrossPanelAndOffGrid(t *testing.T) {
	geo := gridmodel.DefaultGeometry()
	off := geo.PanelOffset(1)
	doc := &decoder.Document{
		Height: 1074,
		Segments: []decoder.Segment{
			// spans the gap between panels
			{From: decoder.Point{X: geo.X(2), Y: geo.Y(4)}, To: decoder.Point{X: geo.X(2), Y: off + geo.Y(0)}},
			// more than a quarter cell away from any node
			{From: decoder.Point{X: geo.X(0) + geo.Cell/2, Y: geo.Y(0)}, To: decoder.Point{X: geo.X(2), Y: geo.Y(0)}},
			// snaps within tolerance in the second panel
			{From: decoder.Point{X: geo.X(0) + 10, Y: off + geo.Y(0) - 10}, To: decoder.Point{X: geo.X(1), Y: off + geo.Y(0)}},
		},
	}
	tables, err := decoder.Presence(doc)
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, gridmodel.Bits{}, tables[0])

	var want gridmodel.Bits
	want[gridmodel.Slot{Kind: gridmodel.Horizontal, Row: 0, Col: 0}.Index()] = true
	assert.Equal(t, want, tables[1])
}

func TestPathSegments(t *testing.T) {
	segs, err := decoder.PathSegments("M10-5h-3V 7l1,1c0 1 1 2 2 2Z")
	require.NoError(t, err)
	require.Len(t, segs, 5)

	pt := func(x, y float64) decoder.Point { return decoder.Point{X: x, Y: y} }
	assert.Equal(t, decoder.Segment{From: pt(10, -5), To: pt(7, -5)}, segs[0])
	assert.Equal(t, decoder.Segment{From: pt(7, -5), To: pt(7, 7)}, segs[1])
	assert.Equal(t, decoder.Segment{From: pt(7, 7), To: pt(8, 8)}, segs[2])
	assert.Equal(t, decoder.Segment{From: pt(8, 8), To: pt(10, 10), Curved: true}, segs[3])
	assert.Equal(t, decoder.Segment{From: pt(10, 10), To: pt(10, -5)}, segs[4])

	// Extra pairs after a move are line-tos and collinear runs join; exponents parse.
	segs, err = decoder.PathSegments("m 1 1 2 0 1e1 0")
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, decoder.Segment{From: pt(1, 1), To: pt(13, 1)}, segs[0])

	// Quadratic curves are curves too.
	segs, err = decoder.PathSegments("M 0 0 Q 1 2 3 0")
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.True(t, segs[0].Curved)

	_, err = decoder.PathSegments("10 10")
	assert.ErrorIs(t, err, decoder.ErrStructuralParse)
}
