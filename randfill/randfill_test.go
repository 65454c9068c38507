package randfill_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/circuitcode/aesthetic"
	"github.com/katalvlaran/circuitcode/bitmapper"
	"github.com/katalvlaran/circuitcode/gridmodel"
	"github.com/katalvlaran/circuitcode/randfill"
	"github.com/katalvlaran/circuitcode/textcodec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVariantBit_NoFalsePositive: for every legal pattern the AND across all
// three variants is zero, while the forbidden pattern 7 would survive.
func TestVariantBit_NoFalsePositive(t *testing.T) {
	for p := 1; p <= randfill.MaxPattern; p++ {
		all := true
		some := false
		for v := 0; v < randfill.Variants; v++ {
			b := randfill.VariantBit(p, v)
			all = all && b
			some = some || b
		}
		assert.False(t, all, "pattern %d shows in every variant", p)
		assert.True(t, some, "pattern %d shows in no variant", p)
	}
	assert.True(t, randfill.VariantBit(7, 0) && randfill.VariantBit(7, 1) && randfill.VariantBit(7, 2))
}

// TestVariantBit_Mapping checks bit (2−v) selection.
func TestVariantBit_Mapping(t *testing.T) {
	// 4 = 100: only variant 0.
	assert.Equal(t, []bool{true, false, false}, bitsOf(4))
	// 3 = 011: variants 1 and 2.
	assert.Equal(t, []bool{false, true, true}, bitsOf(3))
	// 5 = 101: variants 0 and 2.
	assert.Equal(t, []bool{true, false, true}, bitsOf(5))
}

func bitsOf(p int) []bool {
	return []bool{randfill.VariantBit(p, 0), randfill.VariantBit(p, 1), randfill.VariantBit(p, 2)}
}

// TestPattern_Range checks every slot pattern lies in 1..6 for several seeds.
func TestPattern_Range(t *testing.T) {
	for _, seed := range []uint64{0, 1, 42, 1 << 40, ^uint64(0)} {
		for i := 0; i < gridmodel.SlotCount; i++ {
			p := randfill.Pattern(gridmodel.SlotAt(i), seed)
			assert.GreaterOrEqual(t, p, 1)
			assert.LessOrEqual(t, p, randfill.MaxPattern)
		}
	}
}

// TestFill_IntersectionRecoversData pushes sample panels through the solver
// and filler for all three variants and checks that the AND of the three
// presence tables equals the data presence exactly.
func TestFill_IntersectionRecoversData(t *testing.T) {
	for _, text := range []string{"", "A", "AB", "HELLO", "THE QUICK BROWN FOX JUM", "99 BOTTLES, 1 LEFT!"} {
		panels, err := textcodec.Encode(text)
		require.NoError(t, err)
		for _, p := range panels {
			t.Run(fmt.Sprintf("%q/%d", text, p.Index), func(t *testing.T) {
				data := bitmapper.Apply(p.Bits)
				want := data.Presence()

				var got [randfill.Variants]gridmodel.Bits
				for v := 0; v < randfill.Variants; v++ {
					decorated, _ := aesthetic.Solve(data, p.Seed, v)
					filled, st := randfill.Fill(decorated, p.Seed, v)
					got[v] = filled.Presence()

					assert.Equal(t, max(0, 58-st.Visual), st.Needed)
					assert.LessOrEqual(t, st.Added, st.Selected)
					for i, present := range want {
						if present {
							assert.True(t, got[v][i], "data slot %d missing in variant %d", i, v)
						}
					}
					for idx := 0; idx < gridmodel.NodeCount; idx++ {
						n := gridmodel.NodeAt(idx)
						assert.LessOrEqual(t, filled.Degree(n), gridmodel.MaxDegree)
					}
					for _, d := range filled.Diagonals() {
						if d.Shape == gridmodel.Line {
							a, b := d.Endpoints()
							assert.False(t, filled.ShareNeighbor(a, b), "triangle around %v", d)
						}
					}
				}

				var and gridmodel.Bits
				for i := range and {
					and[i] = got[0][i] && got[1][i] && got[2][i]
				}
				assert.Equal(t, want, and)
			})
		}
	}
}

// TestFill_VariantsDiffer: a short text leaves many empty slots, so the three
// filled grids cannot be identical.
func TestFill_VariantsDiffer(t *testing.T) {
	panels, err := textcodec.Encode("HI")
	require.NoError(t, err)
	p := panels[0]
	data := bitmapper.Apply(p.Bits)

	var pres [randfill.Variants]gridmodel.Bits
	for v := range pres {
		filled, st := randfill.Fill(data, p.Seed, v)
		assert.Positive(t, st.Selected)
		pres[v] = filled.Presence()
	}
	assert.NotEqual(t, pres[0], pres[1])
	assert.NotEqual(t, pres[1], pres[2])
	assert.NotEqual(t, pres[0], pres[2])
}

// TestFill_Deterministic checks identical output across calls and that the
// input grid is left unchanged.
func TestFill_Deterministic(t *testing.T) {
	panels, err := textcodec.Encode("DETERMINISM")
	require.NoError(t, err)
	p := panels[0]
	data := bitmapper.Apply(p.Bits)
	before := data.Presence()

	a, sa := randfill.Fill(data, p.Seed, 2)
	b, sb := randfill.Fill(data, p.Seed, 2)
	assert.Equal(t, sa, sb)
	assert.Equal(t, a.Presence(), b.Presence())
	assert.Equal(t, before, data.Presence())
}

// TestFill_Saturation: a fully occupied grid has no candidates and the
// filler stops without error.
func TestFill_Saturation(t *testing.T) {
	var all gridmodel.Bits
	for i := range all {
		all[i] = true
	}
	full := bitmapper.Apply(all)
	out, st := randfill.Fill(full, 7, 0)
	assert.Zero(t, st.Selected)
	assert.Zero(t, st.Added)
	assert.Equal(t, full.Presence(), out.Presence())
}
