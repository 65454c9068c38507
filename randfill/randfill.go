package randfill

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/circuitcode/gridmodel"
	"github.com/samber/lo"
)

const (
	// Variants is the number of documents produced per message.
	Variants = 3
	// MaxPattern is the largest pattern value; 7 would show in every variant.
	MaxPattern = 6

	hSeedOffset = 99
	vSeedOffset = 199
)

// Stats summarises one Fill call.
type Stats struct {
	Quadrants       [gridmodel.QuadrantCount]int // visual edges per quadrant before filling
	Visual          int                          // visual edges before filling
	Needed          int                          // max(0, target − Visual)
	Quota           [gridmodel.QuadrantCount]int // selections wanted per quadrant
	Selected        int                          // candidates that passed the triangle check
	Added           int                          // noise edges drawn in this variant
	SkippedTriangle int
	SkippedDegree   int
}

// Pattern returns the 3-bit visibility pattern of slot s, in 1..MaxPattern.
// It depends on the slot and the data seed only, never on the variant.
func Pattern(s gridmodel.Slot, dataSeed uint64) int {
	off := uint64(hSeedOffset)
	if s.Kind == gridmodel.Vertical {
		off = vSeedOffset
	}
	return int(gridmodel.Hash(s.Row, s.Col, dataSeed+off, 0)%MaxPattern) + 1
}

// VariantBit reports whether a slot with the given pattern is shown in variant v.
func VariantBit(pattern, v int) bool {
	return (pattern>>(2-v))&1 == 1
}

type candidate struct {
	index int
	slot  gridmodel.Slot
	rank  uint64
}

// Fill returns a copy of in with noise added for variant v, and statistics.
// Slots already present in in (the data edges) are never candidates.
func Fill(in gridmodel.Grid, dataSeed uint64, v int) (gridmodel.Grid, Stats) {
	target := gridmodel.DefaultGeometry().TargetEdges
	g := in.Clone()
	var st Stats
	st.Quadrants = in.QuadrantEdges(true)
	st.Visual = lo.Sum(st.Quadrants[:])
	st.Needed = max(0, target-st.Visual)

	byQuadrant := candidates(&in, dataSeed)
	st.Quota = quotas(st.Quadrants, st.Needed, byQuadrant)

	for q := 0; q < gridmodel.QuadrantCount; q++ {
		selected := 0
		for _, c := range byQuadrant[q] {
			if selected == st.Quota[q] {
				break
			}
			if g.ClosesTriangle(c.slot) {
				st.SkippedTriangle++
				continue
			}
			selected++
			if !VariantBit(Pattern(c.slot, dataSeed), v) {
				continue
			}
			if !g.CanSet(c.index) {
				st.SkippedDegree++
				continue
			}
			if err := g.Set(c.index); err != nil {
				panic(fmt.Sprintf("randfill: slot %d passed CanSet: %v", c.index, err))
			}
			st.Added++
		}
		st.Selected += selected
	}
	return g, st
}

// candidates groups the empty slots of g by quadrant, each group ranked by a
// variant-independent hash with the natural index breaking ties.
func candidates(g *gridmodel.Grid, dataSeed uint64) map[int][]candidate {
	var all []candidate
	for i := 0; i < gridmodel.SlotCount; i++ {
		if g.Has(i) {
			continue
		}
		s := gridmodel.SlotAt(i)
		all = append(all, candidate{index: i, slot: s, rank: gridmodel.Hash(s.Row, s.Col, dataSeed, 0)})
	}
	slices.SortFunc(all, func(a, b candidate) int {
		return cmp.Or(cmp.Compare(a.rank, b.rank), cmp.Compare(a.index, b.index))
	})
	return lo.GroupBy(all, func(c candidate) int { return c.slot.Quadrant() })
}

// quotas apportions selections across quadrants. When the formula yields
// nothing at all but candidates exist, the sparsest quadrant with candidates
// gets one selection so the variants never collapse to identical noise.
func quotas(quad [gridmodel.QuadrantCount]int, needed int, byQuadrant map[int][]candidate) [gridmodel.QuadrantCount]int {
	var out [gridmodel.QuadrantCount]int
	avg := gridmodel.Mean(quad)
	base := int(math.Round(2 * float64(needed) / gridmodel.QuadrantCount))
	for q := range out {
		n := base + int(math.Round(2*(avg-float64(quad[q]))))
		out[q] = min(max(n, 0), len(byQuadrant[q]))
	}
	if lo.Sum(out[:]) > 0 {
		return out
	}
	best := -1
	for q := range out {
		if len(byQuadrant[q]) == 0 {
			continue
		}
		if best < 0 || quad[q] < quad[best] {
			best = q
		}
	}
	if best >= 0 {
		out[best] = 1
	}
	return out
}
