package bitmapper

import (
	"fmt"

	"github.com/katalvlaran/circuitcode/gridmodel"
)

// Stride is the multiplier of the permutation. gcd(119, 148) = 1.
const Stride = 119

func init() {
	if gcd(Stride, gridmodel.SlotCount) != 1 {
		panic(fmt.Sprintf("bitmapper: stride %d not coprime with %d slots", Stride, gridmodel.SlotCount))
	}
}

// Slot returns the natural-order slot index that carries payload bit i.
// Complexity: O(1).
func Slot(i int) int {
	return i * Stride % gridmodel.SlotCount
}

// Natural returns the slot descriptors in natural order.
func Natural() []gridmodel.Slot {
	out := make([]gridmodel.Slot, gridmodel.SlotCount)
	for i := range out {
		out[i] = gridmodel.SlotAt(i)
	}
	return out
}

// Apply places payload bits on an empty grid: slot presence equals bit value.
// A node has at most four orthogonal neighbours, so data edges alone stay
// within the degree limit; a failing Set means the lattice constants are broken.
func Apply(bits gridmodel.Bits) gridmodel.Grid {
	g := gridmodel.New()
	for i, b := range bits {
		if !b {
			continue
		}
		if err := g.Set(Slot(i)); err != nil {
			panic(fmt.Sprintf("bitmapper: payload bit %d: %v", i, err))
		}
	}
	return g
}

// Invert reads payload bits back from a presence table.
func Invert(presence gridmodel.Bits) gridmodel.Bits {
	var bits gridmodel.Bits
	for i := range bits {
		bits[i] = presence[Slot(i)]
	}
	return bits
}

// IsBijection reports whether Slot maps 0..SlotCount-1 onto itself.
func IsBijection() bool {
	var seen [gridmodel.SlotCount]bool
	for i := 0; i < gridmodel.SlotCount; i++ {
		s := Slot(i)
		if seen[s] {
			return false
		}
		seen[s] = true
	}
	return true
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
