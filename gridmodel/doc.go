// Package gridmodel holds the per-panel edge model shared by every stage of
// the circuit codec: a fixed 17×5 lattice of nodes, 148 orthogonal "data
// slots" (80 horizontal, 68 vertical) and an open set of decorative
// diagonals spanning single cells.
//
// What:
//
//   - Geometry: frozen pixel constants (CELL, PAD, viewbox, stroke, kappa).
//   - Grid: presence over the 148 slots, diagonal list, per-node degree.
//   - Quadrants: 4 column bands × 2 row bands used for density balancing.
//   - Hash/Unit: a SplitMix64-style integer mixer for deterministic choices.
//
// Natural slot order:
//
//	row 0: H0..H15  V0..V16
//	row 1: H0..H15  V0..V16
//	row 2: H0..H15  V0..V16
//	row 3: H0..H15  V0..V16
//	row 4: H0..H15
//
// Invariants:
//
//   - Every node degree (H + V + diagonal) stays ≤ MaxDegree.
//   - SlotCount is fixed at 148; a slot is either present or absent.
//
// Grid is a value type. Stages receive a Grid, Clone it and return the
// modified copy, so three variants can be derived from one data grid
// without sharing mutable state.
package gridmodel
