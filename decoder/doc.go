// Package decoder recovers text from the three variant documents of one
// message.
//
// Each document is parsed into absolute segments, segments are assigned to
// panels by their y band, snapped to lattice nodes and classified. Only
// orthogonal unit slots survive: diagonals, arcs and anything off the
// lattice are discarded. The per-panel presence tables of the three
// variants are intersected, which cancels the decorative noise, then the
// slot permutation is inverted and the payload validated.
//
// A document with an undrawn panel band is rejected as structurally
// invalid: every encoded panel carries decorations, so an empty band means a
// blank or truncated variant. The band check also bounds the declared panel
// count by the document's contents.
package decoder
