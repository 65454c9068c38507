// Package bitmapper spreads payload bits over the panel by a stride
// permutation of the natural slot order, so neighbouring payload bits land
// far apart on the lattice.
//
// Forward map: Slot(i) = natural[(i × Stride) mod SlotCount].
//
// Stride must stay coprime with SlotCount for the map to be a bijection;
// this is checked at package initialisation.
package bitmapper
