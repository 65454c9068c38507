// Package randfill adds per-variant noise edges to the empty data slots of a
// decorated panel.
//
// Masking scheme: every selected slot gets a pattern in 1..6 (never 7).
// Variant v shows the slot iff bit (2−v) of the pattern is set, so at least
// one of the three variants leaves every noise slot empty. Intersecting the
// three variants therefore recovers exactly the data slots, which are
// present in all of them.
//
// Quotas: the panel targets 58 visual edges. Each quadrant receives
// round(2·needed/8) selections plus round(2·(avg − own)) to favour sparse
// quadrants; the factor 2 offsets the ½ chance that a selected slot is shown
// in a given variant. Quadrants stop early when their candidates run out.
package randfill
