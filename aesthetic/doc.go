// Package aesthetic adds decorative diagonals to a panel that already holds
// its data edges. Decorations never carry data: the decoder discards every
// diagonal.
//
// Two passes run per variant:
//
//  1. Corner arcs. A node with exactly one horizontal and one vertical edge
//     may gain an arc joining the two far endpoints, curving outward around
//     the bend. Acceptance is a hash draw against a probability of 0.30,
//     raised linearly towards 0.60 in quadrants sparser than average. Only
//     the degree limit constrains arcs.
//
//  2. Fill diagonals. Cells without a diagonal are ranked sparsest quadrant
//     first and up to 5% of all cells receive a diagonal (an arc when the
//     cell already has two or more boundary edges, a line otherwise). A
//     candidate is rejected when it would exceed the degree limit, close a
//     cycle (endpoints already connected) or, for lines, enclose a triangle.
//
// Complexity: O(V + E + C log C) per call, C = 64 cells.
package aesthetic
