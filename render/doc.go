// Package render turns populated panel grids into an SVG document.
//
// Each panel's edges are decomposed into chains (see Chains); every chain
// becomes one <path>. Horizontal and vertical runs use H/V commands,
// straight diagonals use L and arcs use a single cubic C approximating a
// quarter circle with arm factor K = 0.5523. Panels stack vertically with a
// fixed gap; the stroke styling is fixed and carries no meaning.
package render
