// Package render draws a searched gridgraph.Grid for humans.
//
//   - Text: one rune per cell, for terminals and golden tests.
//   - Image / PNG: a raster drawn with github.com/fogleman/gg, one square per
//     cell with optional links between open neighbours.
//
// Both read the annotations left by the last search (Visited, Parent) and
// never modify the grid.
//
// Colours
//
//	| Cell            | Colour    |
//	|-----------------|-----------|
//	| open            | grey      |
//	| wall            | black     |
//	| visited         | dark grey |
//	| start           | green     |
//	| end             | red       |
//	| route           | yellow    |
//	| neighbour links | grey      |
package render
