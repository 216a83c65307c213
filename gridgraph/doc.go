// Package gridgraph treats a fixed-size 2D grid of cells as a graph that the
// search package walks to find routes between two cells.
//
// What:
//
//   - Grid owns every Node in a flat arena indexed by y×Width + x.
//   - Each Node carries static topology (coordinates, wall flag, up to eight
//     neighbour handles) and mutable search annotations (Visited, Parent,
//     Traveled, Goal) that a search leaves behind for the caller to draw.
//   - Parent and neighbour links are integer handles into the arena, never
//     pointers, so a Grid can be copied without dangling references.
//   - Distance is the Euclidean metric shared by the weighted searches as
//     both edge cost and heuristic.
//
// Adjacency:
//
//   - AdjacencyComplete (default): up, down, left, right, up-left, down-left,
//     up-right, down-right.
//   - AdjacencyLegacy: the historical order in which down-left is missing and
//     down-right is listed twice. Kept for behavioural parity with older
//     visualisations; every listed neighbour is still in bounds.
//
// Complexity:
//
//   - New:              O(W×H), Memory: O(W×H).
//   - ClearAnnotations: O(W×H).
//   - PathTo:           O(L) for a chain of length L, Memory: O(L).
//
// Errors:
//
//   - ErrEmptyGrid:       non-positive dimensions or no rows.
//   - ErrNonRectangular:  FromStrings rows of differing lengths.
//   - ErrBadCell:         FromStrings symbol outside ".#SE".
//   - ErrDuplicateMarker: more than one S or E in a layout.
//   - ErrOutOfBounds:     coordinates outside the grid.
//   - ErrBadHandle:       At called with an index outside the arena (panics).
//   - ErrForeignNode:     a node that does not belong to this grid.
//   - ErrNoPath:          PathTo on a node the last search did not reach.
//   - ErrCycle:           PathTo found a repeated node in the parent chain.
package gridgraph
