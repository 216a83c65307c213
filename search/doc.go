// Package search provides five pathfinding strategies over a gridgraph.Grid:
// depth-first, breadth-first, Dijkstra, greedy best-first and A*.
//
// What
//
//   - Each strategy resets the grid's search annotations, walks a frontier
//     from start until end is selected or the frontier empties, and leaves
//     the outcome on the nodes themselves:
//   - Visited: every expanded cell
//   - Parent:  a handle chain from end back to start
//   - Traveled: best known cost from start (Dijkstra, A*)
//   - Goal:    straight-line distance to end (Greedy, A*)
//   - The returned Result only summarises (Found, Expanded, Enqueued); read
//     the route with Grid.PathTo(end) or Session.Path().
//   - Walls are never traversed as intermediate cells. A walled start or end
//     is not special-cased.
//
// Frontiers
//
//	| Strategy  | Frontier          | Selection (ties: earliest pushed) |
//	|-----------|-------------------|-----------------------------------|
//	| DFS       | stack             | newest                            |
//	| BFS       | queue             | oldest                            |
//	| Dijkstra  | multiset, scanned | min Traveled                      |
//	| Greedy    | multiset, scanned | min Goal                          |
//	| A*        | multiset, scanned | min Traveled + Goal               |
//
// The weighted frontiers are scanned linearly on every selection rather than
// kept in a heap, so expansion order and tie-breaks are easy to follow when
// the search is animated.
//
// Modes
//
//   - ModeStandard (default): one-hop relaxation through the expanding cell;
//     BFS and Greedy fix a cell's parent at first discovery. BFS routes have
//     the fewest steps; Dijkstra and A* routes have the lowest Euclidean cost.
//   - ModeLegacy: each candidate is relaxed from its own visited neighbours
//     (a two-hop lookahead), and BFS re-points parents on every push. Pair it
//     with gridgraph.AdjacencyLegacy to reproduce historical output exactly.
//
// Usage
//
//	l, _ := gridgraph.FromStrings(rows)
//	res, err := search.AStar(l.Grid, l.Start, l.End)
//	if err != nil {
//		// ErrGridNil, ErrNodeNil, ErrForeignNode, ErrOptionViolation,
//		// context errors, or an OnExpand error
//	}
//	path, err := l.Grid.PathTo(l.End) // gridgraph.ErrNoPath if !res.Found
//
//	// Front ends that move endpoints and toggle walls between searches:
//	s, _ := search.NewSession(l.Grid, l.Start, l.End)
//	_ = s.ToggleWall(3, 4)
//	_, _ = s.Run(search.AlgBFS)
//	rows, _ := s.Compare() // all five, side by side
//
// Options
//
//   - WithContext(ctx):  cancellation, checked once per expansion.
//   - WithMode(m):       ModeStandard or ModeLegacy.
//   - WithOnExpand(fn):  called per expansion; an error aborts the search.
//   - WithOnEnqueue(fn): called per frontier push.
//
// Concurrency
//
//	Searches are synchronous and mutate the grid in place. Run one search at
//	a time per grid and do not edit walls while a search is running.
package search
