package search

import "github.com/katalvlaran/gridpath/gridgraph"

// BFS runs breadth-first search on g from start towards end.
//
// The frontier is a queue, so cells are expanded in non-decreasing step count
// from start (diagonal moves count as one step).
//
// ModeStandard records a cell's parent when it is first discovered and never
// enqueues it twice, which yields a fewest-steps route.
// ModeLegacy re-points the parent and enqueues again every time an expanding
// cell sees the still-unvisited neighbour; later, deeper cells can then
// steal the parent and lengthen the route.
//
// Complexity: O(W×H×8) time, O(W×H) frontier (ModeStandard).
func BFS(g *gridgraph.Grid, start, end *gridgraph.Node, opts ...Option) (*Result, error) {
	w, err := newWalker(AlgBFS, g, start, end, opts)
	if err != nil {
		return nil, err
	}
	w.resetLinks()
	w.front = newFIFO()
	w.expand = func(cur *gridgraph.Node) {
		w.open(cur, func(n *gridgraph.Node) {
			// unvisited with a parent means already queued
			if !w.legacy() && n.HasParent() {
				return
			}
			n.Parent = cur.Index()
			w.push(n)
		})
	}

	return w.loop()
}
