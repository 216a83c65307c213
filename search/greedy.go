package search

import "github.com/katalvlaran/gridpath/gridgraph"

// Greedy runs greedy best-first search on g from start towards end.
//
// Goal is recomputed towards the current end, then each iteration expands the
// frontier cell with the smallest Goal (earliest pushed on ties). Travelled
// cost is ignored, so the route is usually short but not guaranteed optimal.
//
// ModeStandard points a cell at the cell that first discovered it.
// ModeLegacy points it at whichever of its visited neighbours lies closest to
// end, re-evaluated every time the cell is seen.
//
// Complexity: O((W×H)²) time from the linear scans, O(W×H) memory.
func Greedy(g *gridgraph.Grid, start, end *gridgraph.Node, opts ...Option) (*Result, error) {
	w, err := newWalker(AlgGreedy, g, start, end, opts)
	if err != nil {
		return nil, err
	}
	w.resetLinks()
	w.resetGoals()
	w.front = newScan(w.goalKey)
	w.expand = func(cur *gridgraph.Node) {
		w.open(cur, func(n *gridgraph.Node) {
			if w.legacy() {
				w.closestVisited(cur, n)
				w.push(n)
				return
			}
			if !n.HasParent() {
				n.Parent = cur.Index()
				w.push(n)
			}
		})
	}

	return w.loop()
}

// closestVisited points n at cur or, if one lies closer to end, at n's
// visited neighbour with the smallest Goal.
func (w *walker) closestVisited(cur, n *gridgraph.Node) {
	best := cur.Goal
	n.Parent = cur.Index()
	for _, j := range n.Neighbours() {
		m := w.g.At(j)
		if m.Visited && m.Goal < best {
			best = m.Goal
			n.Parent = j
		}
	}
}
