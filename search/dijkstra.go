package search

import "github.com/katalvlaran/gridpath/gridgraph"

// Dijkstra runs Dijkstra's algorithm on g from start towards end with
// Euclidean edge costs (1 orthogonal, √2 diagonal).
//
// The frontier is an unordered multiset; each iteration selects the cell with
// the smallest Traveled by linear scan, earliest pushed first on ties. On
// return, Traveled on every expanded cell is its final cost from start.
//
// Complexity: O((W×H)²) time from the linear scans, O(W×H) memory.
func Dijkstra(g *gridgraph.Grid, start, end *gridgraph.Node, opts ...Option) (*Result, error) {
	w, err := newWalker(AlgDijkstra, g, start, end, opts)
	if err != nil {
		return nil, err
	}
	w.resetCosts()
	w.front = newScan(w.travelledKey)
	w.expand = w.relaxCosts

	return w.loop()
}

// relaxCosts updates Traveled/Parent of cur's open neighbours and pushes them.
// Shared by Dijkstra and A*.
func (w *walker) relaxCosts(cur *gridgraph.Node) {
	w.open(cur, func(n *gridgraph.Node) {
		if w.legacy() {
			w.relaxTwoHop(cur, n)
			w.push(n)
			return
		}
		if relax(cur, n) {
			w.push(n)
		}
	})
}

// relaxTwoHop lowers n's cost through cur or any of n's own visited
// neighbours, whichever is cheapest.
func (w *walker) relaxTwoHop(cur, n *gridgraph.Node) {
	relax(cur, n)
	for _, j := range n.Neighbours() {
		if m := w.g.At(j); m.Visited {
			relax(m, n)
		}
	}
}

// relax points n at via if that lowers n's cost, and reports whether it did.
func relax(via, n *gridgraph.Node) bool {
	cost := via.Traveled + gridgraph.Distance(via, n)
	if cost >= n.Traveled {
		return false
	}
	n.Traveled = cost
	n.Parent = via.Index()

	return true
}
