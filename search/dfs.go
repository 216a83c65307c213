package search

import "github.com/katalvlaran/gridpath/gridgraph"

// DFS runs depth-first search on g from start towards end.
//
// The frontier is a stack: the most recently pushed cell is expanded next.
// Every open neighbour of the expanding cell is re-pointed at it and pushed,
// so a cell's parent is always the cell it will be popped under. The route
// is rarely the shortest; DFS is here for comparison.
//
// Both modes behave identically.
// Complexity: O(W×H×8) time, O(W×H×8) frontier in the worst case.
func DFS(g *gridgraph.Grid, start, end *gridgraph.Node, opts ...Option) (*Result, error) {
	w, err := newWalker(AlgDFS, g, start, end, opts)
	if err != nil {
		return nil, err
	}
	w.resetLinks()
	w.front = newLIFO()
	w.expand = func(cur *gridgraph.Node) {
		w.open(cur, func(n *gridgraph.Node) {
			n.Parent = cur.Index()
			w.push(n)
		})
	}

	return w.loop()
}
