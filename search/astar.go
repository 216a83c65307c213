package search

import "github.com/katalvlaran/gridpath/gridgraph"

// AStar runs A* on g from start towards end.
//
// Costs and relaxation are those of Dijkstra; selection adds the Euclidean
// heuristic Goal, so each iteration expands the frontier cell with the
// smallest Traveled + Goal. The heuristic never overestimates on an
// eight-connected grid with Euclidean steps, so in ModeStandard the route is
// optimal and end.Traveled equals Dijkstra's.
//
// Complexity: O((W×H)²) time from the linear scans, O(W×H) memory.
func AStar(g *gridgraph.Grid, start, end *gridgraph.Node, opts ...Option) (*Result, error) {
	w, err := newWalker(AlgAStar, g, start, end, opts)
	if err != nil {
		return nil, err
	}
	w.resetCosts()
	w.resetGoals()
	w.front = newScan(w.estimateKey)
	w.expand = w.relaxCosts

	return w.loop()
}
