package gridgraph

import "math"

// Distance returns the Euclidean distance between a and b:
//
//	sqrt((a.x-b.x)² + (a.y-b.y)²)
//
// It is the edge cost for Dijkstra and A* and the heuristic for Greedy and A*.
// Symmetric, non-negative, zero only for equal coordinates.
func Distance(a, b *Node) float64 {
	dx := float64(a.x - b.x)
	dy := float64(a.y - b.y)

	return math.Sqrt(dx*dx + dy*dy)
}

// PathCost sums Distance over consecutive nodes of path.
// An empty or single-node path costs 0.
func PathCost(path []*Node) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += Distance(path[i-1], path[i])
	}

	return total
}
