// Package gridpath is a small workbench for pathfinding on 8-connected grids:
// build a grid, put walls on it, and watch five classic searches find (or fail
// to find) a route between two cells.
//
// 🚀 What is gridpath?
//
//	A synchronous, allocation-light library that brings together:
//		• Grid: fixed W×H arena of cells with walls and 8-way neighbours
//		• Metric: Euclidean step costs (1 orthogonal, √2 diagonal)
//		• Searches: DFS, BFS, Dijkstra, Greedy best-first, A*
//		• Sessions: move endpoints, toggle walls, compare strategies
//		• Rendering: ASCII and PNG snapshots of a searched grid
//
// ✨ Why gridpath?
//
//   - Inspectable: every search leaves Visited/Parent/Traveled/Goal on the
//     cells, so a front end can draw the explored region and the route
//   - Comparable: all strategies share one frontier loop and one signature
//   - Reproducible: a legacy mode replays the historical neighbour order and
//     update rules cell for cell
//   - Extensible: OnExpand/OnEnqueue hooks for animation and tracing
//
// Packages:
//
//	gridgraph/     Grid, Node, Distance, FromStrings, PathTo
//	search/        DFS, BFS, Dijkstra, Greedy, AStar, Session, Compare
//	render/        Text and PNG output
//	cmd/gridpath/  command-line driver
//
// Quick ASCII example (S start, E end, # wall, * route, + explored):
//
//	S*#..
//	+#*#.
//	++#*E
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
//	gridpath -width 40 -height 20 -algo all -png out.png
package gridpath
