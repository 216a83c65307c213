package render

import (
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Text symbols. Walls, start and end reuse the FromStrings layout symbols so a
// rendering of an unsearched grid parses back to the same layout.
const (
	SymbolRoute   = '*'
	SymbolVisited = '+'
)

// Text renders g one row per line. Precedence per cell: start, end, wall,
// route, visited, open. The route is drawn only when end was reached by the
// last search. start and end may be nil.
func Text(g *gridgraph.Grid, start, end *gridgraph.Node) string {
	if g == nil {
		return ""
	}
	onRoute := routeSet(g, end)

	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for i := 0; i < g.Len(); i++ {
		n := g.At(i)
		b.WriteByte(symbol(n, start, end, onRoute[i]))
		if n.X() == g.Width-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func symbol(n, start, end *gridgraph.Node, route bool) byte {
	switch {
	case n == start:
		return gridgraph.SymbolStart
	case n == end:
		return gridgraph.SymbolEnd
	case n.IsWall():
		return gridgraph.SymbolWall
	case route:
		return SymbolRoute
	case n.Visited:
		return SymbolVisited
	default:
		return gridgraph.SymbolOpen
	}
}

// routeSet marks the handles on the route to end, or returns all false.
func routeSet(g *gridgraph.Grid, end *gridgraph.Node) []bool {
	marks := make([]bool, g.Len())
	if end == nil {
		return marks
	}
	path, err := g.PathTo(end)
	if err != nil {
		return marks
	}
	for _, n := range path {
		marks[n.Index()] = true
	}

	return marks
}
