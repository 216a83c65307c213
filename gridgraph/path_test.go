package gridgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

func mustNode(t *testing.T, g *gridgraph.Grid, x, y int) *gridgraph.Node {
	t.Helper()
	n, err := g.NodeAt(x, y)
	require.NoError(t, err)

	return n
}

func TestDistance(t *testing.T) {
	g, err := gridgraph.New(5, 5)
	require.NoError(t, err)

	a := mustNode(t, g, 0, 0)
	b := mustNode(t, g, 3, 4)
	c := mustNode(t, g, 1, 1)

	assert.InDelta(t, 5.0, gridgraph.Distance(a, b), 1e-12)
	assert.InDelta(t, gridgraph.Distance(a, b), gridgraph.Distance(b, a), 1e-12, "symmetric")
	assert.InDelta(t, math.Sqrt2, gridgraph.Distance(a, c), 1e-12)
	assert.Zero(t, gridgraph.Distance(c, c))
}

func TestPathCost(t *testing.T) {
	g, err := gridgraph.New(3, 3)
	require.NoError(t, err)

	path := []*gridgraph.Node{mustNode(t, g, 0, 0), mustNode(t, g, 1, 1), mustNode(t, g, 2, 1)}
	assert.InDelta(t, math.Sqrt2+1, gridgraph.PathCost(path), 1e-12)
	assert.Zero(t, gridgraph.PathCost(path[:1]))
	assert.Zero(t, gridgraph.PathCost(nil))
}

func TestPathTo_Chain(t *testing.T) {
	g, err := gridgraph.New(3, 1)
	require.NoError(t, err)

	a, b, c := mustNode(t, g, 0, 0), mustNode(t, g, 1, 0), mustNode(t, g, 2, 0)
	for _, n := range []*gridgraph.Node{a, b, c} {
		n.Visited = true
	}
	b.Parent = a.Index()
	c.Parent = b.Index()

	path, err := g.PathTo(c)
	require.NoError(t, err)
	assert.Equal(t, []*gridgraph.Node{a, b, c}, path)
}

func TestPathTo_StartIsEnd(t *testing.T) {
	g, err := gridgraph.New(2, 2)
	require.NoError(t, err)

	n := mustNode(t, g, 1, 1)
	n.Visited = true
	path, err := g.PathTo(n)
	require.NoError(t, err)
	assert.Equal(t, []*gridgraph.Node{n}, path)
}

func TestPathTo_Unreached(t *testing.T) {
	g, err := gridgraph.New(2, 2)
	require.NoError(t, err)

	_, err = g.PathTo(mustNode(t, g, 1, 1))
	assert.ErrorIs(t, err, gridgraph.ErrNoPath)
}

func TestPathTo_Cycle(t *testing.T) {
	g, err := gridgraph.New(2, 1)
	require.NoError(t, err)

	a, b := mustNode(t, g, 0, 0), mustNode(t, g, 1, 0)
	a.Visited, b.Visited = true, true
	a.Parent = b.Index()
	b.Parent = a.Index()

	_, err = g.PathTo(b)
	assert.ErrorIs(t, err, gridgraph.ErrCycle)
}

func TestPathTo_ForeignNode(t *testing.T) {
	g1, err := gridgraph.New(2, 2)
	require.NoError(t, err)
	g2, err := gridgraph.New(2, 2)
	require.NoError(t, err)

	_, err = g1.PathTo(mustNode(t, g2, 0, 0))
	assert.ErrorIs(t, err, gridgraph.ErrForeignNode)
}

func TestClearAnnotations(t *testing.T) {
	g, err := gridgraph.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.SetWall(1, 1, true))

	n := mustNode(t, g, 0, 1)
	n.Visited = true
	n.Parent = 0
	n.Traveled = 3
	n.Goal = 2

	g.ClearAnnotations()
	assert.False(t, n.Visited)
	assert.False(t, n.HasParent())
	assert.True(t, math.IsInf(n.Traveled, 1))
	assert.Zero(t, n.Goal)
	assert.True(t, mustNode(t, g, 1, 1).IsWall(), "walls are topology, not annotations")
}
