package gridgraph

import (
	"fmt"
	"math"
)

type offset struct{ dx, dy int }

// completeOffsets lists all eight directions in neighbour order.
var completeOffsets = [MaxNeighbours]offset{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0}, // up, down, left, right
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1}, // up-left, down-left, up-right, down-right
}

// legacyOffsets has down-right in the down-left slot.
var legacyOffsets = [MaxNeighbours]offset{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {1, 1}, {1, -1}, {1, 1},
}

// legacyDuplicateSlot is the position of the misplaced down-right entry.
const legacyDuplicateSlot = 5

// New constructs a width×height grid with every cell open and unannotated,
// then populates each node's neighbour list according to opts.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int, opts ...Option) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}
	o := DefaultGridOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grid{
		Width:     width,
		Height:    height,
		Adjacency: o.Adjacency,
		nodes:     make([]Node, width*height),
	}
	for i := range g.nodes {
		n := &g.nodes[i]
		n.x, n.y = g.Coordinate(i)
		n.index = i
		n.Parent = NoParent
		n.Traveled = math.Inf(1)
	}
	for i := range g.nodes {
		g.populate(&g.nodes[i])
	}

	return g, nil
}

// populate fills n's neighbour list with in-bounds cells only.
func (g *Grid) populate(n *Node) {
	table := &completeOffsets
	if g.Adjacency == AdjacencyLegacy {
		table = &legacyOffsets
	}
	for slot, d := range table {
		// The misplaced entry was historically guarded by the down-left check.
		if g.Adjacency == AdjacencyLegacy && slot == legacyDuplicateSlot && n.x == 0 {
			continue
		}
		nx, ny := n.x+d.dx, n.y+d.dy
		if !g.InBounds(nx, ny) {
			continue
		}
		n.link(g.index(nx, ny))
	}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Len returns the number of nodes in the grid.
func (g *Grid) Len() int { return len(g.nodes) }

// At dereferences a node handle. It panics with ErrBadHandle if i is outside
// the arena; handles come from Node.Index, Node.Parent or Node.Neighbours and
// are always valid for the grid that produced them.
func (g *Grid) At(i int) *Node {
	if i < 0 || i >= len(g.nodes) {
		panic(fmt.Errorf("%w: %d (grid has %d nodes)", ErrBadHandle, i, len(g.nodes)))
	}

	return &g.nodes[i]
}

// NodeAt returns the node at (x,y) or ErrOutOfBounds.
func (g *Grid) NodeAt(x, y int) (*Node, error) {
	if !g.InBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, g.Width, g.Height)
	}

	return &g.nodes[g.index(x, y)], nil
}

// Owns reports whether n is a node of this grid (not merely one with the same coordinates).
func (g *Grid) Owns(n *Node) bool {
	if n == nil || n.index < 0 || n.index >= len(g.nodes) {
		return false
	}

	return &g.nodes[n.index] == n
}

// ToggleWall flips the wall flag of the node at (x,y).
// Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) ToggleWall(x, y int) error {
	n, err := g.NodeAt(x, y)
	if err != nil {
		return err
	}
	n.wall = !n.wall

	return nil
}

// SetWall sets the wall flag of the node at (x,y).
// Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) SetWall(x, y int, wall bool) error {
	n, err := g.NodeAt(x, y)
	if err != nil {
		return err
	}
	n.wall = wall

	return nil
}

// ClearAnnotations resets every node's search state:
// Visited=false, Parent=NoParent, Traveled=+Inf, Goal=0.
// Complexity: O(W×H).
func (g *Grid) ClearAnnotations() {
	inf := math.Inf(1)
	for i := range g.nodes {
		n := &g.nodes[i]
		n.Visited = false
		n.Parent = NoParent
		n.Traveled = inf
		n.Goal = 0
	}
}
