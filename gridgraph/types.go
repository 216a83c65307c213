// Package gridgraph defines core types, options, and handles
// for the gridgraph subpackage of github.com/katalvlaran/gridpath.
package gridgraph

import "fmt"

// NoParent marks a node whose Parent handle is unset.
const NoParent = -1

// MaxNeighbours is the capacity of a node's neighbour list.
const MaxNeighbours = 8

// Adjacency selects how neighbour lists are populated at construction.
type Adjacency int

const (
	// AdjacencyComplete links all eight surrounding cells:
	// up, down, left, right, up-left, down-left, up-right, down-right.
	AdjacencyComplete Adjacency = iota
	// AdjacencyLegacy reproduces the historical order
	// up, down, left, right, up-left, down-right, up-right, down-right,
	// omitting down-left and listing down-right twice.
	AdjacencyLegacy
)

// String returns a short name for the adjacency mode.
func (a Adjacency) String() string {
	switch a {
	case AdjacencyComplete:
		return "complete"
	case AdjacencyLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("Adjacency(%d)", int(a))
	}
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Adjacency chooses how neighbour lists are built.
	Adjacency Adjacency
}

// Option configures grid construction.
type Option func(*GridOptions)

// DefaultGridOptions returns GridOptions with Adjacency=AdjacencyComplete.
func DefaultGridOptions() GridOptions {
	return GridOptions{Adjacency: AdjacencyComplete}
}

// WithAdjacency selects the neighbour population rule.
func WithAdjacency(a Adjacency) Option {
	return func(o *GridOptions) {
		o.Adjacency = a
	}
}

// Node is one grid cell.
//
// Topology (coordinates, wall flag, neighbours) is read through methods.
// The exported fields are search annotations: every search resets them and
// leaves its result there for the caller to read.
type Node struct {
	x, y  int
	index int
	wall  bool

	nbrs [MaxNeighbours]int
	deg  int

	// Visited is set when the node is expanded (removed from the frontier).
	Visited bool
	// Parent is the handle of the predecessor on the best path found, or NoParent.
	Parent int
	// Traveled is the best known cost from the start (Dijkstra, A*).
	Traveled float64
	// Goal is the heuristic distance to the current end node (Greedy, A*).
	Goal float64
}

// X returns the node's column.
func (n *Node) X() int { return n.x }

// Y returns the node's row.
func (n *Node) Y() int { return n.y }

// Index returns the node's handle in its grid's arena.
func (n *Node) Index() int { return n.index }

// IsWall reports whether the node is an obstacle.
func (n *Node) IsWall() bool { return n.wall }

// HasParent reports whether Parent is set.
func (n *Node) HasParent() bool { return n.Parent != NoParent }

// Neighbours returns the node's neighbour handles in construction order.
// The returned slice aliases the node's storage and must not be modified.
func (n *Node) Neighbours() []int { return n.nbrs[:n.deg] }

// String formats the node as "(x,y)".
func (n *Node) String() string { return fmt.Sprintf("(%d,%d)", n.x, n.y) }

func (n *Node) link(i int) {
	n.nbrs[n.deg] = i
	n.deg++
}

// Grid owns a fixed arena of Width×Height nodes with precomputed adjacency.
// It is not safe for concurrent use; searches and wall edits must be serialized
// by the caller.
type Grid struct {
	Width, Height int
	Adjacency     Adjacency
	nodes         []Node
}

// Layout is a grid built from text together with its optional endpoints.
type Layout struct {
	Grid  *Grid
	Start *Node // nil if the layout had no 'S'
	End   *Node // nil if the layout had no 'E'
}
