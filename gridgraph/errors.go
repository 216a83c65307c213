package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadCell indicates an unknown symbol in a text layout.
	ErrBadCell = errors.New("gridgraph: unknown cell symbol")
	// ErrDuplicateMarker indicates a layout with more than one start or end marker.
	ErrDuplicateMarker = errors.New("gridgraph: start or end marker appears more than once")
	// ErrOutOfBounds indicates coordinates outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinates out of bounds")
	// ErrBadHandle indicates a node handle outside the arena.
	ErrBadHandle = errors.New("gridgraph: node handle out of range")
	// ErrForeignNode indicates a node reference that is not part of this grid.
	ErrForeignNode = errors.New("gridgraph: node does not belong to this grid")
	// ErrNoPath indicates the target was not reached by the last search.
	ErrNoPath = errors.New("gridgraph: no path to node")
	// ErrCycle indicates a parent chain that revisits a node.
	ErrCycle = errors.New("gridgraph: parent chain contains a cycle")
)
