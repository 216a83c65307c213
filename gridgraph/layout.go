package gridgraph

import "fmt"

// Layout symbols accepted by FromStrings.
const (
	SymbolOpen  = '.'
	SymbolWall  = '#'
	SymbolStart = 'S'
	SymbolEnd   = 'E'
)

// FromStrings builds a grid from text rows, one byte per cell:
// '.' open, '#' wall, 'S' start, 'E' end. Start and end cells are open.
//
// Returns ErrEmptyGrid for no rows or empty rows, ErrNonRectangular for rows
// of differing lengths, ErrBadCell for any other symbol, and
// ErrDuplicateMarker if S or E appears twice.
// Complexity: O(W×H).
func FromStrings(rows []string, opts ...Option) (*Layout, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g, err := New(w, h, opts...)
	if err != nil {
		return nil, err
	}
	l := &Layout{Grid: g}
	for y, row := range rows {
		for x := 0; x < w; x++ {
			n := &g.nodes[g.index(x, y)]
			switch c := row[x]; c {
			case SymbolOpen:
			case SymbolWall:
				n.wall = true
			case SymbolStart:
				if l.Start != nil {
					return nil, fmt.Errorf("%w: second %q at (%d,%d)", ErrDuplicateMarker, c, x, y)
				}
				l.Start = n
			case SymbolEnd:
				if l.End != nil {
					return nil, fmt.Errorf("%w: second %q at (%d,%d)", ErrDuplicateMarker, c, x, y)
				}
				l.End = n
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, c, x, y)
			}
		}
	}

	return l, nil
}
