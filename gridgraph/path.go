package gridgraph

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// PathTo reconstructs the route the last search found to end by following
// Parent handles back to the root (the node with no parent), then reversing.
// The returned slice runs start → end; a start==end search yields [end].
//
// Returns ErrForeignNode if end is not part of g, ErrNoPath if the last search
// did not reach end, and ErrCycle if the chain revisits a node.
// Complexity: O(L) for a chain of length L.
func (g *Grid) PathTo(end *Node) ([]*Node, error) {
	if !g.Owns(end) {
		return nil, ErrForeignNode
	}
	if !end.Visited {
		return nil, fmt.Errorf("%w: %s", ErrNoPath, end)
	}

	seen := mapset.New[int]()
	path := []*Node{}
	for cur := end; ; cur = g.At(cur.Parent) {
		if seen.Has(cur.index) {
			return nil, fmt.Errorf("%w: %s repeats", ErrCycle, cur)
		}
		seen.Put(cur.index)
		path = append(path, cur)
		if !cur.HasParent() {
			break
		}
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
