package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// walker encapsulates mutable search state shared by every strategy.
type walker struct {
	g     *gridgraph.Grid
	start *gridgraph.Node
	end   *gridgraph.Node
	opts  Options
	front frontier
	res   *Result

	// expand relaxes cur's neighbours and pushes them onto front.
	expand func(cur *gridgraph.Node)
}

// newWalker validates input, applies options and returns a walker with no
// frontier or expand rule yet.
func newWalker(alg Algorithm, g *gridgraph.Grid, start, end *gridgraph.Node, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if start == nil || end == nil {
		return nil, ErrNodeNil
	}
	if !g.Owns(start) {
		return nil, fmt.Errorf("%w: start %s", ErrForeignNode, start)
	}
	if !g.Owns(end) {
		return nil, fmt.Errorf("%w: end %s", ErrForeignNode, end)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &walker{
		g:     g,
		start: start,
		end:   end,
		opts:  o,
		res:   &Result{Algorithm: alg, Mode: o.Mode},
	}, nil
}

// legacy reports whether the historical update rules are in effect.
func (w *walker) legacy() bool { return w.opts.Mode == ModeLegacy }

// resetLinks clears Visited and Parent on every node.
func (w *walker) resetLinks() {
	for i := 0; i < w.g.Len(); i++ {
		n := w.g.At(i)
		n.Visited = false
		n.Parent = gridgraph.NoParent
	}
}

// resetCosts clears all annotations and seeds the start with zero cost.
func (w *walker) resetCosts() {
	w.g.ClearAnnotations()
	w.start.Traveled = 0
}

// resetGoals recomputes every node's heuristic towards the current end.
func (w *walker) resetGoals() {
	for i := 0; i < w.g.Len(); i++ {
		n := w.g.At(i)
		n.Goal = gridgraph.Distance(n, w.end)
	}
}

// push adds n to the frontier and fires OnEnqueue.
func (w *walker) push(n *gridgraph.Node) {
	w.front.push(n.Index())
	w.res.Enqueued++
	w.opts.OnEnqueue(n)
}

// open calls fn for every neighbour of cur that is neither a wall nor visited.
func (w *walker) open(cur *gridgraph.Node, fn func(n *gridgraph.Node)) {
	for _, i := range cur.Neighbours() {
		n := w.g.At(i)
		if n.IsWall() || n.Visited {
			continue
		}
		fn(n)
	}
}

// loop seeds the frontier with start and expands until end is selected, the
// frontier empties, the context is cancelled, or OnExpand fails.
func (w *walker) loop() (*Result, error) {
	w.push(w.start)
	for !w.front.empty() {
		// cancellation check (once per expansion)
		select {
		case <-w.opts.Ctx.Done():
			return w.res, w.opts.Ctx.Err()
		default:
		}

		cur := w.g.At(w.front.pop())
		// stale duplicate of an already expanded node
		if cur.Visited {
			continue
		}
		cur.Visited = true
		w.res.Expanded++
		if err := w.opts.OnExpand(cur); err != nil {
			return w.res, fmt.Errorf("search: OnExpand error at %s: %w", cur, err)
		}
		if cur == w.end {
			w.res.Found = true
			return w.res, nil
		}
		w.expand(cur)
	}

	return w.res, nil
}

// travelledKey orders handles by Traveled.
func (w *walker) travelledKey(i int) float64 { return w.g.At(i).Traveled }

// goalKey orders handles by Goal.
func (w *walker) goalKey(i int) float64 { return w.g.At(i).Goal }

// estimateKey orders handles by Traveled + Goal.
func (w *walker) estimateKey(i int) float64 {
	n := w.g.At(i)

	return n.Traveled + n.Goal
}
