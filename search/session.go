package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Session binds a grid to the start and end cells a front end moves around
// between searches. It runs one search at a time and is not safe for
// concurrent use.
type Session struct {
	grid  *gridgraph.Grid
	start *gridgraph.Node
	end   *gridgraph.Node
	opts  []Option
	last  *Result
}

// NewSession validates that start and end belong to g. The options are applied
// to every Run before any per-call options.
func NewSession(g *gridgraph.Grid, start, end *gridgraph.Node, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	s := &Session{grid: g, opts: opts}
	if err := s.SetStart(start); err != nil {
		return nil, err
	}
	if err := s.SetEnd(end); err != nil {
		return nil, err
	}

	return s, nil
}

// Grid returns the session's grid.
func (s *Session) Grid() *gridgraph.Grid { return s.grid }

// Start returns the current start cell.
func (s *Session) Start() *gridgraph.Node { return s.start }

// End returns the current end cell.
func (s *Session) End() *gridgraph.Node { return s.end }

// Last returns the result of the most recent Run, or nil.
func (s *Session) Last() *Result { return s.last }

// SetStart moves the start cell. n must belong to the session's grid.
func (s *Session) SetStart(n *gridgraph.Node) error {
	if err := s.check(n); err != nil {
		return err
	}
	s.start = n

	return nil
}

// SetEnd moves the end cell. n must belong to the session's grid.
func (s *Session) SetEnd(n *gridgraph.Node) error {
	if err := s.check(n); err != nil {
		return err
	}
	s.end = n

	return nil
}

func (s *Session) check(n *gridgraph.Node) error {
	if n == nil {
		return ErrNodeNil
	}
	if !s.grid.Owns(n) {
		return fmt.Errorf("%w: %s", ErrForeignNode, n)
	}

	return nil
}

// ToggleWall flips the wall at (x,y); see gridgraph.Grid.ToggleWall.
func (s *Session) ToggleWall(x, y int) error {
	return s.grid.ToggleWall(x, y)
}

// Run executes alg between the current start and end.
func (s *Session) Run(alg Algorithm, opts ...Option) (*Result, error) {
	all := make([]Option, 0, len(s.opts)+len(opts))
	all = append(all, s.opts...)
	all = append(all, opts...)

	res, err := Run(alg, s.grid, s.start, s.end, all...)
	if res != nil {
		s.last = res
	}

	return res, err
}

// Path returns the route to the current end left by the last Run.
// It returns gridgraph.ErrNoPath when end was not reached.
func (s *Session) Path() ([]*gridgraph.Node, error) {
	return s.grid.PathTo(s.end)
}
