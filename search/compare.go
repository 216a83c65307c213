package search

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Comparison is one row of a side-by-side run over the same grid.
type Comparison struct {
	Result
	// Steps is the number of moves on the route, or -1 if end was not reached.
	Steps int
	// Cost is the Euclidean length of the route, or +Inf if end was not reached.
	Cost float64
}

// Compare runs each algorithm in turn between the session's start and end and
// records what it found. With no arguments all five strategies run, in
// Algorithms() order. The grid is left annotated by the last algorithm.
func (s *Session) Compare(algs ...Algorithm) ([]Comparison, error) {
	if len(algs) == 0 {
		algs = Algorithms()
	}
	out := make([]Comparison, 0, len(algs))
	for _, alg := range algs {
		res, err := s.Run(alg)
		if err != nil {
			return out, err
		}
		row := Comparison{Result: *res, Steps: -1, Cost: math.Inf(1)}
		path, err := s.Path()
		switch {
		case err == nil:
			row.Steps = len(path) - 1
			row.Cost = gridgraph.PathCost(path)
		case !errors.Is(err, gridgraph.ErrNoPath):
			return out, err
		}
		out = append(out, row)
	}

	return out, nil
}
