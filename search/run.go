package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Func is the common signature of the five strategies.
type Func func(g *gridgraph.Grid, start, end *gridgraph.Node, opts ...Option) (*Result, error)

var strategies = [...]Func{
	AlgDFS:      DFS,
	AlgBFS:      BFS,
	AlgDijkstra: Dijkstra,
	AlgGreedy:   Greedy,
	AlgAStar:    AStar,
}

// Lookup returns the strategy for alg, or ErrUnknownAlgorithm.
func Lookup(alg Algorithm) (Func, error) {
	if alg < 0 || int(alg) >= len(strategies) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}

	return strategies[alg], nil
}

// Run dispatches to the strategy named by alg.
func Run(alg Algorithm, g *gridgraph.Grid, start, end *gridgraph.Node, opts ...Option) (*Result, error) {
	fn, err := Lookup(alg)
	if err != nil {
		return nil, err
	}

	return fn(g, start, end, opts...)
}
