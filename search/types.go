package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrNodeNil is returned if the start or end node is nil.
	ErrNodeNil = errors.New("search: start or end node is nil")

	// ErrForeignNode is returned when start or end belongs to a different grid.
	ErrForeignNode = errors.New("search: node does not belong to the grid")

	// ErrUnknownAlgorithm is returned for an Algorithm value or name with no strategy.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Algorithm identifies one of the five search strategies.
type Algorithm int

const (
	// AlgDFS expands the most recently discovered cell (LIFO frontier).
	AlgDFS Algorithm = iota
	// AlgBFS expands the oldest discovered cell (FIFO frontier).
	AlgBFS
	// AlgDijkstra expands the cell with the smallest travelled cost.
	AlgDijkstra
	// AlgGreedy expands the cell closest to the end by straight-line distance.
	AlgGreedy
	// AlgAStar expands the cell with the smallest travelled cost plus heuristic.
	AlgAStar
)

var algorithmNames = [...]string{
	AlgDFS:      "dfs",
	AlgBFS:      "bfs",
	AlgDijkstra: "dijkstra",
	AlgGreedy:   "greedy",
	AlgAStar:    "astar",
}

// String returns the short name used by ParseAlgorithm.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Algorithms returns every strategy in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgDFS, AlgBFS, AlgDijkstra, AlgGreedy, AlgAStar}
}

// ParseAlgorithm maps a name to an Algorithm. Matching is case-insensitive and
// accepts the short names plus a few long forms ("depth-first", "a*", ...).
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dfs", "depth-first":
		return AlgDFS, nil
	case "bfs", "breadth-first":
		return AlgBFS, nil
	case "dijkstra":
		return AlgDijkstra, nil
	case "greedy", "greedy-bfs", "best-first":
		return AlgGreedy, nil
	case "astar", "a*", "a-star":
		return AlgAStar, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Mode selects between the standard update rules and the historical ones.
type Mode int

const (
	// ModeStandard uses one-hop relaxation from the expanding node and sets
	// BFS/Greedy parents once, on first discovery.
	ModeStandard Mode = iota
	// ModeLegacy relaxes each candidate from its already-visited neighbours
	// (two-hop lookahead) and lets BFS overwrite parents on every push.
	ModeLegacy
)

// String returns "standard" or "legacy".
func (m Mode) String() string {
	switch m {
	case ModeStandard:
		return "standard"
	case ModeLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Option configures search behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation; it is checked once per expansion.
	Ctx context.Context

	// Mode selects the update rules. Default ModeStandard.
	Mode Mode

	// OnExpand is called after a node is marked visited. If it returns an
	// error, the search aborts and propagates that error.
	OnExpand func(n *gridgraph.Node) error

	// OnEnqueue is called whenever a node is pushed onto the frontier.
	OnEnqueue func(n *gridgraph.Node)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Context.Background()
//   - ModeStandard
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Mode:      ModeStandard,
		OnExpand:  func(*gridgraph.Node) error { return nil },
		OnEnqueue: func(*gridgraph.Node) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMode selects the update rules. Unknown modes are an ErrOptionViolation.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != ModeStandard && m != ModeLegacy {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithOnExpand registers a callback to run on every expansion; returning an
// error from this callback stops the search.
func WithOnExpand(fn func(n *gridgraph.Node) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnEnqueue registers a callback to run on every frontier push.
func WithOnEnqueue(fn func(n *gridgraph.Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// Result summarises a finished search. The route itself lives in the grid's
// Parent handles; use Grid.PathTo(end) to read it.
type Result struct {
	Algorithm Algorithm
	Mode      Mode
	// Found reports whether end was selected from the frontier.
	Found bool
	// Expanded counts nodes marked visited.
	Expanded int
	// Enqueued counts frontier pushes, duplicates included.
	Enqueued int
}
