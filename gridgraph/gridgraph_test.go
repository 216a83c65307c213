package gridgraph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

//----------------------------------------------------------------------------//
// New, FromStrings and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.New(tc.w, tc.h)
			if !errors.Is(err, gridgraph.ErrEmptyGrid) {
				t.Errorf("New(%d,%d) error = %v; want ErrEmptyGrid", tc.w, tc.h, err)
			}
		})
	}
}

// TestFromStrings_Errors verifies that FromStrings rejects malformed layouts.
func TestFromStrings_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"NoRows", []string{}, gridgraph.ErrEmptyGrid},
		{"EmptyRow", []string{""}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", []string{"...", ".."}, gridgraph.ErrNonRectangular},
		{"BadSymbol", []string{".x."}, gridgraph.ErrBadCell},
		{"TwoStarts", []string{"S.S"}, gridgraph.ErrDuplicateMarker},
		{"TwoEnds", []string{"E", "E"}, gridgraph.ErrDuplicateMarker},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.FromStrings(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("FromStrings(%q) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestFromStrings_Markers checks walls and endpoints are placed where drawn.
func TestFromStrings_Markers(t *testing.T) {
	l, err := gridgraph.FromStrings([]string{
		"S.#",
		".#E",
	})
	if err != nil {
		t.Fatalf("FromStrings error: %v", err)
	}
	if l.Grid.Width != 3 || l.Grid.Height != 2 {
		t.Fatalf("size = %dx%d; want 3x2", l.Grid.Width, l.Grid.Height)
	}
	if l.Start.X() != 0 || l.Start.Y() != 0 {
		t.Errorf("Start = %s; want (0,0)", l.Start)
	}
	if l.End.X() != 2 || l.End.Y() != 1 {
		t.Errorf("End = %s; want (2,1)", l.End)
	}
	walls := [][2]int{{2, 0}, {1, 1}}
	for _, xy := range walls {
		n, _ := l.Grid.NodeAt(xy[0], xy[1])
		if !n.IsWall() {
			t.Errorf("(%d,%d) should be a wall", xy[0], xy[1])
		}
	}
	if l.Start.IsWall() || l.End.IsWall() {
		t.Error("endpoints must be open cells")
	}
}

// TestFromStrings_NoMarkers leaves Start and End nil.
func TestFromStrings_NoMarkers(t *testing.T) {
	l, err := gridgraph.FromStrings([]string{"..", ".."})
	if err != nil {
		t.Fatalf("FromStrings error: %v", err)
	}
	if l.Start != nil || l.End != nil {
		t.Errorf("Start=%v End=%v; want both nil", l.Start, l.End)
	}
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.New(3, 2)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}

// TestNew_InitialState verifies coordinates, handles and cleared annotations.
func TestNew_InitialState(t *testing.T) {
	g, _ := gridgraph.New(4, 3)
	if g.Len() != 12 {
		t.Fatalf("Len = %d; want 12", g.Len())
	}
	for i := 0; i < g.Len(); i++ {
		n := g.At(i)
		x, y := g.Coordinate(i)
		if n.X() != x || n.Y() != y || n.Index() != i {
			t.Errorf("node %d = %s index %d; want (%d,%d)", i, n, n.Index(), x, y)
		}
		if n.IsWall() || n.Visited || n.HasParent() {
			t.Errorf("node %s not cleared", n)
		}
		if !math.IsInf(n.Traveled, 1) {
			t.Errorf("node %s Traveled = %v; want +Inf", n, n.Traveled)
		}
	}
}

//----------------------------------------------------------------------------//
// Adjacency Tests
//----------------------------------------------------------------------------//

// coords maps neighbour handles to (x,y) pairs.
func coords(g *gridgraph.Grid, n *gridgraph.Node) [][2]int {
	var out [][2]int
	for _, i := range n.Neighbours() {
		m := g.At(i)
		out = append(out, [2]int{m.X(), m.Y()})
	}

	return out
}

// TestAdjacency_CompleteOrder verifies the eight-direction order of an interior cell.
func TestAdjacency_CompleteOrder(t *testing.T) {
	g, _ := gridgraph.New(3, 3)
	c, _ := g.NodeAt(1, 1)
	got := coords(g, c)
	want := [][2]int{
		{1, 0}, {1, 2}, {0, 1}, {2, 1},
		{0, 0}, {0, 2}, {2, 0}, {2, 2},
	}
	if len(got) != len(want) {
		t.Fatalf("neighbours = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("neighbour[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}

// TestAdjacency_LegacyOrder verifies the historical duplicate down-right entry
// and the missing down-left direction.
func TestAdjacency_LegacyOrder(t *testing.T) {
	g, _ := gridgraph.New(3, 3, gridgraph.WithAdjacency(gridgraph.AdjacencyLegacy))
	c, _ := g.NodeAt(1, 1)
	got := coords(g, c)
	want := [][2]int{
		{1, 0}, {1, 2}, {0, 1}, {2, 1},
		{0, 0}, {2, 2}, {2, 0}, {2, 2},
	}
	if len(got) != len(want) {
		t.Fatalf("neighbours = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("neighbour[%d] = %v; want %v", i, got[i], want[i])
		}
	}

	// Left column: the duplicate is skipped, leaving a single down-right.
	l, _ := g.NodeAt(0, 1)
	if n := len(l.Neighbours()); n != 5 {
		t.Errorf("(0,1) legacy degree = %d; want 5 (%v)", n, coords(g, l))
	}
}

// TestAdjacency_InBoundsNoSelf checks the neighbour invariant on every cell
// for both adjacency modes.
func TestAdjacency_InBoundsNoSelf(t *testing.T) {
	for _, a := range []gridgraph.Adjacency{gridgraph.AdjacencyComplete, gridgraph.AdjacencyLegacy} {
		t.Run(a.String(), func(t *testing.T) {
			g, _ := gridgraph.New(5, 4, gridgraph.WithAdjacency(a))
			for i := 0; i < g.Len(); i++ {
				n := g.At(i)
				for _, j := range n.Neighbours() {
					if j == i {
						t.Errorf("%s lists itself", n)
					}
					m := g.At(j)
					if !g.InBounds(m.X(), m.Y()) {
						t.Errorf("%s lists out-of-bounds %s", n, m)
					}
					dx, dy := m.X()-n.X(), m.Y()-n.Y()
					if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
						t.Errorf("%s lists non-adjacent %s", n, m)
					}
				}
			}
		})
	}
}

// TestAdjacency_CornerDegree verifies corner, edge and interior degrees under Complete.
func TestAdjacency_CornerDegree(t *testing.T) {
	g, _ := gridgraph.New(3, 3)
	cases := []struct {
		x, y, deg int
	}{
		{0, 0, 3}, {2, 2, 3}, {1, 0, 5}, {0, 1, 5}, {1, 1, 8},
	}
	for _, tc := range cases {
		n, _ := g.NodeAt(tc.x, tc.y)
		if got := len(n.Neighbours()); got != tc.deg {
			t.Errorf("degree(%d,%d) = %d; want %d", tc.x, tc.y, got, tc.deg)
		}
	}
}

//----------------------------------------------------------------------------//
// Mutation and lookup Tests
//----------------------------------------------------------------------------//

// TestToggleWall flips the wall flag and rejects out-of-range coordinates.
func TestToggleWall(t *testing.T) {
	g, _ := gridgraph.New(2, 2)
	if err := g.ToggleWall(1, 0); err != nil {
		t.Fatalf("ToggleWall error: %v", err)
	}
	n, _ := g.NodeAt(1, 0)
	if !n.IsWall() {
		t.Error("ToggleWall did not set wall")
	}
	_ = g.ToggleWall(1, 0)
	if n.IsWall() {
		t.Error("second ToggleWall did not clear wall")
	}
	if err := g.ToggleWall(2, 0); !errors.Is(err, gridgraph.ErrOutOfBounds) {
		t.Errorf("ToggleWall(2,0) error = %v; want ErrOutOfBounds", err)
	}
	if err := g.SetWall(-1, 0, true); !errors.Is(err, gridgraph.ErrOutOfBounds) {
		t.Errorf("SetWall(-1,0) error = %v; want ErrOutOfBounds", err)
	}
}

// TestNodeAt_OutOfBounds ensures lookups fail loudly.
func TestNodeAt_OutOfBounds(t *testing.T) {
	g, _ := gridgraph.New(2, 2)
	if _, err := g.NodeAt(0, 2); !errors.Is(err, gridgraph.ErrOutOfBounds) {
		t.Errorf("NodeAt(0,2) error = %v; want ErrOutOfBounds", err)
	}
}

// TestAt_BadHandlePanics verifies At panics with ErrBadHandle.
func TestAt_BadHandlePanics(t *testing.T) {
	g, _ := gridgraph.New(2, 2)
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, gridgraph.ErrBadHandle) {
			t.Errorf("recover() = %v; want ErrBadHandle", r)
		}
	}()
	_ = g.At(4)
}

// TestOwns distinguishes a grid's nodes from look-alikes in another grid.
func TestOwns(t *testing.T) {
	g1, _ := gridgraph.New(2, 2)
	g2, _ := gridgraph.New(2, 2)
	a, _ := g1.NodeAt(1, 1)
	b, _ := g2.NodeAt(1, 1)
	if !g1.Owns(a) {
		t.Error("g1 should own its node")
	}
	if g1.Owns(b) {
		t.Error("g1 should not own g2's node")
	}
	if g1.Owns(nil) {
		t.Error("Owns(nil) should be false")
	}
}
