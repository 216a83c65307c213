package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

var errBadPoint = errors.New("want x,y")

// loadLayout reads path with gridgraph.FromStrings, or builds an open w×h
// grid with no markers when path is empty.
func loadLayout(path string, w, h int, opts []gridgraph.Option) (*gridgraph.Layout, error) {
	if path == "" {
		g, err := gridgraph.New(w, h, opts...)
		if err != nil {
			return nil, err
		}
		return &gridgraph.Layout{Grid: g}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return gridgraph.FromStrings(splitRows(string(data)), opts...)
}

// splitRows splits a map file into rows, tolerating CRLF, trailing spaces and
// trailing blank lines.
func splitRows(data string) []string {
	rows := strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n")
	for i := range rows {
		rows[i] = strings.TrimRight(rows[i], " \t")
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	return rows
}

// placeEndpoints applies -start/-end over the layout's markers. Missing
// endpoints default to the top-left and bottom-right corners.
func placeEndpoints(l *gridgraph.Layout, start, end string) error {
	g := l.Grid
	pick := func(flagVal string, marker *gridgraph.Node, dx, dy int) (*gridgraph.Node, error) {
		if flagVal == "" {
			if marker != nil {
				return marker, nil
			}
			return g.NodeAt(dx, dy)
		}
		x, y, err := parsePoint(flagVal)
		if err != nil {
			return nil, err
		}
		return g.NodeAt(x, y)
	}

	var err error
	if l.Start, err = pick(start, l.Start, 0, 0); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	if l.End, err = pick(end, l.End, g.Width-1, g.Height-1); err != nil {
		return fmt.Errorf("end: %w", err)
	}

	return nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (x, y int, err error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%q: %w", s, errBadPoint)
	}
	if x, err = strconv.Atoi(strings.TrimSpace(xs)); err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, errBadPoint)
	}
	if y, err = strconv.Atoi(strings.TrimSpace(ys)); err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, errBadPoint)
	}

	return x, y, nil
}

// scatterWalls walls each cell with probability density, leaving keep open.
func scatterWalls(g *gridgraph.Grid, r *rand.Rand, density float64, keep ...*gridgraph.Node) error {
	if density < 0 || density > 1 {
		return fmt.Errorf("density %v outside [0,1]", density)
	}
	for i := 0; i < g.Len(); i++ {
		n := g.At(i)
		if r.Float64() >= density {
			continue
		}
		if err := g.SetWall(n.X(), n.Y(), true); err != nil {
			return err
		}
	}
	for _, n := range keep {
		if err := g.SetWall(n.X(), n.Y(), false); err != nil {
			return err
		}
	}

	return nil
}

// selectAlgorithms maps -algo to the strategies to run.
func selectAlgorithms(name string) ([]search.Algorithm, error) {
	if strings.EqualFold(strings.TrimSpace(name), "all") {
		return search.Algorithms(), nil
	}
	alg, err := search.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}

	return []search.Algorithm{alg}, nil
}
