package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/search"
)

var (
	version = "--- set from makefile ---"

	help        = flag.Bool("help", false, "show help message")
	showVersion = flag.Bool("version", false, "show command version")
	verbose     = flag.Bool("verbose", false, "log every expansion at debug level")

	width   = flag.Int("width", 32, "grid width when no -map is given")
	height  = flag.Int("height", 16, "grid height when no -map is given")
	density = flag.Float64("density", 0.25, "wall probability per cell for generated grids")
	seed    = flag.Int64("seed", 0, "random seed for generated grids (0: time based)")
	mapFile = flag.String("map", "", "read the grid from a text file of '.', '#', 'S' and 'E'")

	startAt = flag.String("start", "", "start cell as x,y (default: S marker or top-left)")
	endAt   = flag.String("end", "", "end cell as x,y (default: E marker or bottom-right)")
	algo    = flag.String("algo", "astar", "dfs, bfs, dijkstra, greedy, astar or all")
	legacy  = flag.Bool("legacy", false, "use the legacy neighbour order and update rules")
	pngOut  = flag.String("png", "", "write a PNG of the final grid to this file")
)

func main() {
	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	if *showVersion {
		fmt.Println(version)
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, logger); err != nil {
		logger.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	// ----------------------------------------------------------------------------
	// Grid

	var gopts []gridgraph.Option
	sopts := []search.Option{search.WithContext(ctx)}
	if *legacy {
		gopts = append(gopts, gridgraph.WithAdjacency(gridgraph.AdjacencyLegacy))
		sopts = append(sopts, search.WithMode(search.ModeLegacy))
	}

	l, err := loadLayout(*mapFile, *width, *height, gopts)
	if err != nil {
		return fmt.Errorf("could not build grid: %w", err)
	}
	if err := placeEndpoints(l, *startAt, *endAt); err != nil {
		return fmt.Errorf("could not place endpoints: %w", err)
	}
	if *mapFile == "" {
		s := *seed
		if s == 0 {
			s = time.Now().UnixNano()
		}
		if err := scatterWalls(l.Grid, rand.New(rand.NewSource(s)), *density, l.Start, l.End); err != nil {
			return fmt.Errorf("could not generate walls: %w", err)
		}
		logger.Info("generated walls", "seed", s, "density", *density)
	}
	logger.Info("grid ready",
		"width", l.Grid.Width,
		"height", l.Grid.Height,
		"adjacency", l.Grid.Adjacency.String(),
		"start", l.Start.String(),
		"end", l.End.String(),
	)

	// ----------------------------------------------------------------------------
	// Search

	algs, err := selectAlgorithms(*algo)
	if err != nil {
		return err
	}
	sopts = append(sopts, search.WithOnExpand(func(n *gridgraph.Node) error {
		logger.Debug("expand", "node", n.String())
		return nil
	}))
	session, err := search.NewSession(l.Grid, l.Start, l.End, sopts...)
	if err != nil {
		return fmt.Errorf("could not start session: %w", err)
	}

	rows, err := session.Compare(algs...)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	for _, r := range rows {
		logger.Info("search finished",
			"algo", r.Algorithm.String(),
			"mode", r.Mode.String(),
			"found", r.Found,
			"expanded", r.Expanded,
			"enqueued", r.Enqueued,
			"steps", r.Steps,
		)
	}

	// ----------------------------------------------------------------------------
	// Output

	if err := writeReport(os.Stdout, rows); err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}
	fmt.Print(render.Text(l.Grid, l.Start, l.End))

	if *pngOut != "" {
		if err := writePNG(*pngOut, l); err != nil {
			return fmt.Errorf("could not write png: %w", err)
		}
		logger.Info("wrote png", "path", *pngOut, "algo", session.Last().Algorithm.String())
	}

	return nil
}

// writeReport prints one aligned row per comparison.
func writeReport(w io.Writer, rows []search.Comparison) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGO\tFOUND\tSTEPS\tCOST\tEXPANDED\tENQUEUED")
	for _, r := range rows {
		steps, cost := "-", "-"
		if r.Found && !math.IsInf(r.Cost, 1) {
			steps = fmt.Sprint(r.Steps)
			cost = fmt.Sprintf("%.3f", r.Cost)
		}
		fmt.Fprintf(tw, "%s\t%t\t%s\t%s\t%d\t%d\n", r.Algorithm, r.Found, steps, cost, r.Expanded, r.Enqueued)
	}

	return tw.Flush()
}

func writePNG(path string, l *gridgraph.Layout) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return render.PNG(f, l.Grid, l.Start, l.End)
}
