package render

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for raster rendering.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("render: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("render: invalid option supplied")
)

// Option configures raster output.
type Option func(*Options)

// Options holds raster drawing parameters.
type Options struct {
	// CellSize is the side of one cell in pixels. Default 16.
	CellSize int
	// Border is the gap in pixels left around each cell square, through which
	// links show. Must satisfy 2*Border < CellSize. Default 2.
	Border int
	// Links draws a thin line from every open cell to each open neighbour.
	// Default true.
	Links bool

	err error
}

// DefaultOptions returns 16px cells with a 2px border and links on.
func DefaultOptions() Options {
	return Options{CellSize: 16, Border: 2, Links: true}
}

// WithCellSize sets the cell side in pixels; it must be positive.
func WithCellSize(px int) Option {
	return func(o *Options) {
		if px < 1 {
			o.err = fmt.Errorf("%w: cell size %d", ErrOptionViolation, px)
			return
		}
		o.CellSize = px
	}
}

// WithBorder sets the per-cell gap in pixels; it must be non-negative.
func WithBorder(px int) Option {
	return func(o *Options) {
		if px < 0 {
			o.err = fmt.Errorf("%w: border %d", ErrOptionViolation, px)
			return
		}
		o.Border = px
	}
}

// WithLinks toggles neighbour links.
func WithLinks(on bool) Option {
	return func(o *Options) { o.Links = on }
}

// palette, as RGB in [0,1]
var (
	background   = [3]float64{0, 0, 0}
	groundColor  = [3]float64{0.5, 0.5, 0.5}
	wallColor    = [3]float64{0, 0, 0}
	visitedColor = [3]float64{0.25, 0.25, 0.25}
	startColor   = [3]float64{0, 0.75, 0}
	endColor     = [3]float64{0.8, 0, 0}
	routeColor   = [3]float64{1, 1, 0}
	linkColor    = [3]float64{0.5, 0.5, 0.5}
)

// Image draws g into a Width×CellSize by Height×CellSize RGBA image.
//
// Layers, bottom to top: links between open neighbours, cell squares
// (ground or wall, then visited, start, end) and the route to end if the last
// search reached it. start and end may be nil.
func Image(g *gridgraph.Grid, start, end *gridgraph.Node, opts ...Option) (image.Image, error) {
	dc, err := draw(g, start, end, opts)
	if err != nil {
		return nil, err
	}

	return dc.Image(), nil
}

// PNG draws g as with Image and encodes it to w.
func PNG(w io.Writer, g *gridgraph.Grid, start, end *gridgraph.Node, opts ...Option) error {
	dc, err := draw(g, start, end, opts)
	if err != nil {
		return err
	}

	return dc.EncodePNG(w)
}

func draw(g *gridgraph.Grid, start, end *gridgraph.Node, opts []Option) (*gg.Context, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if 2*o.Border >= o.CellSize {
		return nil, fmt.Errorf("%w: border %d leaves no cell in %dpx", ErrOptionViolation, o.Border, o.CellSize)
	}

	cs := float64(o.CellSize)
	centre := func(n *gridgraph.Node) (float64, float64) {
		return float64(n.X())*cs + cs/2, float64(n.Y())*cs + cs/2
	}

	dc := gg.NewContext(g.Width*o.CellSize, g.Height*o.CellSize)
	dc.SetRGB(background[0], background[1], background[2])
	dc.Clear()

	if o.Links {
		dc.SetRGB(linkColor[0], linkColor[1], linkColor[2])
		dc.SetLineWidth(1)
		for i := 0; i < g.Len(); i++ {
			n := g.At(i)
			if n.IsWall() {
				continue
			}
			x0, y0 := centre(n)
			for _, j := range n.Neighbours() {
				m := g.At(j)
				if m.IsWall() {
					continue
				}
				x1, y1 := centre(m)
				dc.DrawLine(x0, y0, x1, y1)
			}
		}
		dc.Stroke()
	}

	side := float64(o.CellSize - 2*o.Border)
	for i := 0; i < g.Len(); i++ {
		n := g.At(i)
		c := groundColor
		switch {
		case n == start:
			c = startColor
		case n == end:
			c = endColor
		case n.Visited:
			c = visitedColor
		case n.IsWall():
			c = wallColor
		}
		dc.SetRGB(c[0], c[1], c[2])
		dc.DrawRectangle(float64(n.X()*o.CellSize+o.Border), float64(n.Y()*o.CellSize+o.Border), side, side)
		dc.Fill()
	}

	if end != nil {
		if path, err := g.PathTo(end); err == nil && len(path) > 1 {
			dc.SetRGB(routeColor[0], routeColor[1], routeColor[2])
			dc.SetLineWidth(cs / 4)
			x, y := centre(path[0])
			dc.MoveTo(x, y)
			for _, n := range path[1:] {
				x, y = centre(n)
				dc.LineTo(x, y)
			}
			dc.Stroke()
		}
	}

	return dc, nil
}
