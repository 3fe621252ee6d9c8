// Package layrgrid places entities on a grid that keeps the canvas close to
// square while respecting a minimum cell size.
package layrgrid

import (
	"math"

	"github.com/layr-arb/layr/lib/geo"
	"github.com/layr-arb/layr/lib/go2"
)

type Align int

const (
	AlignCenter Align = iota
	// AlignTop puts each box InsetY below the top of its cell.
	AlignTop
)

type Options struct {
	MaxCols        int
	MinWidth       float64
	MinHeight      float64
	TitleBarHeight float64
	CellWidth      float64
	CellHeight     float64
	// grow the canvas beyond the cells; cells still stretch to fill it
	MarginX float64
	MarginY float64

	BoxWidth  float64
	BoxHeight float64
	InsetX    float64
	InsetY    float64
	Align     Align
}

func DefaultOptions() Options {
	return Options{
		MaxCols:        MAX_COLS,
		MinWidth:       MIN_WIDTH,
		MinHeight:      MIN_HEIGHT,
		TitleBarHeight: TITLE_BAR_HEIGHT,
		CellWidth:      CELL_WIDTH,
		CellHeight:     CELL_HEIGHT,
		BoxWidth:       BOX_WIDTH,
		BoxHeight:      BOX_HEIGHT,
		InsetX:         CELL_INSET_X,
		InsetY:         CELL_INSET_Y,
	}
}

type Grid struct {
	Cols int
	Rows int

	Width  float64
	Height float64

	TitleBarHeight float64
	// cells are stretched to fill the canvas below the title bar
	CellWidth  float64
	CellHeight float64

	opts Options
}

// Layout sizes the grid for n entities. n = 0 yields a title-only canvas.
func Layout(n int, opts Options) *Grid {
	n = go2.Max(n, 0)
	cols := go2.Clamp(go2.Min(go2.Max(opts.MaxCols, 1), n), 1, math.MaxInt)
	rows := go2.CeilDiv(n, cols)

	g := &Grid{
		Cols:           cols,
		Rows:           rows,
		Width:          math.Max(opts.MinWidth, float64(cols)*opts.CellWidth+opts.MarginX),
		Height:         math.Max(opts.MinHeight, opts.TitleBarHeight+float64(rows)*opts.CellHeight+opts.MarginY),
		TitleBarHeight: opts.TitleBarHeight,
		opts:           opts,
	}
	g.CellWidth = math.Floor(g.Width / float64(cols))
	if rows > 0 {
		g.CellHeight = math.Floor((g.Height - opts.TitleBarHeight) / float64(rows))
	}
	return g
}

// Cell returns the bounds of the i-th cell in row-major order.
func (g *Grid) Cell(i int) *geo.Box {
	row, col := i/g.Cols, i%g.Cols
	return geo.NewBox(
		geo.NewPoint(float64(col)*g.CellWidth, g.TitleBarHeight+float64(row)*g.CellHeight),
		g.CellWidth,
		g.CellHeight,
	)
}

// BoxIn fits a box of the requested size into cell. Zero sizes take the
// default box size. The box never exceeds the cell minus its inset.
func (g *Grid) BoxIn(cell *geo.Box, width, height float64) *geo.Box {
	if width <= 0 {
		width = g.opts.BoxWidth
	}
	if height <= 0 {
		height = g.opts.BoxHeight
	}
	inner := cell.Inset(g.opts.InsetX, g.opts.InsetY)
	w := math.Min(width, inner.Width)
	h := math.Min(height, inner.Height)

	switch g.opts.Align {
	case AlignTop:
		return geo.NewBox(geo.NewPoint(inner.Center().X-w/2, inner.TopLeft.Y), w, h)
	default:
		return geo.NewBoxAround(inner.Center(), w, h)
	}
}

type Item struct {
	Name string
	// zero means the default box size
	Width  float64
	Height float64
}

type Placement struct {
	Name  string
	Index int
	Cell  *geo.Box
	Box   *geo.Box
}

func (p Placement) Center() *geo.Point {
	return p.Box.Center()
}

// Place lays out items in input order. Every item receives its own cell.
func Place(items []Item, opts Options) (*Grid, []Placement) {
	g := Layout(len(items), opts)
	placements := make([]Placement, len(items))
	for i, it := range items {
		cell := g.Cell(i)
		placements[i] = Placement{
			Name:  it.Name,
			Index: i,
			Cell:  cell,
			Box:   g.BoxIn(cell, it.Width, it.Height),
		}
	}
	return g, placements
}

// Names builds default-sized items.
func Names(names ...string) []Item {
	items := make([]Item, len(names))
	for i, n := range names {
		items[i] = Item{Name: n}
	}
	return items
}
