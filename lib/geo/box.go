package geo

import (
	"fmt"
	"math"
)

type Box struct {
	TopLeft *Point
	Width   float64
	Height  float64
}

func NewBox(tl *Point, width, height float64) *Box {
	return &Box{
		TopLeft: tl,
		Width:   width,
		Height:  height,
	}
}

// NewBoxAround returns the box of the given size centered on c.
func NewBoxAround(c *Point, width, height float64) *Box {
	return NewBox(NewPoint(c.X-width/2, c.Y-height/2), width, height)
}

func (b *Box) Copy() *Box {
	if b == nil {
		return nil
	}
	return NewBox(b.TopLeft.Copy(), b.Width, b.Height)
}

func (b *Box) Center() *Point {
	return NewPoint(b.TopLeft.X+b.Width/2, b.TopLeft.Y+b.Height/2)
}

func (b *Box) Right() float64 {
	return b.TopLeft.X + b.Width
}

func (b *Box) Bottom() float64 {
	return b.TopLeft.Y + b.Height
}

// Inset shrinks the box by dx on the left and right and dy on the top and bottom.
// A box never shrinks below zero size.
func (b *Box) Inset(dx, dy float64) *Box {
	w := math.Max(0, b.Width-2*dx)
	h := math.Max(0, b.Height-2*dy)
	c := b.Center()
	return NewBoxAround(c, w, h)
}

func (b *Box) Contains(p *Point) bool {
	return p.X >= b.TopLeft.X && p.X <= b.Right() &&
		p.Y >= b.TopLeft.Y && p.Y <= b.Bottom()
}

// ContainsBox reports whether other lies entirely within b.
func (b *Box) ContainsBox(other *Box) bool {
	return other.TopLeft.X >= b.TopLeft.X && other.Right() <= b.Right() &&
		other.TopLeft.Y >= b.TopLeft.Y && other.Bottom() <= b.Bottom()
}

// Overlaps reports whether the interiors of the two boxes intersect.
// Boxes that only share an edge do not overlap.
func (b *Box) Overlaps(other *Box) bool {
	return b.TopLeft.X < other.Right() && other.TopLeft.X < b.Right() &&
		b.TopLeft.Y < other.Bottom() && other.TopLeft.Y < b.Bottom()
}

func (b *Box) Intersections(s Segment) []*Point {
	pts := []*Point{}

	tl := b.TopLeft
	tr := NewPoint(tl.X+b.Width, tl.Y)
	br := NewPoint(tr.X, tr.Y+b.Height)
	bl := NewPoint(tl.X, br.Y)

	if p := IntersectionPoint(s.Start, s.End, tl, tr); p != nil {
		pts = append(pts, p)
	}
	if p := IntersectionPoint(s.Start, s.End, tr, br); p != nil {
		pts = append(pts, p)
	}
	if p := IntersectionPoint(s.Start, s.End, br, bl); p != nil {
		pts = append(pts, p)
	}
	if p := IntersectionPoint(s.Start, s.End, bl, tl); p != nil {
		pts = append(pts, p)
	}
	return pts
}

func (b *Box) ToString() string {
	if b == nil {
		return ""
	}
	return fmt.Sprintf("{TopLeft: %s, Width: %.0f, Height: %.0f}", b.TopLeft.ToString(), b.Width, b.Height)
}
