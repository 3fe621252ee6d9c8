package shape

import (
	"math"

	"github.com/layr-arb/layr/lib/canvas"
	"github.com/layr-arb/layr/lib/geo"
)

type shapeRoundedRect struct {
	*baseShape
	Radius float64
}

func NewRoundedRect(box *geo.Box, radius float64) Shape {
	return shapeRoundedRect{
		baseShape: &baseShape{
			Type: ROUNDED_RECT_TYPE,
			Box:  box,
		},
		Radius: radius,
	}
}

// roundedRectPoints traces the outline clockwise: four edges joined by quarter arcs.
// The radius is clamped so opposite corners never overlap.
func roundedRectPoints(b *geo.Box, radius float64) geo.Points {
	r := math.Max(0, math.Min(radius, minSide(b)/2))
	if r == 0 {
		return geo.Points{
			b.TopLeft,
			geo.NewPoint(b.Right(), b.TopLeft.Y),
			geo.NewPoint(b.Right(), b.Bottom()),
			geo.NewPoint(b.TopLeft.X, b.Bottom()),
		}
	}
	corner := func(cx, cy float64) *geo.Box {
		return circleBox(geo.NewPoint(cx, cy), r)
	}
	var pts geo.Points
	pts = append(pts, canvas.ArcPoints(corner(b.TopLeft.X+r, b.TopLeft.Y+r), 180, 270)...)
	pts = append(pts, canvas.ArcPoints(corner(b.Right()-r, b.TopLeft.Y+r), 270, 360)...)
	pts = append(pts, canvas.ArcPoints(corner(b.Right()-r, b.Bottom()-r), 0, 90)...)
	pts = append(pts, canvas.ArcPoints(corner(b.TopLeft.X+r, b.Bottom()-r), 90, 180)...)
	return pts
}

func (s shapeRoundedRect) Draw(c *canvas.Canvas, style Style) {
	c.Polygon(roundedRectPoints(s.strokeBox(style), s.Radius), style.Fill, style.Stroke, style.StrokeWidth)
}
