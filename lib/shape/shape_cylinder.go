package shape

import (
	"math"

	"github.com/layr-arb/layr/lib/canvas"
	"github.com/layr-arb/layr/lib/geo"
)

const maxCapHeight = 15.

type shapeCylinder struct {
	*baseShape
}

func NewCylinder(box *geo.Box) Shape {
	return shapeCylinder{
		baseShape: &baseShape{
			Type: CYLINDER_TYPE,
			Box:  box,
		},
	}
}

func capHeight(box *geo.Box) float64 {
	return math.Min(box.Height/5, maxCapHeight)
}

func (s shapeCylinder) GetInnerBox() *geo.Box {
	ch := capHeight(s.Box)
	tl := s.Box.TopLeft.Copy()
	tl.Y += ch
	return geo.NewBox(tl, s.Box.Width, s.Box.Height-2*ch)
}

func (s shapeCylinder) Draw(c *canvas.Canvas, style Style) {
	b := s.strokeBox(style)
	ch := capHeight(b)
	if ch <= 0 {
		c.Rect(b, style.Fill, style.Stroke, style.StrokeWidth)
		return
	}
	left, right := b.TopLeft.X, b.Right()
	top := geo.NewBox(b.TopLeft.Copy(), b.Width, ch)
	bottom := geo.NewBox(geo.NewPoint(left, b.Bottom()-ch), b.Width, ch)

	body := geo.NewBox(geo.NewPoint(left, b.TopLeft.Y+ch/2), b.Width, b.Height-ch)
	c.Rect(body, style.Fill, nil, 0)
	c.Line(geo.NewPoint(left, body.TopLeft.Y), geo.NewPoint(left, body.Bottom()), style.Stroke, style.StrokeWidth)
	c.Line(geo.NewPoint(right, body.TopLeft.Y), geo.NewPoint(right, body.Bottom()), style.Stroke, style.StrokeWidth)

	c.Ellipse(top, style.Fill, style.Stroke, style.StrokeWidth)

	// the bottom cap's front arc goes last so it sits over the body
	c.Ellipse(bottom, style.Fill, nil, 0)
	c.Arc(bottom, 0, 180, style.Stroke, style.StrokeWidth)
}
