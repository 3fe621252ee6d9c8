package shape

import (
	"math"

	"github.com/layr-arb/layr/lib/canvas"
	"github.com/layr-arb/layr/lib/geo"
)

type shapePerson struct {
	*baseShape
}

func NewPerson(box *geo.Box) Shape {
	return shapePerson{
		baseShape: &baseShape{
			Type: PERSON_TYPE,
			Box:  box,
		},
	}
}

func headRadius(b *geo.Box) float64 {
	return minSide(b) / 4
}

func (s shapePerson) Draw(c *canvas.Canvas, style Style) {
	b := s.strokeBox(style)
	hr := headRadius(b)
	if hr <= 0 {
		return
	}
	cx := b.Center().X

	c.Ellipse(circleBox(geo.NewPoint(cx, b.TopLeft.Y+hr), hr), style.Fill, style.Stroke, style.StrokeWidth)

	bodyTop := b.TopLeft.Y + 2*hr + style.StrokeWidth
	if bodyTop >= b.Bottom() {
		return
	}
	topHalf := hr * 0.6
	bottomHalf := math.Min(2*hr, b.Width/2)
	c.Polygon(geo.Points{
		geo.NewPoint(cx-topHalf, bodyTop),
		geo.NewPoint(cx+topHalf, bodyTop),
		geo.NewPoint(cx+bottomHalf, b.Bottom()),
		geo.NewPoint(cx-bottomHalf, b.Bottom()),
	}, style.Fill, style.Stroke, style.StrokeWidth)
}
