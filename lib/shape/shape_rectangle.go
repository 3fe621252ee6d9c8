package shape

import (
	"github.com/layr-arb/layr/lib/canvas"
	"github.com/layr-arb/layr/lib/geo"
)

type shapeRectangle struct {
	*baseShape
}

func NewRectangle(box *geo.Box) Shape {
	return shapeRectangle{
		baseShape: &baseShape{
			Type: RECTANGLE_TYPE,
			Box:  box,
		},
	}
}

func (s shapeRectangle) Draw(c *canvas.Canvas, style Style) {
	c.Rect(s.strokeBox(style), style.Fill, style.Stroke, style.StrokeWidth)
}
