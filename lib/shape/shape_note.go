package shape

import (
	"math"

	"github.com/layr-arb/layr/lib/canvas"
	"github.com/layr-arb/layr/lib/geo"
)

const maxFold = 20.

type shapeNote struct {
	*baseShape
}

func NewNote(box *geo.Box) Shape {
	return shapeNote{
		baseShape: &baseShape{
			Type: NOTE_TYPE,
			Box:  box,
		},
	}
}

func foldSize(b *geo.Box) float64 {
	return math.Min(math.Min(b.Width/4, b.Height/4), maxFold)
}

func (s shapeNote) GetInnerBox() *geo.Box {
	f := foldSize(s.Box)
	return geo.NewBox(s.Box.TopLeft.Copy(), s.Box.Width-f, s.Box.Height)
}

func (s shapeNote) Draw(c *canvas.Canvas, style Style) {
	b := s.strokeBox(style)
	f := foldSize(b)
	x1, y1, x2, y2 := b.TopLeft.X, b.TopLeft.Y, b.Right(), b.Bottom()

	c.Polygon(geo.Points{
		geo.NewPoint(x1, y1),
		geo.NewPoint(x2-f, y1),
		geo.NewPoint(x2, y1+f),
		geo.NewPoint(x2, y2),
		geo.NewPoint(x1, y2),
	}, style.Fill, style.Stroke, style.StrokeWidth)

	// folded corner: the diagonal plus the flap folded under it
	c.Polygon(geo.Points{
		geo.NewPoint(x2-f, y1),
		geo.NewPoint(x2-f, y1+f),
		geo.NewPoint(x2, y1+f),
	}, style.accent(), style.Stroke, style.StrokeWidth)
}
