package shape

import (
	"math"

	"github.com/layr-arb/layr/lib/canvas"
	"github.com/layr-arb/layr/lib/geo"
)

// puff positions around the cloud, degrees clockwise from three o'clock.
// The lower half has no puffs so the base stays open.
var cloudPuffAngles = []float64{180, 225, 270, 315, 360}

type shapeCloud struct {
	*baseShape
}

func NewCloud(box *geo.Box) Shape {
	return shapeCloud{
		baseShape: &baseShape{
			Type: CLOUD_TYPE,
			Box:  box,
		},
	}
}

func (s shapeCloud) GetInnerBox() *geo.Box {
	return s.Box.Inset(s.Box.Width/6, s.Box.Height/6)
}

type puff struct {
	center *geo.Point
	r      float64
}

// cloudPuffs places five circles of alternating radii along the ellipse
// inscribed in b, each pulled in by its own radius so it stays inside b.
func cloudPuffs(b *geo.Box) []puff {
	ms := minSide(b)
	radii := []float64{ms / 3, ms / 4}
	c := b.Center()

	puffs := make([]puff, len(cloudPuffAngles))
	for i, deg := range cloudPuffAngles {
		r := radii[i%2]
		a := deg * math.Pi / 180
		ax := math.Max(0, b.Width/2-r)
		ay := math.Max(0, b.Height/2-r)
		puffs[i] = puff{
			center: geo.NewPoint(c.X+ax*math.Cos(a), c.Y+ay*math.Sin(a)),
			r:      r,
		}
	}
	return puffs
}

func (s shapeCloud) Draw(c *canvas.Canvas, style Style) {
	b := s.strokeBox(style)
	if minSide(b) <= 0 {
		return
	}
	puffs := cloudPuffs(b)

	centers := make(geo.Points, 0, len(puffs)+1)
	for _, p := range puffs {
		centers = append(centers, p.center)
	}

	for _, p := range puffs {
		box := circleBox(p.center, p.r)
		c.Ellipse(box, style.Fill, nil, 0)
		c.Arc(box, 180, 360, style.Stroke, style.StrokeWidth)
	}

	// cover the strokes that fell inside the union of the puffs
	c.Polygon(centers, style.Fill, nil, 0)
	for _, p := range puffs {
		if r := p.r - style.StrokeWidth; r > 0 {
			c.Ellipse(circleBox(p.center, r), style.Fill, nil, 0)
		}
	}
}
