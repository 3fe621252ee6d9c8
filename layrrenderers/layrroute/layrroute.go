// Package layrroute draws connectors between entity anchors: straight arrows,
// dashed dependencies, diamond tails, self-loops and cardinality glyphs.
package layrroute

import (
	"image/color"

	"github.com/layr-arb/layr/layrgraph"
	"github.com/layr-arb/layr/lib/canvas"
	"github.com/layr-arb/layr/lib/geo"
)

type Style struct {
	Stroke color.Color
	// interior of hollow heads such as the aggregation diamond
	Background  color.Color
	StrokeWidth float64
}

func (s Style) width() float64 {
	if s.StrokeWidth <= 0 {
		return 1
	}
	return s.StrokeWidth
}

// Head returns the triangle of an arrowhead whose tip is at to, pointing
// away from from. Coincident points have no direction and yield nil.
func Head(from, to *geo.Point) geo.Points {
	u := from.VectorTo(to).Unit()
	if u.IsZero() {
		return nil
	}
	base := to.AddVector(u.Multiply(-ARROWHEAD_LENGTH))
	n := u.Normal().Multiply(ARROWHEAD_HALF_WIDTH)
	return geo.Points{
		to.Copy(),
		base.AddVector(n),
		base.AddVector(n.Multiply(-1)),
	}
}

// Diamond returns the diamond whose tip is at at, extending toward toward.
func Diamond(at, toward *geo.Point) geo.Points {
	u := at.VectorTo(toward).Unit()
	if u.IsZero() {
		return nil
	}
	mid := at.AddVector(u.Multiply(DIAMOND_LENGTH / 2))
	n := u.Normal().Multiply(DIAMOND_HALF_WIDTH)
	return geo.Points{
		at.Copy(),
		mid.AddVector(n),
		at.AddVector(u.Multiply(DIAMOND_LENGTH)),
		mid.AddVector(n.Multiply(-1)),
	}
}

func drawHead(c *canvas.Canvas, from, to *geo.Point, s Style) {
	if head := Head(from, to); head != nil {
		c.Polygon(head, s.Stroke, s.Stroke, 1)
	}
}

func Line(c *canvas.Canvas, p1, p2 *geo.Point, s Style) {
	c.Line(p1, p2, s.Stroke, s.width())
}

func Arrow(c *canvas.Canvas, p1, p2 *geo.Point, s Style) {
	Line(c, p1, p2, s)
	drawHead(c, p1, p2, s)
}

func BidirectionalArrow(c *canvas.Canvas, p1, p2 *geo.Point, s Style) {
	Line(c, p1, p2, s)
	drawHead(c, p1, p2, s)
	drawHead(c, p2, p1, s)
}

func DashedArrow(c *canvas.Canvas, p1, p2 *geo.Point, s Style) {
	c.DashedLine(p1, p2, DASH_LENGTH, DASH_GAP, s.Stroke, s.width())
	drawHead(c, p1, p2, s)
}

// Aggregation draws a line with a hollow diamond at p1.
func Aggregation(c *canvas.Canvas, p1, p2 *geo.Point, s Style) {
	Line(c, p1, p2, s)
	if d := Diamond(p1, p2); d != nil {
		c.Polygon(d, s.Background, s.Stroke, s.width())
	}
}

// Composition draws a line with a filled diamond at p1.
func Composition(c *canvas.Canvas, p1, p2 *geo.Point, s Style) {
	Line(c, p1, p2, s)
	if d := Diamond(p1, p2); d != nil {
		c.Polygon(d, s.Stroke, s.Stroke, s.width())
	}
}

// Connect draws the connector for kind and reports whether kind was
// recognized. Unrecognized kinds are drawn as a default arrow.
func Connect(c *canvas.Canvas, kind layrgraph.ConnectionKind, p1, p2 *geo.Point, s Style) bool {
	switch kind.Normalize() {
	case layrgraph.ConnectionDefault, "":
		Arrow(c, p1, p2, s)
	case layrgraph.ConnectionBidirectional:
		BidirectionalArrow(c, p1, p2, s)
	case layrgraph.ConnectionDependency:
		DashedArrow(c, p1, p2, s)
	case layrgraph.ConnectionAssociation:
		Line(c, p1, p2, s)
	case layrgraph.ConnectionAggregation:
		Aggregation(c, p1, p2, s)
	case layrgraph.ConnectionComposition:
		Composition(c, p1, p2, s)
	default:
		Arrow(c, p1, p2, s)
		return false
	}
	return true
}

// LabelPosition is the anchor for a connector label: the midpoint pushed
// offset pixels off the segment. Mostly horizontal segments move the label
// down, the rest move it right.
func LabelPosition(p1, p2 *geo.Point, offset float64) *geo.Point {
	mid := p1.Midpoint(p2)
	if (geo.Segment{Start: p1, End: p2}).IsMostlyHorizontal() {
		return geo.NewPoint(mid.X, mid.Y+offset)
	}
	return geo.NewPoint(mid.X+offset, mid.Y)
}

// SelfLoop draws pts as an open path with a head on its final segment.
func SelfLoop(c *canvas.Canvas, pts geo.Points, s Style) {
	if len(pts) < 2 {
		return
	}
	c.Polyline(pts, s.Stroke, s.width())
	drawHead(c, pts[len(pts)-2], pts[len(pts)-1], s)
}

// SelfLoopPoints is the open rectangle for a call from the lane at p back to
// itself: out by width, down by height and back.
func SelfLoopPoints(p *geo.Point, width, height float64) geo.Points {
	return geo.Points{
		p.Copy(),
		geo.NewPoint(p.X+width, p.Y),
		geo.NewPoint(p.X+width, p.Y+height),
		geo.NewPoint(p.X, p.Y+height),
	}
}
