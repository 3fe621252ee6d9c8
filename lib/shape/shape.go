package shape

import (
	"image/color"
	"math"

	"github.com/layr-arb/layr/lib/canvas"
	"github.com/layr-arb/layr/lib/geo"
)

const (
	RECTANGLE_TYPE    = "Rectangle"
	ROUNDED_RECT_TYPE = "RoundedRect"
	CYLINDER_TYPE     = "Cylinder"
	CLOUD_TYPE        = "Cloud"
	PERSON_TYPE       = "Person"
	NOTE_TYPE         = "Note"

	STROKE_WIDTH  = 2.
	CORNER_RADIUS = 10.
)

type Style struct {
	Fill        color.Color
	Stroke      color.Color
	StrokeWidth float64
	// Accent fills secondary surfaces like the folded corner of a note.
	// Defaults to Fill.
	Accent color.Color
}

func (s Style) accent() color.Color {
	if s.Accent != nil {
		return s.Accent
	}
	return s.Fill
}

type Shape interface {
	Is(shape string) bool
	GetType() string

	GetBox() *geo.Box
	// GetInnerBox is the area labels may occupy.
	GetInnerBox() *geo.Box

	// Draw paints the shape. Fill and stroke stay within GetBox.
	Draw(c *canvas.Canvas, style Style)
}

type baseShape struct {
	Type string
	Box  *geo.Box
}

func (s baseShape) Is(shapeType string) bool {
	return s.Type == shapeType
}

func (s baseShape) GetType() string {
	return s.Type
}

func (s baseShape) GetBox() *geo.Box {
	return s.Box
}

func (s baseShape) GetInnerBox() *geo.Box {
	return s.Box
}

// strokeBox is the box the stroke centerline runs along so that the outer
// edge of the stroke touches Box.
func (s baseShape) strokeBox(style Style) *geo.Box {
	inset := style.StrokeWidth / 2
	if style.Stroke == nil {
		inset = 0
	}
	return s.Box.Inset(inset, inset)
}

func NewShape(shapeType string, box *geo.Box) Shape {
	switch shapeType {
	case ROUNDED_RECT_TYPE:
		return NewRoundedRect(box, CORNER_RADIUS)
	case CYLINDER_TYPE:
		return NewCylinder(box)
	case CLOUD_TYPE:
		return NewCloud(box)
	case PERSON_TYPE:
		return NewPerson(box)
	case NOTE_TYPE:
		return NewNote(box)
	default:
		return NewRectangle(box)
	}
}

func circleBox(center *geo.Point, r float64) *geo.Box {
	return geo.NewBoxAround(center, 2*r, 2*r)
}

func minSide(b *geo.Box) float64 {
	return math.Min(b.Width, b.Height)
}
