package canvas

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/basicfont"

	"github.com/layr-arb/layr/lib/geo"
)

var (
	white = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	black = color.RGBA{0, 0, 0, 0xFF}
	blue  = color.RGBA{0xAD, 0xD8, 0xE6, 0xFF}
)

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := New(0, 10, white)
	assert.Error(t, err)

	c, err := New(40, 30, white)
	assert.NoError(t, err)
	assert.Equal(t, 40, c.Width())
	assert.Equal(t, 30, c.Height())
	assert.Equal(t, white, c.At(39, 29))
}

func TestRect(t *testing.T) {
	t.Parallel()

	c, err := New(100, 100, white)
	assert.NoError(t, err)
	c.Rect(geo.NewBox(geo.NewPoint(20, 20), 60, 40), blue, black, 2)

	assert.Equal(t, blue, c.At(50, 40))
	assert.Equal(t, black, c.At(50, 20))
	assert.Equal(t, white, c.At(10, 10))
	assert.Equal(t, white, c.At(50, 70))
}

func TestEllipse(t *testing.T) {
	t.Parallel()

	c, err := New(100, 100, white)
	assert.NoError(t, err)
	c.Ellipse(geo.NewBox(geo.NewPoint(10, 10), 80, 80), blue, nil, 0)

	assert.Equal(t, blue, c.At(50, 50))
	// corners of the bounding box lie outside the ellipse
	assert.Equal(t, white, c.At(12, 12))
	assert.Equal(t, white, c.At(88, 88))
}

func TestEllipseStroke(t *testing.T) {
	t.Parallel()

	c, err := New(100, 100, white)
	assert.NoError(t, err)
	assert.NotPanics(t, func() {
		c.Ellipse(geo.NewBox(geo.NewPoint(10, 20), 80, 60), blue, black, 2)
	})

	assert.Equal(t, blue, c.At(50, 50))
	// the flattened outline antialiases, so check for ink rather than exact black
	assert.Less(t, c.At(90, 50).R, uint8(0x40))
	assert.Less(t, c.At(50, 20).R, uint8(0x40))
	assert.Equal(t, white, c.At(12, 22))

	// outline only
	c, err = New(60, 60, white)
	assert.NoError(t, err)
	c.Ellipse(geo.NewBox(geo.NewPoint(10, 10), 40, 40), nil, black, 2)
	assert.Equal(t, white, c.At(30, 30))
	assert.Less(t, c.At(10, 30).R, uint8(0x40))
}

func TestDegenerateGeometry(t *testing.T) {
	t.Parallel()

	c, err := New(20, 20, white)
	assert.NoError(t, err)
	p := geo.NewPoint(10, 10)
	assert.NotPanics(t, func() {
		c.Line(p, p, black, 2)
		c.DashedLine(p, p, 5, 5, black, 1)
		c.Polygon(geo.Points{p, p, p}, blue, black, 1)
		c.Ellipse(geo.NewBox(p, 0, 0), blue, black, 1)
		c.Polyline(geo.Points{p}, black, 1)
	})
	assert.Equal(t, white, c.At(10, 10))
}

func TestDashedLine(t *testing.T) {
	t.Parallel()

	c, err := New(50, 10, white)
	assert.NoError(t, err)
	c.DashedLine(geo.NewPoint(0, 5), geo.NewPoint(50, 5), 5, 5, black, 2)

	assert.Equal(t, black, c.At(2, 5))
	assert.Equal(t, white, c.At(8, 5))
	assert.Equal(t, black, c.At(12, 5))
}

func TestArcPoints(t *testing.T) {
	t.Parallel()

	box := geo.NewBox(geo.NewPoint(0, 0), 100, 50)
	pts := ArcPoints(box, 0, 180)
	assert.InDelta(t, 0, geo.NewPoint(100, 25).DistanceTo(pts[0]), 1e-9)
	last := pts[len(pts)-1]
	assert.InDelta(t, 0, last.X, 1e-9)
	assert.InDelta(t, 25, last.Y, 1e-9)
	// clockwise from three o'clock passes through the bottom
	mid := pts[len(pts)/2]
	assert.InDelta(t, 50, mid.Y, 1e-9)
}

func TestText(t *testing.T) {
	t.Parallel()

	c, err := New(100, 30, white)
	assert.NoError(t, err)
	w, err := c.Text(5, 5, "Layr", basicfont.Face7x13, black)
	assert.NoError(t, err)
	assert.Equal(t, 28., w)

	_, err = c.Text(5, 5, "x", nil, black)
	assert.ErrorIs(t, err, ErrNoFace)

	tw, th := MeasureText(basicfont.Face7x13, "abc")
	assert.Equal(t, 21., tw)
	assert.Equal(t, 13., th)
}

func TestEncodePNG(t *testing.T) {
	t.Parallel()

	c, err := New(64, 32, white)
	assert.NoError(t, err)
	var buf bytes.Buffer
	assert.NoError(t, c.EncodePNG(&buf))

	img, err := png.Decode(&buf)
	assert.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())
}
