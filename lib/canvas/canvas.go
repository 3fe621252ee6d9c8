// Package canvas paints filled and stroked geometry and text onto an RGBA image.
//
// Coordinates are pixels with the origin at the top left and y growing down.
// Geometry is rasterized with anti-aliasing through freetype's rasterizer.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/golang/freetype/raster"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/layr-arb/layr/lib/geo"
)

// ellipse control point distance for a quarter arc as a fraction of the radius.
const kappa = 0.5522847498

// arcs are flattened to one segment per this many degrees.
const arcStepDegrees = 5

type Canvas struct {
	img     *image.RGBA
	r       *raster.Rasterizer
	painter *raster.RGBAPainter
}

func New(width, height int, bg color.Color) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	r := raster.NewRasterizer(width, height)
	r.UseNonZeroWinding = true
	return &Canvas{
		img:     img,
		r:       r,
		painter: raster.NewRGBAPainter(img),
	}, nil
}

func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func fix(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fixPoint(p *geo.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fix(p.X), Y: fix(p.Y)}
}

// polyPath drops points that land on the same fixed point as their predecessor.
// A polyline needs two distinct points and a polygon three, otherwise the path is empty.
func polyPath(pts geo.Points, closed bool) raster.Path {
	fps := make([]fixed.Point26_6, 0, len(pts))
	for _, p := range pts {
		fp := fixPoint(p)
		if len(fps) > 0 && fps[len(fps)-1] == fp {
			continue
		}
		fps = append(fps, fp)
	}
	if closed && len(fps) > 1 && fps[0] == fps[len(fps)-1] {
		fps = fps[:len(fps)-1]
	}
	need := 2
	if closed {
		need = 3
	}
	var path raster.Path
	if len(fps) < need {
		return path
	}
	path.Start(fps[0])
	for _, fp := range fps[1:] {
		path.Add1(fp)
	}
	if closed {
		path.Add1(fps[0])
	}
	return path
}

func (c *Canvas) paint(col color.Color) {
	c.painter.SetColor(col)
	c.r.Rasterize(c.painter)
	c.r.Clear()
}

func (c *Canvas) fillPath(path raster.Path, col color.Color) {
	if len(path) == 0 || col == nil {
		return
	}
	c.r.AddPath(path)
	c.paint(col)
}

func (c *Canvas) strokePath(path raster.Path, width float64, col color.Color) {
	if len(path) == 0 || col == nil || width <= 0 {
		return
	}
	c.r.AddStroke(path, fix(width), raster.RoundCapper, raster.RoundJoiner)
	c.paint(col)
}

// Polygon fills the closed polygon pts with fill then outlines it.
// A nil color skips that pass.
func (c *Canvas) Polygon(pts geo.Points, fill, stroke color.Color, width float64) {
	if len(pts) < 3 {
		return
	}
	path := polyPath(pts, true)
	c.fillPath(path, fill)
	c.strokePath(path, width, stroke)
}

func (c *Canvas) Polyline(pts geo.Points, stroke color.Color, width float64) {
	if len(pts) < 2 {
		return
	}
	c.strokePath(polyPath(pts, false), width, stroke)
}

func (c *Canvas) Line(p1, p2 *geo.Point, stroke color.Color, width float64) {
	c.Polyline(geo.Points{p1, p2}, stroke, width)
}

// DashedLine strokes dash long segments separated by gap pixels, starting with a dash.
func (c *Canvas) DashedLine(p1, p2 *geo.Point, dash, gap float64, stroke color.Color, width float64) {
	v := p1.VectorTo(p2)
	length := v.Length()
	if length == 0 || dash <= 0 {
		return
	}
	u := v.Unit()
	var path raster.Path
	for d := 0.; d < length; d += dash + gap {
		end := math.Min(d+dash, length)
		a := fixPoint(p1.AddVector(u.Multiply(d)))
		b := fixPoint(p1.AddVector(u.Multiply(end)))
		if a == b {
			continue
		}
		path.Start(a)
		path.Add1(b)
	}
	c.strokePath(path, width, stroke)
}

func (c *Canvas) Rect(box *geo.Box, fill, stroke color.Color, width float64) {
	c.Polygon(boxPoints(box), fill, stroke, width)
}

func boxPoints(box *geo.Box) geo.Points {
	return geo.Points{
		box.TopLeft,
		geo.NewPoint(box.Right(), box.TopLeft.Y),
		geo.NewPoint(box.Right(), box.Bottom()),
		geo.NewPoint(box.TopLeft.X, box.Bottom()),
	}
}

func ellipsePath(box *geo.Box) raster.Path {
	cx, cy := box.Center().X, box.Center().Y
	rx, ry := box.Width/2, box.Height/2
	ox, oy := rx*kappa, ry*kappa

	var path raster.Path
	pt := func(x, y float64) fixed.Point26_6 {
		return fixed.Point26_6{X: fix(x), Y: fix(y)}
	}
	path.Start(pt(cx+rx, cy))
	path.Add3(pt(cx+rx, cy+oy), pt(cx+ox, cy+ry), pt(cx, cy+ry))
	path.Add3(pt(cx-ox, cy+ry), pt(cx-rx, cy+oy), pt(cx-rx, cy))
	path.Add3(pt(cx-rx, cy-oy), pt(cx-ox, cy-ry), pt(cx, cy-ry))
	path.Add3(pt(cx+ox, cy-ry), pt(cx+rx, cy-oy), pt(cx+rx, cy))
	return path
}

// Ellipse fills and outlines the ellipse inscribed in box.
func (c *Canvas) Ellipse(box *geo.Box, fill, stroke color.Color, width float64) {
	if box.Width <= 0 || box.Height <= 0 {
		return
	}
	c.fillPath(ellipsePath(box), fill)
	// the stroker only accepts linear and quadratic segments
	c.strokePath(polyPath(ArcPoints(box, 0, 360), true), width, stroke)
}

// ArcPoints flattens the arc of the ellipse inscribed in box from start to end degrees.
// Angles run clockwise from three o'clock, as they appear on the canvas.
func ArcPoints(box *geo.Box, start, end float64) geo.Points {
	for end < start {
		end += 360
	}
	cx, cy := box.Center().X, box.Center().Y
	rx, ry := box.Width/2, box.Height/2

	n := int(math.Ceil((end - start) / arcStepDegrees))
	if n < 1 {
		n = 1
	}
	pts := make(geo.Points, 0, n+1)
	for i := 0; i <= n; i++ {
		a := (start + (end-start)*float64(i)/float64(n)) * math.Pi / 180
		pts = append(pts, geo.NewPoint(cx+rx*math.Cos(a), cy+ry*math.Sin(a)))
	}
	return pts
}

func (c *Canvas) Arc(box *geo.Box, start, end float64, stroke color.Color, width float64) {
	c.Polyline(ArcPoints(box, start, end), stroke, width)
}

// Pie fills the sector of the ellipse inscribed in box between start and end degrees.
func (c *Canvas) Pie(box *geo.Box, start, end float64, fill color.Color) {
	pts := append(geo.Points{box.Center()}, ArcPoints(box, start, end)...)
	c.Polygon(pts, fill, nil, 0)
}

var ErrNoFace = errors.New("canvas: nil font face")

// Text draws s with its top left corner at (x, y) and returns the drawn width.
func (c *Canvas) Text(x, y float64, s string, face font.Face, col color.Color) (float64, error) {
	if face == nil {
		return 0, ErrNoFace
	}
	ascent := face.Metrics().Ascent
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fix(x), Y: fix(y) + ascent},
	}
	d.DrawString(s)
	return float64(d.Dot.X-fix(x)) / 64, nil
}

// TextCentered draws s centered on p.
func (c *Canvas) TextCentered(p *geo.Point, s string, face font.Face, col color.Color) error {
	if face == nil {
		return ErrNoFace
	}
	w, h := MeasureText(face, s)
	_, err := c.Text(p.X-w/2, p.Y-h/2, s, face, col)
	return err
}

// MeasureText returns the advance width and line height of s in face.
func MeasureText(face font.Face, s string) (width, height float64) {
	m := face.Metrics()
	return float64(font.MeasureString(face, s)) / 64, float64(m.Ascent+m.Descent) / 64
}
