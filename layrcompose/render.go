package layrcompose

import (
	"context"
	"image/color"

	"golang.org/x/image/font"

	"github.com/layr-arb/layr/layrgraph"
	"github.com/layr-arb/layr/layrrenderers/layrfonts"
	"github.com/layr-arb/layr/layrrenderers/layrroute"
	"github.com/layr-arb/layr/layrtarget"
	"github.com/layr-arb/layr/layrthemes"
	"github.com/layr-arb/layr/lib/canvas"
	layrcolor "github.com/layr-arb/layr/lib/color"
	"github.com/layr-arb/layr/lib/geo"
	"github.com/layr-arb/layr/lib/shape"
	"github.com/layr-arb/layr/lib/textmeasure"
)

const (
	TITLE_Y = 30.

	// from the left edge of a box to the text inside it
	TEXT_PADDING = 10.
)

var (
	titleFont = layrfonts.Go.Font(layrfonts.FONT_SIZE_XL, layrfonts.FONT_STYLE_BOLD)
	labelFont = layrfonts.Go.Font(layrfonts.FONT_SIZE_M, layrfonts.FONT_STYLE_REGULAR)
	smallFont = layrfonts.Go.Font(layrfonts.FONT_SIZE_S, layrfonts.FONT_STYLE_REGULAR)
	boldFont  = layrfonts.Go.Font(layrfonts.FONT_SIZE_M, layrfonts.FONT_STYLE_BOLD)
)

// render is the state of a single call. Nothing in it is shared.
type render struct {
	ctx     context.Context
	canvas  *canvas.Canvas
	palette *layrthemes.Compiled

	titleFace font.Face
	labelFace font.Face
	smallFace font.Face
	boldFace  font.Face

	diags      layrtarget.Diagnostics
	connectors int
}

func (c *Composer) newRender(ctx context.Context, width, height int) (*render, error) {
	cv, err := canvas.New(width, height, c.palette.Color(layrthemes.RoleBackground))
	if err != nil {
		return nil, err
	}
	r := &render{
		ctx:     ctx,
		canvas:  cv,
		palette: c.palette,
	}
	for _, f := range []struct {
		font layrfonts.Font
		face *font.Face
	}{
		{titleFont, &r.titleFace},
		{labelFont, &r.labelFace},
		{smallFont, &r.smallFace},
		{boldFont, &r.boldFace},
	} {
		*f.face, err = f.font.Face()
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *render) color(role layrthemes.Role) color.RGBA {
	return r.palette.Color(role)
}

func (r *render) lineStyle() layrroute.Style {
	return layrroute.Style{
		Stroke:      r.color(layrthemes.RoleLine),
		Background:  r.color(layrthemes.RoleBackground),
		StrokeWidth: 1,
	}
}

func (r *render) shapeStyle(fill layrthemes.Role) shape.Style {
	s := shape.Style{
		Fill:        r.color(fill),
		Stroke:      r.color(layrthemes.RoleBorder),
		StrokeWidth: shape.STROKE_WIDTH,
	}
	if dark, err := layrcolor.Darken(r.palette.Theme.Colors.Get(fill)); err == nil {
		if rgba, err := layrcolor.Parse(dark); err == nil {
			s.Accent = rgba
		}
	}
	return s
}

// textOn picks whichever of the text and background colors reads best over fill.
func (r *render) textOn(fill layrthemes.Role) color.RGBA {
	colors := r.palette.Theme.Colors
	light, dark := colors.Background, colors.Text
	if lb, err := layrcolor.Luminance(light); err == nil {
		if ld, err := layrcolor.Luminance(dark); err == nil && ld > lb {
			light, dark = dark, light
		}
	}
	rgba, err := layrcolor.Parse(layrcolor.Contrast(colors.Get(fill), light, dark))
	if err != nil {
		return r.color(layrthemes.RoleText)
	}
	return rgba
}

func (r *render) title(title string) {
	if title == "" {
		return
	}
	p := geo.NewPoint(float64(r.canvas.Width())/2, TITLE_Y)
	_ = r.canvas.TextCentered(p, title, r.titleFace, r.color(layrthemes.RoleText))
}

// text draws s with its top left corner at p.
func (r *render) text(p *geo.Point, s string, face font.Face, col color.Color) {
	_, _ = r.canvas.Text(p.X, p.Y, s, face, col)
}

// textCentered draws s centered on p.
func (r *render) textCentered(p *geo.Point, s string, face font.Face, col color.Color) {
	_ = r.canvas.TextCentered(p, s, face, col)
}

// label flows s into box and draws the lines centered on it.
func (r *render) label(box *geo.Box, s string, face font.Face, col color.Color) {
	lines := textmeasure.Wrap(s, box.Width, textmeasure.AVG_CHAR_WIDTH)
	c := box.Center()
	top := c.Y - float64(len(lines)-1)*textmeasure.LINE_HEIGHT/2
	for i, line := range lines {
		r.textCentered(geo.NewPoint(c.X, top+float64(i)*textmeasure.LINE_HEIGHT), line, face, col)
	}
}

// entity draws e into box with the glyph its kind selects.
func (r *render) entity(e layrgraph.Entity, box *geo.Box) shape.Shape {
	kind := e.Kind.Normalize()
	shapeType, ok := TypeForKind(kind)
	if !ok {
		r.diags.Addf(layrtarget.UnknownEntityKind, e.Name, "unknown kind %q drawn as %s", e.Kind, shapeType)
	}
	s := shape.NewShape(shapeType, box)
	role := layrthemes.FillRole(kind)
	s.Draw(r.canvas, r.shapeStyle(role))
	r.label(s.GetInnerBox(), e.Name, r.labelFace, r.textOn(role))
	return s
}

func (r *render) connectorLabel(p1, p2 *geo.Point, s string) {
	if s == "" {
		return
	}
	p := layrroute.LabelPosition(p1, p2, layrroute.LABEL_OFFSET)
	r.textCentered(p, s, r.smallFace, r.color(layrthemes.RoleText))
}

// connect draws one connector of kind between two boxes and its label.
func (r *render) connect(conn layrgraph.Connection, from, to *geo.Box) {
	p1, p2 := layrroute.ClipBetween(from, to)
	if !layrroute.Connect(r.canvas, conn.Kind, p1, p2, r.lineStyle()) {
		r.diags.Addf(layrtarget.UnknownConnectionKind, conn.From+" -> "+conn.To, "unknown kind %q drawn as %s", conn.Kind, layrgraph.ConnectionDefault)
	}
	r.connectorLabel(p1, p2, conn.Description)
	r.connectors++
}

// resolve reports connections whose endpoints are not in positions.
func (r *render) resolve(conn layrgraph.Connection, positions map[string]*geo.Box) (*geo.Box, *geo.Box, bool) {
	from, okFrom := positions[conn.From]
	to, okTo := positions[conn.To]
	if okFrom && okTo {
		return from, to, true
	}
	subject := conn.From + " -> " + conn.To
	if !okFrom {
		r.diags.Addf(layrtarget.UnresolvedEndpoint, subject, "no entity named %q", conn.From)
	}
	if !okTo && conn.To != conn.From {
		r.diags.Addf(layrtarget.UnresolvedEndpoint, subject, "no entity named %q", conn.To)
	}
	return nil, nil, false
}
