package layrcompose

import (
	"context"
	"math"

	"cdr.dev/slog"

	"github.com/layr-arb/layr/layrgraph"
	"github.com/layr-arb/layr/layrlayouts/layrgrid"
	"github.com/layr-arb/layr/layrrenderers/layrroute"
	"github.com/layr-arb/layr/layrtarget"
	"github.com/layr-arb/layr/layrthemes"
	"github.com/layr-arb/layr/lib/geo"
	"github.com/layr-arb/layr/lib/log"
	"github.com/layr-arb/layr/lib/shape"
)

const DEFAULT_DATA_MODEL_TITLE = "Data Model"

const (
	ENTITY_WIDTH         = 180.
	ENTITY_MIN_HEIGHT    = 80.
	ENTITY_HEADER_HEIGHT = 30.
	ATTRIBUTE_HEIGHT     = 20.

	DATA_MODEL_CELL_WIDTH  = 200.
	DATA_MODEL_CELL_HEIGHT = 250.
	// entity boxes hang this far below the top of their cell
	DATA_MODEL_INSET_Y = 40.

	// cardinality glyphs sit beside the line rather than on it
	GLYPH_SIDE_OFFSET = 8.
)

func entityHeight(e layrgraph.Entity) float64 {
	return math.Max(ENTITY_MIN_HEIGHT, ENTITY_HEADER_HEIGHT+float64(len(e.Attributes))*ATTRIBUTE_HEIGHT)
}

func dataModelOptions(entities []layrgraph.Entity) layrgrid.Options {
	cellHeight := DATA_MODEL_CELL_HEIGHT
	for _, e := range entities {
		cellHeight = math.Max(cellHeight, entityHeight(e)+2*DATA_MODEL_INSET_Y)
	}
	opts := layrgrid.DefaultOptions()
	opts.CellWidth = DATA_MODEL_CELL_WIDTH
	opts.CellHeight = cellHeight
	opts.MarginX = 100
	opts.MarginY = DATA_MODEL_INSET_Y
	opts.BoxWidth = ENTITY_WIDTH
	opts.BoxHeight = ENTITY_MIN_HEIGHT
	opts.InsetY = DATA_MODEL_INSET_Y
	opts.Align = layrgrid.AlignTop
	return opts
}

func (c *Composer) DataModel(ctx context.Context, entities []layrgraph.Entity, relationships []layrgraph.Connection, title string) (res *layrtarget.Result) {
	if title == "" {
		title = DEFAULT_DATA_MODEL_TITLE
	}
	ctx = log.Fields(ctx, slog.F("diagram", "data model"))
	defer recoverResult(ctx, "data model", &res)
	log.Debug(ctx, "composing data model diagram", slog.F("entities", len(entities)), slog.F("relationships", len(relationships)))

	var diags layrtarget.Diagnostics
	if err := validateEntities(entities, &diags); err != nil {
		return layrtarget.Failure(err)
	}

	items := make([]layrgrid.Item, len(entities))
	for i, e := range entities {
		items[i] = layrgrid.Item{Name: e.Name, Width: ENTITY_WIDTH, Height: entityHeight(e)}
	}
	g, placements := layrgrid.Place(items, dataModelOptions(entities))

	return c.paint(ctx, "data model", title, g.Width, g.Height, func(r *render) error {
		r.diags = append(r.diags, diags...)

		positions := make(map[string]*geo.Box, len(placements))
		for i, p := range placements {
			r.table(entities[i], p.Box)
			if _, ok := positions[p.Name]; !ok {
				positions[p.Name] = p.Box
			}
		}
		for _, rel := range relationships {
			from, to, ok := r.resolve(rel, positions)
			if !ok {
				continue
			}
			r.relationship(rel, from, to)
		}
		return nil
	})
}

// table draws an entity as a header with one row per attribute.
func (r *render) table(e layrgraph.Entity, box *geo.Box) {
	s := shape.NewRectangle(box)
	s.Draw(r.canvas, r.shapeStyle(layrthemes.RoleComponent))

	border := r.color(layrthemes.RoleBorder)
	headerY := box.TopLeft.Y + ENTITY_HEADER_HEIGHT
	r.canvas.Line(geo.NewPoint(box.TopLeft.X, headerY), geo.NewPoint(box.Right(), headerY), border, shape.STROKE_WIDTH)

	text := r.textOn(layrthemes.RoleComponent)
	r.textCentered(geo.NewPoint(box.Center().X, box.TopLeft.Y+ENTITY_HEADER_HEIGHT/2), e.Name, r.boldFace, text)
	for j, attr := range e.Attributes {
		y := headerY + TEXT_PADDING/2 + float64(j)*ATTRIBUTE_HEIGHT
		r.text(geo.NewPoint(box.TopLeft.X+TEXT_PADDING, y), attr.Label(), r.smallFace, text)
	}
}

// relationship draws a plain line between two entity boxes. Known
// cardinalities add a symbol at the midpoint and a glyph near each end.
func (r *render) relationship(rel layrgraph.Connection, from, to *geo.Box) {
	kind := rel.Kind
	if kind == "" {
		kind = layrgraph.OneToMany
	}
	p1, p2 := layrroute.ClipBetween(from, to)
	layrroute.Line(r.canvas, p1, p2, r.lineStyle())
	r.connectors++

	fromGlyph, toGlyph, ok := layrroute.Cardinality(kind)
	if !ok {
		r.diags.Addf(layrtarget.UnknownConnectionKind, rel.From+" -> "+rel.To, "unknown relationship %q drawn as a plain line", rel.Kind)
		return
	}
	r.connectorLabel(p1, p2, kind.Symbol())

	text := r.color(layrthemes.RoleText)
	side := p1.VectorTo(p2).Unit().Normal().Multiply(GLYPH_SIDE_OFFSET)
	r.textCentered(layrroute.GlyphPosition(p1, p2, layrroute.CARDINALITY_OFFSET).AddVector(side), fromGlyph, r.smallFace, text)
	r.textCentered(layrroute.GlyphPosition(p2, p1, layrroute.CARDINALITY_OFFSET).AddVector(side), toGlyph, r.smallFace, text)
}
