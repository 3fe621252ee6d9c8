package layrcompose

import (
	"context"
	"fmt"
	"math"

	"cdr.dev/slog"

	"github.com/layr-arb/layr/layrgraph"
	"github.com/layr-arb/layr/layrlayouts/layrgrid"
	"github.com/layr-arb/layr/layrtarget"
	"github.com/layr-arb/layr/layrthemes"
	"github.com/layr-arb/layr/lib/geo"
	"github.com/layr-arb/layr/lib/log"
	"github.com/layr-arb/layr/lib/orderedset"
	"github.com/layr-arb/layr/lib/shape"
)

const DEFAULT_DEPLOYMENT_TITLE = "Deployment Architecture"

const (
	ENV_MIN_WIDTH = 250.
	ENV_MARGIN    = 20.
	ENV_PADDING   = 20.
	// room for the environment name above its components
	ENV_HEADER_HEIGHT = 50.

	COMPONENT_HEIGHT  = 50.
	COMPONENT_SPACING = 10.
	// components sit side by side only when each column gets this much width
	COMPONENT_MIN_WIDTH = 140.
	ENV_MAX_COLS        = 2

	DEPLOYMENT_ROW_BUDGET = 60.
	DEPLOYMENT_MARGIN     = 100.
)

type envGroup struct {
	layrgraph.Environment
	members []int
	box     *geo.Box
	cols    int
}

// groupEnvironments assigns components to environments. Declared
// environments come first in order; names only components mention follow in
// first-seen order. Components with no environment join layrgraph.DefaultEnvironment.
func groupEnvironments(environments []layrgraph.Environment, components []layrgraph.Component, diags *layrtarget.Diagnostics) []*envGroup {
	names := orderedset.New[string]()
	declared := make(map[string]layrgraph.Environment, len(environments))
	for _, env := range environments {
		if env.Name == "" {
			continue
		}
		if names.Add(env.Name) {
			declared[env.Name] = env
		}
	}

	groups := make([]*envGroup, 0, names.Len())
	for _, name := range names.Items() {
		groups = append(groups, &envGroup{Environment: declared[name]})
	}
	for i, comp := range components {
		name := comp.Env
		if name == "" {
			name = layrgraph.DefaultEnvironment
		}
		if names.Add(name) {
			groups = append(groups, &envGroup{Environment: layrgraph.Environment{Name: name}})
			if comp.Env == "" {
				diags.Addf(layrtarget.SynthesizedEnvironment, name, "component %q names no environment", comp.Name)
			} else {
				diags.Addf(layrtarget.SynthesizedEnvironment, name, "environment referenced by %q was not declared", comp.Name)
			}
		}
		g := groups[names.Index(name)]
		g.members = append(g.members, i)
	}
	return groups
}

func (c *Composer) Deployment(ctx context.Context, environments []layrgraph.Environment, components []layrgraph.Component, connections []layrgraph.Connection, title string) (res *layrtarget.Result) {
	if title == "" {
		title = DEFAULT_DEPLOYMENT_TITLE
	}
	ctx = log.Fields(ctx, slog.F("diagram", "deployment"))
	defer recoverResult(ctx, "deployment", &res)
	log.Debug(ctx, "composing deployment diagram",
		slog.F("environments", len(environments)),
		slog.F("components", len(components)),
		slog.F("connections", len(connections)),
	)

	var diags layrtarget.Diagnostics
	entities := make([]layrgraph.Entity, len(components))
	for i, comp := range components {
		entities[i] = comp.Entity
	}
	if err := validateEntities(entities, &diags); err != nil {
		return layrtarget.Failure(err)
	}
	groups := groupEnvironments(environments, components, &diags)

	width := math.Max(layrgrid.MIN_WIDTH, float64(len(groups))*ENV_MIN_WIDTH)
	height := math.Max(layrgrid.MIN_HEIGHT, float64(len(components))*DEPLOYMENT_ROW_BUDGET+DEPLOYMENT_MARGIN)

	if len(groups) > 0 {
		envWidth := (width - 2*ENV_MARGIN) / float64(len(groups))
		inner := envWidth - 2*ENV_PADDING
		for i, g := range groups {
			g.cols = 1
			if len(g.members) > 1 && inner >= ENV_MAX_COLS*COMPONENT_MIN_WIDTH+COMPONENT_SPACING {
				g.cols = ENV_MAX_COLS
			}
			h := ENV_HEADER_HEIGHT + layrgrid.StackHeight(len(g.members), g.cols, COMPONENT_HEIGHT, COMPONENT_SPACING) + ENV_PADDING
			g.box = geo.NewBox(
				geo.NewPoint(ENV_MARGIN+float64(i)*envWidth+ENV_PADDING/2, layrgrid.TITLE_BAR_HEIGHT),
				envWidth-ENV_PADDING,
				h,
			)
			height = math.Max(height, g.box.Bottom()+ENV_MARGIN)
		}
	}

	return c.paint(ctx, "deployment", title, width, height, func(r *render) error {
		r.diags = append(r.diags, diags...)

		positions := make(map[string]*geo.Box, len(components))
		for _, g := range groups {
			r.environment(g)

			content := geo.NewBox(
				geo.NewPoint(g.box.TopLeft.X+ENV_PADDING/2, g.box.TopLeft.Y+ENV_HEADER_HEIGHT),
				g.box.Width-ENV_PADDING,
				g.box.Height-ENV_HEADER_HEIGHT,
			)
			boxes := layrgrid.Stack(content, len(g.members), g.cols, COMPONENT_HEIGHT, COMPONENT_SPACING)
			for j, idx := range g.members {
				comp := components[idx]
				r.deployed(comp, boxes[j])
				if _, ok := positions[comp.Name]; !ok {
					positions[comp.Name] = boxes[j]
				}
			}
		}
		for _, conn := range connections {
			from, to, ok := r.resolve(conn, positions)
			if !ok {
				continue
			}
			r.connect(conn, from, to)
		}
		return nil
	})
}

func (r *render) environment(g *envGroup) {
	r.canvas.Rect(g.box, nil, r.color(layrthemes.RoleBorder), shape.STROKE_WIDTH)
	r.text(
		geo.NewPoint(g.box.TopLeft.X+TEXT_PADDING, g.box.TopLeft.Y+TEXT_PADDING),
		g.Name,
		r.boldFace,
		r.color(layrthemes.RoleText),
	)
}

// deployed draws a component with its host on a second line when the host
// is not the component itself.
func (r *render) deployed(comp layrgraph.Component, box *geo.Box) {
	kind := comp.Kind.Normalize()
	shapeType, ok := TypeForKind(kind)
	if !ok {
		r.diags.Addf(layrtarget.UnknownEntityKind, comp.Name, "unknown kind %q drawn as %s", comp.Kind, shapeType)
	}
	s := shape.NewShape(shapeType, box)
	role := layrthemes.FillRole(kind)
	s.Draw(r.canvas, r.shapeStyle(role))

	text := comp.Name
	if comp.Host != "" && comp.Host != comp.Name {
		text = fmt.Sprintf("%s\nHost: %s", comp.Name, comp.Host)
	}
	r.label(s.GetInnerBox(), text, r.smallFace, r.textOn(role))
}
