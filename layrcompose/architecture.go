package layrcompose

import (
	"context"
	"fmt"

	"cdr.dev/slog"

	"github.com/layr-arb/layr/layrgraph"
	"github.com/layr-arb/layr/layrlayouts/layrgrid"
	"github.com/layr-arb/layr/layrtarget"
	"github.com/layr-arb/layr/lib/geo"
	"github.com/layr-arb/layr/lib/log"
)

const DEFAULT_ARCHITECTURE_TITLE = "System Architecture"

// validateEntities fails on nameless entities and reports duplicates, which
// keep their cell but cannot be the target of a connection.
func validateEntities(entities []layrgraph.Entity, diags *layrtarget.Diagnostics) error {
	seen := make(map[string]struct{}, len(entities))
	for i, e := range entities {
		if e.Name == "" {
			return fmt.Errorf("entity %d has no name", i)
		}
		if _, ok := seen[e.Name]; ok {
			diags.Addf(layrtarget.DuplicateEntity, e.Name, "entity %d repeats a name, connections use the first", i)
			continue
		}
		seen[e.Name] = struct{}{}
	}
	return nil
}

func (c *Composer) Architecture(ctx context.Context, entities []layrgraph.Entity, connections []layrgraph.Connection, title string) (res *layrtarget.Result) {
	if title == "" {
		title = DEFAULT_ARCHITECTURE_TITLE
	}
	ctx = log.Fields(ctx, slog.F("diagram", "architecture"))
	defer recoverResult(ctx, "architecture", &res)
	log.Debug(ctx, "composing architecture diagram", slog.F("entities", len(entities)), slog.F("connections", len(connections)))

	var diags layrtarget.Diagnostics
	if err := validateEntities(entities, &diags); err != nil {
		return layrtarget.Failure(err)
	}

	items := make([]layrgrid.Item, len(entities))
	for i, e := range entities {
		items[i] = layrgrid.Item{Name: e.Name}
	}
	g, placements := layrgrid.Place(items, layrgrid.DefaultOptions())

	return c.paint(ctx, "architecture", title, g.Width, g.Height, func(r *render) error {
		r.diags = append(r.diags, diags...)

		positions := make(map[string]*geo.Box, len(placements))
		for i, p := range placements {
			r.entity(entities[i], p.Box)
			if _, ok := positions[p.Name]; !ok {
				positions[p.Name] = p.Box
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
