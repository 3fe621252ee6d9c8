package layrinfer

import (
	"context"
	"fmt"

	"cdr.dev/slog"

	"github.com/layr-arb/layr/layrcompose"
	"github.com/layr-arb/layr/layrgraph"
	"github.com/layr-arb/layr/layrmarkup"
	"github.com/layr-arb/layr/layrtarget"
	"github.com/layr-arb/layr/lib/log"
)

// Application is the free-text record diagrams are inferred from.
type Application struct {
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	TechnologyStack string `json:"technologyStack,omitempty"`
	DataModel       string `json:"dataModel,omitempty"`
}

func (a Application) name() string {
	if a.Name == "" {
		return "Application"
	}
	return a.Name
}

type Diagrams struct {
	System *layrtarget.Result `json:"system"`
	// nil when no relationships were found
	DataModel *layrtarget.Result `json:"dataModel,omitempty"`
	Markup    *layrtarget.Result `json:"markup"`

	Components    []layrgraph.Entity     `json:"components"`
	Connections   []layrgraph.Connection `json:"connections"`
	Entities      []layrgraph.Entity     `json:"entities"`
	Relationships []layrgraph.Connection `json:"relationships"`
}

// Success reports whether every produced diagram rendered.
func (d *Diagrams) Success() bool {
	for _, r := range []*layrtarget.Result{d.System, d.DataModel, d.Markup} {
		if r != nil && !r.Success {
			return false
		}
	}
	return true
}

// Generate infers records from app and renders the system architecture, the
// data model and the architecture markup.
func Generate(ctx context.Context, c *layrcompose.Composer, app Application) *Diagrams {
	name := app.name()
	ctx = log.Fields(ctx, slog.F("application", name))

	d := &Diagrams{}
	d.Components = Components(app.Description, app.TechnologyStack)
	d.Connections = Connections(d.Components)
	d.Entities = Entities(app.Description, app.DataModel)
	if len(d.Entities) > 0 {
		d.Relationships = Relationships(d.Entities)
	}
	log.Debug(ctx, "inferred records",
		slog.F("components", len(d.Components)),
		slog.F("connections", len(d.Connections)),
		slog.F("entities", len(d.Entities)),
		slog.F("relationships", len(d.Relationships)),
	)

	d.System = c.Architecture(ctx, d.Components, d.Connections, fmt.Sprintf("%s System Architecture", name))
	if len(d.Entities) > 0 && len(d.Relationships) > 0 {
		d.DataModel = c.DataModel(ctx, d.Entities, d.Relationships, fmt.Sprintf("%s Data Model", name))
	}
	code := layrmarkup.Architecture(d.Components, d.Connections, name)
	d.Markup = c.Markup(ctx, code, fmt.Sprintf("%s Architecture", name))
	return d
}
