// layrthemes defines the palettes diagrams are painted with.
// Themes are immutable values: a Composer compiles one at construction.
package layrthemes

import (
	"fmt"
	"image/color"

	"github.com/layr-arb/layr/layrgraph"
	layrcolor "github.com/layr-arb/layr/lib/color"
)

type Theme struct {
	ID     int64        `json:"id" hcl:"id,optional"`
	Name   string       `json:"name" hcl:"name"`
	Colors ColorPalette `json:"colors" hcl:"colors,block"`
}

// ColorPalette holds one CSS color per role.
type ColorPalette struct {
	// Entity fills
	Component string `json:"component" hcl:"component,optional"`
	Database  string `json:"database" hcl:"database,optional"`
	Service   string `json:"service" hcl:"service,optional"`
	External  string `json:"external" hcl:"external,optional"`
	User      string `json:"user" hcl:"user,optional"`

	Background string `json:"background" hcl:"background,optional"`
	Line       string `json:"line" hcl:"line,optional"`
	Text       string `json:"text" hcl:"text,optional"`
	Border     string `json:"border" hcl:"border,optional"`
	Highlight  string `json:"highlight" hcl:"highlight,optional"`
}

type Role string

const (
	RoleComponent  Role = "component"
	RoleDatabase   Role = "database"
	RoleService    Role = "service"
	RoleExternal   Role = "external"
	RoleUser       Role = "user"
	RoleBackground Role = "background"
	RoleLine       Role = "line"
	RoleText       Role = "text"
	RoleBorder     Role = "border"
	RoleHighlight  Role = "highlight"
)

var Roles = []Role{
	RoleComponent,
	RoleDatabase,
	RoleService,
	RoleExternal,
	RoleUser,
	RoleBackground,
	RoleLine,
	RoleText,
	RoleBorder,
	RoleHighlight,
}

func (p ColorPalette) Get(r Role) string {
	switch r {
	case RoleComponent:
		return p.Component
	case RoleDatabase:
		return p.Database
	case RoleService:
		return p.Service
	case RoleExternal:
		return p.External
	case RoleUser:
		return p.User
	case RoleBackground:
		return p.Background
	case RoleLine:
		return p.Line
	case RoleText:
		return p.Text
	case RoleBorder:
		return p.Border
	case RoleHighlight:
		return p.Highlight
	}
	return ""
}

func (p *ColorPalette) set(r Role, v string) {
	switch r {
	case RoleComponent:
		p.Component = v
	case RoleDatabase:
		p.Database = v
	case RoleService:
		p.Service = v
	case RoleExternal:
		p.External = v
	case RoleUser:
		p.User = v
	case RoleBackground:
		p.Background = v
	case RoleLine:
		p.Line = v
	case RoleText:
		p.Text = v
	case RoleBorder:
		p.Border = v
	case RoleHighlight:
		p.Highlight = v
	}
}

// WithDefaults returns p with every empty role taken from base.
func (p ColorPalette) WithDefaults(base ColorPalette) ColorPalette {
	for _, r := range Roles {
		if p.Get(r) == "" {
			p.set(r, base.Get(r))
		}
	}
	return p
}

// FillRole is the role whose color fills an entity of kind k.
func FillRole(k layrgraph.EntityKind) Role {
	switch k.Normalize() {
	case layrgraph.KindDatabase:
		return RoleDatabase
	case layrgraph.KindService:
		return RoleService
	case layrgraph.KindExternal:
		return RoleExternal
	case layrgraph.KindUser, layrgraph.KindActor:
		return RoleUser
	default:
		return RoleComponent
	}
}

// Compiled is a theme with every role parsed to a raster color.
type Compiled struct {
	Theme  Theme
	colors map[Role]color.RGBA
}

// Compile parses every color of t. Every role must be set.
func (t Theme) Compile() (*Compiled, error) {
	c := &Compiled{
		Theme:  t,
		colors: make(map[Role]color.RGBA, len(Roles)),
	}
	for _, r := range Roles {
		s := t.Colors.Get(r)
		if s == "" {
			return nil, fmt.Errorf("theme %q: missing %s color", t.Name, r)
		}
		rgba, err := layrcolor.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("theme %q: %s: %w", t.Name, r, err)
		}
		c.colors[r] = rgba
	}
	return c, nil
}

func (c *Compiled) Color(r Role) color.RGBA {
	return c.colors[r]
}

func (c *Compiled) Fill(k layrgraph.EntityKind) color.RGBA {
	return c.colors[FillRole(k)]
}
