package layrcompose

import (
	"github.com/layr-arb/layr/layrgraph"
	"github.com/layr-arb/layr/lib/shape"
)

// TypeForKind maps an entity kind to the glyph that draws it. Unknown kinds
// map to a rectangle and report false.
func TypeForKind(k layrgraph.EntityKind) (string, bool) {
	switch k.Normalize() {
	case layrgraph.KindDatabase:
		return shape.CYLINDER_TYPE, true
	case layrgraph.KindService:
		return shape.ROUNDED_RECT_TYPE, true
	case layrgraph.KindExternal:
		return shape.CLOUD_TYPE, true
	case layrgraph.KindUser, layrgraph.KindActor:
		return shape.PERSON_TYPE, true
	case layrgraph.KindComponent, layrgraph.KindEnvironment, layrgraph.KindEntity:
		return shape.RECTANGLE_TYPE, true
	}
	return shape.RECTANGLE_TYPE, false
}
