package layrroute

import (
	"github.com/layr-arb/layr/layrgraph"
	"github.com/layr-arb/layr/lib/geo"
)

// Cardinality returns the glyphs drawn near the from and to endpoints of a
// relationship. ok is false for kinds without multiplicity, which render as a
// plain line.
func Cardinality(kind layrgraph.ConnectionKind) (from, to string, ok bool) {
	switch kind.Normalize() {
	case layrgraph.OneToOne:
		return "1", "1", true
	case layrgraph.OneToMany:
		return "1", "N", true
	case layrgraph.ManyToOne:
		return "N", "1", true
	case layrgraph.ManyToMany:
		return "N", "N", true
	}
	return "", "", false
}

// GlyphPosition is the point offset pixels from end toward other.
// Coincident points return end.
func GlyphPosition(end, other *geo.Point, offset float64) *geo.Point {
	u := end.VectorTo(other).Unit()
	return end.AddVector(u.Multiply(offset))
}

// Clip trims the segment from the center of box toward target so that it
// starts on the border of box. If target lies inside box, the center is returned.
func Clip(box *geo.Box, target *geo.Point) *geo.Point {
	c := box.Center()
	if box.Contains(target) {
		return c
	}
	pts := box.Intersections(geo.Segment{Start: c, End: target})
	if len(pts) == 0 {
		return c
	}
	best := pts[0]
	for _, p := range pts[1:] {
		if p.DistanceTo(target) < best.DistanceTo(target) {
			best = p
		}
	}
	return best
}

// ClipBetween returns the border-to-border segment joining two boxes.
func ClipBetween(from, to *geo.Box) (*geo.Point, *geo.Point) {
	return Clip(from, to.Center()), Clip(to, from.Center())
}
