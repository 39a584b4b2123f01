package centerline

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/pygeoops/pygeoops/geom"
)

// extendToBoundary extends both open ends of the line outward along their
// local tangent until the first intersection with the polygon boundary.
// The ray is bounded by the polygon's bounding-box diagonal; an end whose
// ray escapes without a hit stays as it is — partial extension is a valid
// result, never a failure.
func extendToBoundary(ls orb.LineString, poly orb.Polygon) orb.LineString {
	if len(ls) < 2 {
		return ls
	}
	b := poly.Bound()
	maxDist := planar.Distance(b.Min, b.Max)

	if dir, ok := endTangent(ls, true); ok {
		if hit, found := geom.RayBoundaryHit(poly, ls[0], dir, maxDist); found {
			ls = append(orb.LineString{hit}, ls...)
		}
	}
	if dir, ok := endTangent(ls, false); ok {
		if hit, found := geom.RayBoundaryHit(poly, ls[len(ls)-1], dir, maxDist); found {
			ls = append(ls, hit)
		}
	}

	return ls
}

// endTangent derives the outward direction at an end of the line from its
// last one or two segments. ok is false when the relevant points coincide.
func endTangent(ls orb.LineString, atStart bool) (orb.Point, bool) {
	n := len(ls)
	k := 2
	if n-1 < k {
		k = n - 1
	}

	var inner, end orb.Point
	if atStart {
		inner, end = ls[k], ls[0]
	} else {
		inner, end = ls[n-1-k], ls[n-1]
	}
	dir := orb.Point{end[0] - inner[0], end[1] - inner[1]}
	if dir[0] == 0 && dir[1] == 0 {
		return orb.Point{}, false
	}

	return dir, true
}
