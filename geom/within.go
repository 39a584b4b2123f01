package geom

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// SegmentWithin reports whether the whole segment lies within the closure of
// the polygon: both endpoints and the midpoint are contained, and the segment
// does not properly cross any boundary segment. Segments straddling the
// boundary are rejected rather than clipped, so no short stubs appear at the
// polygon edge.
func SegmentWithin(p orb.Polygon, s Segment) bool {
	if !planar.PolygonContains(p, s.A) ||
		!planar.PolygonContains(p, s.B) ||
		!planar.PolygonContains(p, s.Midpoint()) {
		return false
	}

	sb := s.Bound()
	for _, ring := range p {
		if !sb.Intersects(ring.Bound()) {
			continue
		}
		for i := 0; i+1 < len(ring); i++ {
			if segmentsCross(s.A, s.B, ring[i], ring[i+1]) {
				return false
			}
		}
	}

	return true
}

// RayBoundaryHit casts a ray from the given origin along dir and returns its
// first intersection with the polygon boundary within maxDist. The origin
// itself is excluded, so a ray starting on the boundary finds the next
// crossing, not its own start. ok is false when dir is zero-length or the
// ray escapes without touching the boundary within maxDist.
func RayBoundaryHit(p orb.Polygon, origin, dir orb.Point, maxDist float64) (hit orb.Point, ok bool) {
	norm := math.Hypot(dir[0], dir[1])
	if norm == 0 || maxDist <= 0 {
		return orb.Point{}, false
	}
	end := orb.Point{origin[0] + dir[0]/norm*maxDist, origin[1] + dir[1]/norm*maxDist}

	bestT := math.Inf(1)
	for _, ring := range p {
		for i := 0; i+1 < len(ring); i++ {
			t, u, valid := segParams(origin, end, ring[i], ring[i+1])
			if !valid || u < 0 || u > 1 {
				continue
			}
			// Strictly forward along the ray, beyond the origin itself.
			if t <= parallelEps || t > 1 {
				continue
			}
			if t < bestT {
				bestT = t
			}
		}
	}
	if math.IsInf(bestT, 1) {
		return orb.Point{}, false
	}

	return orb.Point{
		origin[0] + bestT*(end[0]-origin[0]),
		origin[1] + bestT*(end[1]-origin[1]),
	}, true
}
