package geom

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// parallelEps is the |cross product| threshold below which two segment
// directions are treated as parallel (no unique intersection point).
const parallelEps = 1e-12

// Segment is a straight line segment between two points.
type Segment struct {
	A, B orb.Point
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 { return planar.Distance(s.A, s.B) }

// Midpoint returns the point halfway between the two endpoints.
func (s Segment) Midpoint() orb.Point {
	return orb.Point{(s.A[0] + s.B[0]) / 2, (s.A[1] + s.B[1]) / 2}
}

// Bound returns the axis-aligned bounding box of the segment.
func (s Segment) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{math.Min(s.A[0], s.B[0]), math.Min(s.A[1], s.B[1])},
		Max: orb.Point{math.Max(s.A[0], s.B[0]), math.Max(s.A[1], s.B[1])},
	}
}

// sub returns a − b.
func sub(a, b orb.Point) orb.Point { return orb.Point{a[0] - b[0], a[1] - b[1]} }

// cross returns the z-component of the 2-D cross product a × b.
func cross(a, b orb.Point) float64 { return a[0]*b[1] - a[1]*b[0] }

// segParams solves a1 + t·(a2−a1) == b1 + u·(b2−b1) for t and u.
// ok is false when the segments are parallel (including collinear overlap,
// which has no unique solution).
func segParams(a1, a2, b1, b2 orb.Point) (t, u float64, ok bool) {
	d1 := sub(a2, a1)
	d2 := sub(b2, b1)
	denom := cross(d1, d2)
	if math.Abs(denom) < parallelEps {
		return 0, 0, false
	}
	w := sub(b1, a1)
	t = cross(w, d2) / denom
	u = cross(w, d1) / denom

	return t, u, true
}

// SegmentIntersection returns the intersection point of segments (a1,a2) and
// (b1,b2), endpoints included. The second return value is false when the
// segments do not intersect or are parallel.
func SegmentIntersection(a1, a2, b1, b2 orb.Point) (orb.Point, bool) {
	t, u, ok := segParams(a1, a2, b1, b2)
	if !ok || t < 0 || t > 1 || u < 0 || u > 1 {
		return orb.Point{}, false
	}

	return orb.Point{a1[0] + t*(a2[0]-a1[0]), a1[1] + t*(a2[1]-a1[1])}, true
}

// segmentsCross reports whether the two segments cross properly, i.e. the
// intersection point lies strictly inside both segments. Shared endpoints and
// mere touches do not count as crossings.
func segmentsCross(a1, a2, b1, b2 orb.Point) bool {
	t, u, ok := segParams(a1, a2, b1, b2)

	return ok && t > parallelEps && t < 1-parallelEps && u > parallelEps && u < 1-parallelEps
}
