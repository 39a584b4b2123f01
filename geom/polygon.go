package geom

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// relDupeEps scales the bounding-box diagonal into the tolerance used to
// collapse near-duplicate consecutive ring points.
const relDupeEps = 1e-12

// Perimeter returns the total boundary length of the polygon (exterior plus
// interior rings).
func Perimeter(p orb.Polygon) float64 { return planar.Length(p) }

// Area returns the unsigned area of the polygon, holes subtracted.
func Area(p orb.Polygon) float64 { return math.Abs(planar.Area(p)) }

// AverageWidth estimates the typical width of a polygon by solving the
// rectangle with the same perimeter L and area A for its short side:
//
//	width = L/4 − sqrt(max((L/4)² − A, 0))
//
// For a 10×2 rectangle this yields exactly 2. The estimate degrades
// gracefully for non-rectangular shapes and is used to auto-tune sampling
// spacing, pruning thresholds and simplification tolerance.
func AverageWidth(p orb.Polygon) float64 {
	quarter := Perimeter(p) / 4

	return quarter - math.Sqrt(math.Max(quarter*quarter-Area(p), 0))
}

// Compactness returns the Polsby–Popper index 4πA/L² of the polygon:
// 1 for a circle, approaching 0 for degenerate, thread-like shapes.
func Compactness(p orb.Polygon) float64 {
	l := Perimeter(p)
	if l == 0 {
		return 0
	}

	return (4 * math.Pi * Area(p)) / (l * l)
}

// Validate checks that p is usable as algorithm input: it has an exterior
// ring, every ring is closed with at least 4 points, and the area is not
// (near) zero. Returns ErrEmptyPolygon, ErrRingTooShort or ErrZeroArea.
func Validate(p orb.Polygon) error {
	if len(p) == 0 {
		return ErrEmptyPolygon
	}
	for i, ring := range p {
		if len(ring) < 4 {
			return fmt.Errorf("%w: ring %d has %d points", ErrRingTooShort, i, len(ring))
		}
		if !ring.Closed() {
			return fmt.Errorf("%w: ring %d is not closed", ErrRingTooShort, i)
		}
	}
	if Area(p) <= zeroAreaThreshold(p) {
		return ErrZeroArea
	}

	return nil
}

// Repair returns a cleaned copy of p: consecutive near-duplicate points are
// collapsed, open rings are closed, the exterior ring is wound
// counter-clockwise and holes clockwise, and holes that collapse to fewer
// than 4 points are dropped. The input polygon is never mutated.
//
// Returns ErrEmptyPolygon, ErrRingTooShort (exterior collapsed) or
// ErrZeroArea when no valid polygon can be recovered.
func Repair(p orb.Polygon) (orb.Polygon, error) {
	if len(p) == 0 {
		return nil, ErrEmptyPolygon
	}
	eps := dupeEps(p)

	out := make(orb.Polygon, 0, len(p))
	for i, ring := range p {
		r := cleanRing(ring, eps)
		if len(r) < 4 {
			if i == 0 {
				return nil, fmt.Errorf("%w: exterior collapsed to %d points", ErrRingTooShort, len(r))
			}
			continue // collapsed hole
		}
		// Exterior CCW, holes CW.
		ccw := signedRingArea(r) > 0
		if (i == 0) != ccw {
			reverseRing(r)
		}
		out = append(out, r)
	}
	if Area(out) <= zeroAreaThreshold(out) {
		return nil, ErrZeroArea
	}

	return out, nil
}

// Densify returns a copy of p where every ring segment longer than maxSeg is
// split into equal parts no longer than maxSeg. maxSeg <= 0 returns p
// unchanged.
func Densify(p orb.Polygon, maxSeg float64) orb.Polygon {
	if maxSeg <= 0 {
		return p
	}
	out := make(orb.Polygon, 0, len(p))
	for _, ring := range p {
		dense := make(orb.Ring, 0, len(ring))
		for i := 0; i+1 < len(ring); i++ {
			a, b := ring[i], ring[i+1]
			dense = append(dense, a)
			n := int(math.Ceil(planar.Distance(a, b) / maxSeg))
			for j := 1; j < n; j++ {
				f := float64(j) / float64(n)
				dense = append(dense, orb.Point{a[0] + f*(b[0]-a[0]), a[1] + f*(b[1]-a[1])})
			}
		}
		if len(ring) > 0 {
			dense = append(dense, ring[len(ring)-1])
		}
		out = append(out, dense)
	}

	return out
}

// BoundaryPoints returns the distinct vertices of all rings of p, dropping
// each ring's closing duplicate. Order follows ring order.
func BoundaryPoints(p orb.Polygon) []orb.Point {
	var pts []orb.Point
	for _, ring := range p {
		n := len(ring)
		if n > 1 && ring.Closed() {
			n--
		}
		pts = append(pts, ring[:n]...)
	}

	return pts
}

// dupeEps derives the near-duplicate tolerance from the polygon extent.
func dupeEps(p orb.Polygon) float64 {
	b := p.Bound()
	diag := planar.Distance(b.Min, b.Max)
	if diag == 0 {
		return relDupeEps
	}

	return diag * relDupeEps
}

// zeroAreaThreshold derives the near-zero area cutoff from the polygon extent.
func zeroAreaThreshold(p orb.Polygon) float64 {
	e := dupeEps(p)

	return e * e
}

// cleanRing copies ring, dropping consecutive points closer than eps and
// forcing exact closure.
func cleanRing(ring orb.Ring, eps float64) orb.Ring {
	out := make(orb.Ring, 0, len(ring))
	for _, pt := range ring {
		if len(out) > 0 && planar.Distance(out[len(out)-1], pt) <= eps {
			continue
		}
		out = append(out, pt)
	}
	if len(out) < 3 {
		return out
	}
	// Drop a last point that nearly (but not exactly) duplicates the first,
	// then close exactly.
	if planar.Distance(out[0], out[len(out)-1]) <= eps {
		out = out[:len(out)-1]
	}
	out = append(out, out[0])

	return out
}

// signedRingArea returns the shoelace area of the ring: positive for
// counter-clockwise winding.
func signedRingArea(r orb.Ring) float64 {
	var sum float64
	for i := 0; i+1 < len(r); i++ {
		sum += r[i][0]*r[i+1][1] - r[i+1][0]*r[i][1]
	}

	return sum / 2
}

// reverseRing reverses the ring in place.
func reverseRing(r orb.Ring) {
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
}
