package geom

import (
	"fmt"
	"math"

	"github.com/fogleman/delaunay"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// VoronoiEdges computes the finite edges of the Voronoi diagram of the given
// sites as the dual of their Delaunay triangulation: every pair of triangles
// sharing an edge contributes the segment joining their circumcenters.
//
// Edges running to infinity (duals of convex-hull edges) are omitted; the
// centerline pipeline discards them anyway because they leave the polygon.
// Zero-length duals of co-circular site groups are omitted as well — the
// snapping stage of the skeleton builder merges their shared vertex.
//
// Errors: ErrTooFewPoints for fewer than 3 sites, ErrCollinearPoints when
// the triangulation degenerates (all sites on one line).
func VoronoiEdges(sites []orb.Point) ([]Segment, error) {
	if len(sites) < 3 {
		return nil, ErrTooFewPoints
	}

	pts := make([]delaunay.Point, len(sites))
	for i, p := range sites {
		pts[i] = delaunay.Point{X: p[0], Y: p[1]}
	}
	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCollinearPoints, err)
	}
	if len(tri.Triangles) == 0 {
		return nil, ErrCollinearPoints
	}

	// 1) Circumcenter per triangle. A NaN marks a degenerate (near-collinear)
	//    triangle whose duals must be skipped.
	nTri := len(tri.Triangles) / 3
	centers := make([]orb.Point, nTri)
	for t := 0; t < nTri; t++ {
		a := pts[tri.Triangles[3*t]]
		b := pts[tri.Triangles[3*t+1]]
		c := pts[tri.Triangles[3*t+2]]
		centers[t] = circumcenter(a, b, c)
	}

	// 2) One dual segment per interior halfedge pair (e, o) with o > e.
	//    Hull halfedges have o == -1 and are skipped by the same comparison.
	var segs []Segment
	for e, o := range tri.Halfedges {
		if o < e {
			continue
		}
		a, b := centers[e/3], centers[o/3]
		if math.IsNaN(a[0]) || math.IsNaN(b[0]) {
			continue
		}
		if planar.Distance(a, b) == 0 {
			continue
		}
		segs = append(segs, Segment{A: a, B: b})
	}

	return segs, nil
}

// circumcenter returns the circumcenter of triangle abc, or a NaN point for
// a (near-)degenerate triangle.
func circumcenter(a, b, c delaunay.Point) orb.Point {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < parallelEps {
		return orb.Point{math.NaN(), math.NaN()}
	}
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	ux := (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d
	uy := (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d

	return orb.Point{ux, uy}
}
