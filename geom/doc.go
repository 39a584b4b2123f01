// Package geom is the 2-D geometry kernel used by the centerline pipeline.
//
// What
//
//   - Polygon validity checks and non-mutating repair (ring closing,
//     duplicate-point removal, orientation normalization).
//   - Scalar descriptors: perimeter, area, average width (the rectangle
//     approximation L/4 − sqrt((L/4)² − A)) and Polsby–Popper compactness.
//   - Boundary densification at a maximum segment length.
//   - Voronoi edges of a planar point set, derived as the dual of the
//     Delaunay triangulation (segments joining circumcenters of adjacent
//     triangles).
//   - Predicates: segment containment in a polygon, segment intersection,
//     bounded ray casting against a polygon boundary.
//
// Why
//
//	The skeleton and centerline packages only consume geometry through this
//	narrow surface, so the underlying libraries (paulmach/orb for the
//	geometry model, fogleman/delaunay for triangulation) stay an internal
//	concern of the kernel.
//
// All functions are pure: inputs are never mutated and no state survives a
// call. The geometry model is orb's (orb.Point, orb.Ring, orb.Polygon).
package geom
