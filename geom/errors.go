package geom

import "errors"

// Sentinel errors for kernel operations.
var (
	// ErrEmptyPolygon indicates a polygon with no rings (or a nil polygon).
	ErrEmptyPolygon = errors.New("geom: polygon has no rings")
	// ErrRingTooShort indicates an exterior ring with fewer than 4 points after closing.
	ErrRingTooShort = errors.New("geom: ring must have at least 4 points after closing")
	// ErrZeroArea indicates a polygon whose area collapses to (near) zero.
	ErrZeroArea = errors.New("geom: polygon area is zero")
	// ErrTooFewPoints indicates a Voronoi request over fewer than 3 distinct points.
	ErrTooFewPoints = errors.New("geom: voronoi needs at least 3 points")
	// ErrCollinearPoints indicates a Voronoi request over a fully collinear point set.
	ErrCollinearPoints = errors.New("geom: voronoi points are collinear")
)
