// Package centerline defines the configuration options, result types and
// sentinel errors of the centerline operation.
package centerline

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors surfaced by Centerline and Batch.
var (
	// ErrUnsupportedInput indicates a non-polygonal geometry where a polygon
	// is required.
	ErrUnsupportedInput = errors.New("centerline: input must be a polygon or multi-polygon")

	// ErrInvalidGeometry indicates a polygon that could not be repaired into
	// a valid one (collapsed exterior, zero area).
	ErrInvalidGeometry = errors.New("centerline: invalid polygon")

	// ErrSkeletonEmpty indicates that no Voronoi edge lies inside the
	// polygon, even after one retry at finer sampling. Typical for polygons
	// smaller or thinner than the sampling spacing. The accompanying result
	// is an empty line string, not a misleading geometry.
	ErrSkeletonEmpty = errors.New("centerline: skeleton is empty")

	// ErrBadMaxPoints indicates a non-positive boundary point limit.
	ErrBadMaxPoints = errors.New("centerline: MaxBoundaryPoints must be positive")

	// ErrBadWidthFactor indicates a negative width factor.
	ErrBadWidthFactor = errors.New("centerline: WidthFactor must be non-negative")

	// ErrBadSnapEpsilon indicates a negative snap epsilon.
	ErrBadSnapEpsilon = errors.New("centerline: SnapEpsilon must be non-negative")
)

// Result is one slot of a Batch output: the centerline (or nil for nil
// input, or an empty line string for degenerate input) plus the per-element
// error, if any.
type Result struct {
	Line orb.Geometry
	Err  error
}

// Options configures the centerline pipeline. Negative values for the three
// distance parameters mean "auto": scale by the polygon's average width.
//
// DensifyDistance   – boundary sampling spacing. 0 disables densification;
// >0 is an absolute spacing; <0 uses |value| × average width, capped so the
// boundary point count grows at most tenfold and floored so huge polygons
// stay within MaxBoundaryPoints samples.
//
// MinBranchLength   – pruning threshold for skeleton leaf branches. 0
// disables pruning; >0 absolute; <0 uses |value| × average width.
//
// WidthFactor       – additional width-relative pruning floor: the
// effective threshold is max(minBranch, WidthFactor × half the average
// width). 0 (default) leaves the pure length threshold.
//
// SimplifyTolerance – Douglas–Peucker tolerance on the result. 0 disables;
// >0 absolute; <0 uses |value| × average width.
//
// Extend            – extend the two open ends to the polygon boundary.
//
// FailFast          – Batch stops at the first failing element.
//
// MaxBoundaryPoints – upper bound on sampled boundary points per polygon.
//
// SnapEpsilon       – node snapping tolerance for the skeleton graph;
// 0 (default) derives it from the sampling spacing.
type Options struct {
	DensifyDistance   float64
	MinBranchLength   float64
	WidthFactor       float64
	SimplifyTolerance float64
	Extend            bool
	FailFast          bool
	MaxBoundaryPoints int
	SnapEpsilon       float64
}

// Option is a functional option for Centerline and Batch.
type Option func(*Options)

// WithDensifyDistance sets the boundary sampling spacing.
// 0 disables densification, negative values auto-scale by average width.
func WithDensifyDistance(d float64) Option {
	return func(o *Options) { o.DensifyDistance = d }
}

// WithMinBranchLength sets the pruning threshold for short skeleton
// branches. 0 disables pruning, negative values auto-scale by average width.
func WithMinBranchLength(l float64) Option {
	return func(o *Options) { o.MinBranchLength = l }
}

// WithWidthFactor sets the width-relative pruning floor.
// Must be non-negative; negative values cause a panic (ErrBadWidthFactor).
func WithWidthFactor(f float64) Option {
	return func(o *Options) {
		if f < 0 {
			panic(ErrBadWidthFactor.Error())
		}
		o.WidthFactor = f
	}
}

// WithSimplifyTolerance sets the Douglas–Peucker tolerance applied to the
// result. 0 disables simplification, negative values auto-scale by average
// width.
func WithSimplifyTolerance(t float64) Option {
	return func(o *Options) { o.SimplifyTolerance = t }
}

// WithExtend extends the two open ends of each centerline outward along
// their local direction until they touch the polygon boundary. Ends whose
// ray escapes without a boundary hit stay unextended; that is a partial
// success, not an error.
func WithExtend() Option {
	return func(o *Options) { o.Extend = true }
}

// WithFailFast makes Batch abort at the first failing element instead of
// collecting per-element errors.
func WithFailFast() Option {
	return func(o *Options) { o.FailFast = true }
}

// WithMaxBoundaryPoints bounds the number of sampled boundary points per
// polygon. Must be positive; other values cause a panic (ErrBadMaxPoints).
func WithMaxBoundaryPoints(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxPoints.Error())
		}
		o.MaxBoundaryPoints = n
	}
}

// WithSnapEpsilon overrides the node snapping tolerance of the skeleton
// graph. Must be non-negative; negative values cause a panic
// (ErrBadSnapEpsilon). The default 0 derives the tolerance from the
// sampling spacing.
func WithSnapEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			panic(ErrBadSnapEpsilon.Error())
		}
		o.SnapEpsilon = eps
	}
}

// DefaultOptions returns the auto-tuned defaults: sampling spacing and
// pruning threshold equal to the average width, simplify tolerance a
// quarter of it, no extension, at most 10000 boundary points.
func DefaultOptions() Options {
	return Options{
		DensifyDistance:   -1,
		MinBranchLength:   -1,
		SimplifyTolerance: -0.25,
		MaxBoundaryPoints: 10000,
	}
}
