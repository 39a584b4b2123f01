package centerline

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"

	"github.com/pygeoops/pygeoops/geom"
	"github.com/pygeoops/pygeoops/skeleton"
)

// Tuning constants validated against the shape scenarios in the test suite.
const (
	// compactnessFloor disables auto-densification for extremely narrow
	// shapes: their average width is so small that width-derived spacing
	// would explode the site count without improving the skeleton.
	compactnessFloor = 0.001

	// maxDensifyGrowth caps how much auto-densification may multiply the
	// boundary point count.
	maxDensifyGrowth = 10.0

	// snapDivisor converts sampling spacing into the node snap epsilon.
	snapDivisor = 256.0
)

// Centerline computes the centerline of a polygonal geometry.
//
// Accepted inputs are orb.Polygon and orb.MultiPolygon; nil and empty
// geometries pass through as nil. Anything else fails with
// ErrUnsupportedInput.
//
// The result is an orb.LineString, an orb.MultiLineString when the pruned
// skeleton decomposes into several disconnected components (ordered by
// descending length), or an empty orb.LineString for legitimate degenerate
// outcomes such as near-circular polygons whose skeleton collapses to a
// point. An empty skeleton after the finer-sampling retry returns the empty
// line string together with ErrSkeletonEmpty — a wrong-but-plausible
// geometry is never fabricated.
func Centerline(g orb.Geometry, opts ...Option) (orb.Geometry, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return one(g, cfg)
}

// one dispatches a single geometry with resolved options. Shared by
// Centerline and Batch.
func one(g orb.Geometry, cfg Options) (orb.Geometry, error) {
	switch v := g.(type) {
	case nil:
		return nil, nil
	case orb.Polygon:
		if len(v) == 0 {
			return nil, nil
		}

		return polygonCenterline(v, cfg)
	case orb.MultiPolygon:
		if len(v) == 0 {
			return nil, nil
		}

		return multiPolygonCenterline(v, cfg)
	default:
		return nil, fmt.Errorf("%w: got %T", ErrUnsupportedInput, g)
	}
}

// multiPolygonCenterline processes each part independently and flattens the
// per-part lines into one geometry.
func multiPolygonCenterline(mp orb.MultiPolygon, cfg Options) (orb.Geometry, error) {
	var lines orb.MultiLineString
	for i, p := range mp {
		res, err := polygonCenterline(p, cfg)
		if err != nil {
			return nil, fmt.Errorf("centerline: part %d: %w", i, err)
		}
		switch l := res.(type) {
		case orb.LineString:
			if len(l) > 0 {
				lines = append(lines, l)
			}
		case orb.MultiLineString:
			lines = append(lines, l...)
		}
	}
	if len(lines) == 0 {
		return orb.LineString{}, nil
	}
	if len(lines) == 1 {
		return lines[0], nil
	}

	return lines, nil
}

// polygonCenterline runs the full pipeline for one polygon:
// repair → densify → voronoi → containment filter → graph build → prune →
// per-component diameter path → simplify → optional boundary extension.
func polygonCenterline(p orb.Polygon, cfg Options) (orb.Geometry, error) {
	// 1) Repair invalid input; the original polygon is never mutated.
	poly, err := geom.Repair(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}

	width := geom.AverageWidth(poly)

	// 2) Build the skeleton graph, retrying once at finer sampling when the
	//    polygon is too small or thin for the first spacing.
	spacing := samplingSpacing(poly, width, cfg)
	graph, err := buildSkeleton(poly, spacing, cfg)
	if errors.Is(err, ErrSkeletonEmpty) && cfg.DensifyDistance != 0 {
		retry := spacing / 2
		if spacing == 0 {
			retry = geom.Perimeter(poly) / 16
		}
		graph, err = buildSkeleton(poly, retry, cfg)
	}
	if err != nil {
		if errors.Is(err, ErrSkeletonEmpty) {
			// Degenerate input: empty result plus the reported error.
			return orb.LineString{}, err
		}

		return nil, err
	}

	// 3) Prune short leaf branches to a fixed point.
	graph.Prune(pruneThreshold(width, cfg))

	// 4) One diameter path per connected component.
	var lines []orb.LineString
	var lengths []float64
	for _, comp := range graph.Components() {
		path, length := graph.DiameterPath(comp)
		if len(path) < 2 {
			continue
		}
		lines = append(lines, graph.PathLine(path))
		lengths = append(lengths, length)
	}
	if len(lines) == 0 {
		// Pruning collapsed the graph to a point: a legitimate outcome for
		// near-circular polygons, reported as empty, not as an error.
		return orb.LineString{}, nil
	}

	// 5) Longest component first.
	order := make([]int, len(lines))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return lengths[order[i]] > lengths[order[j]]
	})

	// 6) Simplify, extend, normalize.
	tol := cfg.SimplifyTolerance
	if tol < 0 {
		tol = -tol * width
	}
	out := make(orb.MultiLineString, 0, len(lines))
	for _, idx := range order {
		line := lines[idx]
		if tol > 0 {
			line = simplify.DouglasPeucker(tol).LineString(line)
		}
		if cfg.Extend {
			line = extendToBoundary(line, poly)
		}
		out = append(out, normalizeLine(line))
	}

	if len(out) == 1 {
		return out[0], nil
	}

	return out, nil
}

// buildSkeleton densifies the boundary, computes Voronoi edges over the
// sampled sites, keeps the edges fully inside the polygon and assembles the
// graph. Every empty outcome maps to ErrSkeletonEmpty so the caller can
// retry with finer sampling.
func buildSkeleton(poly orb.Polygon, spacing float64, cfg Options) (*skeleton.Graph, error) {
	sites := geom.BoundaryPoints(geom.Densify(poly, spacing))

	segs, err := geom.VoronoiEdges(sites)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSkeletonEmpty, err)
	}

	inside := make([]geom.Segment, 0, len(segs))
	for _, s := range segs {
		if geom.SegmentWithin(poly, s) {
			inside = append(inside, s)
		}
	}
	if len(inside) == 0 {
		return nil, fmt.Errorf("%w: no voronoi edge inside the polygon at spacing %g", ErrSkeletonEmpty, spacing)
	}

	eps := cfg.SnapEpsilon
	if eps == 0 {
		base := spacing
		if base == 0 {
			base = geom.Perimeter(poly) / float64(len(sites))
		}
		eps = base / snapDivisor
	}
	g, err := skeleton.Build(inside, skeleton.WithSnapEpsilon(eps))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSkeletonEmpty, err)
	}

	return g, nil
}

// samplingSpacing resolves the boundary sampling spacing for a polygon:
// absolute when positive, auto-scaled by average width when negative, with
// the growth cap and the MaxBoundaryPoints floor applied to the auto case.
func samplingSpacing(poly orb.Polygon, width float64, cfg Options) float64 {
	d := cfg.DensifyDistance
	if d == 0 {
		return 0
	}
	if d > 0 {
		return d
	}
	if geom.Compactness(poly) < compactnessFloor {
		// Thread-like shape: width-derived spacing is meaningless.
		return 0
	}

	spacing := -d * width
	if spacing <= 0 {
		return 0
	}
	perimeter := geom.Perimeter(poly)
	if n := len(geom.BoundaryPoints(poly)); n > 0 {
		growth := perimeter / spacing / float64(n)
		if growth > maxDensifyGrowth {
			spacing *= growth / maxDensifyGrowth
		}
	}
	if floor := perimeter / float64(cfg.MaxBoundaryPoints); spacing < floor {
		spacing = floor
	}

	return spacing
}

// pruneThreshold resolves the branch pruning threshold:
// max(minBranchLength, WidthFactor × half width).
func pruneThreshold(width float64, cfg Options) float64 {
	minBranch := cfg.MinBranchLength
	if minBranch < 0 {
		minBranch = -minBranch * width
	}

	return math.Max(minBranch, cfg.WidthFactor*width/2)
}

// normalizeLine gives the line a canonical direction: the lexicographically
// smaller endpoint comes first, so reruns and reversed inputs agree.
func normalizeLine(ls orb.LineString) orb.LineString {
	if len(ls) < 2 {
		return ls
	}
	first, last := ls[0], ls[len(ls)-1]
	if last[0] < first[0] || (last[0] == first[0] && last[1] < first[1]) {
		ls.Reverse()
	}

	return ls
}
