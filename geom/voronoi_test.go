package geom_test

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pygeoops/pygeoops/geom"
)

func TestVoronoiEdges_Errors(t *testing.T) {
	_, err := geom.VoronoiEdges([]orb.Point{{0, 0}, {1, 1}})
	if !errors.Is(err, geom.ErrTooFewPoints) {
		t.Errorf("2 points: want ErrTooFewPoints, got %v", err)
	}

	collinear := []orb.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	_, err = geom.VoronoiEdges(collinear)
	if !errors.Is(err, geom.ErrCollinearPoints) {
		t.Errorf("collinear: want ErrCollinearPoints, got %v", err)
	}
}

// TestVoronoiEdges_Strip samples the boundary of a 10×2 rectangle every 2
// units. The finite Voronoi dual of the two point rows is exactly the
// midline y=1, split at the odd x coordinates.
func TestVoronoiEdges_Strip(t *testing.T) {
	var sites []orb.Point
	for x := 0.0; x <= 10; x += 2 {
		sites = append(sites, orb.Point{x, 0}, orb.Point{x, 2})
	}

	segs, err := geom.VoronoiEdges(sites)
	require.NoError(t, err)
	require.Len(t, segs, 4, "midline (1,1)…(9,1) has 4 pieces")

	var mids []float64
	for _, s := range segs {
		assert.InDelta(t, 1.0, s.A[1], 1e-9)
		assert.InDelta(t, 1.0, s.B[1], 1e-9)
		assert.InDelta(t, 2.0, s.Length(), 1e-9)
		mids = append(mids, s.Midpoint()[0])
	}
	sort.Float64s(mids)
	assert.InDeltaSlice(t, []float64{2, 4, 6, 8}, mids, 1e-9)
}

// TestVoronoiEdges_Finite checks that no produced vertex is NaN or infinite,
// even for a noisy blob of sites.
func TestVoronoiEdges_Finite(t *testing.T) {
	var sites []orb.Point
	for i := 0; i < 40; i++ {
		a := float64(i) * 0.37
		sites = append(sites, orb.Point{10 * math.Cos(a) * (1 + 0.1*math.Sin(3*a)), 10 * math.Sin(a)})
	}

	segs, err := geom.VoronoiEdges(sites)
	require.NoError(t, err)
	require.NotEmpty(t, segs)
	for _, s := range segs {
		for _, v := range []float64{s.A[0], s.A[1], s.B[0], s.B[1]} {
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		}
		assert.Greater(t, s.Length(), 0.0)
	}
}

func TestSegmentIntersection(t *testing.T) {
	pt, ok := geom.SegmentIntersection(
		orb.Point{0, 0}, orb.Point{2, 2},
		orb.Point{0, 2}, orb.Point{2, 0},
	)
	require.True(t, ok)
	assert.InDelta(t, 1.0, pt[0], 1e-12)
	assert.InDelta(t, 1.0, pt[1], 1e-12)

	// Disjoint.
	_, ok = geom.SegmentIntersection(
		orb.Point{0, 0}, orb.Point{1, 0},
		orb.Point{0, 1}, orb.Point{1, 1},
	)
	assert.False(t, ok)

	// Parallel.
	_, ok = geom.SegmentIntersection(
		orb.Point{0, 0}, orb.Point{1, 0},
		orb.Point{0, 5}, orb.Point{1, 5},
	)
	assert.False(t, ok)
}
