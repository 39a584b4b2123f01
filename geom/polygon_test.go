package geom_test

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pygeoops/pygeoops/geom"
)

// rect returns a closed CCW rectangle ring (0,0)→(w,0)→(w,h)→(0,h).
func rect(w, h float64) orb.Ring {
	return orb.Ring{{0, 0}, {w, 0}, {w, h}, {0, h}, {0, 0}}
}

func TestPerimeterAndArea(t *testing.T) {
	p := orb.Polygon{rect(10, 2)}
	assert.InDelta(t, 24.0, geom.Perimeter(p), 1e-12)
	assert.InDelta(t, 20.0, geom.Area(p), 1e-12)
}

func TestAverageWidth_Rectangle(t *testing.T) {
	// L=24, A=20: 6 − sqrt(36−20) = 2, the short side.
	p := orb.Polygon{rect(10, 2)}
	assert.InDelta(t, 2.0, geom.AverageWidth(p), 1e-12)
}

func TestCompactness(t *testing.T) {
	// Square: 4π·100/40² = π/4.
	sq := orb.Polygon{rect(10, 10)}
	assert.InDelta(t, math.Pi/4, geom.Compactness(sq), 1e-12)

	// A long sliver is far less compact than a square.
	sliver := orb.Polygon{rect(1000, 1)}
	assert.Less(t, geom.Compactness(sliver), 0.01)
}

func TestValidate_Errors(t *testing.T) {
	if err := geom.Validate(orb.Polygon{}); !errors.Is(err, geom.ErrEmptyPolygon) {
		t.Errorf("empty polygon: want ErrEmptyPolygon, got %v", err)
	}
	short := orb.Polygon{{{0, 0}, {1, 0}, {0, 0}}}
	if err := geom.Validate(short); !errors.Is(err, geom.ErrRingTooShort) {
		t.Errorf("short ring: want ErrRingTooShort, got %v", err)
	}
	open := orb.Polygon{{{0, 0}, {10, 0}, {10, 2}, {0, 2}}}
	if err := geom.Validate(open); !errors.Is(err, geom.ErrRingTooShort) {
		t.Errorf("open ring: want ErrRingTooShort, got %v", err)
	}
	flat := orb.Polygon{{{0, 0}, {5, 0}, {10, 0}, {0, 0}}}
	if err := geom.Validate(flat); !errors.Is(err, geom.ErrZeroArea) {
		t.Errorf("flat polygon: want ErrZeroArea, got %v", err)
	}
	if err := geom.Validate(orb.Polygon{rect(10, 2)}); err != nil {
		t.Errorf("valid rectangle: unexpected error %v", err)
	}
}

func TestRepair_ClosesAndOrients(t *testing.T) {
	// Open, clockwise exterior with a duplicated point.
	in := orb.Polygon{{{0, 0}, {0, 2}, {0, 2}, {10, 2}, {10, 0}}}
	out, err := geom.Repair(in)
	require.NoError(t, err)
	require.Len(t, out, 1)

	ext := out[0]
	assert.True(t, ext.Closed(), "repaired exterior must be closed")
	assert.Len(t, ext, 5, "duplicate point must be dropped")

	// Shoelace sign: CCW after repair.
	var area float64
	for i := 0; i+1 < len(ext); i++ {
		area += ext[i][0]*ext[i+1][1] - ext[i+1][0]*ext[i][1]
	}
	assert.Greater(t, area, 0.0, "exterior must be wound CCW")

	// Input untouched.
	assert.Equal(t, orb.Point{0, 0}, in[0][0])
	assert.Len(t, in[0], 5)
}

func TestRepair_DropsCollapsedHole(t *testing.T) {
	in := orb.Polygon{
		rect(10, 10),
		{{3, 3}, {3, 3}, {3, 3}, {3, 3}}, // hole collapsed to a point
	}
	out, err := geom.Repair(in)
	require.NoError(t, err)
	assert.Len(t, out, 1, "collapsed hole must be dropped")
}

func TestRepair_Errors(t *testing.T) {
	if _, err := geom.Repair(orb.Polygon{}); !errors.Is(err, geom.ErrEmptyPolygon) {
		t.Errorf("want ErrEmptyPolygon, got %v", err)
	}
	collapsed := orb.Polygon{{{1, 1}, {1, 1}, {1, 1}}}
	if _, err := geom.Repair(collapsed); !errors.Is(err, geom.ErrRingTooShort) {
		t.Errorf("want ErrRingTooShort, got %v", err)
	}
	flat := orb.Polygon{{{0, 0}, {5, 0}, {10, 0}, {0, 0}}}
	if _, err := geom.Repair(flat); !errors.Is(err, geom.ErrZeroArea) {
		t.Errorf("want ErrZeroArea, got %v", err)
	}
}

func TestDensify(t *testing.T) {
	p := orb.Polygon{rect(10, 2)}
	d := geom.Densify(p, 2)
	require.Len(t, d, 1)
	ring := d[0]

	// 24 of perimeter at step 2 → 12 segments, 13 ring points.
	assert.Len(t, ring, 13)
	assert.True(t, ring.Closed())
	for i := 0; i+1 < len(ring); i++ {
		dx := ring[i+1][0] - ring[i][0]
		dy := ring[i+1][1] - ring[i][1]
		assert.LessOrEqual(t, math.Hypot(dx, dy), 2.0+1e-12)
	}

	// maxSeg <= 0 is a no-op.
	assert.Equal(t, p, geom.Densify(p, 0))
}

func TestBoundaryPoints(t *testing.T) {
	p := orb.Polygon{rect(10, 10), {{3, 3}, {7, 3}, {7, 7}, {3, 7}, {3, 3}}}
	pts := geom.BoundaryPoints(p)
	assert.Len(t, pts, 8, "closing duplicates must be dropped")
}
