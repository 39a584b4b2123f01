package skeleton_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pygeoops/pygeoops/geom"
	"github.com/pygeoops/pygeoops/skeleton"
)

func TestComponents(t *testing.T) {
	segs := append(mainPath(), seg(10, 10, 11, 10))
	g, err := skeleton.Build(segs)
	require.NoError(t, err)

	comps := g.Components()
	require.Len(t, comps, 2)
	assert.Len(t, comps[0], 4)
	assert.Len(t, comps[1], 2)
}

func TestComponents_SkipOrphans(t *testing.T) {
	segs := append(mainPath(), seg(2, 0, 2, 0.4))
	g, err := skeleton.Build(segs)
	require.NoError(t, err)
	g.Prune(0.5)

	comps := g.Components()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 4, "pruned spur node must not appear")
}

func TestDiameterPath_Chain(t *testing.T) {
	g, err := skeleton.Build(mainPath())
	require.NoError(t, err)

	comps := g.Components()
	require.Len(t, comps, 1)
	path, length := g.DiameterPath(comps[0])

	assert.InDelta(t, 3.0, length, 1e-12)
	require.Len(t, path, 4)

	ls := g.PathLine(path)
	ends := []orb.Point{ls[0], ls[len(ls)-1]}
	assert.Contains(t, ends, orb.Point{0, 0})
	assert.Contains(t, ends, orb.Point{3, 0})
}

func TestDiameterPath_PicksLongestArmPair(t *testing.T) {
	// Chain 0–3 on the x axis with a long spur of length 5 at x=1: the
	// diameter runs from the spur tip to (3,0), total 2+5.
	segs := append(mainPath(), seg(1, 0, 1, 5))
	g, err := skeleton.Build(segs)
	require.NoError(t, err)

	comps := g.Components()
	require.Len(t, comps, 1)
	path, length := g.DiameterPath(comps[0])

	assert.InDelta(t, 7.0, length, 1e-12)
	ls := g.PathLine(path)
	ends := []orb.Point{ls[0], ls[len(ls)-1]}
	assert.Contains(t, ends, orb.Point{1, 5})
	assert.Contains(t, ends, orb.Point{3, 0})
}

func TestDiameterPath_Cycle(t *testing.T) {
	segs := []geom.Segment{
		seg(0, 0, 1, 0),
		seg(1, 0, 1, 1),
		seg(1, 1, 0, 1),
		seg(0, 1, 0, 0),
	}
	g, err := skeleton.Build(segs)
	require.NoError(t, err)

	comps := g.Components()
	require.Len(t, comps, 1)
	path, length := g.DiameterPath(comps[0])

	// Opposite corners of the square: two hops.
	assert.InDelta(t, 2.0, length, 1e-12)
	assert.Len(t, path, 3)
}

func TestDiameterPath_Deterministic(t *testing.T) {
	segs := append(mainPath(), seg(1, 0, 1, 5), seg(2, 0, 2, -4))
	build := func() ([]int, float64) {
		g, err := skeleton.Build(segs)
		require.NoError(t, err)
		comps := g.Components()
		require.Len(t, comps, 1)

		return g.DiameterPath(comps[0])
	}

	p1, l1 := build()
	p2, l2 := build()
	assert.Equal(t, p1, p2)
	assert.Equal(t, l1, l2)
}

func TestDiameterPath_Empty(t *testing.T) {
	g, err := skeleton.Build(mainPath())
	require.NoError(t, err)

	path, length := g.DiameterPath(nil)
	assert.Nil(t, path)
	assert.Zero(t, length)
}
