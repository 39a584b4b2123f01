package skeleton_test

import (
	"testing"

	"github.com/pygeoops/pygeoops/geom"
	"github.com/pygeoops/pygeoops/skeleton"
)

// comb builds a long chain with n short teeth, the worst case for pruning
// (every pass may expose new leaves).
func comb(n int) []geom.Segment {
	segs := make([]geom.Segment, 0, 2*n)
	for i := 0; i < n; i++ {
		segs = append(segs,
			seg(float64(i), 0, float64(i+1), 0),
			seg(float64(i), 0, float64(i), 0.3),
		)
	}

	return segs
}

func BenchmarkBuild(b *testing.B) {
	segs := comb(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := skeleton.Build(segs, skeleton.WithSnapEpsilon(1e-9)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPrune(b *testing.B) {
	segs := comb(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g, err := skeleton.Build(segs)
		if err != nil {
			b.Fatal(err)
		}
		b.StartTimer()
		g.Prune(0.5)
	}
}

func BenchmarkDiameterPath(b *testing.B) {
	g, err := skeleton.Build(comb(1000))
	if err != nil {
		b.Fatal(err)
	}
	comps := g.Components()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.DiameterPath(comps[0])
	}
}
