package centerline_test

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/pygeoops/pygeoops/centerline"
)

// benchShape is an L-shaped corridor with a funnel opening, complex enough
// to exercise densification, pruning and the diameter search.
var benchShape = orb.Polygon{orb.Ring{
	{0, 0}, {0, 8}, {-2, 10}, {4, 10}, {2, 8}, {2, 2}, {10, 2}, {10, 0}, {0, 0},
}}

func BenchmarkCenterline_Default(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := centerline.Centerline(benchShape); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCenterline_Dense(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := centerline.Centerline(benchShape,
			centerline.WithDensifyDistance(0.25),
		)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBatch(b *testing.B) {
	gs := make([]orb.Geometry, 16)
	for i := range gs {
		gs[i] = benchShape
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := centerline.Batch(gs); err != nil {
			b.Fatal(err)
		}
	}
}
