package centerline

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Batch applies Centerline to an ordered slice of geometries and returns an
// index-aligned slice of results. Nil inputs pass through as nil results;
// a failing element fills its own slot with the error and never aborts its
// siblings — unless WithFailFast is set, in which case processing stops at
// the first failure and the first return carries the partially filled slice
// while the second return reports the failure with its index.
func Batch(gs []orb.Geometry, opts ...Option) ([]Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	out := make([]Result, len(gs))
	for i, g := range gs {
		line, err := one(g, cfg)
		out[i] = Result{Line: line, Err: err}
		if err != nil && cfg.FailFast {
			return out, fmt.Errorf("centerline: geometry %d: %w", i, err)
		}
	}

	return out, nil
}
