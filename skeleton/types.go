// Package skeleton defines the graph arena, configuration options and
// sentinel errors for skeleton construction and pruning.
package skeleton

import (
	"errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/quadtree"
)

// Sentinel errors returned by the skeleton builder.
var (
	// ErrNoEdges indicates that no usable edge survived snapping — the
	// skeleton is empty. Callers typically retry with finer sampling once
	// before surfacing the failure.
	ErrNoEdges = errors.New("skeleton: no edges survived snapping")

	// ErrBadEpsilon indicates a negative snap epsilon.
	ErrBadEpsilon = errors.New("skeleton: snap epsilon must be non-negative")
)

// Edge is an undirected graph edge between two node ids with a cached
// Euclidean length.
type Edge struct {
	A, B   int
	Length float64
}

// other returns the endpoint of e opposite to node n.
func (e Edge) other(n int) int {
	if e.A == n {
		return e.B
	}

	return e.A
}

// Graph is an undirected planar graph over an arena of 2-D nodes.
// Node identity is the int index, never the raw coordinates, so
// floating-point noise cannot split a vertex in two. Self-loops are
// rejected at build time; duplicate edges between the same node pair are
// collapsed (straight segments between the same endpoints cannot differ
// in geometry).
//
// Pruning marks edges dead instead of re-indexing: all accessors and
// traversals consider live edges only.
type Graph struct {
	nodes []orb.Point
	edges []Edge
	alive []bool
	adj   [][]int // node id → incident edge ids

	nAlive int
	tree   *quadtree.Quadtree
	eps    float64
}

// NodeCount returns the number of allocated nodes, including nodes orphaned
// by pruning.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of live edges.
func (g *Graph) EdgeCount() int { return g.nAlive }

// Node returns the coordinates of node id.
func (g *Graph) Node(id int) orb.Point { return g.nodes[id] }

// Degree returns the number of live edges incident to node id.
func (g *Graph) Degree(id int) int {
	d := 0
	for _, ei := range g.adj[id] {
		if g.alive[ei] {
			d++
		}
	}

	return d
}

// Edges returns a copy of the live edges.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.nAlive)
	for i, e := range g.edges {
		if g.alive[i] {
			out = append(out, e)
		}
	}

	return out
}

// Options configures skeleton construction.
//
// SnapEpsilon – maximum distance between two segment endpoints that are
// merged into a single graph node. Typically tied to the boundary sampling
// spacing. Must be ≥ 0; 0 merges exact duplicates only.
type Options struct {
	SnapEpsilon float64
}

// Option is a functional option for Build.
type Option func(*Options)

// WithSnapEpsilon sets the node snapping tolerance.
// Must be non-negative; negative values cause a panic (ErrBadEpsilon).
func WithSnapEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			panic(ErrBadEpsilon.Error())
		}
		o.SnapEpsilon = eps
	}
}

// DefaultOptions returns the default construction options:
// exact-duplicate snapping only.
func DefaultOptions() Options {
	return Options{SnapEpsilon: 0}
}
