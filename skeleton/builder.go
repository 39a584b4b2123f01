package skeleton

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/quadtree"

	"github.com/pygeoops/pygeoops/geom"
)

// graphNode adapts an arena node to the quadtree's Pointer interface.
type graphNode struct {
	id int
	pt orb.Point
}

func (n graphNode) Point() orb.Point { return n.pt }

// Build assembles the undirected skeleton graph from Voronoi edge segments.
//
// Endpoints within SnapEpsilon of an existing node are merged into it
// (nearest-node wins, lower id on ties), so the jitter of Voronoi vertices
// computed from nearly-collinear sites cannot produce duplicate nodes.
// Segments that collapse to a self-loop under snapping are dropped, as are
// duplicate segments between the same node pair.
//
// Returns ErrNoEdges when the input is empty or every segment collapsed.
func Build(segs []geom.Segment, opts ...Option) (*Graph, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Nothing to build from.
	if len(segs) == 0 {
		return nil, ErrNoEdges
	}

	// 3) Quadtree bound covering all endpoints, padded so snapped lookups
	//    near the border and zero-extent inputs stay inside.
	bound := segs[0].Bound()
	for _, s := range segs[1:] {
		bound = bound.Union(s.Bound())
	}
	bound = bound.Pad(cfg.SnapEpsilon + 1e-9)

	g := &Graph{
		tree: quadtree.New(bound),
		eps:  cfg.SnapEpsilon,
	}

	// 4) Snap endpoints and collect edges.
	for _, s := range segs {
		a, err := g.snap(s.A)
		if err != nil {
			return nil, err
		}
		b, err := g.snap(s.B)
		if err != nil {
			return nil, err
		}
		if a == b {
			continue // collapsed under snapping
		}
		if g.hasEdge(a, b) {
			continue // duplicate pair, identical geometry
		}
		id := len(g.edges)
		g.edges = append(g.edges, Edge{A: a, B: b, Length: planar.Distance(g.nodes[a], g.nodes[b])})
		g.alive = append(g.alive, true)
		g.adj[a] = append(g.adj[a], id)
		g.adj[b] = append(g.adj[b], id)
		g.nAlive++
	}

	// 5) Everything collapsed: signal an empty skeleton.
	if g.nAlive == 0 {
		return nil, ErrNoEdges
	}

	return g, nil
}

// snap returns the id of the node within eps of p, allocating a new node
// when none exists. Nearest node wins; equal distances resolve to the lower
// id so rebuilding the same graph is deterministic.
func (g *Graph) snap(p orb.Point) (int, error) {
	box := orb.Bound{
		Min: orb.Point{p[0] - g.eps, p[1] - g.eps},
		Max: orb.Point{p[0] + g.eps, p[1] + g.eps},
	}
	best, bestDist := -1, math.Inf(1)
	for _, ptr := range g.tree.InBound(nil, box) {
		n := ptr.(graphNode)
		d := planar.Distance(n.pt, p)
		if d > g.eps {
			continue
		}
		if d < bestDist || (d == bestDist && n.id < best) {
			best, bestDist = n.id, d
		}
	}
	if best >= 0 {
		return best, nil
	}

	id := len(g.nodes)
	g.nodes = append(g.nodes, p)
	g.adj = append(g.adj, nil)
	if err := g.tree.Add(graphNode{id: id, pt: p}); err != nil {
		return 0, fmt.Errorf("skeleton: node index rejected point %v: %w", p, err)
	}

	return id, nil
}

// hasEdge reports whether a live or dead edge already joins a and b.
func (g *Graph) hasEdge(a, b int) bool {
	for _, ei := range g.adj[a] {
		e := g.edges[ei]
		if (e.A == a && e.B == b) || (e.A == b && e.B == a) {
			return true
		}
	}

	return false
}
