// Package pygeoops provides spatial algorithms for cartographic line
// generalization, centered on approximate medial-axis extraction.
//
// 🚀 What is pygeoops?
//
//	A pure-Go library that computes the "spine" (centerline) of arbitrary,
//	possibly non-convex, possibly multi-ring polygons:
//		• geom/       — geometry kernel: validity repair, boundary
//		  densification, Voronoi edges (Delaunay dual), containment
//		  and ray-casting predicates
//		• skeleton/   — planar graph arena assembled from Voronoi edges,
//		  fixed-point leaf-branch pruning, diameter path selection
//		• centerline/ — the public operation: polygon(s) in, centerline
//		  line string(s) out, with optional extension to the boundary
//
// ✨ Why choose pygeoops?
//
//   - Robust on degenerate input – snapped graph nodes absorb the
//     floating-point noise of Voronoi vertices from near-collinear sites
//   - Deterministic – identical input and options reproduce identical output
//   - Pure Go – no cgo bindings to a native geometry engine
//   - Batch-friendly – per-element errors never abort sibling computations
//
// Data flow:
//
//	polygon → densified boundary sites → Voronoi edges → skeleton graph
//	        → pruned graph → diameter path(s) → simplified centerline
//
// Quick ASCII example:
//
//	    ┌────────────────────┐
//	    │  ·──────────────·  │
//	    └────────────────────┘
//
//	a narrow rectangle yields a single centered line along its long axis.
//
// Start with centerline.Centerline for the one-call API, or compose the
// subpackages directly when you need access to the intermediate graph.
package pygeoops
