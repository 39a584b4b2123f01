// Package centerline computes an approximate medial axis ("centerline") for
// polygons: a single connected line — or a small set of lines — that best
// represents the polygon's spine.
//
// What
//
//   - Centerline: polygon (or multi-polygon) in, line string out.
//   - Batch: an ordered slice of geometries in, an index-aligned slice of
//     results out; per-element failures never abort sibling computations.
//   - Auto-tuned parameters: negative values for densify distance, minimum
//     branch length and simplify tolerance scale with the polygon's average
//     width, so one default works across shapes of wildly different size.
//   - Optional extension of the two open ends to the polygon boundary.
//
// How
//
//	The polygon boundary (exterior and holes) is densified and its vertices
//	used as Voronoi sites. Voronoi edges fully inside the polygon form a
//	skeleton graph; short leaf branches are pruned to a fixed point; per
//	connected component the approximate graph diameter path is selected,
//	simplified (Douglas–Peucker) and, on request, extended to the boundary.
//	If no Voronoi edge survives the containment filter — typical for shapes
//	smaller or thinner than the sampling spacing — the build is retried once
//	at finer sampling before ErrSkeletonEmpty is surfaced.
//
// This is a discretized, graph-pruned approximation suitable for
// cartographic and line-generalization use, not an exact medial axis: it
// trades exactness for robustness and speed.
//
// Determinism
//
//	The pipeline contains no randomness and every tie (node snapping, prune
//	ordering, farthest-node and shortest-path selection) resolves by node
//	index, so identical input and options reproduce identical output.
//
// The computation is pure and synchronous: no goroutines, no I/O, no state
// shared between calls. Parallelize over a batch from the outside if needed.
package centerline
