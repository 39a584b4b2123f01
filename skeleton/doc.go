// Package skeleton assembles Voronoi edge segments into an undirected planar
// graph and reduces it to its "spine" paths.
//
// What
//
//   - Build: snap segment endpoints within a configurable epsilon (quadtree
//     lookup over an arena of node indices) and assemble nodes, edges and
//     adjacency. Voronoi vertices computed from nearly-collinear sites are
//     numerically unstable; snapping is what keeps near-duplicate vertices
//     from splitting the graph.
//   - Prune: fixed-point removal of leaf branches shorter than a threshold.
//     A pass collects every qualifying branch and removes them all, so the
//     result does not depend on scan order; passes repeat until no branch
//     qualifies, because removing a branch can expose a new short stub.
//   - Components / DiameterPath: connected components via an iterative BFS
//     work queue, then per component a two-pass farthest-node search
//     (weighted Dijkstra) approximating the graph diameter, and the shortest
//     path between the two endpoints.
//
// Why
//
//	The raw Voronoi dual of a polygon boundary is a noisy tree full of short
//	spurs toward boundary vertices. Pruning it to a fixed point and keeping
//	the diameter path per component is what turns it into a usable
//	centerline.
//
// Graph representation (arena + indices)
//
//	Nodes live in a slice indexed by int id; edges are index pairs with a
//	cached Euclidean length; adjacency is a slice of edge-id slices. No
//	pointers, no recursion: pruning and traversal run over explicit work
//	queues, so stack depth stays bounded on pathological inputs with
//	thousands of branch points.
//
// Complexity (V = nodes, E = edges, P = prune passes)
//
//   - Build:        O(E log V) expected (quadtree lookups)
//   - Prune:        O(P·E), P bounded by the branch count
//   - DiameterPath: O((V + E) log V) per component (two Dijkstra sweeps)
//
// The graph holds no references back into the segments it was built from.
package skeleton
