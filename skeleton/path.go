package skeleton

import (
	"container/heap"
	"math"

	"github.com/paulmach/orb"
)

// Components returns the connected components of the live graph as slices of
// node ids, in BFS order from the lowest-id node of each component. Nodes
// orphaned by pruning belong to no component. Components are reported in
// ascending order of their lowest node id, so the result is deterministic.
func (g *Graph) Components() [][]int {
	seen := make([]bool, len(g.nodes))
	var comps [][]int

	for n := range g.nodes {
		if seen[n] || g.Degree(n) == 0 {
			continue
		}
		// Iterative BFS work queue over node ids.
		queue := []int{n}
		seen[n] = true
		var comp []int
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, ei := range g.adj[u] {
				if !g.alive[ei] {
					continue
				}
				v := g.edges[ei].other(u)
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// DiameterPath approximates the longest shortest path within one component
// (as returned by Components) using the standard two-pass farthest-node
// search: from an arbitrary component node find the farthest node a, then
// from a find the farthest node b; the shortest a→b path is the component's
// spine. Not the exact diameter in general graphs, but stable and exact on
// trees — which pruned skeletons almost always are.
//
// Returns the node ids along the path and its length. Ties on distance
// resolve to the lower node id, so repeated runs agree.
func (g *Graph) DiameterPath(comp []int) ([]int, float64) {
	if len(comp) == 0 {
		return nil, 0
	}

	// 1) Deterministic start: the lowest node id in the component.
	start := comp[0]
	for _, n := range comp {
		if n < start {
			start = n
		}
	}

	// 2) First sweep: farthest node from start.
	dist, _ := g.dijkstra(start)
	a := farthest(dist, comp)

	// 3) Second sweep: farthest node from a, keeping predecessors.
	dist, prev := g.dijkstra(a)
	b := farthest(dist, comp)

	// 4) Reconstruct a→b.
	var rev []int
	for n := b; n >= 0; n = prev[n] {
		rev = append(rev, n)
	}
	path := make([]int, len(rev))
	for i, n := range rev {
		path[len(rev)-1-i] = n
	}

	return path, dist[b]
}

// PathLine converts a node-id path into a line string.
func (g *Graph) PathLine(path []int) orb.LineString {
	ls := make(orb.LineString, len(path))
	for i, n := range path {
		ls[i] = g.nodes[n]
	}

	return ls
}

// farthest picks the component node with the maximum finite distance,
// breaking ties toward the lower id.
func farthest(dist []float64, comp []int) int {
	best, bestDist := comp[0], math.Inf(-1)
	for _, n := range comp {
		if math.IsInf(dist[n], 1) {
			continue
		}
		if dist[n] > bestDist || (dist[n] == bestDist && n < best) {
			best, bestDist = n, dist[n]
		}
	}

	return best
}

// dijkstra computes single-source shortest distances over live edges with a
// lazy-decrease-key min-heap. Unreachable nodes keep +Inf and prev -1.
func (g *Graph) dijkstra(src int) (dist []float64, prev []int) {
	dist = make([]float64, len(g.nodes))
	prev = make([]int, len(g.nodes))
	done := make([]bool, len(g.nodes))
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[src] = 0

	pq := make(nodePQ, 0, len(g.nodes))
	heap.Init(&pq)
	heap.Push(&pq, nodeItem{id: src, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(nodeItem)
		u := item.id
		if done[u] {
			continue // stale entry
		}
		done[u] = true

		for _, ei := range g.adj[u] {
			if !g.alive[ei] {
				continue
			}
			e := g.edges[ei]
			v := e.other(u)
			nd := dist[u] + e.Length
			if nd < dist[v] || (nd == dist[v] && prev[v] >= 0 && u < prev[v]) {
				dist[v] = nd
				prev[v] = u
				heap.Push(&pq, nodeItem{id: v, dist: nd})
			}
		}
	}

	return dist, prev
}

// nodeItem is a heap entry: a node id with its tentative distance.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap over nodeItem, ordered by distance then id so equal
// distances pop in a fixed order.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
