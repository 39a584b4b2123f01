package skeleton

import "sort"

// branch is a maximal chain of degree-2 nodes hanging off a leaf, terminated
// by the first junction (degree ≥ 3) or by another leaf. Used only during
// pruning, never persisted.
type branch struct {
	leaf     int     // the degree-1 end
	far      int     // terminating node
	edgeIDs  []int   // chain edges, leaf side first
	length   float64 // summed edge length
	attached bool    // far end is a junction that keeps other edges
}

// Prune removes leaf branches shorter than threshold until a fixed point.
//
// Each pass collects every qualifying branch and removes them all, so two
// short stubs at the same junction disappear together and the result is
// independent of scan order. Passes repeat because removing a branch can
// turn its junction into a new leaf exposing another short chain.
//
// A branch qualifies only when exactly one of its ends is attached to the
// rest of the graph: standalone chains (both ends free) are a component's
// whole spine and always survive. When one pass selects every remaining
// edge — a star whose arms are all short — branches are instead removed one
// at a time, shortest first, so a through-path across the junction survives
// rather than the graph emptying. Pruning always stops once a single edge
// remains.
//
// threshold ≤ 0 is a no-op. Pruning is monotonic: a larger threshold never
// leaves more edges than a smaller one.
func (g *Graph) Prune(threshold float64) {
	if threshold <= 0 {
		return
	}
	for g.nAlive > 1 {
		qualifying := g.shortBranches(threshold)
		if len(qualifying) == 0 {
			return
		}

		total := 0
		for _, br := range qualifying {
			total += len(br.edgeIDs)
		}
		if total >= g.nAlive {
			// Removing them all would erase the graph: drop only the
			// shortest (lowest leaf id on ties) and re-evaluate.
			sort.Slice(qualifying, func(i, j int) bool {
				if qualifying[i].length != qualifying[j].length {
					return qualifying[i].length < qualifying[j].length
				}

				return qualifying[i].leaf < qualifying[j].leaf
			})
			g.removeBranch(qualifying[0])
			continue
		}

		for _, br := range qualifying {
			g.removeBranch(br)
		}
	}
}

// shortBranches returns every leaf branch below threshold whose far end is a
// junction. Branches found from distinct leaves are edge-disjoint: a walk
// stops at the first node of degree ≠ 2.
func (g *Graph) shortBranches(threshold float64) []branch {
	var out []branch
	for n := range g.nodes {
		if g.Degree(n) != 1 {
			continue
		}
		br := g.walkBranch(n)
		if br.attached && br.length < threshold {
			out = append(out, br)
		}
	}

	return out
}

// walkBranch follows the chain from a leaf through degree-2 nodes until a
// junction or another leaf. Iterative by construction: no recursion, the
// chain is consumed edge by edge.
func (g *Graph) walkBranch(leaf int) branch {
	br := branch{leaf: leaf}
	cur, prevEdge := leaf, -1
	for {
		if cur != leaf && g.Degree(cur) != 2 {
			break // junction or far leaf
		}
		next := -1
		for _, ei := range g.adj[cur] {
			if g.alive[ei] && ei != prevEdge {
				next = ei
				break
			}
		}
		if next < 0 {
			break // isolated leaf, nothing to follow
		}
		br.edgeIDs = append(br.edgeIDs, next)
		br.length += g.edges[next].Length
		cur, prevEdge = g.edges[next].other(cur), next
	}
	br.far = cur
	br.attached = g.Degree(cur) >= 3

	return br
}

// removeBranch marks the branch edges dead.
func (g *Graph) removeBranch(br branch) {
	for _, ei := range br.edgeIDs {
		if g.alive[ei] {
			g.alive[ei] = false
			g.nAlive--
		}
	}
}
