package indicator

import "github.com/katalvlaran/homkit/digraph"

// Levels computes a level function lvl : V(H) -> int with
// lvl(v) = lvl(u)+1 on every edge u->v, by BFS over the underlying
// undirected graph while propagating the directed constraint. Returns
// ok=false if H admits no such function (H is unbalanced).
//
// Equivalently this searches for a homomorphism from H to the
// bi-infinite directed path, one connected component at a time; since
// the path is acyclic and linearly ordered, a single consistent BFS
// assignment per component decides it without needing to try
// successive finite path lengths explicitly.
func Levels(h *digraph.Matrix) (lvl []int, ok bool) {
	n := h.N()
	lvl = make([]int, n)
	visited := make([]bool, n)

	inNeighbors := make([][]int, n)
	for _, e := range h.Edges() {
		inNeighbors[e[1]] = append(inNeighbors[e[1]], e[0])
	}

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		visited[start] = true
		lvl[start] = 0
		queue := []int{start}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range h.OutNeighbors(u) {
				want := lvl[u] + 1
				if !visited[v] {
					visited[v] = true
					lvl[v] = want
					queue = append(queue, v)
				} else if lvl[v] != want {
					return nil, false
				}
			}
			for _, p := range inNeighbors[u] {
				want := lvl[u] - 1
				if !visited[p] {
					visited[p] = true
					lvl[p] = want
					queue = append(queue, p)
				} else if lvl[p] != want {
					return nil, false
				}
			}
		}
	}
	return lvl, true
}
