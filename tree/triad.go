package tree

import "github.com/katalvlaran/homkit/digraph"

// GenerateTriads enumerates every oriented tree of exactly n (n>=4)
// nodes with a unique degree-3 vertex and all others of degree <=2:
// one centre joined to three arms, each arm a directed path of
// independently-chosen edge directions (spec §6's triad textual form).
// Arm lengths and, within equal lengths, arm direction-strings are
// generated in non-decreasing order to avoid emitting the same
// unordered triple of arms more than once.
func GenerateTriads(n int, opts ...Option) []*digraph.Matrix {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	total := n - 1
	var out []*digraph.Matrix
	if total < 3 {
		cfg.log.Warn("triad request has too few nodes for any arm layout", "n", n)
		return out
	}

	for l1 := 1; l1 <= total-2; l1++ {
		for l2 := l1; l2 <= total-l1-1; l2++ {
			l3 := total - l1 - l2
			if l3 < l2 {
				break
			}
			arms1 := allBitstrings(l1)
			arms2 := allBitstrings(l2)
			arms3 := allBitstrings(l3)
			for _, a1 := range arms1 {
				for _, a2 := range arms2 {
					if l1 == l2 && compareArm(a2, a1) < 0 {
						continue
					}
					for _, a3 := range arms3 {
						if l2 == l3 && compareArm(a3, a2) < 0 {
							continue
						}
						out = append(out, buildTriad(a1, a2, a3))
					}
				}
			}
		}
	}

	if cfg.coreOnly {
		out = matrixCoreFilter(out, cfg.maxWorkers)
	}
	return out
}

// allBitstrings enumerates every {0,1} sequence of length l.
func allBitstrings(l int) [][]int {
	if l == 0 {
		return [][]int{{}}
	}
	var out [][]int
	var rec func(cur []int)
	rec = func(cur []int) {
		if len(cur) == l {
			out = append(out, append([]int(nil), cur...))
			return
		}
		rec(append(append([]int{}, cur...), 0))
		rec(append(append([]int{}, cur...), 1))
	}
	rec(nil)
	return out
}

// compareArm orders two equal-length bit sequences lexicographically.
func compareArm(a, b []int) int {
	for i := range a {
		if a[i] != b[i] {
			return a[i] - b[i]
		}
	}
	return 0
}

// buildTriad constructs the matrix for a centre joined to three arms,
// each described by its edge-direction bitstring (0 = forward from
// the previous vertex toward the leaf, 1 = backward).
func buildTriad(a1, a2, a3 []int) *digraph.Matrix {
	n := 1 + len(a1) + len(a2) + len(a3)
	mat := digraph.NewMatrix(n)
	next := 1
	for _, bits := range [][]int{a1, a2, a3} {
		prev := 0
		for _, b := range bits {
			id := next
			next++
			if b == 0 {
				_ = mat.AddEdge(prev, id)
			} else {
				_ = mat.AddEdge(id, prev)
			}
			prev = id
		}
	}
	return mat
}
