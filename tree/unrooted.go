package tree

import "github.com/katalvlaran/homkit/digraph"

// GenerateUnrooted enumerates non-isomorphic oriented trees of exactly
// n nodes via spec §4.7's centred/bicentred decomposition, each
// returned as a digraph.Matrix. The trees are assembled only from the
// rooted-core-filtered cache of buildRootedCache, so the output is not
// every oriented tree of n nodes. n=1 is the boundary
// case of spec §8 ("a tree of one node is a core; the generator emits
// exactly one tree at n=1") and is handled directly, bypassing
// centred/bicentred which both assume at least two nodes. When
// WithCoreOnly(true) is given, the full output set is core-filtered in
// parallel as the final pass (spec §5).
func GenerateUnrooted(n int, opts ...Option) []*digraph.Matrix {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if n == 1 {
		return []*digraph.Matrix{digraph.NewMatrix(1)}
	}
	cache := buildRootedCache(n, cfg.maxArity, cfg.maxWorkers)

	var out []*digraph.Matrix
	out = append(out, centred(cache[n])...)
	out = append(out, bicentred(cache, n)...)

	if cfg.coreOnly {
		out = matrixCoreFilter(out, cfg.maxWorkers)
	}
	return out
}

// centred returns, for every rooted tree of height h at the top
// level, those with at least two children of height h-1 — the root is
// then the tree's unrooted centre.
func centred(roots []*Rooted) []*digraph.Matrix {
	var out []*digraph.Matrix
	for _, t := range roots {
		h := t.Height()
		count := 0
		for _, c := range t.Children {
			if c.Sub.Height() == h-1 {
				count++
			}
		}
		if count >= 2 {
			mat, _ := t.ToMatrix()
			out = append(out, mat)
		}
	}
	return out
}

// bicentred joins two rooted trees of equal height with a single
// directed edge between their roots, for every size split p+(n-p).
// When the two half-sizes are equal, only pairs where tb sits at or
// after ta in the cache order are considered, and only one edge
// direction is emitted when ta and tb are themselves isomorphic
// (Compare==0), avoiding both pair-order and reverse-edge duplicates.
func bicentred(cache map[int][]*Rooted, n int) []*digraph.Matrix {
	var out []*digraph.Matrix
	for p := 1; p*2 <= n; p++ {
		q := n - p
		left := cache[p]
		right := cache[q]
		for i, ta := range left {
			jStart := 0
			if p == q {
				jStart = i
			}
			for j := jStart; j < len(right); j++ {
				tb := right[j]
				if ta.Height() != tb.Height() {
					continue
				}
				same := p == q && Compare(ta, tb) == 0
				out = append(out, joinRoots(ta, tb, 0))
				if !same {
					out = append(out, joinRoots(ta, tb, 1))
				}
			}
		}
	}
	return out
}

// joinRoots builds the matrix of ta and tb joined root-to-root, with
// dir 0 meaning the connecting edge points ta.root -> tb.root and 1
// the reverse.
func joinRoots(ta, tb *Rooted, dir int) *digraph.Matrix {
	na, nb := ta.NumNodes(), tb.NumNodes()
	mat := digraph.NewMatrix(na + nb)

	next := 1
	addRootedEdges(mat, ta, 0, &next)
	bRoot := next
	next++
	addRootedEdges(mat, tb, bRoot, &next)

	if dir == 0 {
		_ = mat.AddEdge(0, bRoot)
	} else {
		_ = mat.AddEdge(bRoot, 0)
	}
	return mat
}
