package indicator

import (
	"errors"
	"sort"

	"github.com/katalvlaran/homkit/condition"
	"github.com/katalvlaran/homkit/csp"
	"github.com/katalvlaran/homkit/digraph"
	"github.com/katalvlaran/homkit/internal/logx"
)

// ErrUnbalanced indicates level_wise was requested but H admits no
// level function (spec §4.5 step 2).
var ErrUnbalanced = errors.New("indicator: H admits no level function")

// Config toggles the three optional refinements of spec §4.5. Log, if
// left zero-valued, defaults to logx.Nop() inside Build.
type Config struct {
	LevelWise    bool
	Conservative bool
	Idempotent   bool
	Log          logx.Logger
}

// labelEdge is one power-graph edge before quotienting.
type labelEdge struct {
	u, v condition.Label
}

// Build runs the full spec §4.5 pipeline: power-graph construction,
// optional level-wise filtering, quotient by the condition's
// partition, renumbering into a dense matrix, and list-function
// construction. The returned labels slice is the bijection between
// indicator-graph vertex ids and their surviving (operation, tuple)
// representative label, useful for diagnostics.
func Build(h *digraph.Matrix, cond condition.Condition, cfg Config) (*csp.Instance, []condition.Label, error) {
	log := cfg.Log
	if log == (logx.Logger{}) {
		log = logx.Nop()
	}

	var edges []labelEdge
	for f, k := range cond.Arities() {
		for _, e := range powerGraphEdges(h, k) {
			edges = append(edges, labelEdge{
				u: condition.Label{F: f, T: e[0]},
				v: condition.Label{F: f, T: e[1]},
			})
		}
	}

	if cfg.LevelWise {
		lvl, ok := Levels(h)
		if !ok {
			return nil, nil, ErrUnbalanced
		}
		filtered := edges[:0]
		for _, e := range edges {
			if levelHomogeneous(e.u.T, lvl) && levelHomogeneous(e.v.T, lvl) {
				filtered = append(filtered, e)
			}
		}
		edges = filtered
		if len(edges) == 0 {
			log.Warn("level-wise filtering left no power-graph edges", "condition", cond.Name())
		}
	}

	m := digraph.NewMap[string]()
	registry := make(map[string]condition.Label)
	for _, e := range edges {
		registry[e.u.Key()] = e.u
		registry[e.v.Key()] = e.v
		m.AddEdge(e.u.Key(), e.v.Key())
	}

	for _, class := range cond.Partition(h.N()) {
		if len(class) == 0 {
			log.Warn("condition partition produced an empty equivalence class", "condition", cond.Name())
			continue
		}
		rep := class[0]
		registry[rep.Key()] = rep
		for _, member := range class[1:] {
			registry[member.Key()] = member
			m.Contract(rep.Key(), member.Key())
		}
	}

	mat, _, toKey := digraph.ToMatrix(m)

	labels := make([]condition.Label, len(toKey))
	for i, k := range toKey {
		labels[i] = registry[k]
	}

	full := fullDomain(h.N())
	lists := make([][]int, mat.N())
	for i, lab := range labels {
		if v, ok := cond.Precolor(lab); ok {
			lists[i] = []int{v}
		} else if cfg.Conservative {
			lists[i] = uniqueSorted(lab.T)
		} else if cfg.Idempotent && allEqual(lab.T) {
			lists[i] = []int{lab.T[0]}
		} else {
			lists[i] = full
		}
	}

	inst := csp.New(mat, h, lists)
	return inst, labels, nil
}

func levelHomogeneous(tuple []int, lvl []int) bool {
	for _, x := range tuple[1:] {
		if lvl[x] != lvl[tuple[0]] {
			return false
		}
	}
	return true
}

func allEqual(tuple []int) bool {
	for _, x := range tuple[1:] {
		if x != tuple[0] {
			return false
		}
	}
	return true
}

func uniqueSorted(tuple []int) []int {
	seen := make(map[int]struct{}, len(tuple))
	var out []int
	for _, x := range tuple {
		if _, ok := seen[x]; !ok {
			seen[x] = struct{}{}
			out = append(out, x)
		}
	}
	sort.Ints(out)
	return out
}

func fullDomain(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// powerGraphEdges enumerates the edges of H^k: pairs of k-tuples (u,v)
// with H.HasEdge(u[i], v[i]) for every coordinate i. Rather than
// testing all n^k candidate targets per source tuple, it builds the
// cartesian product of each coordinate's out-neighbour list, which is
// exactly the set of valid target tuples.
func powerGraphEdges(h *digraph.Matrix, k int) [][2][]int {
	n := h.N()
	var edges [][2][]int
	u := make([]int, k)

	var rec func(pos int)
	rec = func(pos int) {
		if pos == k {
			lists := make([][]int, k)
			for i := 0; i < k; i++ {
				lists[i] = h.OutNeighbors(u[i])
			}
			uu := append([]int(nil), u...)
			for _, v := range cartesian(lists) {
				edges = append(edges, [2][]int{uu, v})
			}
			return
		}
		for val := 0; val < n; val++ {
			u[pos] = val
			rec(pos + 1)
		}
	}
	rec(0)
	return edges
}

func cartesian(lists [][]int) [][]int {
	result := [][]int{{}}
	for _, l := range lists {
		var next [][]int
		for _, r := range result {
			for _, v := range l {
				t := append(append([]int(nil), r...), v)
				next = append(next, t)
			}
		}
		result = next
	}
	return result
}
