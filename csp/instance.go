package csp

import (
	"github.com/katalvlaran/homkit/consistency"
	"github.com/katalvlaran/homkit/digraph"
)

// Instance is an H-colouring CSP: variables are V(G), values are
// V(H), and check((u,a),(v,b)) tests that edges of G map to edges of
// H in the correct orientation, while non-adjacent pairs of G are
// unconstrained.
type Instance struct {
	g, h  *digraph.Matrix
	lists [][]int
}

// New builds the H-colouring instance (G,H,L) directly from a
// per-vertex list. len(lists) must equal g.N().
func New(g, h *digraph.Matrix, lists [][]int) *Instance {
	return &Instance{g: g, h: h, lists: lists}
}

// NoList builds the instance with L(v) = V(H) for every vertex.
func NoList(g, h *digraph.Matrix) *Instance {
	full := fullDomain(h.N())
	lists := make([][]int, g.N())
	for v := range lists {
		lists[v] = full
	}
	return New(g, h, lists)
}

// Precolor builds the instance with L(v) = {p(v)} where p(v) is
// defined, and L(v) = V(H) otherwise.
func Precolor(g, h *digraph.Matrix, p map[int]int) *Instance {
	full := fullDomain(h.N())
	lists := make([][]int, g.N())
	for v := range lists {
		if target, ok := p[v]; ok {
			lists[v] = []int{target}
		} else {
			lists[v] = full
		}
	}
	return New(g, h, lists)
}

func fullDomain(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Size returns |V(G)|.
func (inst *Instance) Size() int { return inst.g.N() }

// Domain returns L(x).
func (inst *Instance) Domain(x int) []int { return inst.lists[x] }

// Arcs emits, for every edge (u,v) of G, both (u,v) and (v,u) as
// directed constraint arcs, de-duplicated but otherwise unordered
// beyond first-occurrence order.
func (inst *Instance) Arcs() []consistency.Arc {
	seen := make(map[consistency.Arc]struct{})
	var arcs []consistency.Arc
	add := func(a consistency.Arc) {
		if _, ok := seen[a]; ok {
			return
		}
		seen[a] = struct{}{}
		arcs = append(arcs, a)
	}
	for _, e := range inst.g.Edges() {
		add(consistency.Arc{X: e[0], Y: e[1]})
		add(consistency.Arc{X: e[1], Y: e[0]})
	}
	return arcs
}

// Check implements spec §4.4's per-pair rule: if (u,v) is an edge of
// G, (a,b) must be an edge of H; else if (v,u) is an edge, (b,a) must
// be; otherwise the pair is unconstrained.
func (inst *Instance) Check(u, a, v, b int) bool {
	if inst.g.HasEdge(u, v) {
		return inst.h.HasEdge(a, b)
	}
	if inst.g.HasEdge(v, u) {
		return inst.h.HasEdge(b, a)
	}
	return true
}
