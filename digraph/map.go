// Package digraph: adjacency-map representation.
//
// Map is the mutable, construction-oriented digraph used by the
// indicator-graph builder: it supports vertex contraction (merging
// in/out-neighbour sets), insertion, and removal, none of which are
// cheap operations on a dense matrix. Map is value-owned by its
// builder and must not be shared across goroutines.
package digraph

import (
	"sort"
)

// Map is a mutable adjacency-map digraph: for each vertex, its set of
// out-neighbours and in-neighbours, plus the flat edge set. Vertices are
// arbitrary comparable labels (the indicator builder uses a label type
// carrying an operation index and a value tuple).
type Map[V comparable] struct {
	out   map[V]map[V]struct{} // out[u][v] exists iff edge u->v
	in    map[V]map[V]struct{} // in[v][u] exists iff edge u->v
	order []V                  // insertion order, for deterministic iteration
	seen  map[V]struct{}       // membership test for order de-dup
}

// NewMap returns an empty adjacency-map digraph.
func NewMap[V comparable]() *Map[V] {
	return &Map[V]{
		out:  make(map[V]map[V]struct{}),
		in:   make(map[V]map[V]struct{}),
		seen: make(map[V]struct{}),
	}
}

// AddVertex inserts v with no incident edges. Idempotent.
func (m *Map[V]) AddVertex(v V) {
	if _, ok := m.seen[v]; ok {
		return
	}
	m.seen[v] = struct{}{}
	m.order = append(m.order, v)
	m.out[v] = make(map[V]struct{})
	m.in[v] = make(map[V]struct{})
}

// HasVertex reports whether v is present.
func (m *Map[V]) HasVertex(v V) bool {
	_, ok := m.seen[v]
	return ok
}

// AddEdge inserts the directed edge u->v, adding either endpoint if absent.
// Idempotent: adding the same edge twice is a no-op.
func (m *Map[V]) AddEdge(u, v V) {
	m.AddVertex(u)
	m.AddVertex(v)
	m.out[u][v] = struct{}{}
	m.in[v][u] = struct{}{}
}

// HasEdge reports whether u->v is present.
func (m *Map[V]) HasEdge(u, v V) bool {
	_, ok := m.out[u][v]
	return ok
}

// OutNeighbors returns the out-neighbours of v in insertion order.
func (m *Map[V]) OutNeighbors(v V) []V {
	return m.orderedSubset(m.out[v])
}

// InNeighbors returns the in-neighbours of v in insertion order.
func (m *Map[V]) InNeighbors(v V) []V {
	return m.orderedSubset(m.in[v])
}

// Vertices returns all vertices in insertion order.
func (m *Map[V]) Vertices() []V {
	out := make([]V, len(m.order))
	copy(out, m.order)
	return out
}

// Edges returns all directed edges (u,v) in a deterministic order:
// by source's insertion index, then by target's insertion index.
func (m *Map[V]) Edges() [][2]V {
	pos := make(map[V]int, len(m.order))
	for i, v := range m.order {
		pos[v] = i
	}
	var edges [][2]V
	for _, u := range m.order {
		targets := m.orderedSubset(m.out[u])
		for _, v := range targets {
			edges = append(edges, [2]V{u, v})
		}
	}
	return edges
}

// Contract merges src into dst: every edge incident to src becomes
// incident to dst instead (out(src) is unioned into out(dst), likewise
// for in-neighbours), then src is removed. Self-redundant edges
// introduced by the merge (dst->dst duplicates) collapse naturally
// since adjacency is set-valued; an edge that becomes a self-loop
// because both its endpoints were merged into dst is kept as dst->dst.
//
// Contract is the mechanism behind the indicator builder's quotient-by-
// partition step (spec step 3): contracting v1..vm into v0 for each
// condition-supplied equivalence class.
func (m *Map[V]) Contract(dst, src V) {
	if dst == src {
		return
	}
	if !m.HasVertex(src) {
		return
	}
	m.AddVertex(dst)

	for v := range m.out[src] {
		target := v
		if target == src {
			target = dst
		}
		m.out[dst][target] = struct{}{}
		delete(m.in[v], src)
		if v != src {
			m.in[v][dst] = struct{}{}
		} else {
			m.in[dst][dst] = struct{}{}
		}
	}
	for u := range m.in[src] {
		source := u
		if source == src {
			source = dst
		}
		m.in[dst][source] = struct{}{}
		delete(m.out[u], src)
		if u != src {
			m.out[u][dst] = struct{}{}
		} else {
			m.out[dst][dst] = struct{}{}
		}
	}

	delete(m.out, src)
	delete(m.in, src)
	delete(m.seen, src)
	for i, v := range m.order {
		if v == src {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

func (m *Map[V]) orderedSubset(set map[V]struct{}) []V {
	out := make([]V, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	// Stable, deterministic order independent of map iteration: sort by
	// position in m.order.
	pos := make(map[V]int, len(m.order))
	for i, v := range m.order {
		pos[v] = i
	}
	sort.Slice(out, func(i, j int) bool { return pos[out[i]] < pos[out[j]] })
	return out
}
