package domain

import "fmt"

// Sentinel errors for domain-store operations.
var (
	// ErrBadSlot indicates a slot index outside [1, d(x)] for some variable x.
	ErrBadSlot = fmt.Errorf("domain: slot index out of range")

	// ErrBadVariable indicates a variable index outside [0, n).
	ErrBadVariable = fmt.Errorf("domain: variable index out of range")
)

// Domain is an ordered snapshot of live slot indices for one variable,
// in their current link order. It is the return type of Set/Indices and
// the accepted type of Insert, so callers can save and later restore a
// whole domain without touching the intrusive links slot-by-slot.
type Domain []int

// node is one entry of the intrusive doubly-linked arena. Slot 0 of
// each variable's arena is the sentinel head; slots 1..d(x) hold the
// initial values of x in insertion order and never move, even while
// unlinked.
type node struct {
	prev, next int
	value      int
}

// varArena holds one variable's fixed-size slot arena plus the live
// link count (size), maintained incrementally so Size is O(1).
type varArena struct {
	nodes []node
	size  int
}

// Store holds, for every variable, a doubly-linked list of value slots
// over a fixed index space. It is the canonical "semantic container"
// of spec §4.1: remove/restore are O(1) and reversible in LIFO order;
// set/insert replace the whole domain atomically.
type Store struct {
	vars []varArena
}

// NewStore builds a Store with one variable per entry of values,
// values[x] being the initial domain of variable x in insertion order.
func NewStore(values [][]int) *Store {
	vars := make([]varArena, len(values))
	for x, vals := range values {
		vars[x] = newArena(vals)
	}
	return &Store{vars: vars}
}

func newArena(vals []int) varArena {
	n := len(vals)
	nodes := make([]node, n+1)
	if n == 0 {
		nodes[0] = node{prev: 0, next: 0}
		return varArena{nodes: nodes, size: 0}
	}
	nodes[0] = node{prev: n, next: 1}
	for i, v := range vals {
		slot := i + 1
		prev := i // 0 for first slot
		next := slot + 1
		if next > n {
			next = 0
		}
		nodes[slot] = node{prev: prev, next: next, value: v}
	}
	return varArena{nodes: nodes, size: n}
}

// NumVars returns the number of variables in the store.
func (s *Store) NumVars() int { return len(s.vars) }

// Cap returns the total slot count d(x) for variable x (the arena
// size, independent of how many slots are currently linked).
func (s *Store) Cap(x int) int {
	return len(s.vars[x].nodes) - 1
}

// Size returns the number of currently linked slots for x. O(1).
func (s *Store) Size(x int) int {
	return s.vars[x].size
}

// Value returns the value stored at slot i of variable x. Defined for
// any i in [1, Cap(x)] regardless of current linkage.
func (s *Store) Value(x, i int) int {
	return s.vars[x].nodes[i].value
}

// Indices returns the slots currently linked for x, in their current
// link order (starting just after the sentinel head).
func (s *Store) Indices(x int) Domain {
	arena := &s.vars[x]
	out := make(Domain, 0, arena.size)
	for i := arena.nodes[0].next; i != 0; i = arena.nodes[i].next {
		out = append(out, i)
	}
	return out
}

// Remove splices slot i out of variable x's live list in O(1). The
// node's own prev/next fields are left untouched so a later Restore
// can relink using them; restoring out of LIFO order relative to a
// remove touching the same node's neighbours is a contract violation
// the caller (the solver's trail) must avoid.
func (s *Store) Remove(x, i int) {
	arena := &s.vars[x]
	p, n := arena.nodes[i].prev, arena.nodes[i].next
	arena.nodes[p].next = n
	arena.nodes[n].prev = p
	arena.size--
}

// Restore relinks slot i back into variable x's live list using the
// prev/next it still carries from before its Remove. Must be called in
// reverse order of removals touching that node.
func (s *Store) Restore(x, i int) {
	arena := &s.vars[x]
	p, n := arena.nodes[i].prev, arena.nodes[i].next
	arena.nodes[p].next = i
	arena.nodes[n].prev = i
	arena.size++
}

// Set atomically replaces the whole domain of x with the singleton
// containing value(x,i), returning the previous domain so the caller
// can push it onto a trail frame and later Insert it back.
func (s *Store) Set(x, i int) Domain {
	prev := s.Indices(x)
	arena := &s.vars[x]
	arena.nodes[0].next = i
	arena.nodes[0].prev = i
	arena.nodes[i].prev = 0
	arena.nodes[i].next = 0
	arena.size = 1
	return prev
}

// Insert replaces the whole domain of x with dom, relinking exactly
// those slots in the given order. Used to undo a prior Set when
// backtracking.
func (s *Store) Insert(x int, dom Domain) {
	arena := &s.vars[x]
	if len(dom) == 0 {
		arena.nodes[0].next = 0
		arena.nodes[0].prev = 0
		arena.size = 0
		return
	}
	arena.nodes[0].next = dom[0]
	arena.nodes[0].prev = dom[len(dom)-1]
	for k, slot := range dom {
		prev := 0
		if k > 0 {
			prev = dom[k-1]
		}
		next := 0
		if k < len(dom)-1 {
			next = dom[k+1]
		}
		arena.nodes[slot].prev = prev
		arena.nodes[slot].next = next
	}
	arena.size = len(dom)
}

// Assignment returns a full assignment (variable -> value) iff every
// domain currently has size exactly 1.
func (s *Store) Assignment() ([]int, bool) {
	out := make([]int, len(s.vars))
	for x := range s.vars {
		if s.vars[x].size != 1 {
			return nil, false
		}
		i := s.vars[x].nodes[0].next
		out[x] = s.vars[x].nodes[i].value
	}
	return out, true
}

// Clone returns a deep copy of the store, used by SAC-1 probes which
// must try a hypothesis without disturbing the caller's domains.
func (s *Store) Clone() *Store {
	vars := make([]varArena, len(s.vars))
	for x, a := range s.vars {
		nodes := make([]node, len(a.nodes))
		copy(nodes, a.nodes)
		vars[x] = varArena{nodes: nodes, size: a.size}
	}
	return &Store{vars: vars}
}
