package consistency

import "github.com/katalvlaran/homkit/domain"

// Arc is a directed constraint edge between two CSP variables.
type Arc struct {
	X, Y int
}

// Oracle is the relation abstraction the kernel propagates over. Check
// reports whether value ai of xi is compatible with value aj of xj
// (the values stored in the slots, not the slot indices); Arcs lists every directed arc the kernel should propagate along
// (both orientations of an undirected constraint are two arcs).
type Oracle interface {
	Check(xi, ai, xj, aj int) bool
	Arcs() []Arc
}

// Result classifies the outcome of a single Revise call.
type Result int

const (
	Unchanged Result = iota
	Pruned
	WipeOut
)

// RemoveFunc is invoked for every (variable, slot) the kernel prunes,
// letting a caller (typically the solver's trail) record it.
type RemoveFunc func(x, i int)

// Kernel bundles an Oracle with its precomputed by-target arc index,
// so repeated AC-3 runs (as MAC-3 does, once per tentative assignment)
// don't pay to rebuild it every time.
type Kernel struct {
	oracle   Oracle
	store    *domain.Store
	arcs     []Arc
	byTarget map[int][]Arc // arcs (z,x) indexed by x, in registration order
	bySource map[int][]Arc // arcs (x,y) indexed by x, in registration order
}

// NewKernel builds a Kernel over store using oracle's arc list.
func NewKernel(oracle Oracle, store *domain.Store) *Kernel {
	arcs := oracle.Arcs()
	byTarget := make(map[int][]Arc, len(arcs))
	bySource := make(map[int][]Arc, len(arcs))
	for _, a := range arcs {
		byTarget[a.Y] = append(byTarget[a.Y], a)
		bySource[a.X] = append(bySource[a.X], a)
	}
	return &Kernel{oracle: oracle, store: store, arcs: arcs, byTarget: byTarget, bySource: bySource}
}

// ArcsFrom returns every registered arc whose source is x, in
// registration order. Used by MAC-3 to seed AC-3 with x's neighbour
// arcs after x is tentatively assigned.
func (k *Kernel) ArcsFrom(x int) []Arc {
	return k.bySource[x]
}

// Store returns the domain store this kernel operates over.
func (k *Kernel) Store() *domain.Store { return k.store }

// Arcs returns the full registered arc list.
func (k *Kernel) Arcs() []Arc { return k.arcs }

// Revise prunes from D(x) every value for which no supporting value
// remains in D(y). Iterates D(x) in current link order; for each
// candidate, the first supporting value found in D(y) short-circuits
// the inner scan.
func (k *Kernel) Revise(x, y int, onRemove RemoveFunc) Result {
	removed := false
	for _, a := range k.store.Indices(x) {
		supported := false
		for _, b := range k.store.Indices(y) {
			if k.oracle.Check(x, k.store.Value(x, a), y, k.store.Value(y, b)) {
				supported = true
				break
			}
		}
		if !supported {
			k.store.Remove(x, a)
			if onRemove != nil {
				onRemove(x, a)
			}
			removed = true
		}
	}
	if k.store.Size(x) == 0 {
		return WipeOut
	}
	if removed {
		return Pruned
	}
	return Unchanged
}

// AC1 repeatedly sweeps every registered arc until a full pass causes
// no change, or a wipe-out is detected. Returns false on wipe-out.
func (k *Kernel) AC1(onRemove RemoveFunc) bool {
	for {
		changed := false
		for _, a := range k.arcs {
			switch k.Revise(a.X, a.Y, onRemove) {
			case WipeOut:
				return false
			case Pruned:
				changed = true
			}
		}
		if !changed {
			return true
		}
	}
}

// AC3 maintains a LIFO worklist seeded with seed (or every registered
// arc, if seed is nil). On each pop it revises; if the revision shrank
// D(x), every arc (z,x) — x's neighbours in the constraint graph — is
// re-enqueued, in the order they were originally registered. Halts on
// an empty worklist (arc-consistent) or a wipe-out (returns false).
func (k *Kernel) AC3(seed []Arc, onRemove RemoveFunc) bool {
	var stack []Arc
	if seed == nil {
		stack = append(stack, k.arcs...)
	} else {
		stack = append(stack, seed...)
	}
	for len(stack) > 0 {
		a := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch k.Revise(a.X, a.Y, onRemove) {
		case WipeOut:
			return false
		case Pruned:
			stack = append(stack, k.byTarget[a.X]...)
		}
	}
	return true
}

// SAC1 assumes the store is already arc-consistent. For every
// remaining (x,i), it clones the store, fixes x to the singleton {i},
// and re-runs AC3; if that fails, i can never participate in any
// solution and is permanently removed from the caller's store. The
// sweep repeats until a full pass removes nothing. Returns false if
// any variable's domain is emptied along the way.
func (k *Kernel) SAC1() bool {
	for {
		changed := false
		for x := 0; x < k.store.NumVars(); x++ {
			for _, i := range k.store.Indices(x) {
				probe := k.store.Clone()
				probeKernel := &Kernel{oracle: k.oracle, store: probe, arcs: k.arcs, byTarget: k.byTarget, bySource: k.bySource}
				probe.Set(x, i)
				if !probeKernel.AC3(nil, nil) {
					k.store.Remove(x, i)
					changed = true
					if k.store.Size(x) == 0 {
						return false
					}
				}
			}
		}
		if !changed {
			return true
		}
	}
}
