package tree

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/homkit/consistency"
	"github.com/katalvlaran/homkit/csp"
	"github.com/katalvlaran/homkit/digraph"
	"github.com/katalvlaran/homkit/domain"
)

// IsCore reports whether mat is a core: building the (mat,mat)
// H-colouring instance with full domains and running AC-3 to its
// fixpoint leaves every variable a singleton domain (spec §4.7,
// §8 property 6).
func IsCore(mat *digraph.Matrix) bool {
	return acFixpointAllSingleton(csp.NoList(mat, mat))
}

// IsRootedCore reports whether mat is a core once root is precoloured
// to itself, the stronger condition spec §4.7 requires of rooted
// subtrees used as generator building blocks.
func IsRootedCore(mat *digraph.Matrix, root int) bool {
	return acFixpointAllSingleton(csp.Precolor(mat, mat, map[int]int{root: root}))
}

// acFixpointAllSingleton runs AC-3 to completion over inst's initial
// domains and reports whether every variable ended up a singleton. A
// wipe-out (impossible for a reflexive (T,T) instance, since the
// identity assignment always satisfies every arc, but defensive
// regardless) is treated as not-a-core.
func acFixpointAllSingleton(inst *csp.Instance) bool {
	values := make([][]int, inst.Size())
	for x := range values {
		values[x] = inst.Domain(x)
	}
	store := domain.NewStore(values)
	kernel := consistency.NewKernel(consistency.Oracle(inst), store)
	if !kernel.AC3(nil, nil) {
		return false
	}
	for x := 0; x < inst.Size(); x++ {
		if store.Size(x) != 1 {
			return false
		}
	}
	return true
}

// matrixCoreFilter core-filters a generated full-tree set in
// parallel, one worker per candidate (spec §5's final core filter).
// maxWorkers bounds concurrency; 0 leaves it unbounded.
func matrixCoreFilter(candidates []*digraph.Matrix, maxWorkers int) []*digraph.Matrix {
	keep := make([]bool, len(candidates))
	var g errgroup.Group
	if maxWorkers > 0 {
		g.SetLimit(maxWorkers)
	}
	for i, mat := range candidates {
		i, mat := i, mat
		g.Go(func() error {
			keep[i] = IsCore(mat)
			return nil
		})
	}
	_ = g.Wait()

	out := make([]*digraph.Matrix, 0, len(candidates))
	for i, mat := range candidates {
		if keep[i] {
			out = append(out, mat)
		}
	}
	return out
}
