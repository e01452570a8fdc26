package indicator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homkit/condition"
	"github.com/katalvlaran/homkit/digraph"
	"github.com/katalvlaran/homkit/indicator"
	"github.com/katalvlaran/homkit/solver"
)

func path(n int) *digraph.Matrix {
	m := digraph.NewMatrix(n)
	for i := 0; i < n-1; i++ {
		_ = m.AddEdge(i, i+1)
	}
	return m
}

func complete(n int) *digraph.Matrix {
	m := digraph.NewMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				_ = m.AddEdge(i, j)
			}
		}
	}
	return m
}

// triad10 builds the triad 10,10,10 (spec scenario 3): centre 0 and
// three arms of two edges each, a "1" (backward) edge into the centre
// followed by a "0" (forward) edge toward the leaf.
func triad10() *digraph.Matrix {
	m := digraph.NewMatrix(7)
	_ = m.AddEdge(1, 0)
	_ = m.AddEdge(1, 2)
	_ = m.AddEdge(3, 0)
	_ = m.AddEdge(3, 4)
	_ = m.AddEdge(5, 0)
	_ = m.AddEdge(5, 6)
	return m
}

// Scenario 4: H = directed path p3, condition = 3-NU; a polymorphism
// exists (the majority-like projection satisfying near-unanimity).
func TestBuild_NUOnPath_PolymorphismExists(t *testing.T) {
	h := path(3)
	cond := condition.NU(3)
	inst, _, err := indicator.Build(h, cond, indicator.Config{})
	require.NoError(t, err)

	s := solver.New(inst)
	assert.NotNil(t, s.SolveFirst())
}

// Scenario 5: H = k4, condition = Siggers, idempotent=true; exists.
func TestBuild_SiggersOnK4_Idempotent_PolymorphismExists(t *testing.T) {
	h := complete(4)
	cond := condition.Siggers()
	inst, _, err := indicator.Build(h, cond, indicator.Config{Idempotent: true})
	require.NoError(t, err)

	s := solver.New(inst)
	assert.NotNil(t, s.SolveFirst())
}

// Scenario 3: H = triad 10,10,10; condition = majority, level_wise =
// true; no polymorphism.
func TestBuild_MajorityOnTriad_LevelWise_NoPolymorphism(t *testing.T) {
	h := triad10()
	cond := condition.Majority()
	inst, _, err := indicator.Build(h, cond, indicator.Config{LevelWise: true})
	require.NoError(t, err)

	s := solver.New(inst)
	assert.Nil(t, s.SolveFirst())
}

func TestBuild_UnbalancedLevelWise(t *testing.T) {
	// A single self-loop-free directed triangle is unbalanced: no level
	// function can satisfy lvl(v) = lvl(u)+1 around the cycle.
	h := digraph.NewMatrix(3)
	_ = h.AddEdge(0, 1)
	_ = h.AddEdge(1, 2)
	_ = h.AddEdge(2, 0)

	_, _, err := indicator.Build(h, condition.Majority(), indicator.Config{LevelWise: true})
	assert.ErrorIs(t, err, indicator.ErrUnbalanced)
}

// Empty condition partition / arity-0 power graph (no edges at all in
// H) solves trivially: spec §8 boundary behaviour.
func TestBuild_EmptyPowerGraph_SolvesTrivially(t *testing.T) {
	h := digraph.NewMatrix(2) // no edges
	cond := condition.Majority()
	inst, labels, err := indicator.Build(h, cond, indicator.Config{})
	require.NoError(t, err)
	assert.Empty(t, labels)

	s := solver.New(inst)
	assert.NotNil(t, s.SolveFirst())
}
