package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homkit/tree"
)

func TestGenerateRooted_SingleNode(t *testing.T) {
	roots := tree.GenerateRooted(1)
	require.Len(t, roots, 1)
	assert.Equal(t, 1, roots[0].NumNodes())
}

func TestGenerateRooted_EachTreeHasExactlyNNodes(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for _, r := range tree.GenerateRooted(n) {
			assert.Equal(t, n, r.NumNodes())
		}
	}
}

func TestGenerateRooted_NoDuplicatesUnderCompare(t *testing.T) {
	roots := tree.GenerateRooted(5)
	for i := 0; i < len(roots); i++ {
		for j := i + 1; j < len(roots); j++ {
			assert.NotZero(t, tree.Compare(roots[i], roots[j]), "duplicate canonical tree at %d,%d", i, j)
		}
	}
}

func TestGenerateRooted_MaxArityRespected(t *testing.T) {
	for _, r := range tree.GenerateRooted(6, tree.WithMaxArity(2)) {
		assert.LessOrEqual(t, r.Arity(), 2)
	}
}

func TestGenerateUnrooted_EveryTreeHasNNodes(t *testing.T) {
	for _, mat := range tree.GenerateUnrooted(4) {
		assert.Equal(t, 4, mat.N())
	}
}

// Scenario 6: tree generator at n=4, triad=false, core=false emits 4
// non-isomorphic oriented trees.
func TestGenerateUnrooted_N4Count(t *testing.T) {
	out := tree.GenerateUnrooted(4)
	assert.Len(t, out, 4)
}

func TestGenerateTriads_RequiresAtLeastFourNodes(t *testing.T) {
	assert.Empty(t, tree.GenerateTriads(3))
	assert.NotEmpty(t, tree.GenerateTriads(4))
}

func TestGenerateTriads_EveryTreeHasUniqueDegreeThreeVertex(t *testing.T) {
	for _, mat := range tree.GenerateTriads(7) {
		degree := make([]int, mat.N())
		for _, e := range mat.Edges() {
			degree[e[0]]++
			degree[e[1]]++
		}
		deg3 := 0
		for _, d := range degree {
			assert.LessOrEqual(t, d, 3)
			if d == 3 {
				deg3++
			}
		}
		assert.Equal(t, 1, deg3)
	}
}

func TestGenerateUnrooted_CoreOnlyIsSubsetOfAll(t *testing.T) {
	all := tree.GenerateUnrooted(5)
	cores := tree.GenerateUnrooted(5, tree.WithCoreOnly(true))
	assert.LessOrEqual(t, len(cores), len(all))
	for _, mat := range cores {
		assert.True(t, tree.IsCore(mat))
	}
}
