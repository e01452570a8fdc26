package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/homkit/digraph"
	"github.com/katalvlaran/homkit/tree"
)

func TestIsCore_SingleNode(t *testing.T) {
	mat := digraph.NewMatrix(1)
	assert.True(t, tree.IsCore(mat))
}

func TestIsCore_DirectedPathIsCore(t *testing.T) {
	mat := digraph.NewMatrix(3)
	_ = mat.AddEdge(0, 1)
	_ = mat.AddEdge(1, 2)
	assert.True(t, tree.IsCore(mat))
}

// Scenario 8: core check on triad 1,0,0 is not a core.
func TestIsCore_Triad100_NotACore(t *testing.T) {
	mat := buildTriad100()
	assert.False(t, tree.IsCore(mat))
}

// buildTriad100 builds the triad with arms "1", "0", "0": centre c,
// arm1 = one backward edge (leaf->c), arm2 and arm3 = one forward edge
// each (c->leaf).
func buildTriad100() *digraph.Matrix {
	mat := digraph.NewMatrix(4)
	_ = mat.AddEdge(1, 0) // arm "1": leaf(1) -> centre(0)
	_ = mat.AddEdge(0, 2) // arm "0": centre(0) -> leaf(2)
	_ = mat.AddEdge(0, 3) // arm "0": centre(0) -> leaf(3)
	return mat
}

func TestIsRootedCore_SymmetricLeavesFoldRegardlessOfRoot(t *testing.T) {
	// Two leaves of a shared root are interchangeable by folding one
	// onto the other: this endomorphism never touches the root, so
	// precolouring root->root does not rule it out. Neither form is a
	// core.
	mat := digraph.NewMatrix(3)
	_ = mat.AddEdge(0, 1)
	_ = mat.AddEdge(0, 2)
	assert.False(t, tree.IsCore(mat))
	assert.False(t, tree.IsRootedCore(mat, 0))
}

func TestIsRootedCore_AsymmetricPathIsCore(t *testing.T) {
	mat := digraph.NewMatrix(3)
	_ = mat.AddEdge(0, 1)
	_ = mat.AddEdge(1, 2)
	assert.True(t, tree.IsCore(mat))
	assert.True(t, tree.IsRootedCore(mat, 0))
}
