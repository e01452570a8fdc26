package indicator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homkit/digraph"
	"github.com/katalvlaran/homkit/indicator"
)

func TestLevels_PathIsBalanced(t *testing.T) {
	h := path(4)
	lvl, ok := indicator.Levels(h)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 3}, lvl)
}

func TestLevels_TriangleIsUnbalanced(t *testing.T) {
	h := digraph.NewMatrix(3)
	_ = h.AddEdge(0, 1)
	_ = h.AddEdge(1, 2)
	_ = h.AddEdge(2, 0)

	_, ok := indicator.Levels(h)
	assert.False(t, ok)
}

func TestLevels_DisconnectedComponents(t *testing.T) {
	h := digraph.NewMatrix(4)
	_ = h.AddEdge(0, 1)
	_ = h.AddEdge(2, 3)

	lvl, ok := indicator.Levels(h)
	require.True(t, ok)
	assert.Equal(t, lvl[1]-lvl[0], 1)
	assert.Equal(t, lvl[3]-lvl[2], 1)
}

func TestLevels_StarIsBalanced(t *testing.T) {
	// 0 -> 1, 0 -> 2, 0 -> 3: every leaf is one level above the centre.
	h := digraph.NewMatrix(4)
	_ = h.AddEdge(0, 1)
	_ = h.AddEdge(0, 2)
	_ = h.AddEdge(0, 3)

	lvl, ok := indicator.Levels(h)
	require.True(t, ok)
	for _, leaf := range []int{1, 2, 3} {
		assert.Equal(t, lvl[0]+1, lvl[leaf])
	}
}
