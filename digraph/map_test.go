package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/homkit/digraph"
)

func TestMap_AddEdgeIdempotent(t *testing.T) {
	m := digraph.NewMap[int]()
	m.AddEdge(1, 2)
	m.AddEdge(1, 2)
	assert.True(t, m.HasEdge(1, 2))
	assert.Equal(t, []int{2}, m.OutNeighbors(1))
	assert.Equal(t, []int{1}, m.InNeighbors(2))
	assert.Len(t, m.Edges(), 1)
}

func TestMap_Contract(t *testing.T) {
	m := digraph.NewMap[int]()
	m.AddEdge(1, 2)
	m.AddEdge(2, 3)
	m.AddEdge(3, 1)

	// Merge 2 into 1: edges 1->2 and 2->3 become self-loop 1->1 and 1->3.
	m.Contract(1, 2)

	assert.False(t, m.HasVertex(2))
	assert.True(t, m.HasEdge(1, 1))
	assert.True(t, m.HasEdge(1, 3))
	assert.True(t, m.HasEdge(3, 1))
}

func TestMap_ContractSelfLoopOnBothEndpoints(t *testing.T) {
	m := digraph.NewMap[int]()
	m.AddEdge(1, 2)
	m.Contract(1, 2)
	assert.True(t, m.HasEdge(1, 1))
}
