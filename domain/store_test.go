package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homkit/domain"
)

func TestStore_InitialIndicesAndValues(t *testing.T) {
	s := domain.NewStore([][]int{{10, 20, 30}, {5}})
	assert.Equal(t, domain.Domain{1, 2, 3}, s.Indices(0))
	assert.Equal(t, 10, s.Value(0, 1))
	assert.Equal(t, 30, s.Value(0, 3))
	assert.Equal(t, 3, s.Size(0))
	assert.Equal(t, 1, s.Size(1))
}

func TestStore_RemoveRestoreIdempotence(t *testing.T) {
	s := domain.NewStore([][]int{{10, 20, 30}})
	before := s.Indices(0)

	s.Remove(0, 2) // remove the middle slot (value 20)
	assert.Equal(t, domain.Domain{1, 3}, s.Indices(0))
	assert.Equal(t, 2, s.Size(0))

	s.Restore(0, 2)
	assert.Equal(t, before, s.Indices(0))
	assert.Equal(t, 3, s.Size(0))
}

func TestStore_RemoveRestoreLIFO(t *testing.T) {
	s := domain.NewStore([][]int{{10, 20, 30, 40}})
	before := s.Indices(0)

	s.Remove(0, 2)
	s.Remove(0, 3)
	// Must restore in reverse order of removal.
	s.Restore(0, 3)
	s.Restore(0, 2)

	assert.Equal(t, before, s.Indices(0))
}

func TestStore_SetAndInsertRoundTrip(t *testing.T) {
	s := domain.NewStore([][]int{{10, 20, 30}})
	before := s.Indices(0)

	prev := s.Set(0, 2)
	assert.Equal(t, before, prev)
	assert.Equal(t, domain.Domain{2}, s.Indices(0))
	assert.Equal(t, 20, s.Value(0, 2))

	s.Insert(0, prev)
	assert.Equal(t, before, s.Indices(0))
}

func TestStore_EmptyDomainWipeOut(t *testing.T) {
	s := domain.NewStore([][]int{{10}})
	s.Remove(0, 1)
	assert.Equal(t, 0, s.Size(0))
	assert.Empty(t, s.Indices(0))
}

func TestStore_Assignment(t *testing.T) {
	s := domain.NewStore([][]int{{10, 20}, {5}})
	_, ok := s.Assignment()
	assert.False(t, ok)

	s.Set(0, 1)
	assign, ok := s.Assignment()
	require.True(t, ok)
	assert.Equal(t, []int{10, 5}, assign)
}

func TestStore_Clone(t *testing.T) {
	s := domain.NewStore([][]int{{10, 20, 30}})
	clone := s.Clone()
	clone.Remove(0, 1)

	assert.Equal(t, 3, s.Size(0))
	assert.Equal(t, 2, clone.Size(0))
}
