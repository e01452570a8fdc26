package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGraphAuto_EdgeList(t *testing.T) {
	mat, err := parseGraph("[(0,1),(1,2)]", "auto")
	require.NoError(t, err)
	assert.Equal(t, 3, mat.N())
}

func TestParseGraphAuto_NamedFamily(t *testing.T) {
	mat, err := parseGraph("k3", "auto")
	require.NoError(t, err)
	assert.Equal(t, 3, mat.N())
	assert.Equal(t, 6, len(mat.Edges()))
}

func TestParseGraphAuto_Triad(t *testing.T) {
	mat, err := parseGraph("0,0,0", "auto")
	require.NoError(t, err)
	assert.Equal(t, 4, mat.N())
}

func TestParseGraph_ExplicitFormatOverridesSniffing(t *testing.T) {
	mat, err := parseGraph("p3", "named")
	require.NoError(t, err)
	assert.Equal(t, 3, mat.N())
}

func TestParseGraph_UnknownFormat(t *testing.T) {
	_, err := parseGraph("anything", "bogus")
	require.Error(t, err)
}
