package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomomorphismCmd_CycleToItself(t *testing.T) {
	flagPrecolor = ""
	flagStats = ""
	flagFormat = "auto"
	err := homomorphismCmd.RunE(homomorphismCmd, []string{"c3", "c3"})
	require.NoError(t, err)
}

func TestHomomorphismCmd_K3ToK2DoesNotExist(t *testing.T) {
	flagPrecolor = ""
	flagStats = ""
	flagFormat = "auto"
	err := homomorphismCmd.RunE(homomorphismCmd, []string{"k3", "k2"})
	require.NoError(t, err)
}

func TestPolymorphismCmd_NUOnPath(t *testing.T) {
	flagConditionArity = 3
	flagLevelWise = false
	flagConservative = false
	flagIdempotent = false
	flagStats = ""
	flagFormat = "auto"
	err := polymorphismCmd.RunE(polymorphismCmd, []string{"p3", "nu"})
	require.NoError(t, err)
}

func TestGenerateCmd_EmitsTreesForRange(t *testing.T) {
	flagMinNodes, flagMaxNodes = 1, 4
	flagTriad = false
	flagCore = false
	flagEmit = "edgelist"
	flagWorkers = 2
	err := generateCmd.RunE(generateCmd, nil)
	require.NoError(t, err)
}

func TestDotCmd_EmitsGraphvizSyntax(t *testing.T) {
	flagFormat = "auto"
	err := dotCmd.RunE(dotCmd, []string{"p3"})
	assert.NoError(t, err)
}
