package format_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/homkit/format"
)

func TestEmitDOT_ContainsNodesAndEdges(t *testing.T) {
	mat := format.BuildMatrix([][2]int{{0, 1}, {1, 2}})
	out := format.EmitDOT(mat)

	assert.True(t, strings.HasPrefix(out, "digraph {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, "\"0\"")
	assert.Contains(t, out, "\"1\"")
	assert.Contains(t, out, "\"2\"")
	assert.Contains(t, out, "\"0\" -> \"1\"")
	assert.Contains(t, out, "\"1\" -> \"2\"")
}

func TestEmitDOT_EmptyGraph(t *testing.T) {
	mat := format.BuildMatrix(nil)
	out := format.EmitDOT(mat)
	assert.Equal(t, "digraph {\n}\n", out)
}
