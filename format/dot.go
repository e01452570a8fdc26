package format

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/homkit/digraph"
)

// EmitDOT renders mat as a standard Graphviz digraph: one node
// declaration per vertex (quoted integer label) and one edge per
// directed edge.
func EmitDOT(mat *digraph.Matrix) string {
	var b strings.Builder
	b.WriteString("digraph {\n")
	for i := 0; i < mat.N(); i++ {
		b.WriteByte('\t')
		b.WriteByte('"')
		b.WriteString(strconv.Itoa(i))
		b.WriteString("\"\n")
	}
	for _, e := range mat.Edges() {
		b.WriteByte('\t')
		b.WriteByte('"')
		b.WriteString(strconv.Itoa(e[0]))
		b.WriteString("\" -> \"")
		b.WriteString(strconv.Itoa(e[1]))
		b.WriteString("\"\n")
	}
	b.WriteString("}\n")
	return b.String()
}
