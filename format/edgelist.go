package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/homkit/digraph"
)

// ParseEdgeList parses the bracketed edge-list grammar of spec §6:
// `[(0,1),(1,2),(2,0)]`, delimited by '[', ']', ',', '(', ')', with
// whitespace permitted anywhere between tokens.
func ParseEdgeList(s string) ([][2]int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var edges [][2]int
	for _, pair := range splitTopLevel(s) {
		pair = strings.TrimSpace(pair)
		pair = strings.TrimPrefix(pair, "(")
		pair = strings.TrimSuffix(pair, ")")
		parts := strings.Split(pair, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("%q: %w", pair, ErrMalformedEdgeList)
		}
		u, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", pair, ErrMalformedEdgeList)
		}
		v, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", pair, ErrMalformedEdgeList)
		}
		edges = append(edges, [2]int{u, v})
	}
	return edges, nil
}

// splitTopLevel splits a comma-separated list of "(a,b)" tuples on the
// commas that sit between tuples, not the ones inside each tuple.
func splitTopLevel(s string) []string {
	var out []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, s[start:])
	return out
}

// BuildMatrix renders a parsed edge list into a digraph.Matrix sized
// to one more than the largest vertex index referenced.
func BuildMatrix(edges [][2]int) *digraph.Matrix {
	n := 0
	for _, e := range edges {
		if e[0]+1 > n {
			n = e[0] + 1
		}
		if e[1]+1 > n {
			n = e[1] + 1
		}
	}
	mat := digraph.NewMatrix(n)
	for _, e := range edges {
		_ = mat.AddEdge(e[0], e[1])
	}
	return mat
}

// EmitEdgeList renders mat back into the bracketed edge-list grammar.
func EmitEdgeList(mat *digraph.Matrix) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range mat.Edges() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('(')
		b.WriteString(strconv.Itoa(e[0]))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(e[1]))
		b.WriteByte(')')
	}
	b.WriteByte(']')
	return b.String()
}
