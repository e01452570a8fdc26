package format

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/homkit/digraph"
)

// ParseTriad parses the triad textual form of spec §6: three
// comma-separated arms, each a string over {0,1} where 0 means a
// forward edge from the previous vertex toward the leaf and 1 means
// backward.
func ParseTriad(s string) (*digraph.Matrix, error) {
	arms := strings.Split(s, ",")
	if len(arms) != 3 {
		return nil, fmt.Errorf("%q: %w", s, ErrMalformedTriad)
	}
	bits := make([][]int, 3)
	for i, arm := range arms {
		arm = strings.TrimSpace(arm)
		if arm == "" {
			return nil, fmt.Errorf("%q: %w", s, ErrMalformedTriad)
		}
		b := make([]int, len(arm))
		for j, r := range arm {
			switch r {
			case '0':
				b[j] = 0
			case '1':
				b[j] = 1
			default:
				return nil, fmt.Errorf("%q: %w", s, ErrMalformedTriad)
			}
		}
		bits[i] = b
	}

	n := 1 + len(bits[0]) + len(bits[1]) + len(bits[2])
	mat := digraph.NewMatrix(n)
	next := 1
	for _, arm := range bits {
		prev := 0
		for _, b := range arm {
			id := next
			next++
			if b == 0 {
				_ = mat.AddEdge(prev, id)
			} else {
				_ = mat.AddEdge(id, prev)
			}
			prev = id
		}
	}
	return mat, nil
}
