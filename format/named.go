package format

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/homkit/digraph"
)

// ParseNamedFamily parses spec §6's named-family shorthand: a single
// prefix character plus a positive integer. Supported prefixes:
// k (complete digraph, both directions on every pair), c (directed
// cycle), p (directed path), t (transitive tournament).
func ParseNamedFamily(s string) (*digraph.Matrix, error) {
	if len(s) < 2 {
		return nil, fmt.Errorf("%q: %w", s, ErrUnknownFamily)
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("%q: %w", s, ErrUnknownFamily)
	}
	switch s[0] {
	case 'k':
		return Complete(n), nil
	case 'c':
		return Cycle(n), nil
	case 'p':
		return Path(n), nil
	case 't':
		return TransitiveTournament(n), nil
	default:
		return nil, fmt.Errorf("%q: %w", s, ErrUnknownFamily)
	}
}

// Complete returns the n-vertex complete digraph: both directions on
// every distinct pair.
func Complete(n int) *digraph.Matrix {
	mat := digraph.NewMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				_ = mat.AddEdge(i, j)
			}
		}
	}
	return mat
}

// Cycle returns the n-vertex directed cycle i -> (i+1)%n.
func Cycle(n int) *digraph.Matrix {
	mat := digraph.NewMatrix(n)
	for i := 0; i < n; i++ {
		_ = mat.AddEdge(i, (i+1)%n)
	}
	return mat
}

// Path returns the n-vertex directed path 0 -> 1 -> ... -> n-1.
func Path(n int) *digraph.Matrix {
	mat := digraph.NewMatrix(n)
	for i := 0; i < n-1; i++ {
		_ = mat.AddEdge(i, i+1)
	}
	return mat
}

// TransitiveTournament returns the n-vertex transitive tournament:
// i -> j for every i < j.
func TransitiveTournament(n int) *digraph.Matrix {
	mat := digraph.NewMatrix(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_ = mat.AddEdge(i, j)
		}
	}
	return mat
}
