// Package digraph provides the two graph representations the solver and
// the indicator-graph builder need: a mutable adjacency map for
// construction-heavy code (vertex/edge insertion, removal, contraction)
// and an immutable adjacency matrix for the solver's query-hot path
// (O(1) edge membership, linear edge iteration, small-integer vertex IDs).
//
// Both representations model finite directed graphs: a vertex set V and
// an edge set E ⊆ V×V, self-loops permitted. Conversion from the
// adjacency map to the matrix assigns stable integer identifiers that
// form a bijection preserving edges.
package digraph
