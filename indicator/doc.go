// Package indicator builds the meta-problem of spec §4.5: given a
// target digraph H and a condition.Condition, it constructs an
// H-colouring instance whose solutions are exactly the polymorphisms
// of H satisfying that condition's equational identities.
//
// The pipeline runs in five steps: enumerate the power-graph edges for
// every operation arity, optionally filter to level-homogeneous
// tuples, contract the condition's equivalence classes, renumber into
// a dense adjacency matrix, and build the per-vertex list function.
// Mutable construction happens entirely on a digraph.Map value owned
// by Build; the result is handed off as an immutable digraph.Matrix
// plus csp.Instance, matching the teacher's "mutable map during
// construction, immutable matrix for consumption" convention.
package indicator
