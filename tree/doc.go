// Package tree enumerates pairwise non-isomorphic oriented trees by
// induction on node count, using the canonical centred/bicentred
// decomposition of spec §4.7: rooted trees are built bottom-up as
// canonically-ordered multisets of smaller rooted subtrees, then
// combined into unrooted trees (centred or bicentred) and triads.
//
// Core-checking (IsCore, IsRootedCore) runs the same AC-3 machinery as
// the solver package, directly against the consistency kernel rather
// than through a full backtracking search, since spec §4.7's
// definition only requires the arc-consistent fixpoint.
package tree
