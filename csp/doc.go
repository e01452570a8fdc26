// Package csp adapts a pair of digraphs (G,H) and a per-vertex list
// function L : V(G) -> subsets of V(H) into the binary-CSP Problem
// interface the solver package consumes: an H-colouring instance per
// spec §4.4, where a solution is a homomorphism G->H respecting L.
package csp
