// Package homkit decides graph homomorphism existence, core-ness, and
// polymorphism satisfaction for finite directed graphs, and generates
// oriented trees and triads up to isomorphism.
//
// The module is organized as a pipeline of small, independently
// testable packages:
//
//	domain/      — reversible per-variable value-set store
//	consistency/ — AC-1/AC-3/SAC-1 arc-consistency kernel
//	csp/         — H-colouring instance adapting (G,H,L) to the solver
//	solver/      — MAC-3 backtracking search
//	digraph/     — mutable adjacency map and immutable adjacency matrix
//	condition/   — catalogue of equational conditions (Majority, NU,
//	               WNU, Siggers, KMM, and the Jónsson/Kearnes-Kiss/
//	               Hagemann-Mitschke/Hobby-McKenzie/NoName chains)
//	indicator/   — builds the polymorphism meta-problem from (H,condition)
//	tree/        — generates oriented trees and triads by node count
//	format/      — edge-list, CSV, triad-text, named-family, and DOT codecs
//
// cmd/homkit is the CLI entry point tying these together.
package homkit
