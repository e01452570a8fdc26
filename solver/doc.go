// Package solver implements the MAC-3 backtracking search of spec
// §4.3: an iterative, constant-stack-depth DFS over an abstract
// Problem, maintaining arc-consistency after every tentative
// assignment via the consistency package, with a trail that makes
// backtracking an O(1)-per-pruned-value undo instead of a domain
// rebuild.
package solver
