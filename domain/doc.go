// Package domain implements the per-variable value-set container the
// consistency kernel and the backtracking solver share: an intrusive
// doubly-linked list over a fixed index space, giving O(1) reversible
// removal and whole-domain replacement (Set/Insert) in time linear in
// the size of the domain being replaced.
//
// Slot indices never change once assigned; removals are reversible in
// LIFO order, which is exactly the discipline the solver's trail
// enforces. Slot 0 is a sentinel head; slots 1..d(x) hold the initial
// values of variable x in insertion order.
package domain
