// Package condition implements the catalogue of equational conditions
// from spec §4.6: each supplies the arities of the operations it
// names, a partition over (operation-index, V(H)-tuple) pairs encoding
// the identities the operations must satisfy, and an optional
// precolour assigning a fixed value of H to some tuples.
//
// The source material for this catalogue carries multiple coexisting
// and partly inconsistent drafts (see spec §9's open questions); this
// package implements the most recent spelling set — Wnu/Nu as
// arity-carrying types, Kmm (not Kkm), and the 4-ary NoName chain with
// the partition described in spec §4.6, the Sigma condition and PC-2
// are intentionally absent.
package condition
