// Package format implements spec §6's external interfaces: the
// bracketed edge-list grammar, the loose-delimiter graph CSV, the
// triad textual form, named graph families (k/c/p/t), and DOT
// emission.
//
// Edge-list and triad-text parsing are hand-rolled scanners over
// stdlib strings/strconv: no mini-grammar-parser dependency in the
// retrieved corpus fits this bracketed-tuple micro-format better than
// a manual scan. The persisted-result writer uses stdlib encoding/csv.
package format
