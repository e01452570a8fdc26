// Package consistency implements AC-1, AC-3, and SAC-1 arc-consistency
// algorithms over an opaque relation oracle. It knows nothing about
// graphs, homomorphisms, or conditions: it only prunes a domain.Store
// given a Check predicate and an arc list, which keeps it reusable for
// any binary-CSP instance (spec §4.2).
package consistency
