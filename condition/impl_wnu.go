package condition

// WNU returns the k-ary weak near-unanimity condition: the same
// identified tuples as NU, but with no precolour — a WNU term need not
// be idempotent on constant-minus-one tuples the way a true NU term
// is.
func WNU(k int) Condition {
	nu := NU(k).(*impl)
	return &impl{
		name:      "wnu",
		arities:   nu.arities,
		partition: nu.partition,
	}
}
