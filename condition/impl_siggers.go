package condition

// Siggers returns the 4-ary Siggers condition: an operation s with
// s(a,r,e,a) = s(r,a,r,e) for every (a,r,e) in V(H)^3 with at least two
// distinct values among a,r,e. When two of the three coincide, the
// substitution degenerates further and identifies a third tuple with
// the same class.
func Siggers() Condition {
	return &impl{
		name:    "siggers",
		arities: []int{4},
		partition: func(vH int) [][]Label {
			p := NewPartition()
			for a := 0; a < vH; a++ {
				for r := 0; r < vH; r++ {
					for e := 0; e < vH; e++ {
						if a == r && r == e {
							continue
						}
						t1 := Label{F: 0, T: []int{a, r, e, a}}
						t2 := Label{F: 0, T: []int{r, a, r, e}}
						p.Union(t1, t2)
						switch {
						case a == r:
							p.Union(t1, Label{F: 0, T: []int{a, a, a, e}})
						case r == e:
							p.Union(t1, Label{F: 0, T: []int{a, r, r, r}})
						case a == e:
							p.Union(t1, Label{F: 0, T: []int{a, r, a, a}})
						}
					}
				}
			}
			return p.Classes()
		},
	}
}
