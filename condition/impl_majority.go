package condition

// Majority returns the 3-ary majority condition: an operation m with
// m(x,x,y) = m(x,y,x) = m(y,x,x) for all x,y in V(H). Constant tuples
// precolour to their shared element, since m(x,x,x) = x is forced by
// idempotency on any majority term.
func Majority() Condition {
	return &impl{
		name:    "majority",
		arities: []int{3},
		partition: func(vH int) [][]Label {
			p := NewPartition()
			for x := 0; x < vH; x++ {
				for y := 0; y < vH; y++ {
					a := Label{F: 0, T: []int{x, x, y}}
					b := Label{F: 0, T: []int{x, y, x}}
					c := Label{F: 0, T: []int{y, x, x}}
					p.Union(a, b)
					p.Union(b, c)
				}
			}
			return p.Classes()
		},
		precolorFn: func(l Label) (int, bool) {
			if l.F == 0 && l.T[0] == l.T[1] && l.T[1] == l.T[2] {
				return l.T[0], true
			}
			return 0, false
		},
	}
}
