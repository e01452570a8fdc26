package condition

// HobbyMcKenzie returns a Hobby-McKenzie chain of length n: 2n+3
// ternary operations h0..h2n+2 following the same alternating
// identification pattern as a Jonsson chain, with precolour
// h0(x,_,_) = x and h2n+2(_,_,y) = y, unconditionally on the
// wildcarded positions. n must be >= 0.
func HobbyMcKenzie(n int) Condition {
	k := 2*n + 3
	return &impl{
		name:    "hobby-mckenzie",
		arities: repeat(k, 3),
		partition: func(vH int) [][]Label {
			p := NewPartition()
			for x := 0; x < vH; x++ {
				for y := 0; y < vH; y++ {
					for i := 0; i < k-1; i++ {
						if i%2 == 0 {
							p.Union(Label{F: i, T: []int{x, y, y}}, Label{F: i + 1, T: []int{x, y, y}})
						} else {
							p.Union(Label{F: i, T: []int{x, x, y}}, Label{F: i + 1, T: []int{x, x, y}})
						}
					}
				}
			}
			return p.Classes()
		},
		precolorFn: func(l Label) (int, bool) {
			if l.F == 0 {
				return l.T[0], true
			}
			if l.F == k-1 {
				return l.T[2], true
			}
			return 0, false
		},
	}
}
