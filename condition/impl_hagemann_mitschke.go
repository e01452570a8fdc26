package condition

// HagemannMitschke returns a Hagemann-Mitschke chain of length n: n
// ternary operations h0..hn-1 with
//
//	hi(x,x,y) = hi+1(x,y,y)  for all x,y, i = 0..n-2
//
// and precolour h0(x,y,y) = x, hn-1(x,x,y) = y. n must be >= 1.
func HagemannMitschke(n int) Condition {
	return &impl{
		name:    "hagemann-mitschke",
		arities: repeat(n, 3),
		partition: func(vH int) [][]Label {
			p := NewPartition()
			for x := 0; x < vH; x++ {
				for y := 0; y < vH; y++ {
					for i := 0; i < n-1; i++ {
						p.Union(Label{F: i, T: []int{x, x, y}}, Label{F: i + 1, T: []int{x, y, y}})
					}
				}
			}
			return p.Classes()
		},
		precolorFn: func(l Label) (int, bool) {
			if l.F == 0 && len(l.T) == 3 && l.T[1] == l.T[2] {
				return l.T[0], true
			}
			if l.F == n-1 && len(l.T) == 3 && l.T[0] == l.T[1] {
				return l.T[2], true
			}
			return 0, false
		},
	}
}
