package condition

// NoName returns the unnamed chain of length n: n+1 4-ary operations
// f0..fn with
//
//	fi(x,x,y,x) = fi+1(x,y,y,x)
//	fi(x,x,y,y) = fi+1(x,y,y,y)
//
// for all x,y, i = 0..n-1, and precolour f0(x,y,y,x) = x,
// fn(x,x,y,y) = y. n must be >= 1.
func NoName(n int) Condition {
	k := n + 1
	return &impl{
		name:    "noname",
		arities: repeat(k, 4),
		partition: func(vH int) [][]Label {
			p := NewPartition()
			for x := 0; x < vH; x++ {
				for y := 0; y < vH; y++ {
					for i := 0; i < k-1; i++ {
						p.Union(Label{F: i, T: []int{x, x, y, x}}, Label{F: i + 1, T: []int{x, y, y, x}})
						p.Union(Label{F: i, T: []int{x, x, y, y}}, Label{F: i + 1, T: []int{x, y, y, y}})
					}
				}
			}
			return p.Classes()
		},
		precolorFn: func(l Label) (int, bool) {
			if l.F == 0 && len(l.T) == 4 && l.T[1] == l.T[2] && l.T[0] == l.T[3] {
				return l.T[0], true
			}
			if l.F == k-1 && len(l.T) == 4 && l.T[0] == l.T[1] && l.T[2] == l.T[3] {
				return l.T[2], true
			}
			return 0, false
		},
	}
}
