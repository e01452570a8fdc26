package condition

// KMM returns the Kearnes-Marković-McKenzie condition: two ternary
// operations p,q with p(x,y,y) = q(y,x,x) = q(x,x,y) and
// p(x,y,x) = q(x,y,x) for all x,y in V(H). Operation index 0 is p,
// index 1 is q.
func KMM() Condition {
	return &impl{
		name:    "kmm",
		arities: []int{3, 3},
		partition: func(vH int) [][]Label {
			p := NewPartition()
			for x := 0; x < vH; x++ {
				for y := 0; y < vH; y++ {
					pxyy := Label{F: 0, T: []int{x, y, y}}
					qyxx := Label{F: 1, T: []int{y, x, x}}
					qxxy := Label{F: 1, T: []int{x, x, y}}
					p.Union(pxyy, qyxx)
					p.Union(qyxx, qxxy)

					pxyx := Label{F: 0, T: []int{x, y, x}}
					qxyx := Label{F: 1, T: []int{x, y, x}}
					p.Union(pxyx, qxyx)
				}
			}
			return p.Classes()
		},
	}
}
