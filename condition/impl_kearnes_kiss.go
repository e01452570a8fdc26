package condition

// KearnesKiss returns a Kearnes-Kiss chain of length n: n+1 ternary
// operations k0..kn following the same alternating middle identities
// as a Jonsson chain, but with the two endpoints identified via full
// 3-variable projections rather than 2-variable ones:
//
//	ki(x,y,y) = ki+1(x,y,y)  for even i
//	ki(x,x,y) = ki+1(x,x,y)  for odd i
//	k0(x,y,x) = k1(x,y,x) = ... = kn(x,y,x)  for all x,y
//	k0(x,y,z) = k0(x,x,x) = k1(x,x,x) = ... = kn(x,x,x) = kn(y,z,x)  for all x,y,z
//
// for all x,y in V(H). n must be >= 1.
func KearnesKiss(n int) Condition {
	k := n + 1
	return &impl{
		name:    "kearnes-kiss",
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
					base := Label{F: 0, T: []int{x, y, x}}
					p.Touch(base)
					for i := 1; i < k; i++ {
						p.Union(base, Label{F: i, T: []int{x, y, x}})
					}
				}
			}
			for x := 0; x < vH; x++ {
				proj := Label{F: 0, T: []int{x, x, x}}
				p.Touch(proj)
				for i := 1; i < k; i++ {
					p.Union(proj, Label{F: i, T: []int{x, x, x}})
				}
				for y := 0; y < vH; y++ {
					for z := 0; z < vH; z++ {
						p.Union(proj, Label{F: 0, T: []int{x, y, z}})
						p.Union(proj, Label{F: k - 1, T: []int{y, z, x}})
					}
				}
			}
			return p.Classes()
		},
	}
}
