package condition

// Jonsson returns a Jonsson chain of length n: 2n+1 ternary operations
// j0..j2n with
//
//	ji(x,y,y) = ji+1(x,y,y)  for even i
//	ji(x,x,y) = ji+1(x,x,y)  for odd i
//	j0(x,y,x) = j1(x,y,x) = ... = j2n(x,y,x)  for all x,y
//	j0(x,x,y) = j0(x,x,x)
//	j2n(x,y,y) = j2n(y,y,y)
//
// for all x,y in V(H). n must be >= 1.
func Jonsson(n int) Condition {
	k := 2*n + 1
	return &impl{
		name:    "jonsson",
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
					p.Union(Label{F: 0, T: []int{x, x, y}}, Label{F: 0, T: []int{x, x, x}})
					p.Union(Label{F: k - 1, T: []int{x, y, y}}, Label{F: k - 1, T: []int{y, y, y}})
				}
			}
			return p.Classes()
		},
	}
}
