package condition

// NU returns the k-ary near-unanimity condition: an operation f with
// f(x,...,x,y,x,...,x) (y in any single position, x elsewhere)
// identified across every choice of position, for all x,y in V(H) and
// k>=3. The all-x-but-one tuple precolours to the majority element x.
func NU(k int) Condition {
	return &impl{
		name:    "nu",
		arities: []int{k},
		partition: func(vH int) [][]Label {
			p := NewPartition()
			for x := 0; x < vH; x++ {
				for y := 0; y < vH; y++ {
					if x == y {
						continue
					}
					first := tupleWithOneAt(k, x, y, 0)
					base := Label{F: 0, T: first}
					p.Touch(base)
					for i := 1; i < k; i++ {
						p.Union(base, Label{F: 0, T: tupleWithOneAt(k, x, y, i)})
					}
				}
			}
			return p.Classes()
		},
		precolorFn: nuPrecolor,
	}
}

// tupleWithOneAt builds a k-length tuple that is x everywhere except
// position i, which holds y.
func tupleWithOneAt(k, x, y, i int) []int {
	t := repeat(k, x)
	t[i] = y
	return t
}

// nuPrecolor identifies a tuple that is constant except at one
// position and maps it to the majority value.
func nuPrecolor(l Label) (int, bool) {
	if len(l.T) < 3 {
		return 0, false
	}
	counts := make(map[int]int, 2)
	for _, v := range l.T {
		counts[v]++
	}
	if len(counts) != 2 {
		return 0, false
	}
	for v, c := range counts {
		if c == len(l.T)-1 {
			return v, true
		}
	}
	return 0, false
}
