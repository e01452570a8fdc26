package condition

// impl is the shared concrete Condition: every catalogue entry builds
// one of these from a name, its operation arities, a partition
// closure, and an optional precolour closure. Mirrors the teacher
// builder package's Constructor-closure pattern (one impl_*.go file
// per named condition).
type impl struct {
	name       string
	arities    []int
	partition  func(vH int) [][]Label
	precolorFn func(Label) (int, bool)
}

func (c *impl) Name() string               { return c.name }
func (c *impl) Arities() []int             { return c.arities }
func (c *impl) Partition(vH int) [][]Label { return c.partition(vH) }

func (c *impl) Precolor(l Label) (int, bool) {
	if c.precolorFn == nil {
		return 0, false
	}
	return c.precolorFn(l)
}

func repeat(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}
