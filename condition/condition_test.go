package condition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homkit/condition"
)

func TestLookup_UnknownName(t *testing.T) {
	_, err := condition.Lookup("does-not-exist", 3)
	assert.ErrorIs(t, err, condition.ErrUnknownCondition)
}

func TestMajority_PartitionAndPrecolor(t *testing.T) {
	c := condition.Majority()
	assert.Equal(t, []int{3}, c.Arities())

	classes := c.Partition(2)
	require.NotEmpty(t, classes)

	// Every class containing a constant tuple (x,x,x) must precolour
	// to x, and no class should mix two different constant tuples.
	for _, class := range classes {
		var sawConst, constVal int
		var found bool
		for _, l := range class {
			if l.T[0] == l.T[1] && l.T[1] == l.T[2] {
				sawConst++
				constVal = l.T[0]
				found = true
			}
		}
		if sawConst > 0 {
			assert.LessOrEqual(t, sawConst, 1)
			v, ok := c.Precolor(class[0])
			if ok {
				assert.Equal(t, constVal, v)
			}
			_ = found
		}
	}
}

func TestNU_IdentifiesAllPositions(t *testing.T) {
	c := condition.NU(3)
	classes := c.Partition(2)

	found := false
	for _, class := range classes {
		if len(class) == 3 {
			found = true
		}
	}
	assert.True(t, found, "expected at least one class identifying all 3 positions")
}

func TestWNU_NoPrecolor(t *testing.T) {
	c := condition.WNU(3)
	v, ok := c.Precolor(condition.Label{F: 0, T: []int{0, 0, 1}})
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestSiggers_Arity(t *testing.T) {
	c := condition.Siggers()
	assert.Equal(t, []int{4}, c.Arities())
	assert.NotEmpty(t, c.Partition(2))
}

func TestKMM_TwoOperations(t *testing.T) {
	c := condition.KMM()
	assert.Equal(t, []int{3, 3}, c.Arities())
	assert.NotEmpty(t, c.Partition(2))
}

func TestChainConditions_ArityCounts(t *testing.T) {
	cases := []struct {
		name   string
		cond   condition.Condition
		wantOp int
	}{
		{"jonsson n=1", condition.Jonsson(1), 3},
		{"kearnes-kiss n=2", condition.KearnesKiss(2), 3},
		{"hagemann-mitschke n=3", condition.HagemannMitschke(3), 3},
		{"hobby-mckenzie n=1", condition.HobbyMcKenzie(1), 3},
		{"noname n=2", condition.NoName(2), 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, a := range tc.cond.Arities() {
				assert.Equal(t, tc.wantOp, a)
			}
			assert.NotEmpty(t, tc.cond.Partition(2))
		})
	}
}

// HobbyMcKenzie's boundary operations precolour unconditionally on
// their wildcarded positions: h0(x,_,_)=x regardless of what the
// second and third components are, and symmetrically for h(2n+2).
func TestHobbyMcKenzie_WildcardPrecolor(t *testing.T) {
	c := condition.HobbyMcKenzie(1)

	v, ok := c.Precolor(condition.Label{F: 0, T: []int{2, 0, 1}})
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = c.Precolor(condition.Label{F: 4, T: []int{0, 1, 2}})
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

// labelIn reports whether a class contains a label with the given
// (F, T) value.
func labelIn(class []condition.Label, f int, t []int) bool {
	for _, l := range class {
		if l.F != f || len(l.T) != len(t) {
			continue
		}
		match := true
		for i := range t {
			if l.T[i] != t[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// KearnesKiss identifies its endpoints via full 3-variable
// projections: k0(x,y,z) and kn(y,z,x) must land in the same class as
// every ki(x,x,x), not merely a 2-variable pairing.
func TestKearnesKiss_EndpointProjection(t *testing.T) {
	c := condition.KearnesKiss(1)
	classes := c.Partition(2)

	var class []condition.Label
	for _, cl := range classes {
		if labelIn(cl, 0, []int{0, 0, 0}) {
			class = cl
			break
		}
	}
	require.NotNil(t, class, "expected a class containing k0(0,0,0)")

	assert.True(t, labelIn(class, 0, []int{0, 1, 0}), "k0(0,1,0) must be identified with k0(0,0,0)")
	assert.True(t, labelIn(class, 1, []int{1, 0, 0}), "k1(1,0,0) must be identified with k0(0,0,0) via kn(y,z,x)")
	assert.True(t, labelIn(class, 1, []int{0, 0, 0}), "k1(0,0,0) must be identified with k0(0,0,0)")
}
