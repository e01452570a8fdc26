package condition

import (
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for the condition catalogue.
var (
	// ErrUnknownCondition indicates a name not present in the catalogue.
	ErrUnknownCondition = fmt.Errorf("condition: unknown condition name")
)

// Label identifies one indicator-graph vertex before quotienting: the
// index of the operation it belongs to (0..len(Arities)-1) and the
// V(H)-tuple it is evaluated at.
type Label struct {
	F int
	T []int
}

// key returns a hashable representation of the label, used internally
// by Partition's union-find.
func (l Label) key() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(l.F))
	for _, t := range l.T {
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(t))
	}
	return b.String()
}

// Key exposes the same hashable representation for callers outside
// this package (the indicator builder uses it as a digraph.Map vertex
// identifier, since Label itself carries a slice field and so is not
// comparable).
func (l Label) Key() string { return l.key() }

// Condition supplies everything the indicator builder needs to turn H
// into the meta-problem's indicator graph (spec §4.5): the arity of
// each named operation, the equivalence classes those operations must
// satisfy over H, and (optionally) a fixed precolour for some tuples.
type Condition interface {
	// Name identifies the condition for the CLI and error messages.
	Name() string

	// Arities returns the arity of each operation, indexed 0..k-1.
	Arities() []int

	// Partition enumerates, over V(H) of size vH, the equivalence
	// classes of (operation-index, tuple) labels the condition
	// identifies. Each returned class preserves its own construction
	// order: class[0] is the representative every other member of the
	// class is contracted into.
	Partition(vH int) [][]Label

	// Precolor optionally maps a label to a fixed vertex of H. The
	// second return value is false when no precolour applies.
	Precolor(l Label) (int, bool)
}

// byName maps condition names to their constructors, parameterised
// by arity/chain-length where applicable.
var byName = map[string]func(n int) Condition{
	"majority":          func(int) Condition { return Majority() },
	"nu":                NU,
	"wnu":               WNU,
	"siggers":           func(int) Condition { return Siggers() },
	"kmm":               func(int) Condition { return KMM() },
	"jonsson":           Jonsson,
	"kearnes-kiss":      KearnesKiss,
	"hagemann-mitschke": HagemannMitschke,
	"hobby-mckenzie":    HobbyMcKenzie,
	"noname":            NoName,
}

// Lookup resolves a condition by name, with n as the arity or chain
// length parameter for conditions that take one (ignored otherwise).
func Lookup(name string, n int) (Condition, error) {
	ctor, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownCondition)
	}
	return ctor(n), nil
}
