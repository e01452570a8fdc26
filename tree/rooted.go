package tree

import "github.com/katalvlaran/homkit/digraph"

// Child is one edge from a rooted tree's root to a subtree, with its
// direction bit: Dir 0 means the edge points root->child (forward),
// Dir 1 means child->root (backward).
type Child struct {
	Sub *Rooted
	Dir int
}

// Rooted is a rooted oriented tree: a root plus a canonically-ordered
// (non-decreasing, per Compare) sequence of Child subtrees. The
// canonical ordering is what lets the generator treat equal multisets
// of subtrees as identical without an isomorphism check.
type Rooted struct {
	Children []Child
}

// leaf is the unique rooted tree of one node.
func leaf() *Rooted { return &Rooted{} }

// NumNodes returns the node count.
func (t *Rooted) NumNodes() int {
	n := 1
	for _, c := range t.Children {
		n += c.Sub.NumNodes()
	}
	return n
}

// Height returns the length of the longest root-to-leaf path.
func (t *Rooted) Height() int {
	h := 0
	for _, c := range t.Children {
		if ch := c.Sub.Height() + 1; ch > h {
			h = ch
		}
	}
	return h
}

// Arity returns the number of direct children.
func (t *Rooted) Arity() int { return len(t.Children) }

// Compare totally orders rooted trees: by node count, then height,
// then arity, then child sequence lexicographically (each child
// compared by its subtree first, direction bit as tie-breaker).
// Returns <0, 0, or >0 exactly like strings.Compare.
func Compare(a, b *Rooted) int {
	if d := a.NumNodes() - b.NumNodes(); d != 0 {
		return d
	}
	if d := a.Height() - b.Height(); d != 0 {
		return d
	}
	if d := a.Arity() - b.Arity(); d != 0 {
		return d
	}
	for i := range a.Children {
		if d := CompareChild(a.Children[i], b.Children[i]); d != 0 {
			return d
		}
	}
	return 0
}

// CompareChild orders two Child values: by subtree first, direction
// bit as the final tie-breaker.
func CompareChild(a, b Child) int {
	if d := Compare(a.Sub, b.Sub); d != 0 {
		return d
	}
	return a.Dir - b.Dir
}

// ToMatrix renders t into an immutable digraph.Matrix, numbering the
// root 0 and every other node in pre-order. Returns the matrix and the
// root's id (always 0).
func (t *Rooted) ToMatrix() (*digraph.Matrix, int) {
	n := t.NumNodes()
	mat := digraph.NewMatrix(n)
	next := 1
	addRootedEdges(mat, t, 0, &next)
	return mat, 0
}

// addRootedEdges recursively emits t's edges into mat, with t's own
// root already assigned rootID, allocating fresh ids for every
// descendant from *next upward.
func addRootedEdges(mat *digraph.Matrix, t *Rooted, rootID int, next *int) {
	for _, c := range t.Children {
		id := *next
		*next++
		if c.Dir == 0 {
			_ = mat.AddEdge(rootID, id)
		} else {
			_ = mat.AddEdge(id, rootID)
		}
		addRootedEdges(mat, c.Sub, id, next)
	}
}
