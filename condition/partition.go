package condition

// Partition is a union-find over Label values, used by every
// catalogue entry to build its equivalence classes. Calling Union
// repeatedly coarsens classes incrementally — vertices are added to an
// existing class rather than creating a fresh singleton each time,
// which is exactly the "preserve class membership" contract spec §4.6
// requires: coarser classes enable more contractions downstream.
type Partition struct {
	parent map[string]string
	label  map[string]Label
	order  map[string]int
	next   int
}

// NewPartition returns an empty union-find.
func NewPartition() *Partition {
	return &Partition{
		parent: make(map[string]string),
		label:  make(map[string]Label),
		order:  make(map[string]int),
	}
}

func (p *Partition) ensure(l Label) string {
	k := l.key()
	if _, ok := p.parent[k]; !ok {
		p.parent[k] = k
		p.label[k] = l
		p.order[k] = p.next
		p.next++
	}
	return k
}

func (p *Partition) find(k string) string {
	for p.parent[k] != k {
		p.parent[k] = p.parent[p.parent[k]]
		k = p.parent[k]
	}
	return k
}

// Union identifies a and b as belonging to the same class, adding
// either side to the other's existing class rather than building a
// fresh singleton. Safe to call with a==b (no-op).
func (p *Partition) Union(a, b Label) {
	ka, kb := p.ensure(a), p.ensure(b)
	ra, rb := p.find(ka), p.find(kb)
	if ra == rb {
		return
	}
	// Keep whichever root was first registered as the surviving root,
	// so class[0] below reflects construction order deterministically.
	if p.order[ra] <= p.order[rb] {
		p.parent[rb] = ra
	} else {
		p.parent[ra] = rb
	}
}

// Touch ensures a label participates in the partition even if it is
// never Union'd with anything else (a singleton class of one).
func (p *Partition) Touch(l Label) {
	p.ensure(l)
}

// Classes returns the resulting equivalence classes. Each class is
// ordered by first-registration order, so class[0] is the earliest
// label added to that class — the representative spec §4.5 step 3
// contracts every other member into.
func (p *Partition) Classes() [][]Label {
	byRoot := make(map[string][]string)
	for k := range p.parent {
		root := p.find(k)
		byRoot[root] = append(byRoot[root], k)
	}
	var classes [][]Label
	for _, members := range byRoot {
		// sort members by registration order for a deterministic
		// representative and stable downstream numbering.
		for i := 1; i < len(members); i++ {
			for j := i; j > 0 && p.order[members[j-1]] > p.order[members[j]]; j-- {
				members[j-1], members[j] = members[j], members[j-1]
			}
		}
		class := make([]Label, len(members))
		for i, k := range members {
			class[i] = p.label[k]
		}
		classes = append(classes, class)
	}
	// sort classes by their representative's registration order for
	// deterministic output across calls.
	for i := 1; i < len(classes); i++ {
		for j := i; j > 0 && p.order[classes[j-1][0].key()] > p.order[classes[j][0].key()]; j-- {
			classes[j-1], classes[j] = classes[j], classes[j-1]
		}
	}
	return classes
}
