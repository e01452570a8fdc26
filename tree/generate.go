package tree

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/homkit/internal/logx"
)

// Option configures the generator.
type Option func(*config)

type config struct {
	maxArity   int // 0 = unlimited
	coreOnly   bool
	maxWorkers int // 0 = unbounded
	log        logx.Logger
}

func defaultConfig() config { return config{log: logx.Nop()} }

// WithLogger attaches l for Warn-level reporting of degenerate
// generator inputs (e.g. a triad request with fewer than 4 nodes).
func WithLogger(l logx.Logger) Option { return func(c *config) { c.log = l } }

// WithMaxArity caps the number of children any rooted node may have.
// 0 (the default) leaves arity unbounded.
func WithMaxArity(n int) Option { return func(c *config) { c.maxArity = n } }

// WithCoreOnly filters the generator's output to cores only (spec
// §4.7's end-of-pipeline core filter), applied in parallel across the
// candidate set per spec §5.
func WithCoreOnly(on bool) Option { return func(c *config) { c.coreOnly = on } }

// WithWorkers bounds the number of goroutines the core filters run
// concurrently (spec §5's --workers knob). 0 (the default) leaves the
// errgroup unbounded.
func WithWorkers(n int) Option { return func(c *config) { c.maxWorkers = n } }

// GenerateRooted enumerates the canonical rooted trees of exactly n
// nodes (n>=1) that are rooted cores. Each level's candidates are
// rooted-core filtered before becoming available as building blocks
// for the next level, matching spec §4.7's "filtering after generating
// each level of rooted subtrees"; rooted trees that are not rooted
// cores are not returned.
func GenerateRooted(n int, opts ...Option) []*Rooted {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	cache := buildRootedCache(n, cfg.maxArity, cfg.maxWorkers)
	return cache[n]
}

// buildRootedCache builds rootedByN[1..n], each level rooted-core
// filtered, for use both as the caller's result and as the alphabet of
// building blocks for the next level.
func buildRootedCache(n, maxArity, maxWorkers int) map[int][]*Rooted {
	cache := make(map[int][]*Rooted, n)
	cache[1] = []*Rooted{leaf()}

	for size := 2; size <= n; size++ {
		alphabet := childAlphabet(cache, size-1)
		candidates := composeChildren(alphabet, size-1, maxArity)
		cache[size] = rootedCoreFilter(candidates, maxWorkers)
	}
	return cache
}

// childAlphabet flattens every (tree, direction) pair available from
// trees of size 1..maxSize, sorted by CompareChild, for use as the
// combination alphabet of composeChildren.
func childAlphabet(cache map[int][]*Rooted, maxSize int) []Child {
	var alphabet []Child
	for size := 1; size <= maxSize; size++ {
		for _, t := range cache[size] {
			alphabet = append(alphabet, Child{Sub: t, Dir: 0}, Child{Sub: t, Dir: 1})
		}
	}
	sort.Slice(alphabet, func(i, j int) bool { return CompareChild(alphabet[i], alphabet[j]) < 0 })
	return alphabet
}

// composeChildren enumerates every non-decreasing (multiset)
// combination of alphabet entries whose NumNodes sum to target, of
// length at most maxArity (0 = unlimited), and returns one *Rooted per
// combination.
func composeChildren(alphabet []Child, target, maxArity int) []*Rooted {
	var out []*Rooted
	var current []Child

	var rec func(idx, remaining int)
	rec = func(idx, remaining int) {
		if remaining == 0 {
			seq := make([]Child, len(current))
			copy(seq, current)
			out = append(out, &Rooted{Children: seq})
			return
		}
		if idx >= len(alphabet) {
			return
		}
		w := alphabet[idx].Sub.NumNodes()
		// skip this alphabet entry entirely
		rec(idx+1, remaining)
		// take it (allow repeats, so idx does not advance)
		if w <= remaining && (maxArity == 0 || len(current) < maxArity) {
			current = append(current, alphabet[idx])
			rec(idx, remaining-w)
			current = current[:len(current)-1]
		}
	}
	rec(0, target)
	return out
}

// rootedCoreFilter keeps only the candidates whose root->root
// precoloured AC-3 fixpoint is all-singleton, checked in parallel
// across candidates (spec §5). maxWorkers bounds concurrency; 0 leaves
// it unbounded.
func rootedCoreFilter(candidates []*Rooted, maxWorkers int) []*Rooted {
	keep := make([]bool, len(candidates))
	var g errgroup.Group
	if maxWorkers > 0 {
		g.SetLimit(maxWorkers)
	}
	for i, t := range candidates {
		i, t := i, t
		g.Go(func() error {
			mat, root := t.ToMatrix()
			keep[i] = IsRootedCore(mat, root)
			return nil
		})
	}
	_ = g.Wait()

	out := make([]*Rooted, 0, len(candidates))
	for i, t := range candidates {
		if keep[i] {
			out = append(out, t)
		}
	}
	return out
}
