package solver

import (
	"sort"
	"time"

	"github.com/katalvlaran/homkit/consistency"
	"github.com/katalvlaran/homkit/domain"
	"github.com/katalvlaran/homkit/internal/logx"
)

// Problem is the abstract interface the solver searches over: a
// binary CSP instance (X,D,C) per spec §3, exposing its variable
// count, per-variable domain, and the consistency.Oracle it is
// propagated with.
type Problem interface {
	consistency.Oracle
	Size() int
	Domain(x int) []int
}

// Stats records the counters spec §4.3 requires: consistency-check
// count, backtrack count, solution count, and the wall-time split
// between initial AC preprocessing and the search proper.
type Stats struct {
	Checks      int64
	Backtracks  int
	Solutions   int
	AC3Time     time.Duration
	SearchTime  time.Duration
}

// Option configures a Solver.
type Option func(*config)

type config struct {
	sortStack   bool
	stopAtFirst bool
	recordStats bool
	debugLog    bool
	log         logx.Logger
}

func defaultConfig() config {
	return config{sortStack: true, log: logx.Nop()}
}

// WithSortStack toggles the smallest-domain-first variable ordering
// (default on): after initial AC-3, variables are searched in
// ascending order of domain size, ties broken by variable index.
func WithSortStack(on bool) Option { return func(c *config) { c.sortStack = on } }

// WithStopAtFirst makes the solver halt its search after the first
// solution it finds, even under SolveAll.
func WithStopAtFirst(on bool) Option { return func(c *config) { c.stopAtFirst = on } }

// WithRecordStats enables Stats collection (cheap, but the AC3/Search
// timers and check counter are otherwise left zeroed).
func WithRecordStats(on bool) Option { return func(c *config) { c.recordStats = on } }

// WithLogger attaches l for per-node backtrack events at Debug level.
// Left unset (the default, logx.Nop), the search loop never touches
// the logger at all, keeping the hot path allocation-free.
func WithLogger(l logx.Logger) Option {
	return func(c *config) {
		c.log = l
		c.debugLog = true
	}
}

type countingOracle struct {
	inner consistency.Oracle
	count *int64
}

func (c countingOracle) Check(xi, ai, xj, aj int) bool {
	*c.count++
	return c.inner.Check(xi, ai, xj, aj)
}
func (c countingOracle) Arcs() []consistency.Arc { return c.inner.Arcs() }

// frame is one trail entry: the prior full domain of the variable
// assigned at this depth, plus the removals made afterwards (by MAC-3,
// and the slots ruled out for the next depth's variable), in the
// chronological order they happened (undone in reverse).
type frame struct {
	x        int
	prevDom  domain.Domain
	removed  []removal
}

type removal struct{ x, i int }

// Solver runs MAC-3 DFS over a Problem. It is strictly single-
// threaded and owns its domain store and trail exclusively; it is not
// safe for concurrent use.
type Solver struct {
	problem   Problem
	store     *domain.Store
	kernel    *consistency.Kernel
	variables []int
	cfg       config
	checks    *int64

	unsat bool
	stats Stats
}

// New builds domains from problem, runs initial AC-3 preprocessing,
// and (if AC-3 survives) orders the variable stack. If AC-3 wipes a
// domain out during preprocessing, the instance has no solution and
// every Solve* call returns immediately.
func New(problem Problem, opts ...Option) *Solver {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	n := problem.Size()
	values := make([][]int, n)
	for x := 0; x < n; x++ {
		values[x] = problem.Domain(x)
	}
	store := domain.NewStore(values)

	var checks int64
	oracle := consistency.Oracle(problem)
	if cfg.recordStats {
		oracle = countingOracle{inner: problem, count: &checks}
	}
	kernel := consistency.NewKernel(oracle, store)

	s := &Solver{
		problem: problem,
		store:   store,
		kernel:  kernel,
		cfg:     cfg,
		checks:  &checks,
	}

	start := time.Now()
	ok := kernel.AC3(nil, nil)
	if cfg.recordStats {
		s.stats.AC3Time = time.Since(start)
	}
	if !ok {
		s.unsat = true
		return s
	}

	s.variables = make([]int, n)
	for x := range s.variables {
		s.variables[x] = x
	}
	if cfg.sortStack {
		sort.Slice(s.variables, func(i, j int) bool {
			vi, vj := s.variables[i], s.variables[j]
			si, sj := store.Size(vi), store.Size(vj)
			if si != sj {
				return si < sj
			}
			return vi < vj
		})
	}
	return s
}

// Stats returns the solver's accumulated statistics. Meaningful only
// when WithRecordStats(true) was passed to New.
func (s *Solver) Stats() Stats { return s.stats }

// SolveFirst runs the search and returns the first solution found (an
// assignment indexed by variable), or nil if none exists.
func (s *Solver) SolveFirst() []int {
	var found []int
	s.run(true, func(assign []int) bool {
		found = append(make([]int, 0, len(assign)), assign...)
		return false // stop after first
	})
	return found
}

// SolveAll runs the full DFS, invoking callback with every solution in
// natural DFS order. If the solver was built WithStopAtFirst(true),
// only the first solution is reported.
func (s *Solver) SolveAll(callback func(assign []int)) {
	s.run(s.cfg.stopAtFirst, func(assign []int) bool {
		callback(assign)
		return true // keep going, unless stopAtFirst short-circuits in run()
	})
}

// run drives the iterative depth loop of spec §4.3. onSolution is
// called with each full assignment; it returns whether the search
// should continue past this solution. stopAfterFirst forces a halt
// regardless of onSolution's return value.
func (s *Solver) run(stopAfterFirst bool, onSolution func(assign []int) bool) {
	if s.unsat {
		return
	}
	n := s.problem.Size()
	if n == 0 {
		assign, _ := s.store.Assignment()
		s.stats.Solutions++
		onSolution(assign)
		return
	}

	start := time.Now()
	defer func() {
		if s.cfg.recordStats {
			s.stats.SearchTime += time.Since(start)
			s.stats.Checks = *s.checks
		}
	}()

	var assignments []int // slot chosen at each trail depth
	// trail[0] is a root frame holding the slots ruled out at depth 0.
	trail := []frame{{x: -1}}

	depth := 0
	backtrack := false

	for {
		if depth == n {
			assign, ok := s.store.Assignment()
			if !ok {
				// Should never happen: depth==n means every variable
				// was fixed to a singleton along this path.
				return
			}
			s.stats.Solutions++
			cont := onSolution(assign)
			if stopAfterFirst || !cont {
				return
			}
			depth--
			backtrack = true
			continue
		}

		x := s.variables[depth]

		if backtrack {
			if len(trail) == 0 {
				return // exhausted search
			}
			fr := trail[len(trail)-1]
			trail = trail[:len(trail)-1]
			for i := len(fr.removed) - 1; i >= 0; i-- {
				r := fr.removed[i]
				s.store.Restore(r.x, r.i)
			}
			s.store.Insert(x, fr.prevDom)

			tried := assignments[len(assignments)-1]
			assignments = assignments[:len(assignments)-1]
			s.store.Remove(x, tried)
			trail[len(trail)-1].removed = append(trail[len(trail)-1].removed, removal{x, tried})

			backtrack = false
			continue
		}

		indices := s.store.Indices(x)
		if len(indices) == 0 {
			backtrack = true
			depth--
			if depth < 0 {
				for k := len(trail[0].removed) - 1; k >= 0; k-- {
					s.store.Restore(trail[0].removed[k].x, trail[0].removed[k].i)
				}
				return
			}
			continue
		}

		i := indices[0]
		prevDom := s.store.Set(x, i)
		assignments = append(assignments, i)

		fr := frame{x: x, prevDom: prevDom}
		// Seed with the arcs (y,x) so every neighbour y is revised
		// against the new singleton D(x).
		from := s.kernel.ArcsFrom(x)
		seed := make([]consistency.Arc, 0, len(from))
		for _, a := range from {
			seed = append(seed, consistency.Arc{X: a.Y, Y: a.X})
		}
		ok := s.kernel.AC3(seed, func(rx, ri int) {
			fr.removed = append(fr.removed, removal{rx, ri})
		})

		if ok {
			trail = append(trail, fr)
			depth++
			continue
		}

		s.stats.Backtracks++
		if s.cfg.debugLog {
			s.cfg.log.Debug("backtrack", "var", x, "depth", depth, "slot", i)
		}
		for i2 := len(fr.removed) - 1; i2 >= 0; i2-- {
			r := fr.removed[i2]
			s.store.Restore(r.x, r.i)
		}
		s.store.Insert(x, prevDom)
		assignments = assignments[:len(assignments)-1]
		s.store.Remove(x, i)
		trail[len(trail)-1].removed = append(trail[len(trail)-1].removed, removal{x, i})
		// stay at this depth; the next loop iteration picks the next
		// remaining slot of x (or backtracks if none remain).
	}
}
