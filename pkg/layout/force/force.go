package force

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/forcegraph/pkg/graph"
)

// Defaults for [Options].
const (
	DefaultIterations    = 200
	DefaultIdealDistance = 80.0
	DefaultMaxStep       = 10.0
)

// parallelMinNodes is the smallest graph for which Workers > 1 splits the
// repulsion pass. Below it the goroutine overhead outweighs the pair loop.
const parallelMinNodes = 64

// Options configures [Layout].
type Options struct {
	// Iterations is the fixed number of rounds. Zero leaves positions as is.
	Iterations int

	// IdealDistance (k) is the preferred edge length. Default: 80.
	IdealDistance float64

	// MaxStep bounds how far a node may move in one round. Default: 10.
	MaxStep float64

	// Schedule varies the maximum step per round. Nil means [Constant].
	Schedule Schedule

	// Workers splits the repulsion pass across goroutines when > 1.
	Workers int
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Iterations:    DefaultIterations,
		IdealDistance: DefaultIdealDistance,
		MaxStep:       DefaultMaxStep,
		Schedule:      Constant,
		Workers:       1,
	}
}

// withDefaults replaces unusable values with defaults.
func (o Options) withDefaults() Options {
	if o.Iterations < 0 {
		o.Iterations = 0
	}
	if !positiveFinite(o.IdealDistance) {
		o.IdealDistance = DefaultIdealDistance
	}
	if !positiveFinite(o.MaxStep) {
		o.MaxStep = DefaultMaxStep
	}
	if o.Schedule == nil {
		o.Schedule = Constant
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	return o
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// Layout runs the simulation on g for opts.Iterations rounds and writes the
// resulting positions back to g. It never adds or removes nodes.
func Layout(g *graph.Graph, opts Options) {
	opts = opts.withDefaults()
	if g.NodeCount() == 0 || opts.Iterations == 0 {
		return
	}

	s := newSimulation(g, opts)
	for round := 0; round < opts.Iterations; round++ {
		s.round(opts.Schedule(round, opts.Iterations, opts.MaxStep))
	}
	for i, p := range s.pos {
		g.SetPosition(graph.NodeIndex(i), p)
	}
}

// simulation holds the working state of one layout run. pos and disp are
// addressed by node index; disp is zeroed at the start of every round.
type simulation struct {
	pos   []graph.Position
	disp  []graph.Position
	edges []graph.Edge
	k     float64

	workers int
	partial [][]graph.Position // per-worker repulsion accumulators
}

func newSimulation(g *graph.Graph, opts Options) *simulation {
	s := &simulation{
		pos:     g.Positions(),
		disp:    make([]graph.Position, g.NodeCount()),
		edges:   g.Edges(),
		k:       opts.IdealDistance,
		workers: 1,
	}
	if opts.Workers > 1 && len(s.pos) >= parallelMinNodes {
		s.workers = min(opts.Workers, len(s.pos))
		s.partial = make([][]graph.Position, s.workers)
		for w := range s.partial {
			s.partial[w] = make([]graph.Position, len(s.pos))
		}
	}
	return s
}

func (s *simulation) round(maxStep float64) {
	clear(s.disp)
	if s.workers > 1 {
		s.repelParallel()
	} else {
		s.repelRows(s.disp, 0, 1)
	}
	s.attract()
	s.apply(maxStep)
}

// repelRows accumulates repulsion for every pair (i, j), i < j, whose row i
// satisfies i % stride == first.
func (s *simulation) repelRows(acc []graph.Position, first, stride int) {
	k2 := s.k * s.k
	n := len(s.pos)
	for i := first; i < n; i += stride {
		pi := s.pos[i]
		for j := i + 1; j < n; j++ {
			delta := s.pos[j].Sub(pi)
			d := delta.Len()
			if d == 0 {
				continue
			}
			v := delta.Scale(k2 / d / d)
			acc[i] = acc[i].Sub(v)
			acc[j] = acc[j].Add(v)
		}
	}
}

// repelParallel interleaves rows across workers so each gets a similar
// share of pairs, then merges the accumulators in worker order.
func (s *simulation) repelParallel() {
	var eg errgroup.Group
	for w := 0; w < s.workers; w++ {
		acc := s.partial[w]
		eg.Go(func() error {
			clear(acc)
			s.repelRows(acc, w, s.workers)
			return nil
		})
	}
	// Workers never fail; Wait only joins them.
	eg.Wait()

	for _, acc := range s.partial {
		for i, v := range acc {
			s.disp[i] = s.disp[i].Add(v)
		}
	}
}

// attract pulls the endpoints of every edge together. Parallel edges add
// up; self-loops have zero length and contribute nothing.
func (s *simulation) attract() {
	for _, e := range s.edges {
		delta := s.pos[e.Target].Sub(s.pos[e.Source])
		d := delta.Len()
		if d == 0 {
			continue
		}
		v := delta.Scale(d / s.k)
		s.disp[e.Source] = s.disp[e.Source].Add(v)
		s.disp[e.Target] = s.disp[e.Target].Sub(v)
	}
}

func (s *simulation) apply(maxStep float64) {
	for i, d := range s.disp {
		s.pos[i] = s.pos[i].Add(clampStep(d, maxStep))
	}
}

// clampStep returns d shortened to at most maxStep, keeping its direction.
// Overflowed components keep only their sign and move a full step; NaN
// means no movement.
func clampStep(d graph.Position, maxStep float64) graph.Position {
	if !(maxStep > 0) || math.IsNaN(d.X) || math.IsNaN(d.Y) {
		return graph.Position{}
	}
	if math.IsInf(d.X, 0) || math.IsInf(d.Y, 0) {
		d = graph.Position{X: infSign(d.X), Y: infSign(d.Y)}
		return d.Scale(maxStep / d.Len())
	}
	l := d.Len()
	if l == 0 {
		return graph.Position{}
	}
	if l <= maxStep {
		return d
	}
	return d.Scale(maxStep / l)
}

func infSign(v float64) float64 {
	switch {
	case math.IsInf(v, 1):
		return 1
	case math.IsInf(v, -1):
		return -1
	}
	return 0
}
