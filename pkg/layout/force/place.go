package force

import (
	"math"
	"math/rand/v2"

	"github.com/matzehuels/forcegraph/pkg/graph"
)

// DefaultSpread is the half-width of the square [Randomize] scatters into.
const DefaultSpread = 50.0

// Randomize places every node uniformly in [-spread, spread)² using a PCG
// source seeded with seed. The same seed and node count give the same
// positions.
func Randomize(g *graph.Graph, seed uint64, spread float64) {
	if !positiveFinite(spread) {
		spread = DefaultSpread
	}
	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
	for i := range g.NodeCount() {
		g.SetPosition(graph.NodeIndex(i), graph.Position{
			X: (rng.Float64()*2 - 1) * spread,
			Y: (rng.Float64()*2 - 1) * spread,
		})
	}
}

// Circle places nodes evenly on a circle of the given radius around the
// origin, in index order starting at angle zero. A single node sits at
// the origin.
func Circle(g *graph.Graph, radius float64) {
	n := g.NodeCount()
	if n == 1 {
		g.SetPosition(0, graph.Position{})
		return
	}
	if !positiveFinite(radius) {
		radius = DefaultSpread
	}
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		g.SetPosition(graph.NodeIndex(i), graph.Position{
			X: radius * math.Cos(angle),
			Y: radius * math.Sin(angle),
		})
	}
}
