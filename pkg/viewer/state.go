package viewer

import (
	"math"
	"time"

	apperr "github.com/matzehuels/forcegraph/pkg/errors"
	"github.com/matzehuels/forcegraph/pkg/graph"
	"github.com/matzehuels/forcegraph/pkg/graphml"
	"github.com/matzehuels/forcegraph/pkg/layout/force"
	"github.com/matzehuels/forcegraph/pkg/viewport"
)

// Zoom bounds enforced by [State.ZoomBy].
const (
	MinZoom = 1e-3
	MaxZoom = 1e3
)

// State is a laid-out graph ready for display.
type State struct {
	Graph *graph.Graph

	// Zoom and Pan map world positions to screen: p*Zoom + Pan.
	Zoom float64
	Pan  graph.Position

	// Initialized is false until a display has centred the first frame.
	Initialized bool

	// Width and Height are the area Zoom and Pan were last fitted to.
	Width  float64
	Height float64
	// Margin is the fitting margin, reused by [State.Center].
	Margin float64

	Stats Stats
}

// Stats records what the pipeline did.
type Stats struct {
	Parse      graphml.Stats
	ParseTime  time.Duration
	LayoutTime time.Duration
}

// New places the nodes of g, runs the layout and fits the result to the
// target area in opts. g is modified in place.
func New(g *graph.Graph, opts Options) *State {
	if g == nil {
		g = graph.New()
	}
	logger := opts.logger()

	switch opts.Placement {
	case PlacementCircle:
		force.Circle(g, opts.Spread)
	default:
		force.Randomize(g, opts.Seed, opts.Spread)
	}

	start := time.Now()
	force.Layout(g, opts.Layout)
	elapsed := time.Since(start)
	logger.Info("computed layout",
		"nodes", g.NodeCount(),
		"iterations", opts.Layout.Iterations,
		"duration", elapsed)

	s := &State{Graph: g, Margin: opts.Margin}
	s.Stats.LayoutTime = elapsed
	s.fit(opts.Width, opts.Height)
	return s
}

func (s *State) fit(width, height float64) {
	t := viewport.Fit(s.Graph.Positions(), width, height, s.Margin)
	s.Zoom, s.Pan = t.Zoom, t.Pan
	s.Width, s.Height = width, height
}

// Check reports a graph that broke its structural invariants during
// layout, such as a non-finite position.
func (s *State) Check() error {
	if err := s.Graph.Validate(); err != nil {
		return apperr.Wrap(apperr.ErrCodeInternal, err, "invalid layout")
	}
	return nil
}

// Transform returns the current world-to-screen mapping.
func (s *State) Transform() viewport.Transform {
	return viewport.Transform{Zoom: s.Zoom, Pan: s.Pan}
}

// Center fits the graph to a width x height display area and marks the
// first frame as centred. Later calls refit again.
func (s *State) Center(width, height float64) {
	s.fit(width, height)
	s.Initialized = true
}

// PanBy shifts the view by a screen-space delta.
func (s *State) PanBy(dx, dy float64) {
	p := s.Pan.Add(graph.Position{X: dx, Y: dy})
	if p.IsFinite() {
		s.Pan = p
	}
}

// ZoomBy scales the view by factor around the screen point anchor, which
// stays fixed. Factors that are not positive and finite are ignored, and
// the zoom is kept within [MinZoom, MaxZoom].
func (s *State) ZoomBy(factor float64, anchor graph.Position) {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return
	}
	zoom := min(max(s.Zoom*factor, MinZoom), MaxZoom)
	if s.Zoom <= 0 {
		s.Zoom = zoom
		return
	}
	world := s.Transform().ToWorld(anchor)
	s.Zoom = zoom
	s.Pan = anchor.Sub(world.Scale(zoom))
}

// Layout exports the state for serialization.
func (s *State) Layout() graph.Layout {
	l := graph.ExportLayout(s.Graph, s.Width, s.Height, s.Zoom, s.Pan)
	l.Initialized = s.Initialized
	return l
}
