package viewer

import (
	"context"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	apperr "github.com/matzehuels/forcegraph/pkg/errors"
	"github.com/matzehuels/forcegraph/pkg/graph"
	"github.com/matzehuels/forcegraph/pkg/observability"
	"github.com/matzehuels/forcegraph/pkg/viewport"
)

const abc = `<graphml>
  <graph>
    <node id="A"><data key="label">Alpha</data></node>
    <node id="B"/>
    <node id="C"/>
    <edge source="A" target="B"/>
    <edge source="B" target="C"/>
    <edge source="C" target="D"/>
  </graph>
</graphml>`

func quietOptions() Options {
	opts := DefaultOptions()
	opts.Seed = 1
	opts.Logger = log.New(io.Discard)
	return opts
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.graphml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

type recordingDisplay struct {
	shown *State
	err   error
}

func (d *recordingDisplay) Show(_ context.Context, s *State) error {
	d.shown = s
	return d.err
}

func TestRun(t *testing.T) {
	d := &recordingDisplay{}
	if err := Run(context.Background(), writeFile(t, abc), quietOptions(), d); err != nil {
		t.Fatalf("Run: %v", err)
	}

	s := d.shown
	if s == nil {
		t.Fatal("display was not called")
	}
	if s.Graph.NodeCount() != 3 || s.Graph.EdgeCount() != 2 {
		t.Errorf("got %d nodes, %d edges; want 3, 2", s.Graph.NodeCount(), s.Graph.EdgeCount())
	}
	if s.Stats.Parse.DroppedEdges != 1 {
		t.Errorf("DroppedEdges = %d, want 1", s.Stats.Parse.DroppedEdges)
	}
	if s.Initialized {
		t.Error("state should not be initialized before the display centres it")
	}
	if !(s.Zoom > 0) {
		t.Errorf("Zoom = %v, want > 0", s.Zoom)
	}
	for i, n := range s.Graph.Nodes() {
		if !n.Pos.IsFinite() {
			t.Errorf("node %d has position %v", i, n.Pos)
		}
	}
}

func TestRunParseErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		code apperr.Code
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.graphml") }, apperr.ErrCodeIO},
		{"malformed", func(t *testing.T) string { return writeFile(t, "<graphml><graph><node id='A'></graph>") }, apperr.ErrCodeMalformedInput},
		{"empty path", func(*testing.T) string { return "" }, apperr.ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &recordingDisplay{}
			err := Run(context.Background(), tt.path(t), quietOptions(), d)
			if err == nil {
				t.Fatal("expected error")
			}
			var ve *ViewerError
			if !errors.As(err, &ve) || ve.Op != OpParse {
				t.Errorf("error = %v, want parse ViewerError", err)
			}
			if !apperr.Is(err, tt.code) {
				t.Errorf("error %v does not carry code %s", err, tt.code)
			}
			if d.shown != nil {
				t.Error("display called after parse failure")
			}
		})
	}
}

func TestRunDisplayError(t *testing.T) {
	cause := errors.New("terminal gone")
	err := Run(context.Background(), writeFile(t, abc), quietOptions(), &recordingDisplay{err: cause})

	var ve *ViewerError
	if !errors.As(err, &ve) || ve.Op != OpDisplay {
		t.Fatalf("error = %v, want display ViewerError", err)
	}
	if !errors.Is(err, cause) {
		t.Error("display error should unwrap to its cause")
	}
	if !apperr.Is(err, apperr.ErrCodeDisplay) {
		t.Error("display error should carry DISPLAY code")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, writeFile(t, abc), quietOptions(), &recordingDisplay{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestRunInvalidOptions(t *testing.T) {
	opts := quietOptions()
	opts.Placement = "spiral"
	err := Run(context.Background(), writeFile(t, abc), opts, &recordingDisplay{})
	if !apperr.Is(err, apperr.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}

func TestNewSingleNode(t *testing.T) {
	g := graph.New()
	g.AddNode("solo", "")

	s := New(g, quietOptions())
	if s.Zoom != viewport.DefaultZoom {
		t.Errorf("Zoom = %v, want %v", s.Zoom, viewport.DefaultZoom)
	}
	if got := s.Transform().ToScreen(g.Position(0)); math.Abs(got.X-400) > 1e-9 || math.Abs(got.Y-300) > 1e-9 {
		t.Errorf("single node drawn at %v, want centre of 800x600", got)
	}
}

func TestStateCheck(t *testing.T) {
	g := graph.New()
	a := g.AddNode("a", "")
	g.AddNode("b", "")
	s := New(g, quietOptions())
	if err := s.Check(); err != nil {
		t.Fatalf("Check after layout: %v", err)
	}

	g.SetPosition(a, graph.Position{X: math.NaN()})
	err := s.Check()
	if !apperr.Is(err, apperr.ErrCodeInternal) {
		t.Errorf("Check = %v, want INTERNAL_ERROR", err)
	}
	if !errors.Is(err, graph.ErrNonFinitePosition) {
		t.Errorf("Check = %v, want cause ErrNonFinitePosition", err)
	}
}

func TestNewEmptyGraph(t *testing.T) {
	s := New(graph.New(), quietOptions())
	if s.Zoom != viewport.DefaultZoom || s.Graph.NodeCount() != 0 {
		t.Errorf("unexpected state %+v", s)
	}
	if s := New(nil, quietOptions()); s.Graph == nil {
		t.Error("nil graph should become an empty graph")
	}
}

func TestNewCirclePlacementDeterministic(t *testing.T) {
	build := func() *State {
		g := graph.New()
		a, b, c := g.AddNode("a", ""), g.AddNode("b", ""), g.AddNode("c", "")
		_, _ = g.AddEdge(a, b, "")
		_, _ = g.AddEdge(b, c, "")
		opts := quietOptions()
		opts.Placement = PlacementCircle
		return New(g, opts)
	}
	s1, s2 := build(), build()
	for i := range 3 {
		if s1.Graph.Position(graph.NodeIndex(i)) != s2.Graph.Position(graph.NodeIndex(i)) {
			t.Errorf("node %d differs between runs", i)
		}
	}
}

func TestCenter(t *testing.T) {
	g := graph.New()
	a := g.AddNode("a", "")
	b := g.AddNode("b", "")
	_, _ = g.AddEdge(a, b, "")
	s := New(g, quietOptions())

	s.Center(200, 100)
	if !s.Initialized {
		t.Error("Center should mark the state initialized")
	}
	if s.Width != 200 || s.Height != 100 {
		t.Errorf("area = %vx%v, want 200x100", s.Width, s.Height)
	}
	mid := g.Position(a).Add(g.Position(b)).Scale(0.5)
	if got := s.Transform().ToScreen(mid); math.Abs(got.X-100) > 1e-9 || math.Abs(got.Y-50) > 1e-9 {
		t.Errorf("graph centre drawn at %v, want (100, 50)", got)
	}
}

func TestPanAndZoom(t *testing.T) {
	s := &State{Graph: graph.New(), Zoom: 2, Pan: graph.Position{X: 10, Y: 20}}

	s.PanBy(5, -5)
	if s.Pan != (graph.Position{X: 15, Y: 15}) {
		t.Errorf("Pan = %v, want (15, 15)", s.Pan)
	}
	s.PanBy(math.NaN(), 0)
	if s.Pan != (graph.Position{X: 15, Y: 15}) {
		t.Errorf("NaN pan changed Pan to %v", s.Pan)
	}

	anchor := graph.Position{X: 100, Y: 50}
	before := s.Transform().ToWorld(anchor)
	s.ZoomBy(1.5, anchor)
	if s.Zoom != 3 {
		t.Errorf("Zoom = %v, want 3", s.Zoom)
	}
	after := s.Transform().ToWorld(anchor)
	if math.Abs(before.X-after.X) > 1e-9 || math.Abs(before.Y-after.Y) > 1e-9 {
		t.Errorf("anchor moved from %v to %v", before, after)
	}

	for _, f := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		s.ZoomBy(f, anchor)
		if s.Zoom != 3 {
			t.Errorf("ZoomBy(%v) changed Zoom to %v", f, s.Zoom)
		}
	}

	s.ZoomBy(1e-9, anchor)
	if s.Zoom != MinZoom {
		t.Errorf("Zoom = %v, want clamped to %v", s.Zoom, MinZoom)
	}
}

func TestStateLayout(t *testing.T) {
	g := graph.New()
	g.AddNode("A", "Alpha")
	s := New(g, quietOptions())
	s.Center(800, 600)

	l := s.Layout()
	if !l.Initialized || l.Zoom != s.Zoom || l.Width != 800 {
		t.Errorf("layout view = %+v", l)
	}
	if len(l.Nodes) != 1 || l.Nodes[0].DisplayLabel() != "Alpha" {
		t.Errorf("layout nodes = %+v", l.Nodes)
	}
}

func TestDisplayFunc(t *testing.T) {
	called := false
	var d Display = DisplayFunc(func(context.Context, *State) error {
		called = true
		return nil
	})
	if err := d.Show(context.Background(), &State{}); err != nil || !called {
		t.Errorf("DisplayFunc did not forward the call")
	}
}

type countingHooks struct {
	observability.NoopPipelineHooks
	parsed, laidOut, displayed int
}

func (h *countingHooks) OnParseComplete(context.Context, string, int, int, time.Duration, error) {
	h.parsed++
}

func (h *countingHooks) OnLayoutComplete(context.Context, int, int, time.Duration) { h.laidOut++ }
func (h *countingHooks) OnDisplayComplete(context.Context, error)                  { h.displayed++ }

func TestRunEmitsPipelineHooks(t *testing.T) {
	hooks := &countingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	if err := Run(context.Background(), writeFile(t, abc), quietOptions(), &recordingDisplay{}); err != nil {
		t.Fatal(err)
	}
	if hooks.parsed != 1 || hooks.laidOut != 1 || hooks.displayed != 1 {
		t.Errorf("hooks = %+v, want one event per stage", hooks)
	}
}
