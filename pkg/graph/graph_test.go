package graph

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
)

func TestAddNode(t *testing.T) {
	tests := []struct {
		name      string
		id, label string
		wantLabel string
	}{
		{"explicit label", "a", "Alpha", "Alpha"},
		{"default label", "b", "", "b"},
		{"label with spaces", "c", "  gamma  ", "  gamma  "},
	}

	g := New()
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := g.AddNode(tt.id, tt.label)
			if int(idx) != i {
				t.Errorf("index = %d, want %d", idx, i)
			}
			n := g.Node(idx)
			if n.ID != tt.id {
				t.Errorf("ID = %q, want %q", n.ID, tt.id)
			}
			if n.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", n.Label, tt.wantLabel)
			}
			if n.Pos != (Position{}) {
				t.Errorf("Pos = %v, want origin", n.Pos)
			}
		})
	}
}

func TestZeroValueGraph(t *testing.T) {
	var g Graph
	a := g.AddNode("a", "")
	b := g.AddNode("b", "")
	if _, err := g.AddEdge(a, b, ""); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if idx, ok := g.Lookup("b"); !ok || idx != b {
		t.Errorf("Lookup(b) = %d, %v", idx, ok)
	}
}

func TestAddEdge(t *testing.T) {
	g := New()
	a := g.AddNode("a", "")
	b := g.AddNode("b", "")

	tests := []struct {
		name     string
		src, dst NodeIndex
		wantErr  bool
	}{
		{"forward", a, b, false},
		{"parallel", a, b, false},
		{"reverse", b, a, false},
		{"self loop", a, a, false},
		{"unknown source", 7, b, true},
		{"unknown target", a, -1, true},
	}

	want := 0
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := g.AddEdge(tt.src, tt.dst, "")
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownNode) {
					t.Fatalf("err = %v, want ErrUnknownNode", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("AddEdge: %v", err)
			}
			if int(idx) != want {
				t.Errorf("edge index = %d, want %d", idx, want)
			}
			want++
		})
	}

	if g.EdgeCount() != 4 {
		t.Errorf("EdgeCount = %d, want 4 (multi-edges kept)", g.EdgeCount())
	}
	if !g.Edges()[3].IsSelfLoop() {
		t.Error("edge 3 should be a self loop")
	}
}

func TestLookupDuplicateID(t *testing.T) {
	g := New()
	first := g.AddNode("dup", "first")
	second := g.AddNode("dup", "second")

	if g.NodeCount() != 2 {
		t.Fatalf("NodeCount = %d, want 2", g.NodeCount())
	}
	idx, ok := g.Lookup("dup")
	if !ok || idx != second {
		t.Errorf("Lookup(dup) = %d, %v; want %d", idx, ok, second)
	}
	if g.Node(first).Label != "first" {
		t.Error("earlier node should be kept")
	}
	if _, ok := g.Lookup("missing"); ok {
		t.Error("Lookup(missing) should fail")
	}
}

func TestNodeOutOfRange(t *testing.T) {
	g := New()
	if g.Node(0) != nil {
		t.Error("Node(0) on empty graph should be nil")
	}
	g.AddNode("a", "")
	if g.Node(1) != nil || g.Node(-1) != nil {
		t.Error("out-of-range Node should be nil")
	}
}

func TestPositions(t *testing.T) {
	g := New()
	a := g.AddNode("a", "")
	b := g.AddNode("b", "")
	g.SetPosition(a, Position{1, 2})
	g.SetPosition(b, Position{-3, 4})

	ps := g.Positions()
	if len(ps) != 2 || ps[0] != (Position{1, 2}) || ps[1] != (Position{-3, 4}) {
		t.Fatalf("Positions = %v", ps)
	}

	// Positions is a copy.
	ps[0] = Position{100, 100}
	if g.Position(a) != (Position{1, 2}) {
		t.Error("mutating Positions() result changed the graph")
	}
}

func TestValidate(t *testing.T) {
	g := New()
	a := g.AddNode("a", "")
	b := g.AddNode("b", "")
	_, _ = g.AddEdge(a, b, "e1")

	if err := g.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	g.SetPosition(b, Position{math.NaN(), 0})
	if err := g.Validate(); !errors.Is(err, ErrNonFinitePosition) {
		t.Errorf("Validate = %v, want ErrNonFinitePosition", err)
	}

	g.SetPosition(b, Position{0, math.Inf(-1)})
	if err := g.Validate(); !errors.Is(err, ErrNonFinitePosition) {
		t.Errorf("Validate = %v, want ErrNonFinitePosition", err)
	}
}

func TestPositionMath(t *testing.T) {
	p := Position{3, 4}
	if p.Len() != 5 {
		t.Errorf("Len = %v, want 5", p.Len())
	}
	if got := p.Add(Position{1, 1}); got != (Position{4, 5}) {
		t.Errorf("Add = %v", got)
	}
	if got := p.Sub(Position{1, 1}); got != (Position{2, 3}) {
		t.Errorf("Sub = %v", got)
	}
	if got := p.Scale(2); got != (Position{6, 8}) {
		t.Errorf("Scale = %v", got)
	}
	if !p.IsFinite() {
		t.Error("IsFinite should be true")
	}
	if (Position{math.Inf(1), 0}).IsFinite() {
		t.Error("IsFinite should be false for +Inf")
	}
}

func TestExportLayout(t *testing.T) {
	g := New()
	a := g.AddNode("a", "Alpha")
	b := g.AddNode("b", "")
	_, _ = g.AddEdge(a, b, "")
	g.SetPosition(a, Position{10, 20})

	l := ExportLayout(g, 800, 600, 2, Position{400, 300})

	if len(l.Nodes) != 2 || len(l.Edges) != 1 {
		t.Fatalf("got %d nodes, %d edges", len(l.Nodes), len(l.Edges))
	}
	if l.Nodes[0].Label != "Alpha" || l.Nodes[0].X != 10 || l.Nodes[0].Y != 20 {
		t.Errorf("node a = %+v", l.Nodes[0])
	}
	if l.Nodes[1].Label != "" {
		t.Errorf("label equal to id should be omitted, got %q", l.Nodes[1].Label)
	}
	if l.Nodes[1].DisplayLabel() != "b" {
		t.Errorf("DisplayLabel = %q, want b", l.Nodes[1].DisplayLabel())
	}
	if l.Edges[0].From != "a" || l.Edges[0].To != "b" {
		t.Errorf("edge = %+v", l.Edges[0])
	}

	var buf bytes.Buffer
	if err := WriteLayout(l, &buf); err != nil {
		t.Fatalf("WriteLayout: %v", err)
	}
	if !strings.Contains(buf.String(), `"zoom": 2`) {
		t.Errorf("missing zoom in output:\n%s", buf.String())
	}

	back, err := UnmarshalLayout(buf.Bytes())
	if err != nil {
		t.Fatalf("UnmarshalLayout: %v", err)
	}
	if back.Pan != l.Pan || len(back.Nodes) != 2 {
		t.Errorf("round trip mismatch: %+v", back)
	}
}

func TestExportLayoutDuplicateIDs(t *testing.T) {
	g := New()
	a1 := g.AddNode("a", "first")
	a2 := g.AddNode("a", "second")
	b := g.AddNode("b", "")
	_, _ = g.AddEdge(a1, b, "")
	_, _ = g.AddEdge(a2, b, "")

	l := ExportLayout(g, 800, 600, 1, Position{})
	if len(l.Nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(l.Nodes))
	}
	want := []LayoutEdge{
		{Source: 0, Target: 2, From: "a", To: "b"},
		{Source: 1, Target: 2, From: "a", To: "b"},
	}
	for i, w := range want {
		if l.Edges[i] != w {
			t.Errorf("edge %d = %+v, want %+v", i, l.Edges[i], w)
		}
	}
}

func TestUnmarshalLayoutEdgeRange(t *testing.T) {
	tests := []struct {
		name string
		json string
		ok   bool
	}{
		{"in range", `{"nodes":[{"id":"a"},{"id":"b"}],"edges":[{"source":0,"target":1}]}`, true},
		{"target past end", `{"nodes":[{"id":"a"}],"edges":[{"source":0,"target":1}]}`, false},
		{"negative source", `{"nodes":[{"id":"a"}],"edges":[{"source":-1,"target":0}]}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalLayout([]byte(tt.json))
			if tt.ok && err != nil {
				t.Errorf("UnmarshalLayout: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrUnknownNode) {
				t.Errorf("UnmarshalLayout = %v, want ErrUnknownNode", err)
			}
		})
	}
}
