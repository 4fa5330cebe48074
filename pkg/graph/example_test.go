package graph_test

import (
	"fmt"

	"github.com/matzehuels/forcegraph/pkg/graph"
)

func ExampleGraph() {
	g := graph.New()
	app := g.AddNode("app", "Application")
	lib := g.AddNode("lib", "")
	_, _ = g.AddEdge(app, lib, "")
	_, _ = g.AddEdge(app, lib, "") // multi-edges are kept

	for _, n := range g.Nodes() {
		fmt.Printf("%s (%s)\n", n.ID, n.Label)
	}
	fmt.Println("edges:", g.EdgeCount())
	// Output:
	// app (Application)
	// lib (lib)
	// edges: 2
}

func ExampleExportLayout() {
	g := graph.New()
	a := g.AddNode("a", "")
	g.SetPosition(a, graph.Position{X: 1.5, Y: -2})

	l := graph.ExportLayout(g, 800, 600, 1, graph.Position{X: 400, Y: 300})
	fmt.Printf("%s at (%.1f, %.1f), zoom %.0f\n", l.Nodes[0].ID, l.Nodes[0].X, l.Nodes[0].Y, l.Zoom)
	// Output:
	// a at (1.5, -2.0), zoom 1
}
