// Package graph provides the in-memory graph model shared by the parser,
// the layout engine, the viewport fitter and every display.
//
// # Core Types
//
//   - [Graph]: an owned collection of nodes and edges
//   - [Node]: externally identified vertex with a label and a mutable [Position]
//   - [Edge]: directed connection between two node handles
//   - [NodeIndex], [EdgeIndex]: stable handles assigned at insertion
//
// # Handles
//
// Indices are assigned in insertion order, start at zero and are never
// reused: the graph has no removal operations. String ids are only needed
// while a graph is being built; after that the indices are the handle used
// by the layout engine and displays.
//
//	g := graph.New()
//	a := g.AddNode("a", "")       // label defaults to "a"
//	b := g.AddNode("b", "Beta")
//	_, _ = g.AddEdge(a, b, "")    // directed, no identity
//
// Multi-edges between the same ordered pair and self-loops are kept.
//
// # Positions
//
// Every node owns exactly one [Position]. New nodes start at the origin;
// callers place them explicitly (see pkg/layout/force) before running a
// layout. The layout engine mutates positions through [Graph.SetPosition]
// and never adds or removes nodes.
//
// # Serialization
//
// [Layout] is the JSON wire format handed to external renderers: node ids,
// labels, final positions and the fitted zoom and pan.
//
// # Concurrency
//
// A Graph is not safe for concurrent writes. Concurrent reads are safe.
package graph
