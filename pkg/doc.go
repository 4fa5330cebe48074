// Package pkg provides the libraries behind forcegraph, a viewer that lays
// out GraphML graphs with a force-directed simulation.
//
// # Overview
//
// The pkg directory is organized by pipeline stage:
//
//  1. [graph] - The in-memory graph model and the layout handoff format
//  2. [graphml] - Streaming GraphML reader producing a [graph.Graph]
//  3. [layout/force] - Initial placement and the force-directed simulation
//  4. [viewport] - Fitting a laid-out graph into a display area
//  5. [viewer] - Orchestration (parse → layout → fit → display)
//
// Supporting packages: [config] (TOML settings), [errors] (coded errors),
// [observability] (pipeline and HTTP hooks), [render] (DOT, SVG, PNG and
// PDF output), [server] (HTTP display) and [buildinfo].
//
// # Architecture
//
// The typical data flow:
//
//	GraphML file
//	     ↓
//	[graphml] package (nodes, labels, edges)
//	     ↓
//	[layout/force] package (positions)
//	     ↓
//	[viewport] package (zoom + pan)
//	     ↓
//	terminal, HTTP, SVG/PNG/PDF/DOT or layout JSON
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/forcegraph/pkg/graphml"
//	    "github.com/matzehuels/forcegraph/pkg/viewer"
//	)
//
//	g, err := graphml.ParseFile("deps.graphml")
//	if err != nil {
//	    return err
//	}
//	s := viewer.New(g, viewer.DefaultOptions())
//	fmt.Println(s.Zoom, s.Pan)
//
// Or in one step, with hooks and logging:
//
//	err := viewer.Run(ctx, "deps.graphml", viewer.DefaultOptions(), display)
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/forcegraph/pkg/graph
// [graphml]: https://pkg.go.dev/github.com/matzehuels/forcegraph/pkg/graphml
// [layout/force]: https://pkg.go.dev/github.com/matzehuels/forcegraph/pkg/layout/force
// [viewport]: https://pkg.go.dev/github.com/matzehuels/forcegraph/pkg/viewport
// [viewer]: https://pkg.go.dev/github.com/matzehuels/forcegraph/pkg/viewer
// [config]: https://pkg.go.dev/github.com/matzehuels/forcegraph/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/forcegraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/forcegraph/pkg/observability
// [render]: https://pkg.go.dev/github.com/matzehuels/forcegraph/pkg/render
// [server]: https://pkg.go.dev/github.com/matzehuels/forcegraph/pkg/server
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/forcegraph/pkg/buildinfo
// [graph.Graph]: https://pkg.go.dev/github.com/matzehuels/forcegraph/pkg/graph#Graph
package pkg
