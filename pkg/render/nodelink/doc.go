// Package nodelink draws laid-out graphs as node-link diagrams.
//
// Unlike a regular Graphviz run, node placement is not computed here: every
// node is pinned at the screen position given by the layout's view
// transform (screen = world*Zoom + Pan), so the picture matches what the
// interactive viewer shows for the same state.
//
// # Usage
//
//	dot := nodelink.ToDOT(state.Layout(), nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0) // 2x scale
//
// # DOT Format
//
// [ToDOT] emits a digraph with layout=neato and a pos="x,y!" attribute on
// every node. Nodes are named by index (n0, n1, ...) because ids may
// repeat; the id is kept as the tooltip. Graphviz measures positions in inches with y growing
// upwards, so screen coordinates are divided by 72 and flipped within the
// layout height. The DOT can be rendered by [RenderSVG] or saved and
// processed with external Graphviz tools.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
