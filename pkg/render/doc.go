// Package render converts rendered SVG into other image formats.
//
// The [nodelink] subpackage draws laid-out graphs with Graphviz at their
// computed positions and produces SVG in-process. [ToPDF] and [ToPNG]
// convert that SVG with the external rsvg-convert tool (from librsvg):
//
//	svg, err := nodelink.RenderSVG(dot)
//	png, err := render.ToPNG(svg, 2.0) // 2x scale
//
// [nodelink]: github.com/matzehuels/forcegraph/pkg/render/nodelink
package render
