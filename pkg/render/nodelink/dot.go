package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/forcegraph/pkg/graph"
	"github.com/matzehuels/forcegraph/pkg/render"
)

// pointsPerInch converts screen units to Graphviz inches.
const pointsPerInch = 72.0

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the world coordinates to each node label.
	Detailed bool
}

// ToDOT converts a layout to Graphviz DOT with every node pinned at its
// screen position. The result can be rendered using [RenderSVG],
// [RenderPDF], or [RenderPNG].
func ToDOT(l graph.Layout, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  notranslate=true;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.1,0.05\"];\n")
	buf.WriteString("  edge [arrowsize=0.7];\n")
	buf.WriteString("\n")

	// Node ids may repeat, so DOT names are node indices.
	for i, n := range l.Nodes {
		screen := graph.Position{X: n.X, Y: n.Y}.Scale(l.Zoom).Add(l.Pan)
		attrs := []string{
			fmt.Sprintf("label=%q", fmtLabel(n, opts.Detailed)),
			fmt.Sprintf("tooltip=%q", n.ID),
			fmt.Sprintf("pos=\"%s\"", fmtPos(screen, l.Height)),
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", dotName(i), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range l.Edges {
		if e.Source < 0 || e.Source >= len(l.Nodes) || e.Target < 0 || e.Target >= len(l.Nodes) {
			continue
		}
		if e.ID != "" {
			fmt.Fprintf(&buf, "  %s -> %s [id=%q];\n", dotName(e.Source), dotName(e.Target), e.ID)
			continue
		}
		fmt.Fprintf(&buf, "  %s -> %s;\n", dotName(e.Source), dotName(e.Target))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func dotName(i int) string { return "n" + strconv.Itoa(i) }

func fmtLabel(n graph.LayoutNode, detailed bool) string {
	if !detailed {
		return n.DisplayLabel()
	}
	return fmt.Sprintf("%s\n(%.1f, %.1f)", n.DisplayLabel(), n.X, n.Y)
}

// fmtPos pins a screen position. Graphviz y grows upwards.
func fmtPos(p graph.Position, height float64) string {
	x := p.X / pointsPerInch
	y := (height - p.Y) / pointsPerInch
	return strconv.FormatFloat(x, 'f', 4, 64) + "," + strconv.FormatFloat(y, 'f', 4, 64) + "!"
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz root element with one that has a
// zero-origin viewBox and matching width and height in pixels.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
