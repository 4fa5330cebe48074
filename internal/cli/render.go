package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/forcegraph/pkg/errors"
	"github.com/matzehuels/forcegraph/pkg/graph"
	"github.com/matzehuels/forcegraph/pkg/render"
	"github.com/matzehuels/forcegraph/pkg/render/nodelink"
	"github.com/matzehuels/forcegraph/pkg/viewer"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file (single format) or base path
	formats  []string // svg, png, pdf, dot
	detailed bool     // add world coordinates to node labels
	scale    float64  // PNG resolution multiplier
}

// renderCommand creates the render command for static images.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		lf         layoutFlags
		formatsStr string
		opts       = renderOpts{scale: 2}
	)

	cmd := &cobra.Command{
		Use:   "render [file.graphml|file.layout.json]",
		Short: "Render a graph to SVG, PNG, PDF or DOT",
		Long: `Render a graph to SVG, PNG, PDF or DOT.

The input is either a GraphML file, which is laid out first, or a layout
JSON file written by 'layout', which is drawn as is. Nodes are drawn at
their computed positions using the fitted zoom and pan.

PNG and PDF output require librsvg (rsvg-convert).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			for _, f := range opts.formats {
				if err := apperr.ValidateFormat(f, render.Formats...); err != nil {
					return err
				}
			}

			l, err := c.loadLayout(cmd, args[0], &lf)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], l, opts)
		},
	}

	lf.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, dot (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show world coordinates in node labels")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG resolution multiplier")

	return cmd
}

// loadLayout reads a layout JSON file, or lays out a GraphML file.
func (c *CLI) loadLayout(cmd *cobra.Command, input string, lf *layoutFlags) (graph.Layout, error) {
	if strings.EqualFold(filepath.Ext(input), ".json") {
		data, err := os.ReadFile(input)
		if err != nil {
			return graph.Layout{}, apperr.Wrap(apperr.ErrCodeIO, err, "read %s", input)
		}
		l, err := graph.UnmarshalLayout(data)
		if err != nil {
			return graph.Layout{}, apperr.Wrap(apperr.ErrCodeMalformedInput, err, "decode layout %s", input)
		}
		return l, nil
	}

	opts, _, err := lf.options(cmd)
	if err != nil {
		return graph.Layout{}, err
	}
	st, err := viewer.Load(cmd.Context(), input, opts)
	if err != nil {
		return graph.Layout{}, err
	}
	return st.Layout(), nil
}

func (c *CLI) runRender(ctx context.Context, input string, l graph.Layout, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	dot := nodelink.ToDOT(l, nodelink.Options{Detailed: opts.detailed})

	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()
	prog := newProgress(logger)

	artifacts := make(map[string][]byte, len(opts.formats))
	var svg []byte
	for _, format := range opts.formats {
		var (
			data []byte
			err  error
		)
		if format != "dot" && svg == nil {
			if svg, err = nodelink.RenderSVG(dot); err != nil {
				spinner.StopWithError("Render failed")
				return apperr.Wrap(apperr.ErrCodeInternal, err, "render svg")
			}
		}
		switch format {
		case "dot":
			data = []byte(dot)
		case "svg":
			data = svg
		case "png":
			data, err = render.ToPNG(svg, opts.scale)
		case "pdf":
			data, err = render.ToPDF(svg)
		}
		if err != nil {
			spinner.StopWithError("Render failed")
			return err
		}
		artifacts[format] = data
	}
	spinner.Stop()
	if err := ctx.Err(); err != nil {
		return err
	}

	paths, err := writeArtifacts(artifacts, opts.formats, input, opts.output)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d nodes", len(l.Nodes)))

	printSuccess("Render complete")
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// writeArtifacts writes one file per format and returns their paths.
// A single format goes to output as given; several formats share output
// as base path with the format extension appended.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) ([]string, error) {
	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
		base = strings.TrimSuffix(base, ".layout")
	}

	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := base + render.FormatExt(format)
		if output != "" && len(formats) == 1 {
			path = output
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeIO, err, "write %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// parseFormats parses a comma-separated format string into a slice.
// Duplicates are dropped.
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	var out []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}
