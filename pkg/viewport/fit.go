package viewport

import (
	"math"

	"github.com/matzehuels/forcegraph/pkg/graph"
)

// Defaults for the display area and fitting margin.
const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
	DefaultMargin = 0.8
	DefaultZoom   = 1.0
)

// Transform maps world coordinates to screen coordinates as p*Zoom + Pan.
type Transform struct {
	Zoom float64        `json:"zoom"`
	Pan  graph.Position `json:"pan"`
}

// ToScreen converts a world position to screen coordinates.
func (t Transform) ToScreen(p graph.Position) graph.Position {
	return p.Scale(t.Zoom).Add(t.Pan)
}

// ToWorld is the inverse of [Transform.ToScreen]. A zero zoom maps every
// point to the origin.
func (t Transform) ToWorld(p graph.Position) graph.Position {
	if t.Zoom == 0 {
		return graph.Position{}
	}
	return p.Sub(t.Pan).Scale(1 / t.Zoom)
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max graph.Position
}

// Width returns the horizontal extent of b.
func (b Box) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the vertical extent of b.
func (b Box) Height() float64 { return b.Max.Y - b.Min.Y }

// Center returns the midpoint of b.
func (b Box) Center() graph.Position {
	return graph.Position{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// Bounds returns the bounding box of positions. ok is false when there
// are none.
func Bounds(positions []graph.Position) (b Box, ok bool) {
	if len(positions) == 0 {
		return Box{}, false
	}
	b = Box{Min: positions[0], Max: positions[0]}
	for _, p := range positions[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}
	return b, true
}

// Fit returns the transform that centres positions in a width x height
// area, scaled to fill margin of it. Margin outside (0, 1] is replaced by
// [DefaultMargin]; a non-positive or non-finite area by the defaults.
func Fit(positions []graph.Position, width, height, margin float64) Transform {
	if !(margin > 0 && margin <= 1) {
		margin = DefaultMargin
	}
	if !positiveFinite(width) {
		width = DefaultWidth
	}
	if !positiveFinite(height) {
		height = DefaultHeight
	}
	target := graph.Position{X: width / 2, Y: height / 2}

	b, ok := Bounds(positions)
	if !ok {
		return Transform{Zoom: DefaultZoom, Pan: target}
	}
	centre := b.Center()

	bw, bh := b.Width(), b.Height()
	zoom := margin * math.Min(width/bw, height/bh)
	if bw == 0 || bh == 0 || !positiveFinite(zoom) {
		zoom = DefaultZoom
	}

	pan := target.Sub(centre.Scale(zoom))
	if !pan.IsFinite() {
		return Transform{Zoom: DefaultZoom, Pan: target}
	}
	return Transform{Zoom: zoom, Pan: pan}
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
