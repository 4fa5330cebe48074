package graph

import "math"

// Position is a 2D coordinate in world space.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p + q.
func (p Position) Add(q Position) Position { return Position{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Position) Sub(q Position) Position { return Position{p.X - q.X, p.Y - q.Y} }

// Scale returns p * s.
func (p Position) Scale(s float64) Position { return Position{p.X * s, p.Y * s} }

// Len returns the Euclidean length of p.
func (p Position) Len() float64 { return math.Hypot(p.X, p.Y) }

// IsFinite reports whether both coordinates are neither NaN nor infinite.
func (p Position) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
