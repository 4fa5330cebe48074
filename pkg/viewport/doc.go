// Package viewport maps world coordinates produced by a layout onto a
// fixed-size display area.
//
// [Fit] computes the axis-aligned bounding box of all positions and picks
// the zoom and pan that centre the box in the target area with a margin:
//
//	zoom = margin * min(width/boxWidth, height/boxHeight)
//	pan  = targetCentre - boxCentre*zoom
//
// A point p is drawn at p*zoom + pan (see [Transform.ToScreen]).
//
// When the box has no area (no nodes, a single node, or all nodes on one
// horizontal or vertical line) there is no meaningful scale, so the zoom
// falls back to [DefaultZoom] and only the pan is adjusted.
package viewport
