// Package viewer prepares a graph for display and hands it to a [Display].
//
// [Run] is the whole pipeline for one input file:
//
//	parse -> place -> layout -> fit -> display
//
// A parse failure aborts before any layout work. The result of the middle
// stages is a [State]: the graph with final positions plus the zoom and pan
// computed by [viewport.Fit] for the configured target area. After that the
// display owns the state; it performs first-frame centring with
// [State.Center] and mutates zoom and pan with [State.PanBy] and
// [State.ZoomBy].
//
// Errors returned by [Run] are [*ViewerError] values naming the failed
// stage. They unwrap to the coded errors of [github.com/matzehuels/forcegraph/pkg/errors],
// so callers can test for [errors.ErrCodeIO] or [errors.ErrCodeMalformedInput].
package viewer
