package viewer

import (
	"github.com/charmbracelet/log"

	apperr "github.com/matzehuels/forcegraph/pkg/errors"
	"github.com/matzehuels/forcegraph/pkg/layout/force"
	"github.com/matzehuels/forcegraph/pkg/viewport"
)

// Placement strategies for initial node positions.
const (
	PlacementRandom = "random"
	PlacementCircle = "circle"
)

// Options configures [New] and [Run].
type Options struct {
	// Layout is passed to [force.Layout].
	Layout force.Options

	// Placement selects the initial positions: PlacementRandom (default)
	// or PlacementCircle.
	Placement string
	// Seed drives random placement.
	Seed uint64
	// Spread is the half-width of the random placement square, or the
	// circle radius.
	Spread float64

	// Width, Height and Margin describe the target area for the initial fit.
	Width  float64
	Height float64
	Margin float64

	// Logger receives stage timings. Nil means log.Default().
	Logger *log.Logger
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Layout:    force.DefaultOptions(),
		Placement: PlacementRandom,
		Spread:    force.DefaultSpread,
		Width:     viewport.DefaultWidth,
		Height:    viewport.DefaultHeight,
		Margin:    viewport.DefaultMargin,
	}
}

// Validate rejects options that cannot be normalised silently.
func (o Options) Validate() error {
	switch o.Placement {
	case "", PlacementRandom, PlacementCircle:
	default:
		return apperr.New(apperr.ErrCodeInvalidConfig, "unknown placement %q (must be %s or %s)",
			o.Placement, PlacementRandom, PlacementCircle)
	}
	if o.Layout.Iterations < 0 {
		return apperr.New(apperr.ErrCodeInvalidConfig, "iterations must not be negative, got %d", o.Layout.Iterations)
	}
	if o.Layout.Workers < 0 {
		return apperr.New(apperr.ErrCodeInvalidConfig, "workers must not be negative, got %d", o.Layout.Workers)
	}
	return nil
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}
