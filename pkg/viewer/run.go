package viewer

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperr "github.com/matzehuels/forcegraph/pkg/errors"
	"github.com/matzehuels/forcegraph/pkg/graphml"
	"github.com/matzehuels/forcegraph/pkg/observability"
)

// Display shows a prepared state. Show blocks until the display is closed
// or ctx is cancelled.
type Display interface {
	Show(ctx context.Context, s *State) error
}

// DisplayFunc adapts a function to [Display].
type DisplayFunc func(ctx context.Context, s *State) error

// Show calls f(ctx, s).
func (f DisplayFunc) Show(ctx context.Context, s *State) error { return f(ctx, s) }

// Pipeline stages reported in [ViewerError.Op].
const (
	OpConfig  = "config"
	OpParse   = "parse"
	OpLayout  = "layout"
	OpDisplay = "display"
)

// ViewerError reports which stage of [Run] or [Load] failed.
type ViewerError struct {
	Op  string
	Err error
}

func (e *ViewerError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ViewerError) Unwrap() error { return e.Err }

// Load parses the graph at path and prepares it with [New]. Parse errors
// abort before any layout work.
func Load(ctx context.Context, path string, opts Options) (*State, error) {
	if err := opts.Validate(); err != nil {
		return nil, &ViewerError{Op: OpConfig, Err: err}
	}
	if err := apperr.ValidateInputPath(path); err != nil {
		return nil, &ViewerError{Op: OpParse, Err: err}
	}
	logger := opts.logger()
	hooks := observability.Pipeline()

	hooks.OnParseStart(ctx, path)
	start := time.Now()
	g, stats, err := graphml.ParseFileWithStats(path)
	parseTime := time.Since(start)
	hooks.OnParseComplete(ctx, path, stats.Nodes, stats.Edges, parseTime, err)
	if err != nil {
		return nil, &ViewerError{Op: OpParse, Err: err}
	}
	logger.Info("parsed graph",
		"nodes", stats.Nodes,
		"edges", stats.Edges,
		"duration", parseTime)
	if stats.DroppedEdges > 0 {
		logger.Warn("dropped edges with unknown endpoints", "count", stats.DroppedEdges)
	}
	if stats.SkippedNodes > 0 {
		logger.Warn("skipped nodes without id", "count", stats.SkippedNodes)
	}

	if err := ctx.Err(); err != nil {
		return nil, &ViewerError{Op: OpLayout, Err: err}
	}

	s := New(g, opts)
	s.Stats.Parse = stats
	s.Stats.ParseTime = parseTime
	hooks.OnLayoutComplete(ctx, g.NodeCount(), opts.Layout.Iterations, s.Stats.LayoutTime)
	if err := s.Check(); err != nil {
		logger.Error("layout check failed", "err", err)
		return nil, &ViewerError{Op: OpLayout, Err: err}
	}
	return s, nil
}

// Run loads the graph at path and shows it on d.
func Run(ctx context.Context, path string, opts Options, d Display) error {
	s, err := Load(ctx, path, opts)
	if err != nil {
		return err
	}
	err = d.Show(ctx, s)
	observability.Pipeline().OnDisplayComplete(ctx, err)
	if err != nil {
		var coded *apperr.Error
		if !errors.As(err, &coded) && ctx.Err() == nil {
			err = apperr.Wrap(apperr.ErrCodeDisplay, err, "show graph")
		}
		return &ViewerError{Op: OpDisplay, Err: err}
	}
	return nil
}
