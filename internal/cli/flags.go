package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/forcegraph/pkg/config"
	"github.com/matzehuels/forcegraph/pkg/viewer"
)

// layoutFlags are the layout and viewport flags shared by every command
// that lays out a graph. Values start from the config file; flags the user
// set explicitly win.
type layoutFlags struct {
	configPath string
	cfg        config.Config
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	d := config.Default()
	l, v := &f.cfg.Layout, &f.cfg.Viewport

	flags := cmd.Flags()
	flags.StringVar(&f.configPath, "config", "", "config file (default: "+config.DefaultPath()+")")
	flags.IntVar(&l.Iterations, "iterations", d.Layout.Iterations, "number of simulation rounds")
	flags.Float64Var(&l.IdealDistance, "ideal-distance", d.Layout.IdealDistance, "preferred edge length")
	flags.Float64Var(&l.MaxStep, "max-step", d.Layout.MaxStep, "maximum node movement per round")
	flags.StringVar(&l.Cooling, "cooling", d.Layout.Cooling, "step schedule: constant, linear")
	flags.IntVar(&l.Workers, "workers", d.Layout.Workers, "goroutines for the repulsion pass")
	flags.StringVar(&l.Placement, "placement", d.Layout.Placement, "initial placement: random, circle")
	flags.Uint64Var(&l.Seed, "seed", d.Layout.Seed, "seed for random placement")
	flags.Float64Var(&l.Spread, "spread", d.Layout.Spread, "half-width of the random placement square")
	flags.Float64Var(&v.Width, "width", d.Viewport.Width, "target width for the initial fit")
	flags.Float64Var(&v.Height, "height", d.Viewport.Height, "target height for the initial fit")
	flags.Float64Var(&v.Margin, "margin", d.Viewport.Margin, "fraction of the target area the graph fills")
}

// load returns the effective configuration: the config file overlaid with
// explicitly set flags.
func (f *layoutFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	l, v := &cfg.Layout, &cfg.Viewport
	overrides := []struct {
		flag  string
		apply func()
	}{
		{"iterations", func() { l.Iterations = f.cfg.Layout.Iterations }},
		{"ideal-distance", func() { l.IdealDistance = f.cfg.Layout.IdealDistance }},
		{"max-step", func() { l.MaxStep = f.cfg.Layout.MaxStep }},
		{"cooling", func() { l.Cooling = f.cfg.Layout.Cooling }},
		{"workers", func() { l.Workers = f.cfg.Layout.Workers }},
		{"placement", func() { l.Placement = f.cfg.Layout.Placement }},
		{"seed", func() { l.Seed = f.cfg.Layout.Seed }},
		{"spread", func() { l.Spread = f.cfg.Layout.Spread }},
		{"width", func() { v.Width = f.cfg.Viewport.Width }},
		{"height", func() { v.Height = f.cfg.Viewport.Height }},
		{"margin", func() { v.Margin = f.cfg.Viewport.Margin }},
	}
	for _, o := range overrides {
		if changed(o.flag) {
			o.apply()
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// options returns viewer options for cmd, logging through the command's logger.
func (f *layoutFlags) options(cmd *cobra.Command) (viewer.Options, *config.Config, error) {
	cfg, err := f.load(cmd)
	if err != nil {
		return viewer.Options{}, nil, err
	}
	opts := cfg.ViewerOptions()
	opts.Logger = loggerFromContext(cmd.Context())
	return opts, cfg, nil
}
