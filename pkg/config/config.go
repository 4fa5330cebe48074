// Package config loads forcegraph settings from a TOML file.
//
// All sections are optional; missing keys keep their defaults:
//
//	[layout]
//	iterations = 200
//	ideal_distance = 80.0
//	max_step = 10.0
//	cooling = "constant"   # or "linear"
//	workers = 1
//	placement = "random"   # or "circle"
//	seed = 0
//	spread = 50.0
//
//	[viewport]
//	width = 800.0
//	height = 600.0
//	margin = 0.8
//
//	[server]
//	addr = ":8080"
package config

import (
	"errors"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	apperr "github.com/matzehuels/forcegraph/pkg/errors"
	"github.com/matzehuels/forcegraph/pkg/layout/force"
	"github.com/matzehuels/forcegraph/pkg/viewer"
	"github.com/matzehuels/forcegraph/pkg/viewport"
)

// Config holds forcegraph configuration.
type Config struct {
	Layout   LayoutConfig   `toml:"layout"`
	Viewport ViewportConfig `toml:"viewport"`
	Server   ServerConfig   `toml:"server"`
}

// LayoutConfig controls placement and the force simulation.
type LayoutConfig struct {
	Iterations    int     `toml:"iterations"`
	IdealDistance float64 `toml:"ideal_distance"`
	MaxStep       float64 `toml:"max_step"`
	Cooling       string  `toml:"cooling"`
	Workers       int     `toml:"workers"`
	Placement     string  `toml:"placement"`
	Seed          uint64  `toml:"seed"`
	Spread        float64 `toml:"spread"`
}

// ViewportConfig is the target area of the initial fit.
type ViewportConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Margin float64 `toml:"margin"`
}

// ServerConfig controls the HTTP display.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// DefaultAddr is the listen address of the HTTP display.
const DefaultAddr = ":8080"

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{
			Iterations:    force.DefaultIterations,
			IdealDistance: force.DefaultIdealDistance,
			MaxStep:       force.DefaultMaxStep,
			Cooling:       "constant",
			Workers:       1,
			Placement:     viewer.PlacementRandom,
			Spread:        force.DefaultSpread,
		},
		Viewport: ViewportConfig{
			Width:  viewport.DefaultWidth,
			Height: viewport.DefaultHeight,
			Margin: viewport.DefaultMargin,
		},
		Server: ServerConfig{Addr: DefaultAddr},
	}
}

// Dir returns the forcegraph config directory.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "forcegraph")
}

// DefaultPath returns the config file read when no path is given.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config at path on top of [Default]. An empty path means
// [DefaultPath], which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, apperr.Wrap(apperr.ErrCodeIO, err, "read config %s", path)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, apperr.New(apperr.ErrCodeInvalidConfig, "unknown key %s in %s", undec[0], path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	l, v := c.Layout, c.Viewport
	switch {
	case l.Iterations < 0:
		return invalid("layout.iterations must not be negative")
	case !positiveFinite(l.IdealDistance):
		return invalid("layout.ideal_distance must be positive and finite")
	case !positiveFinite(l.MaxStep):
		return invalid("layout.max_step must be positive and finite")
	case l.Workers < 1:
		return invalid("layout.workers must be at least 1")
	case !positiveFinite(l.Spread):
		return invalid("layout.spread must be positive and finite")
	case !positiveFinite(v.Width) || !positiveFinite(v.Height):
		return invalid("viewport.width and viewport.height must be positive and finite")
	case !(v.Margin > 0 && v.Margin <= 1):
		return invalid("viewport.margin must be in (0, 1]")
	case c.Server.Addr == "":
		return invalid("server.addr must not be empty")
	}
	if _, ok := force.ScheduleByName(l.Cooling); !ok {
		return invalid("layout.cooling must be constant or linear, got %q", l.Cooling)
	}
	switch l.Placement {
	case viewer.PlacementRandom, viewer.PlacementCircle:
	default:
		return invalid("layout.placement must be %s or %s, got %q",
			viewer.PlacementRandom, viewer.PlacementCircle, l.Placement)
	}
	return nil
}

// positiveFinite rejects NaN along with non-positive and infinite values.
func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func invalid(format string, args ...any) error {
	return apperr.New(apperr.ErrCodeInvalidConfig, format, args...)
}

// ViewerOptions converts c into options for [viewer.New] and [viewer.Run].
// c must be valid.
func (c *Config) ViewerOptions() viewer.Options {
	schedule, _ := force.ScheduleByName(c.Layout.Cooling)
	return viewer.Options{
		Layout: force.Options{
			Iterations:    c.Layout.Iterations,
			IdealDistance: c.Layout.IdealDistance,
			MaxStep:       c.Layout.MaxStep,
			Schedule:      schedule,
			Workers:       c.Layout.Workers,
		},
		Placement: c.Layout.Placement,
		Seed:      c.Layout.Seed,
		Spread:    c.Layout.Spread,
		Width:     c.Viewport.Width,
		Height:    c.Viewport.Height,
		Margin:    c.Viewport.Margin,
	}
}

// Write encodes c as TOML.
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
