// Package config holds the settings shared by the front ends: initial grid
// size, window and tile geometry, frame and generation rates and colors.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"toroid/internal/render"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full set of user settings.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Window Window `yaml:"window"`

	FPS    int  `yaml:"fps"`
	TPS    int  `yaml:"tps"`
	Paused bool `yaml:"paused"`

	Seed    int64   `yaml:"seed"`
	Density float64 `yaml:"density"`
	Pattern string  `yaml:"pattern"`

	Colors Colors `yaml:"colors"`
}

// Window configures the graphical front end.
type Window struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	TileSize   int    `yaml:"tile_size"`
	GridLine   int    `yaml:"grid_line"`
	ShowFPS    bool   `yaml:"show_fps"`
}

// Colors holds "#rrggbb" strings for each cell state and the background.
type Colors struct {
	Dead       string `yaml:"dead"`
	Living     string `yaml:"living"`
	Dying      string `yaml:"dying"`
	Live       string `yaml:"live"`
	Background string `yaml:"background"`
	GridLine   string `yaml:"grid_line"`
}

// Default returns the stock configuration.
func Default() *Config {
	p := render.DefaultPalette()
	return &Config{
		Width:  64,
		Height: 48,
		Window: Window{
			Title:    "Conway's Game of Life",
			Width:    1280,
			Height:   720,
			TileSize: 10,
		},
		FPS:    60,
		TPS:    10,
		Paused: true,
		Colors: Colors{
			Dead:       render.Hex(p.Dead),
			Living:     render.Hex(p.Living),
			Dying:      render.Hex(p.Dying),
			Live:       render.Hex(p.Live),
			Background: "#000000",
			GridLine:   "#313244",
		},
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Bind attaches the command-line overrides to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells (headless)")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells (headless)")
	fs.IntVar(&c.FPS, "fps", c.FPS, "frames per second")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second while running")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random soup")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of cells alive in the random soup (0 disables)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern placed at the center")
	fs.IntVar(&c.Window.TileSize, "tile", c.Window.TileSize, "tile size in pixels")
	fs.IntVar(&c.Window.GridLine, "grid-line", c.Window.GridLine, "grid line thickness in pixels")
	fs.BoolVar(&c.Window.ShowFPS, "show-fps", c.Window.ShowFPS, "draw the FPS counter")
}

// ApplyChanged copies the flags that were set explicitly in fs onto c, so
// command-line overrides win over values loaded from a file.
func (c *Config) ApplyChanged(fs *pflag.FlagSet) error {
	own := pflag.NewFlagSet("config", pflag.ContinueOnError)
	c.Bind(own)
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil || own.Lookup(f.Name) == nil {
			return
		}
		if setErr := own.Set(f.Name, f.Value.String()); setErr != nil {
			err = fmt.Errorf("flag --%s: %w", f.Name, setErr)
		}
	})
	return err
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Window.TileSize <= 0:
		return fmt.Errorf("%w: tile_size must be positive", ErrInvalidConfig)
	case c.Window.GridLine < 0:
		return fmt.Errorf("%w: grid_line must not be negative", ErrInvalidConfig)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive", ErrInvalidConfig)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive", ErrInvalidConfig)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: density %v outside [0,1]", ErrInvalidConfig, c.Density)
	}
	if _, err := c.Palette(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for _, hex := range []string{c.Colors.Background, c.Colors.GridLine} {
		if _, err := render.ParseHex(hex); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}

// Palette decodes the cell colors.
func (c *Config) Palette() (render.Palette, error) {
	var p render.Palette
	for _, f := range []struct {
		hex string
		dst *color.RGBA
	}{
		{c.Colors.Dead, &p.Dead},
		{c.Colors.Living, &p.Living},
		{c.Colors.Dying, &p.Dying},
		{c.Colors.Live, &p.Live},
	} {
		col, err := render.ParseHex(f.hex)
		if err != nil {
			return render.Palette{}, err
		}
		*f.dst = col
	}
	return p, nil
}

// Background decodes the background color. Invalid values fall back to black.
func (c *Config) Background() color.RGBA {
	col, err := render.ParseHex(c.Colors.Background)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return col
}

// GridLineColor decodes the grid line color. Invalid values fall back to the
// background.
func (c *Config) GridLineColor() color.RGBA {
	col, err := render.ParseHex(c.Colors.GridLine)
	if err != nil {
		return c.Background()
	}
	return col
}
