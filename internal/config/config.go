// Package config loads the floodgrid terminal front end settings from TOML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/floodgrid/gridstore"
)

// ErrInvalid marks a configuration that parsed but failed validation.
var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Grid    GridConfig    `toml:"grid"`
	Colors  ColorsConfig  `toml:"colors"`
	Logging LoggingConfig `toml:"logging"`
}

type GridConfig struct {
	// Size is used when Initial is empty; 0 keeps the built-in 5×5 start grid.
	Size    int     `toml:"size"`
	MaxSize int     `toml:"max_size"` // ceiling for resizes
	Seed    int64   `toml:"seed"`     // 0 = time-seeded
	Initial [][]int `toml:"initial"`  // fixed start configuration, optional
}

type ColorsConfig struct {
	Filled     string `toml:"filled"`
	Hovered    string `toml:"hovered"`
	Background string `toml:"background"`
	Tooltip    string `toml:"tooltip"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	Output string `toml:"output"` // file path; the terminal belongs to the UI
}

// Load reads path and overlays it on the defaults. An empty path returns
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Defaults mirrors the colours of the original pickers: red fill, blue
// hover, white background.
func Defaults() *Config {
	return &Config{
		Grid: GridConfig{
			MaxSize: 64,
		},
		Colors: ColorsConfig{
			Filled:     "#ff0000",
			Hovered:    "#0000ff",
			Background: "#ffffff",
			Tooltip:    "#000000",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Output: "floodgrid.log",
		},
	}
}

// Validate checks ranges and colour names.
func (c *Config) Validate() error {
	if c.Grid.MaxSize < 1 || c.Grid.MaxSize > gridstore.DefaultMaxSize {
		return fmt.Errorf("grid.max_size=%d (must be in [1,%d]): %w", c.Grid.MaxSize, gridstore.DefaultMaxSize, ErrInvalid)
	}
	if c.Grid.Size < 0 || c.Grid.Size > c.Grid.MaxSize {
		return fmt.Errorf("grid.size=%d (must be in [0,%d]): %w", c.Grid.Size, c.Grid.MaxSize, ErrInvalid)
	}
	if len(c.Grid.Initial) > 0 {
		if _, err := gridstore.NewGrid(c.Grid.Initial); err != nil {
			return fmt.Errorf("grid.initial: %w: %w", ErrInvalid, err)
		}
	}
	for name, v := range map[string]string{
		"filled":     c.Colors.Filled,
		"hovered":    c.Colors.Hovered,
		"background": c.Colors.Background,
		"tooltip":    c.Colors.Tooltip,
	} {
		if tcell.GetColor(v) == tcell.ColorDefault {
			return fmt.Errorf("colors.%s=%q: %w", name, v, ErrInvalid)
		}
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format=%q: %w", c.Logging.Format, ErrInvalid)
	}
	return nil
}

// GenerateOptions returns the gridstore options implied by the grid section.
func (c *Config) GenerateOptions() []gridstore.Option {
	opts := []gridstore.Option{gridstore.WithMaxSize(c.Grid.MaxSize)}
	if c.Grid.Seed != 0 {
		opts = append(opts, gridstore.WithSeed(c.Grid.Seed))
	}
	return opts
}

// StartGrid builds the first grid: Initial if set, else a random grid of
// Size, else the built-in start grid.
func (c *Config) StartGrid() (*gridstore.Grid, error) {
	switch {
	case len(c.Grid.Initial) > 0:
		return gridstore.NewGrid(c.Grid.Initial)
	case c.Grid.Size > 0:
		return gridstore.Generate(c.Grid.Size, c.GenerateOptions()...)
	default:
		return gridstore.InitialGrid(), nil
	}
}
