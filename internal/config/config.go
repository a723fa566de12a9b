package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gravitas-015/hexcore/hex"
)

// Config holds all hexgrid configuration
type Config struct {
	Layout LayoutConfig `yaml:"layout"`
	Offset OffsetConfig `yaml:"offset"`
	Grid   GridConfig   `yaml:"grid"`
	Log    LogConfig    `yaml:"log"`
}

// LayoutConfig describes the pixel projection
type LayoutConfig struct {
	Orientation string    `yaml:"orientation"` // "pointy" or "flat"
	Size        hex.Point `yaml:"size"`
	Origin      hex.Point `yaml:"origin"`
}

// OffsetConfig selects the offset scheme used for (col, row) addressing
type OffsetConfig struct {
	Family string `yaml:"family"` // "q" or "r"
	Parity string `yaml:"parity"` // "even" or "odd"
}

// GridConfig is the extent of the rectangular grid listed by the CLI
type GridConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, fills defaults and validates the result
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Layout.Orientation == "" {
		c.Layout.Orientation = "pointy"
	}
	if c.Layout.Size.X == 0 {
		c.Layout.Size.X = 10
	}
	if c.Layout.Size.Y == 0 {
		c.Layout.Size.Y = c.Layout.Size.X
	}
	if c.Offset.Family == "" {
		c.Offset.Family = "r"
	}
	if c.Offset.Parity == "" {
		c.Offset.Parity = "odd"
	}
	if c.Grid.Cols == 0 {
		c.Grid.Cols = 10
	}
	if c.Grid.Rows == 0 {
		c.Grid.Rows = 10
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks that every field names a known value
func (c *Config) Validate() error {
	if _, err := c.HexLayout(); err != nil {
		return err
	}
	if _, err := c.Scheme(); err != nil {
		return err
	}
	if c.Grid.Cols < 0 || c.Grid.Rows < 0 {
		return fmt.Errorf("grid size must not be negative, got %dx%d", c.Grid.Cols, c.Grid.Rows)
	}
	return nil
}

// HexLayout builds the projection described by the layout section
func (c *Config) HexLayout() (hex.Layout, error) {
	o, err := ParseOrientation(c.Layout.Orientation)
	if err != nil {
		return hex.Layout{}, err
	}
	l := hex.NewLayout(o, c.Layout.Size, c.Layout.Origin)
	if err := l.Validate(); err != nil {
		return hex.Layout{}, fmt.Errorf("layout: %w", err)
	}
	return l, nil
}

// Scheme builds the offset scheme described by the offset section
func (c *Config) Scheme() (hex.OffsetScheme, error) {
	f, err := ParseFamily(c.Offset.Family)
	if err != nil {
		return hex.OffsetScheme{}, err
	}
	p, err := ParseParity(c.Offset.Parity)
	if err != nil {
		return hex.OffsetScheme{}, err
	}
	return hex.OffsetScheme{Family: f, Parity: p}, nil
}

// ParseOrientation maps "pointy" or "flat" to an orientation
func ParseOrientation(s string) (hex.Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pointy", "pointy-top":
		return hex.Pointy, nil
	case "flat", "flat-top":
		return hex.Flat, nil
	}
	return hex.Orientation{}, fmt.Errorf("unknown orientation %q", s)
}

// ParseFamily maps "q" or "r" to an offset family
func ParseFamily(s string) (hex.Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "q":
		return hex.QFamily, nil
	case "r":
		return hex.RFamily, nil
	}
	return 0, fmt.Errorf("%w: %q", hex.ErrInvalidFamily, s)
}

// ParseParity maps "even" or "odd" to a parity
func ParseParity(s string) (hex.Parity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "even":
		return hex.Even, nil
	case "odd":
		return hex.Odd, nil
	}
	return 0, fmt.Errorf("%w: %q", hex.ErrInvalidParity, s)
}

// ParseScheme maps names like "odd-r" or "even-q" to an offset scheme
func ParseScheme(s string) (hex.OffsetScheme, error) {
	parity, family, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return hex.OffsetScheme{}, fmt.Errorf("offset scheme %q must look like even-q or odd-r", s)
	}
	p, err := ParseParity(parity)
	if err != nil {
		return hex.OffsetScheme{}, err
	}
	f, err := ParseFamily(family)
	if err != nil {
		return hex.OffsetScheme{}, err
	}
	return hex.OffsetScheme{Family: f, Parity: p}, nil
}
