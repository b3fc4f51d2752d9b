// Package config loads simulation parameters from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/olivierh59500/physarum-go/internal/log"
	"github.com/olivierh59500/physarum-go/internal/slime"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrUnknownFormat = errors.New("unknown config file format")
)

// Noise controls optional Perlin pre-seeding of the initial trail.
type Noise struct {
	Enabled   bool    `yaml:"enabled" toml:"enabled"`
	Scale     float64 `yaml:"scale" toml:"scale"`         // cells per noise unit
	Amplitude float32 `yaml:"amplitude" toml:"amplitude"` // peak intensity
	Alpha     float64 `yaml:"alpha" toml:"alpha"`
	Beta      float64 `yaml:"beta" toml:"beta"`
	Octaves   int32   `yaml:"octaves" toml:"octaves"`
}

// Render holds display parameters for the window driver.
type Render struct {
	Scale     int     `yaml:"scale" toml:"scale"`         // screen pixels per cell
	Ceiling   float32 `yaml:"ceiling" toml:"ceiling"`     // intensity mapped to full brightness
	AutoScale bool    `yaml:"autoscale" toml:"autoscale"` // use the trail max as ceiling
	Tint      []int   `yaml:"tint" toml:"tint"`           // RGB of a full-brightness cell
}

// Config holds every parameter needed to run a simulation.
type Config struct {
	GridSize   int     `yaml:"grid_size" toml:"grid_size"`
	Population int     `yaml:"population" toml:"population"`
	Dt         float32 `yaml:"dt" toml:"dt"`
	Seed       int64   `yaml:"seed" toml:"seed"` // 0 picks a time-based seed
	Wrap       string  `yaml:"wrap" toml:"wrap"` // single or modulo

	Noise  Noise  `yaml:"noise" toml:"noise"`
	Render Render `yaml:"render" toml:"render"`

	TPS      int    `yaml:"tps" toml:"tps"`
	Headless bool   `yaml:"headless" toml:"headless"`
	Ticks    int    `yaml:"ticks" toml:"ticks"`         // headless only
	LogEvery int    `yaml:"log_every" toml:"log_every"` // ticks between stat lines
	LogLevel string `yaml:"log_level" toml:"log_level"`
}

// Default returns the default parameters.
func Default() *Config {
	return &Config{
		GridSize:   256,
		Population: 4000,
		Dt:         1,
		Wrap:       "single",
		Noise: Noise{
			Scale:     slime.DefaultNoise.Scale,
			Amplitude: slime.DefaultNoise.Amplitude,
			Alpha:     slime.DefaultNoise.Alpha,
			Beta:      slime.DefaultNoise.Beta,
			Octaves:   slime.DefaultNoise.Octaves,
		},
		Render: Render{
			Scale:   3,
			Ceiling: 255,
			Tint:    []int{255, 255, 255},
		},
		TPS:      60,
		Ticks:    1000,
		LogEvery: 100,
		LogLevel: "info",
	}
}

// Load reads path on top of the defaults. The format is picked from the
// file extension.
func Load(path string) (*Config, error) {
	conf := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(conf); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	case ".toml":
		md, err := toml.DecodeFile(path, conf)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode %s: unknown keys %v", path, undecoded)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Validate checks ranges and the single-wrap displacement precondition.
func (c *Config) Validate() error {
	switch {
	case c.GridSize <= 0:
		return fmt.Errorf("%w: grid_size must be positive, got %d", ErrInvalidConfig, c.GridSize)
	case c.Population <= 0:
		return fmt.Errorf("%w: population must be positive, got %d", ErrInvalidConfig, c.Population)
	case c.Dt <= 0:
		return fmt.Errorf("%w: dt must be positive, got %g", ErrInvalidConfig, c.Dt)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidConfig, c.TPS)
	case c.Render.Scale <= 0:
		return fmt.Errorf("%w: render.scale must be positive, got %d", ErrInvalidConfig, c.Render.Scale)
	case c.Render.Ceiling <= 0 && !c.Render.AutoScale:
		return fmt.Errorf("%w: render.ceiling must be positive, got %g", ErrInvalidConfig, c.Render.Ceiling)
	case c.Headless && c.Ticks <= 0:
		return fmt.Errorf("%w: ticks must be positive in headless mode, got %d", ErrInvalidConfig, c.Ticks)
	}

	if len(c.Render.Tint) != 3 {
		return fmt.Errorf("%w: render.tint needs 3 components, got %d", ErrInvalidConfig, len(c.Render.Tint))
	}
	for _, v := range c.Render.Tint {
		if v < 0 || v > 255 {
			return fmt.Errorf("%w: render.tint component %d out of [0,255]", ErrInvalidConfig, v)
		}
	}

	mode, err := slime.ParseWrapMode(c.Wrap)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	// agents move at unit speed, so one tick moves them dt cells
	if mode == slime.WrapSingle && float64(c.Dt) >= float64(c.GridSize) {
		return fmt.Errorf("%w: dt %g must stay below grid_size %d with single wrap", ErrInvalidConfig, c.Dt, c.GridSize)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Noise.Enabled && (c.Noise.Scale <= 0 || math.IsNaN(c.Noise.Scale)) {
		return fmt.Errorf("%w: noise.scale must be positive, got %g", ErrInvalidConfig, c.Noise.Scale)
	}
	return nil
}

// WrapMode returns the parsed wrap mode. Call Validate first.
func (c *Config) WrapMode() slime.WrapMode {
	mode, _ := slime.ParseWrapMode(c.Wrap)
	return mode
}

// TintRGB returns the tint as bytes. Call Validate first.
func (c *Config) TintRGB() [3]uint8 {
	var rgb [3]uint8
	for i := range rgb {
		rgb[i] = uint8(c.Render.Tint[i])
	}
	return rgb
}

// NoiseOptions converts the noise section for slime.NoiseTrail.
func (c *Config) NoiseOptions(seed int64) slime.NoiseOptions {
	return slime.NoiseOptions{
		Alpha:     c.Noise.Alpha,
		Beta:      c.Noise.Beta,
		Octaves:   c.Noise.Octaves,
		Scale:     c.Noise.Scale,
		Amplitude: c.Noise.Amplitude,
		Seed:      seed,
	}
}
