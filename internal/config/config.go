package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/san-kum/thermosim/internal/ensemble"
	"github.com/san-kum/thermosim/internal/thermo"
	"gopkg.in/yaml.v3"
)

const (
	DefaultParticles = 500
	DefaultBoxPerc   = 50
	DefaultRadius    = 0.01
	DefaultWidth     = 1280
	DefaultHeight    = 720
	DefaultFPS       = 60
)

// Control panel limits. The simulator accepts anything non-negative; these
// only bound what a front-end lets the user pick.
const (
	MinParticles = 1
	// MaxPanelParticles is the top of the particle slider. Clamp leaves
	// larger counts alone.
	MaxPanelParticles = 50000
	MinBoxPerc   = 10
	MaxBoxPerc   = 100
	MinRadius    = 0.005
	MaxRadius    = 0.10
	MinEnergy    = 0.0
	MinTemp      = 0.0
	MinChemPot   = 0.0
)

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	Ensemble      string        `yaml:"ensemble"`
	Particles     int           `yaml:"particles"`
	BoxWidth      int           `yaml:"box_width_perc"`
	BoxHeight     int           `yaml:"box_height_perc"`
	Energy        float64       `yaml:"energy"`
	Temperature   float64       `yaml:"temperature"`
	ChemPotential float64       `yaml:"chem_potential"`
	Radius        float64       `yaml:"radius"`
	Seed          uint64        `yaml:"seed"`
	Workers       int           `yaml:"workers"`
	Extents       ExtentsConfig `yaml:"extents"`
	Window        WindowConfig  `yaml:"window"`
}

type ExtentsConfig struct {
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

func DefaultConfig() *Config {
	return &Config{
		Ensemble:  ensemble.Microcanonical.Short(),
		Particles: DefaultParticles,
		BoxWidth:  DefaultBoxPerc,
		BoxHeight: DefaultBoxPerc,
		Radius:    DefaultRadius,
		Workers:   1,
		Extents: ExtentsConfig{
			HalfWidth:  thermo.DefaultHalfWidth,
			HalfHeight: thermo.DefaultHalfHeight,
		},
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			FPS:    DefaultFPS,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver decodes the file at path on top of base. Keys missing from the
// file keep base's values. base is not modified.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the simulator would refuse plus unusable extents
// and window sizes.
func (c *Config) Validate() error {
	if _, err := ensemble.Parse(c.Ensemble); err != nil {
		return err
	}
	if c.Particles < 0 {
		return fmt.Errorf("%w: particles %d", ErrInvalidConfig, c.Particles)
	}
	if c.BoxWidth < 0 || c.BoxHeight < 0 {
		return fmt.Errorf("%w: box %dx%d", ErrInvalidConfig, c.BoxWidth, c.BoxHeight)
	}
	if c.Extents.HalfWidth <= 0 || c.Extents.HalfHeight <= 0 {
		return fmt.Errorf("%w: extents %vx%v", ErrInvalidConfig, c.Extents.HalfWidth, c.Extents.HalfHeight)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	return nil
}

// Clamp pulls every control into the range the control panel offers.
func (c *Config) Clamp() {
	c.Particles = max(c.Particles, MinParticles)
	c.BoxWidth = clampInt(c.BoxWidth, MinBoxPerc, MaxBoxPerc)
	c.BoxHeight = clampInt(c.BoxHeight, MinBoxPerc, MaxBoxPerc)
	c.Radius = clampFloat(c.Radius, MinRadius, MaxRadius)
	c.Energy = max(c.Energy, MinEnergy)
	c.Temperature = max(c.Temperature, MinTemp)
	c.ChemPotential = max(c.ChemPotential, MinChemPot)
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func clampFloat(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

func (c Config) Kind() ensemble.Kind {
	k, _ := ensemble.Parse(c.Ensemble)
	return k
}

func (c *Config) ToParams() (thermo.Params, error) {
	k, err := ensemble.Parse(c.Ensemble)
	if err != nil {
		return thermo.Params{}, err
	}
	return thermo.Params{
		NumParticles:  c.Particles,
		BoxWidthPerc:  c.BoxWidth,
		BoxHeightPerc: c.BoxHeight,
		EnergyValue:   c.Energy,
		Temperature:   c.Temperature,
		ChemPotential: c.ChemPotential,
		Radius:        c.Radius,
		Ensemble:      k,
	}, nil
}

// SimulatorOptions builds thermo options from the config. A zero seed
// leaves the simulator on a random seed.
func (c *Config) SimulatorOptions(logger *slog.Logger) []thermo.Option {
	opts := []thermo.Option{
		thermo.WithExtents(thermo.Extents{HalfWidth: c.Extents.HalfWidth, HalfHeight: c.Extents.HalfHeight}),
		thermo.WithWorkers(c.Workers),
		thermo.WithLogger(logger),
	}
	if c.Seed != 0 {
		opts = append(opts, thermo.WithSeed(c.Seed))
	}
	return opts
}
