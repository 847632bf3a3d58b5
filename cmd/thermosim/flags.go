package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/san-kum/thermosim/internal/config"
	"github.com/san-kum/thermosim/internal/ensemble"
	"github.com/spf13/cobra"
)

type app struct {
	configFile string
	logLevel   string
	logFormat  string
	preset     string

	ensemble      string
	particles     int
	boxWidth      int
	boxHeight     int
	energy        float64
	temperature   float64
	chemPotential float64
	radius        float64
	seed          uint64
	workers       int

	bins    int
	noPlot  bool
	width   int
	height  int
	braille bool

	cfg *config.Config
	log *slog.Logger
}

func (a *app) registerFlags(root *cobra.Command) {
	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format (text, json)")
	pf.StringVar(&a.preset, "preset", "", "use preset configuration")

	pf.StringVar(&a.ensemble, "ensemble", "nve", "ensemble kind (nve, nvt, muvt)")
	pf.IntVar(&a.particles, "particles", config.DefaultParticles, "number of particles")
	pf.IntVar(&a.boxWidth, "box-width", config.DefaultBoxPerc, "box width as a percentage of the extents")
	pf.IntVar(&a.boxHeight, "box-height", config.DefaultBoxPerc, "box height as a percentage of the extents")
	pf.Float64Var(&a.energy, "energy", 0, "energy value (nve)")
	pf.Float64Var(&a.temperature, "temperature", 0, "temperature (nvt, muvt)")
	pf.Float64Var(&a.chemPotential, "chem-potential", 0, "chemical potential (muvt)")
	pf.Float64Var(&a.radius, "radius", config.DefaultRadius, "particle radius")
	pf.Uint64Var(&a.seed, "seed", 0, "random seed (0 = random)")
	pf.IntVar(&a.workers, "workers", 1, "generation workers (0 = all CPUs)")
}

func (a *app) init(cmd *cobra.Command) error {
	logger, err := newLogger(cmd.ErrOrStderr(), a.logLevel, a.logFormat)
	if err != nil {
		return err
	}
	a.log = logger

	cfg, err := a.resolveConfig(cmd)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log.Debug("configuration resolved",
		"ensemble", cfg.Ensemble,
		"particles", cfg.Particles,
		"preset", a.preset,
		"config", a.configFile,
	)
	return nil
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func (a *app) resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	cfg := config.DefaultConfig()

	if a.preset != "" {
		ens := ""
		if flags.Changed("ensemble") {
			k, err := ensemble.Parse(a.ensemble)
			if err != nil {
				return nil, err
			}
			ens = k.Short()
		}
		p, err := config.LookupPreset(ens, a.preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	if a.configFile != "" {
		loaded, err := config.LoadOver(a.configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if flags.Changed("ensemble") {
		cfg.Ensemble = a.ensemble
	}
	if flags.Changed("particles") {
		cfg.Particles = a.particles
	}
	if flags.Changed("box-width") {
		cfg.BoxWidth = a.boxWidth
	}
	if flags.Changed("box-height") {
		cfg.BoxHeight = a.boxHeight
	}
	if flags.Changed("energy") {
		cfg.Energy = a.energy
	}
	if flags.Changed("temperature") {
		cfg.Temperature = a.temperature
	}
	if flags.Changed("chem-potential") {
		cfg.ChemPotential = a.chemPotential
	}
	if flags.Changed("radius") {
		cfg.Radius = a.radius
	}
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}
