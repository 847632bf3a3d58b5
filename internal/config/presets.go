package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/thermosim/internal/ensemble"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

var Presets = map[string]map[string]*Config{
	"nve": {
		"dilute": {Ensemble: "nve", Particles: 200, BoxWidth: 100, BoxHeight: 100, Radius: 0.02, Energy: 1.0},
		"dense":  {Ensemble: "nve", Particles: 5000, BoxWidth: 40, BoxHeight: 40, Radius: 0.005, Energy: 1.0},
		"hot":    {Ensemble: "nve", Particles: 1000, BoxWidth: 60, BoxHeight: 60, Radius: 0.01, Energy: 50.0},
	},
	"nvt": {
		"room":     {Ensemble: "nvt", Particles: 1000, BoxWidth: 80, BoxHeight: 80, Radius: 0.01, Temperature: 298.15},
		"cold":     {Ensemble: "nvt", Particles: 300, BoxWidth: 30, BoxHeight: 30, Radius: 0.02, Temperature: 4.0},
		"full-box": {Ensemble: "nvt", Particles: 20000, BoxWidth: 100, BoxHeight: 100, Radius: 0.005, Temperature: 500.0},
	},
	"muvt": {
		"reservoir": {Ensemble: "muvt", Particles: 800, BoxWidth: 70, BoxHeight: 50, Radius: 0.015, ChemPotential: 0.5, Temperature: 300.0},
		"sparse":    {Ensemble: "muvt", Particles: 100, BoxWidth: 100, BoxHeight: 20, Radius: 0.03, ChemPotential: 0.1, Temperature: 150.0},
	},
}

// GetPreset returns a copy of the named preset with the defaults filled in
// for anything the preset leaves unset, or nil.
func GetPreset(ens, name string) *Config {
	byName, ok := Presets[ens]
	if !ok {
		return nil
	}
	p, ok := byName[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Ensemble = p.Ensemble
	cfg.Particles = p.Particles
	cfg.BoxWidth = p.BoxWidth
	cfg.BoxHeight = p.BoxHeight
	cfg.Radius = p.Radius
	cfg.Energy = p.Energy
	cfg.Temperature = p.Temperature
	cfg.ChemPotential = p.ChemPotential
	return cfg
}

// LookupPreset is GetPreset returning ErrUnknownPreset instead of nil. An
// empty ens searches every ensemble.
func LookupPreset(ens, name string) (*Config, error) {
	if ens == "" {
		for _, k := range ensemble.All() {
			if cfg := GetPreset(k.Short(), name); cfg != nil {
				return cfg, nil
			}
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	cfg := GetPreset(ens, name)
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s/%s (available: %v)", ErrUnknownPreset, ens, name, ListPresets(ens))
	}
	return cfg, nil
}

func ListPresets(ens string) []string {
	byName, ok := Presets[ens]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
