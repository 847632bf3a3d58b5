// Package ensemble enumerates the statistical ensembles a simulation can be
// labelled with.
//
// The kind only drives labels and which inputs a front-end offers. Particle
// placement is the same uniform scatter for every kind.
package ensemble

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownKind = errors.New("ensemble: unknown kind")

type Kind int

const (
	Microcanonical Kind = iota
	Canonical
	GrandCanonical
)

// Input names a thermodynamic quantity a front-end asks for.
type Input string

const (
	Energy            Input = "energy"
	Temperature       Input = "temperature"
	ChemicalPotential Input = "chem_potential"
)

type info struct {
	label       string
	short       string
	description string
	inputs      []Input
	aliases     []string
}

var kinds = map[Kind]info{
	Microcanonical: {
		label:       "Microcanonical Ensemble",
		short:       "nve",
		description: "A simulation with a constant number of particles, constant volume, and constant energy.",
		inputs:      []Input{Energy},
		aliases:     []string{"microcanonical"},
	},
	Canonical: {
		label:       "Canonical Ensemble",
		short:       "nvt",
		description: "A simulation with a constant number of particles, constant volume, and constant temperature.",
		inputs:      []Input{Temperature},
		aliases:     []string{"canonical"},
	},
	GrandCanonical: {
		label:       "Grand Canonical Ensemble",
		short:       "muvt",
		description: "A simulation with a constant chemical potential, constant volume, and constant temperature",
		inputs:      []Input{ChemicalPotential, Temperature},
		aliases:     []string{"grand_canonical", "grand-canonical", "grandcanonical", "uvt"},
	},
}

// All returns the kinds in menu order.
func All() []Kind {
	return []Kind{Microcanonical, Canonical, GrandCanonical}
}

func (k Kind) String() string {
	if i, ok := kinds[k]; ok {
		return i.label
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Short returns the token used on the command line and in config files.
func (k Kind) Short() string {
	return kinds[k].short
}

func (k Kind) Description() string {
	return kinds[k].description
}

// Inputs returns the quantities the kind holds constant, in display order.
func (k Kind) Inputs() []Input {
	in := kinds[k].inputs
	out := make([]Input, len(in))
	copy(out, in)
	return out
}

// Uses reports whether the kind asks for the given input.
func (k Kind) Uses(in Input) bool {
	for _, x := range kinds[k].inputs {
		if x == in {
			return true
		}
	}
	return false
}

func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

// Parse accepts short tokens, full labels and a few aliases, ignoring case.
// The empty string parses as Microcanonical.
func Parse(s string) (Kind, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	if needle == "" {
		return Microcanonical, nil
	}
	for _, k := range All() {
		i := kinds[k]
		if needle == i.short || needle == strings.ToLower(i.label) {
			return k, nil
		}
		for _, a := range i.aliases {
			if needle == a {
				return k, nil
			}
		}
	}
	return Microcanonical, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText encodes the short token so kinds round-trip through YAML.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.Short()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
