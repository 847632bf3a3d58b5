package thermo

import (
	"math"

	"github.com/san-kum/thermosim/internal/ensemble"
)

const (
	DefaultHalfWidth  = 1.50
	DefaultHalfHeight = 0.90
)

// Params is one setup request from a front-end.
type Params struct {
	NumParticles  int
	BoxWidthPerc  int
	BoxHeightPerc int
	EnergyValue   float64
	Temperature   float64
	ChemPotential float64
	Radius        float64
	Ensemble      ensemble.Kind
}

// Validate rejects negative counts and percentages and NaN inputs. It does
// not clamp to the control panel ranges.
func (p Params) Validate() error {
	if p.NumParticles < 0 {
		return &ParamError{Field: "num_particles", Value: float64(p.NumParticles)}
	}
	if err := validatePerc(p.BoxWidthPerc, p.BoxHeightPerc); err != nil {
		return err
	}
	reals := []struct {
		name string
		v    float64
	}{
		{"energy_value", p.EnergyValue},
		{"temperature", p.Temperature},
		{"chem_potential", p.ChemPotential},
		{"radius", p.Radius},
	}
	for _, r := range reals {
		if math.IsNaN(r.v) {
			return &ParamError{Field: r.name, Value: r.v}
		}
	}
	return nil
}

func validatePerc(w, h int) error {
	if w < 0 {
		return &ParamError{Field: "box_width_perc", Value: float64(w)}
	}
	if h < 0 {
		return &ParamError{Field: "box_height_perc", Value: float64(h)}
	}
	return nil
}

// Extents are the half-width and half-height a 100% box spans, in normalized
// device coordinates.
type Extents struct {
	HalfWidth  float64
	HalfHeight float64
}

func DefaultExtents() Extents {
	return Extents{HalfWidth: DefaultHalfWidth, HalfHeight: DefaultHalfHeight}
}

// Bounds converts box percentages to half-extents.
func (e Extents) Bounds(widthPerc, heightPerc int) Bounds {
	return Bounds{
		W: math.Abs(e.HalfWidth) * float64(widthPerc) / 100,
		H: math.Abs(e.HalfHeight) * float64(heightPerc) / 100,
	}
}

// Bounds is the active region [-W, W] x [-H, H].
type Bounds struct {
	W, H float64
}

func (b Bounds) Contains(x, y float64) bool {
	return math.Abs(x) <= b.W && math.Abs(y) <= b.H
}
