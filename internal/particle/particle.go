// Package particle defines the render-relevant record of a single particle.
package particle

import (
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"
)

// Color is an RGB triple with channels in [0, 1].
type Color struct {
	R, G, B float64
}

var (
	Red   = Color{R: 1, G: 0, B: 0}
	White = Color{R: 1, G: 1, B: 1}

	UnitScale = r3.Vec{X: 1, Y: 1, Z: 1}
)

// Hex returns the colour as "#rrggbb", clamping out-of-range channels.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// Array returns the channels in r, g, b order.
func (c Color) Array() [3]float64 {
	return [3]float64{c.R, c.G, c.B}
}

// Particle is immutable once constructed. Replacing a particle is the only
// way to move it.
type Particle struct {
	position r3.Vec
	color    Color
	scale    r3.Vec
	radius   float64
}

// New builds a particle. Inputs are not validated: coordinates outside the
// normalized device range are kept and simply land out of view.
func New(position r3.Vec, color Color, scale r3.Vec) Particle {
	return Particle{position: position, color: color, scale: scale}
}

// NewCircle builds a particle from a glyph radius, a position and a colour,
// with unit scale.
func NewCircle(radius, x, y, z, r, g, b float64) Particle {
	return Particle{
		position: r3.Vec{X: x, Y: y, Z: z},
		color:    Color{R: r, G: g, B: b},
		scale:    UnitScale,
		radius:   radius,
	}
}

func (p Particle) Position() r3.Vec { return p.position }
func (p Particle) Color() Color     { return p.color }
func (p Particle) Scale() r3.Vec    { return p.scale }

// Radius is the glyph radius given to NewCircle, or 0.
func (p Particle) Radius() float64 { return p.radius }

// WithPosition returns a copy of p placed at pos.
func (p Particle) WithPosition(pos r3.Vec) Particle {
	p.position = pos
	return p
}
