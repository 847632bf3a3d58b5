package thermo

import "github.com/san-kum/thermosim/internal/particle"

// Instance layout: x, y, z, pad, r, g, b, pad, sx, sy, sz, pad. Each group of
// four floats lines up with a vec4 vertex attribute.
const (
	InstanceStride = 12

	PositionOffset = 0
	ColorOffset    = 4
	ScaleOffset    = 8

	PaddingValue float32 = 1
)

func appendInstance(dst []float32, p particle.Particle, yScale float64) []float32 {
	pos := p.Position()
	c := p.Color()
	s := p.Scale()
	return append(dst,
		float32(pos.X), float32(pos.Y), float32(pos.Z), PaddingValue,
		float32(c.R), float32(c.G), float32(c.B), PaddingValue,
		float32(s.X), float32(s.Y*yScale), float32(s.Z), PaddingValue,
	)
}

func buildInstances(ps []particle.Particle, yScale float64) []float32 {
	buf := make([]float32, 0, len(ps)*InstanceStride)
	for _, p := range ps {
		buf = appendInstance(buf, p, yScale)
	}
	return buf
}

// AspectYScale is the factor applied to sy for a viewport of the given pixel
// size. Only landscape viewports are corrected.
func AspectYScale(width, height int) float64 {
	if height > 0 && width > height {
		return float64(width) / float64(height)
	}
	return 1
}
