package analysis

import (
	"math"
	"sort"

	"github.com/san-kum/thermosim/internal/particle"
	"github.com/san-kum/thermosim/internal/thermo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type AxisStats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

type Summary struct {
	Count int
	X, Y  AxisStats
}

func XValues(ps []particle.Particle) []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = p.Position().X
	}
	return out
}

func YValues(ps []particle.Particle) []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = p.Position().Y
	}
	return out
}

func Summarize(ps []particle.Particle) Summary {
	return Summary{
		Count: len(ps),
		X:     axisStats(XValues(ps)),
		Y:     axisStats(YValues(ps)),
	}
}

func axisStats(v []float64) AxisStats {
	if len(v) == 0 {
		return AxisStats{}
	}
	s := AxisStats{Min: floats.Min(v), Max: floats.Max(v)}
	if len(v) == 1 {
		s.Mean = v[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(v, nil)
	return s
}

// Histogram counts values into bins equal-width bins spanning [lo, hi].
// Values outside the range are dropped. When lo >= hi every value lands in
// the first bin.
func Histogram(values []float64, lo, hi float64, bins int) []float64 {
	if bins < 1 {
		return nil
	}
	count := make([]float64, bins)
	if len(values) == 0 {
		return count
	}
	if lo >= hi {
		count[0] = float64(len(values))
		return count
	}

	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	x := make([]float64, 0, len(values))
	for _, v := range values {
		if v >= lo && v <= hi {
			x = append(x, v)
		}
	}
	sort.Float64s(x)

	return stat.Histogram(count, dividers, x, nil)
}

// UniformityChi2 is sum((o-e)^2/e) against the flat expectation.
func UniformityChi2(counts []float64) float64 {
	if len(counts) == 0 {
		return 0
	}
	total := floats.Sum(counts)
	if total == 0 {
		return 0
	}
	expected := total / float64(len(counts))

	chi2 := 0.0
	for _, o := range counts {
		d := o - expected
		chi2 += d * d / expected
	}
	return chi2
}

func WithinBounds(ps []particle.Particle, b thermo.Bounds) bool {
	for _, p := range ps {
		pos := p.Position()
		if !b.Contains(pos.X, pos.Y) {
			return false
		}
	}
	return true
}
