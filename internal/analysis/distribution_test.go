package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/thermosim/internal/particle"
	"github.com/san-kum/thermosim/internal/thermo"
	"gonum.org/v1/gonum/spatial/r3"
)

func at(xy ...float64) []particle.Particle {
	ps := make([]particle.Particle, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		ps = append(ps, particle.New(r3.Vec{X: xy[i], Y: xy[i+1]}, particle.Red, particle.UnitScale))
	}
	return ps
}

func TestSummarize(t *testing.T) {
	s := Summarize(at(-1, 0, 1, 2, 0, 4))

	if s.Count != 3 {
		t.Errorf("expected count 3, got %d", s.Count)
	}
	if s.X.Mean != 0 || s.X.Min != -1 || s.X.Max != 1 {
		t.Errorf("unexpected x stats %+v", s.X)
	}
	if math.Abs(s.X.StdDev-1) > 1e-12 {
		t.Errorf("expected x stddev 1, got %f", s.X.StdDev)
	}
	if s.Y.Mean != 2 || s.Y.Max != 4 {
		t.Errorf("unexpected y stats %+v", s.Y)
	}
}

func TestSummarizeSmall(t *testing.T) {
	if s := Summarize(nil); s.Count != 0 || s.X != (AxisStats{}) {
		t.Errorf("expected zero summary, got %+v", s)
	}
	s := Summarize(at(0.5, -0.5))
	if s.X.Mean != 0.5 || s.X.StdDev != 0 || s.Y.Min != -0.5 {
		t.Errorf("unexpected single-particle summary %+v", s)
	}
}

func TestHistogram(t *testing.T) {
	counts := Histogram([]float64{-1, -0.6, -0.1, 0, 0.4, 1, 5}, -1, 1, 4)

	want := []float64{2, 1, 2, 1}
	if len(counts) != len(want) {
		t.Fatalf("expected %d bins, got %d", len(want), len(counts))
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("bin %d: expected %f, got %f", i, want[i], counts[i])
		}
	}
}

func TestHistogramEdgeCases(t *testing.T) {
	if Histogram([]float64{1}, 0, 1, 0) != nil {
		t.Error("expected nil for zero bins")
	}
	empty := Histogram(nil, -1, 1, 3)
	if len(empty) != 3 || empty[0] != 0 {
		t.Errorf("unexpected empty histogram %v", empty)
	}
	flat := Histogram([]float64{0, 0, 0}, 0, 0, 5)
	if flat[0] != 3 {
		t.Errorf("degenerate range should fill first bin, got %v", flat)
	}
}

func TestUniformityChi2(t *testing.T) {
	if got := UniformityChi2([]float64{10, 10, 10, 10}); got != 0 {
		t.Errorf("expected 0 for flat counts, got %f", got)
	}
	if got := UniformityChi2([]float64{40, 0, 0, 0}); math.Abs(got-120) > 1e-9 {
		t.Errorf("expected 120, got %f", got)
	}
	if UniformityChi2(nil) != 0 || UniformityChi2([]float64{0, 0}) != 0 {
		t.Error("expected 0 for empty counts")
	}
}

func TestWithinBounds(t *testing.T) {
	b := thermo.Bounds{W: 0.75, H: 0.45}
	if !WithinBounds(at(0.75, -0.45, 0, 0), b) {
		t.Error("edge points should be inside")
	}
	if WithinBounds(at(0, 0, 0.8, 0), b) {
		t.Error("expected point outside")
	}
}

func TestSimulatedScatterLooksUniform(t *testing.T) {
	sim := thermo.New(thermo.WithSeed(77))
	if err := sim.Update(thermo.Params{NumParticles: 20000, BoxWidthPerc: 100, BoxHeightPerc: 100}); err != nil {
		t.Fatal(err)
	}
	ps := sim.Particles()
	b := sim.Bounds()

	counts := Histogram(XValues(ps), -b.W, b.W, 10)
	// 9 degrees of freedom; 40 is far beyond the 0.9999 quantile.
	if chi2 := UniformityChi2(counts); chi2 > 40 {
		t.Errorf("x scatter not uniform: chi2=%f counts=%v", chi2, counts)
	}

	s := Summarize(ps)
	if math.Abs(s.X.Mean) > 0.05 || math.Abs(s.Y.Mean) > 0.05 {
		t.Errorf("scatter not centred: %+v", s)
	}
	if !WithinBounds(ps, b) {
		t.Error("scatter escaped bounds")
	}
}
