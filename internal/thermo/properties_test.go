package thermo_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/thermosim/internal/ensemble"
	"github.com/san-kum/thermosim/internal/particle"
	"github.com/san-kum/thermosim/internal/thermo"
)

func params(n, w, h int) thermo.Params {
	return thermo.Params{
		NumParticles:  n,
		BoxWidthPerc:  w,
		BoxHeightPerc: h,
		Radius:        0.01,
		Ensemble:      ensemble.Microcanonical,
	}
}

var _ = Describe("Simulator", func() {
	var sim *thermo.Simulator

	BeforeEach(func() {
		sim = thermo.New(thermo.WithSeed(2024))
	})

	DescribeTable("population size matches the request",
		func(n int) {
			Expect(sim.Update(params(n, 50, 50))).To(Succeed())
			Expect(sim.Len()).To(Equal(n))
			Expect(sim.Particles()).To(HaveLen(n))
		},
		Entry("none", 0),
		Entry("one", 1),
		Entry("a few", 7),
		Entry("several blocks", 3000),
	)

	DescribeTable("every particle lies inside the box",
		func(w, h int) {
			Expect(sim.Update(params(2000, w, h))).To(Succeed())

			maxX := thermo.DefaultHalfWidth * float64(w) / 100
			maxY := thermo.DefaultHalfHeight * float64(h) / 100
			for _, p := range sim.Particles() {
				pos := p.Position()
				Expect(math.Abs(pos.X)).To(BeNumerically("<=", maxX))
				Expect(math.Abs(pos.Y)).To(BeNumerically("<=", maxY))
				Expect(pos.Z).To(BeZero())
			}
		},
		Entry("minimum panel box", 10, 10),
		Entry("half box", 50, 50),
		Entry("full box", 100, 100),
		Entry("wide and short", 100, 10),
	)

	It("honours custom extents", func() {
		sim = thermo.New(thermo.WithSeed(1), thermo.WithExtents(thermo.Extents{HalfWidth: 2, HalfHeight: 0.5}))
		Expect(sim.Update(params(1000, 50, 100))).To(Succeed())

		b := sim.Bounds()
		Expect(b.W).To(BeNumerically("~", 1.0, 1e-12))
		Expect(b.H).To(BeNumerically("~", 0.5, 1e-12))
		for _, p := range sim.Particles() {
			Expect(b.Contains(p.Position().X, p.Position().Y)).To(BeTrue())
		}
	})

	It("replaces the population instead of merging", func() {
		Expect(sim.Update(params(300, 50, 50))).To(Succeed())
		first := sim.Particles()

		Expect(sim.Update(params(120, 50, 50))).To(Succeed())
		second := sim.Particles()
		Expect(second).To(HaveLen(120))

		seen := make(map[[2]float64]bool, len(first))
		for _, p := range first {
			seen[[2]float64{p.Position().X, p.Position().Y}] = true
		}
		survivors := 0
		for _, p := range second {
			if seen[[2]float64{p.Position().X, p.Position().Y}] {
				survivors++
			}
		}
		Expect(survivors).To(BeZero())
	})

	Describe("Clear", func() {
		It("is idempotent", func() {
			Expect(sim.Update(params(50, 50, 50))).To(Succeed())
			Expect(sim.State()).To(Equal(thermo.Populated))

			sim.Clear()
			sim.Clear()
			Expect(sim.Len()).To(BeZero())
			Expect(sim.State()).To(Equal(thermo.Empty))
			Expect(sim.InstanceData()).To(BeEmpty())
		})

		It("is a no-op on a fresh simulator", func() {
			sim.ClearParticles()
			Expect(sim.State()).To(Equal(thermo.Empty))
			Expect(sim.InstanceData()).To(BeEmpty())
		})
	})

	Describe("InstanceData", func() {
		It("lays out twelve floats per particle matching the accessors", func() {
			Expect(sim.Update(params(64, 80, 60))).To(Succeed())

			ps := sim.Particles()
			buf := sim.ParticleInstanceData()
			Expect(buf).To(HaveLen(thermo.InstanceStride * len(ps)))

			for i, p := range ps {
				row := buf[i*thermo.InstanceStride : (i+1)*thermo.InstanceStride]
				pos, c, s := p.Position(), p.Color(), p.Scale()
				Expect(row).To(Equal([]float32{
					float32(pos.X), float32(pos.Y), float32(pos.Z), 1,
					float32(c.R), float32(c.G), float32(c.B), 1,
					float32(s.X), float32(s.Y), float32(s.Z), 1,
				}))
			}
		})
	})

	It("colours every particle red", func() {
		Expect(sim.Update(params(500, 50, 50))).To(Succeed())
		for _, p := range sim.Particles() {
			Expect(p.Color()).To(Equal(particle.Red))
			Expect(p.Scale()).To(Equal(particle.UnitScale))
		}
	})

	It("walks the documented end-to-end scenario", func() {
		Expect(sim.Setup(thermo.Params{
			NumParticles:  500,
			BoxWidthPerc:  50,
			BoxHeightPerc: 50,
			EnergyValue:   0,
			Temperature:   0,
			ChemPotential: 0,
			Radius:        0.01,
		})).To(Succeed())

		Expect(sim.Len()).To(Equal(500))
		for _, p := range sim.Particles() {
			Expect(math.Abs(p.Position().X)).To(BeNumerically("<=", 0.75))
			Expect(math.Abs(p.Position().Y)).To(BeNumerically("<=", 0.45))
		}

		sim.ClearParticles()
		Expect(sim.Len()).To(BeZero())
	})

	Context("when resized", func() {
		BeforeEach(func() {
			Expect(sim.Update(params(800, 30, 30))).To(Succeed())
		})

		It("keeps the count and the bounding invariant", func() {
			Expect(sim.Resize(90, 70)).To(Succeed())
			Expect(sim.Len()).To(Equal(800))

			b := sim.Bounds()
			for _, p := range sim.Particles() {
				Expect(b.Contains(p.Position().X, p.Position().Y)).To(BeTrue())
			}
		})

		It("rejects negative percentages", func() {
			Expect(sim.Resize(10, -10)).To(MatchError(thermo.ErrInvalidParameter))
			Expect(sim.Params().BoxHeightPerc).To(Equal(30))
		})
	})
})
