// Package thermo implements the thermodynamic particle simulator.
//
// A [Simulator] owns a population of [particle.Particle] values scattered
// uniformly inside a box given as percentages of fixed half-extents:
//
//   - [Simulator.Update] regenerates the whole population from [Params]
//   - [Simulator.Resize] moves the box and brings every particle inside it
//   - [Simulator.Clear] empties the population
//   - [Simulator.InstanceData] flattens the population for instanced drawing
//
// # Example
//
//	sim := thermo.New(thermo.WithSeed(42))
//	err := sim.Update(thermo.Params{NumParticles: 500, BoxWidthPerc: 50, BoxHeightPerc: 50, Radius: 0.01})
//	buf := sim.InstanceData() // 12 floats per particle
//
// Energy, temperature and chemical potential are recorded with the rest of
// [Params] but placement ignores them. There is no time stepping: particles
// are placed once per update and never moved.
//
// # Thread Safety
//
// All methods may be called from any goroutine. Readers always receive
// copies, never views into the live population.
package thermo
