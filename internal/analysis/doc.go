// Package analysis provides read-only statistics over a particle population.
//
//   - [Summarize]: count, mean, spread and range per axis
//   - [Histogram]: binned counts along one axis
//   - [UniformityChi2]: chi-square distance of a histogram from flat
//   - [WithinBounds]: bounding-box check
//
// # Uniformity
//
// A uniform scatter of n particles into k bins gives a chi-square statistic
// near k-1:
//
//	counts := analysis.Histogram(analysis.XValues(ps), -b.W, b.W, 20)
//	chi2 := analysis.UniformityChi2(counts) // ~19 for a flat scatter
package analysis
