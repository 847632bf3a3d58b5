package thermo

import (
	"math/rand/v2"

	"github.com/san-kum/thermosim/internal/particle"
	"gonum.org/v1/gonum/stat/distuv"
)

// blockSize is the number of particles drawn from one random stream. Streams
// are keyed by block, not by worker, so a seeded population does not depend
// on how many workers produced it.
const blockSize = 1024

// resizeStream keys the stream Resize draws from when an axis had no extent.
const resizeStream = 1<<32 - 1

func stream(seed, generation uint64, block uint32) rand.Source {
	return rand.NewPCG(seed, generation<<32|uint64(block))
}

// scatter draws n particles uniformly in b. Every particle is red with unit
// scale.
func scatter(n int, b Bounds, radius float64, seed, generation uint64, workers int) []particle.Particle {
	if n <= 0 {
		return nil
	}
	out := make([]particle.Particle, n)
	blocks := (n + blockSize - 1) / blockSize

	parallelFor(blocks, workers, func(lo, hi int) {
		for blk := lo; blk < hi; blk++ {
			src := stream(seed, generation, uint32(blk))
			xdis := distuv.Uniform{Min: -b.W, Max: b.W, Src: src}
			ydis := distuv.Uniform{Min: -b.H, Max: b.H, Src: src}

			start := blk * blockSize
			end := min(start+blockSize, n)
			for i := start; i < end; i++ {
				x := xdis.Rand()
				y := ydis.Rand()
				out[i] = particle.NewCircle(radius, x, y, 0, particle.Red.R, particle.Red.G, particle.Red.B)
			}
		}
	})

	return out
}

// rescaleAxis maps v from [-from, from] to [-to, to]. When from is zero there
// is nothing to scale and v is redrawn from draw instead.
func rescaleAxis(v, from, to float64, draw func() float64) float64 {
	if from == 0 {
		return draw()
	}
	v = v * (to / from)
	if v > to {
		return to
	}
	if v < -to {
		return -to
	}
	return v
}
