package thermo

import (
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/san-kum/thermosim/internal/particle"
	"gonum.org/v1/gonum/stat/distuv"
)

type State int

const (
	Empty State = iota
	Populated
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Populated:
		return "populated"
	default:
		return "unknown"
	}
}

// Simulator is the thermodynamic particle simulator. The zero value is not
// usable; construct one with New.
type Simulator struct {
	mu        sync.RWMutex
	particles []particle.Particle
	params    Params
	state     State

	extents    Extents
	seed       uint64
	generation uint64
	workers    int
	log        *slog.Logger
}

type Option func(*Simulator)

// WithExtents sets the world half-extents the box percentages apply to.
func WithExtents(e Extents) Option {
	return func(s *Simulator) { s.extents = e }
}

// WithSeed makes the sequence of populations reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Simulator) { s.seed = seed }
}

// WithWorkers bounds generation parallelism. Zero or less uses every CPU.
func WithWorkers(n int) Option {
	return func(s *Simulator) { s.workers = n }
}

// WithLogger replaces the discard logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.log = l
		}
	}
}

// New returns an empty simulator.
func New(opts ...Option) *Simulator {
	s := &Simulator{
		extents: DefaultExtents(),
		seed:    rand.Uint64(),
		workers: 1,
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewPopulated returns a simulator already holding the population for p.
func NewPopulated(p Params, opts ...Option) (*Simulator, error) {
	s := New(opts...)
	if err := s.Update(p); err != nil {
		return nil, err
	}
	return s, nil
}

// Update discards the current population and draws p.NumParticles new
// particles uniformly inside the box p describes. Thermodynamic inputs are
// stored but do not affect placement.
func (s *Simulator) Update(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.populate(p)
	return nil
}

// Setup is Update under the name the control panel uses.
func (s *Simulator) Setup(p Params) error {
	return s.Update(p)
}

// populate must be called with mu held.
func (s *Simulator) populate(p Params) {
	b := s.extents.Bounds(p.BoxWidthPerc, p.BoxHeightPerc)
	gen := s.generation
	s.generation++

	s.particles = scatter(p.NumParticles, b, p.Radius, s.seed, gen, s.workers)
	s.params = p
	s.state = Populated

	s.log.Info("simulation setup",
		"ensemble", p.Ensemble.Short(),
		"particles", len(s.particles),
		"half_width", b.W,
		"half_height", b.H,
		"radius", p.Radius,
	)
	if p.EnergyValue != 0 || p.Temperature != 0 || p.ChemPotential != 0 {
		s.log.Debug("thermodynamic inputs recorded, placement is uniform",
			"energy", p.EnergyValue,
			"temperature", p.Temperature,
			"chem_potential", p.ChemPotential,
		)
	}
}

// Resize moves the box to the given percentages, keeping the particle count.
// Coordinates are rescaled along each axis; an axis whose old extent was
// zero is redrawn uniformly.
func (s *Simulator) Resize(boxWidthPerc, boxHeightPerc int) error {
	if err := validatePerc(boxWidthPerc, boxHeightPerc); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	from := s.extents.Bounds(s.params.BoxWidthPerc, s.params.BoxHeightPerc)
	to := s.extents.Bounds(boxWidthPerc, boxHeightPerc)
	s.params.BoxWidthPerc = boxWidthPerc
	s.params.BoxHeightPerc = boxHeightPerc

	if len(s.particles) == 0 {
		return nil
	}

	src := stream(s.seed, s.generation, resizeStream)
	s.generation++
	xdis := distuv.Uniform{Min: -to.W, Max: to.W, Src: src}
	ydis := distuv.Uniform{Min: -to.H, Max: to.H, Src: src}

	out := make([]particle.Particle, len(s.particles))
	for i, p := range s.particles {
		pos := p.Position()
		pos.X = rescaleAxis(pos.X, from.W, to.W, xdis.Rand)
		pos.Y = rescaleAxis(pos.Y, from.H, to.H, ydis.Rand)
		out[i] = p.WithPosition(pos)
	}
	s.particles = out

	s.log.Debug("simulation resized",
		"particles", len(out),
		"half_width", to.W,
		"half_height", to.H,
	)
	return nil
}

// Reseed switches to a new random sequence and, if the simulator is
// populated, regenerates it from the last parameters.
func (s *Simulator) Reseed(seed uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seed = seed
	s.generation = 0
	if s.state == Populated {
		s.populate(s.params)
	}
}

// Clear empties the population. Calling it on an empty simulator does
// nothing.
func (s *Simulator) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Empty {
		return
	}
	s.particles = nil
	s.state = Empty
	s.log.Debug("particles cleared")
}

// ClearParticles is Clear under the name the control panel uses.
func (s *Simulator) ClearParticles() {
	s.Clear()
}

// Len is the current particle count.
func (s *Simulator) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.particles)
}

// State reports whether an Update has happened since the last Clear.
func (s *Simulator) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Params returns the parameters of the last update, with any later Resize
// applied.
func (s *Simulator) Params() Params {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params
}

// Bounds is the active region for the current box percentages.
func (s *Simulator) Bounds() Bounds {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.extents.Bounds(s.params.BoxWidthPerc, s.params.BoxHeightPerc)
}

// Extents is fixed at construction.
func (s *Simulator) Extents() Extents {
	return s.extents
}

// Seed is the seed of the current random sequence.
func (s *Simulator) Seed() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seed
}

// Particles returns a copy of the population in generation order.
func (s *Simulator) Particles() []particle.Particle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]particle.Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// InstanceData returns a freshly built buffer of InstanceStride floats per
// particle. The caller owns it.
func (s *Simulator) InstanceData() []float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return buildInstances(s.particles, 1)
}

// ParticleInstanceData is InstanceData under the name the renderer uses.
func (s *Simulator) ParticleInstanceData() []float32 {
	return s.InstanceData()
}

// InstanceDataForViewport is InstanceData with sy stretched by the viewport
// aspect ratio when it is wider than tall. Particles are not modified.
func (s *Simulator) InstanceDataForViewport(width, height int) []float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return buildInstances(s.particles, AspectYScale(width, height))
}
