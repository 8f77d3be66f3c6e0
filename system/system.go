package system

import (
	"errors"
	"sync/atomic"

	"github.com/lixenwraith/pulsefield/config"
	"github.com/lixenwraith/pulsefield/effect"
	"github.com/lixenwraith/pulsefield/particle"
	"github.com/lixenwraith/pulsefield/status"
	"github.com/lixenwraith/pulsefield/vmath"
)

// Sentinel errors; the system state is untouched whenever one is returned
var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidEffect     = errors.New("invalid effect")
	ErrInvalidBounds     = errors.New("invalid canvas bounds")
)

// Default canvas used until the host reports its size
const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
)

// Pointer is the host-reported pointer state
type Pointer struct {
	X, Y float64
	Down bool
}

// ParticleSystem owns the live particles, the recycling pool and the active effect
// Single-threaded: every method must be called from the host's frame loop
type ParticleSystem struct {
	cfg     *config.Config
	profile effect.Profile

	particles []*particle.Particle
	pool      *particle.Pool

	ctx     particle.Context
	time    int
	pointer Pointer

	rng      *vmath.FastRand
	sound    SoundCoupler
	renderer Renderer
	metrics  *status.Registry

	statSpawned     *atomic.Int64
	statRecycled    *atomic.Int64
	statEvicted     *atomic.Int64
	statDied        *atomic.Int64
	statPooled      *atomic.Int64
	statDiscarded   *atomic.Int64
	statExplosions  *atomic.Int64
	statDrags       *atomic.Int64
	statReplenished *atomic.Int64
	statRejected    *atomic.Int64
	statForce       *status.AtomicFloat
	statForcePeak   *status.AtomicFloat
}

// Option customizes a ParticleSystem at construction
type Option func(*ParticleSystem)

// WithSound attaches a sound coupler; nil keeps the silent default
func WithSound(s SoundCoupler) Option {
	return func(ps *ParticleSystem) {
		if s != nil {
			ps.sound = s
		}
	}
}

func WithRenderer(r Renderer) Option {
	return func(ps *ParticleSystem) {
		ps.renderer = r
	}
}

// WithMetrics publishes counters into an existing registry
func WithMetrics(r *status.Registry) Option {
	return func(ps *ParticleSystem) {
		if r != nil {
			ps.metrics = r
		}
	}
}

// WithRand replaces the seeded generator, used by tests for determinism
func WithRand(rng *vmath.FastRand) Option {
	return func(ps *ParticleSystem) {
		if rng != nil {
			ps.rng = rng
		}
	}
}

// New creates an empty system; nil or malformed config falls back to defaults
// Call Populate to create the initial population
func New(cfg *config.Config, opts ...Option) *ParticleSystem {
	if cfg == nil {
		cfg = config.Default()
	} else {
		cfg = cfg.Clone()
	}
	cfg.Sanitize()

	ps := &ParticleSystem{
		cfg:       cfg,
		particles: make([]*particle.Particle, 0, cfg.Population.MaxParticles),
		pool:      particle.NewPool(cfg.Population.MaxPoolSize),
		ctx:       particle.Context{Width: DefaultWidth, Height: DefaultHeight},
		rng:       vmath.NewFastRand(cfg.Seed),
		sound:     nopCoupler{},
		metrics:   status.NewRegistry(),
	}
	ps.profile, _ = cfg.Profile(cfg.Effect)

	for _, opt := range opts {
		opt(ps)
	}

	ps.statSpawned = ps.metrics.Ints.Get("particles.spawned")
	ps.statRecycled = ps.metrics.Ints.Get("particles.recycled")
	ps.statEvicted = ps.metrics.Ints.Get("particles.evicted")
	ps.statDied = ps.metrics.Ints.Get("particles.died")
	ps.statPooled = ps.metrics.Ints.Get("particles.pooled")
	ps.statDiscarded = ps.metrics.Ints.Get("particles.discarded")
	ps.statExplosions = ps.metrics.Ints.Get("explosions")
	ps.statDrags = ps.metrics.Ints.Get("drags")
	ps.statReplenished = ps.metrics.Ints.Get("particles.replenished")
	ps.statRejected = ps.metrics.Ints.Get("input.rejected")
	ps.statForce = ps.metrics.Floats.Get("explosion.force")
	ps.statForcePeak = ps.metrics.Floats.Get("explosion.force.peak")

	return ps
}

// SetBounds updates the canvas size used for bounce and spawn placement
func (ps *ParticleSystem) SetBounds(width, height float64) error {
	if !vmath.Finite(width, height) || width <= 0 || height <= 0 {
		ps.statRejected.Add(1)
		return ErrInvalidBounds
	}
	ps.ctx.Width, ps.ctx.Height = width, height
	return nil
}

// Bounds returns the current canvas size
func (ps *ParticleSystem) Bounds() (width, height float64) {
	return ps.ctx.Width, ps.ctx.Height
}

// SetPointer records the pointer state used by mouse attraction
// Non-finite coordinates are ignored but the button state is still applied
// A press emits a click interaction at the pointer
func (ps *ParticleSystem) SetPointer(x, y float64, down bool) {
	if vmath.Finite(x, y) {
		ps.pointer.X, ps.pointer.Y = x, y
	}
	pressed := down && !ps.pointer.Down
	ps.pointer.Down = down
	if pressed {
		ps.notifyInteraction(InteractionClick, ps.pointer.X, ps.pointer.Y, 0)
	}
}

func (ps *ParticleSystem) Pointer() Pointer {
	return ps.pointer
}

// Effect returns the active effect profile
func (ps *ParticleSystem) Effect() effect.Profile {
	return ps.profile
}

// Time returns the frame counter
func (ps *ParticleSystem) Time() int {
	return ps.time
}

// ParticleCount returns the number of live particles
func (ps *ParticleSystem) ParticleCount() int {
	return len(ps.particles)
}

// PoolLen returns the number of retired particles available for reuse
func (ps *ParticleSystem) PoolLen() int {
	return ps.pool.Len()
}

// MaxParticles returns the live capacity
func (ps *ParticleSystem) MaxParticles() int {
	return ps.cfg.Population.MaxParticles
}

// Metrics returns the registry counters are published to
func (ps *ParticleSystem) Metrics() *status.Registry {
	return ps.metrics
}

// Particles visits live particles in insertion order until fn returns false
// The particle must not be retained or mutated by the caller
func (ps *ParticleSystem) Particles(fn func(i int, p *particle.Particle) bool) {
	for i, p := range ps.particles {
		if !fn(i, p) {
			return
		}
	}
}

// Stats is a point-in-time summary for status displays
type Stats struct {
	Effect       string
	Particles    int
	MaxParticles int
	Pooled       int
	Frame        int
	Explosions   int64
}

func (ps *ParticleSystem) Stats() Stats {
	return Stats{
		Effect:       ps.profile.Name,
		Particles:    len(ps.particles),
		MaxParticles: ps.cfg.Population.MaxParticles,
		Pooled:       ps.pool.Len(),
		Frame:        ps.time,
		Explosions:   ps.statExplosions.Load(),
	}
}

// SetEffect switches the active effect and retags every live particle
func (ps *ParticleSystem) SetEffect(id effect.ID) error {
	profile, ok := ps.cfg.Profile(id)
	if !ok {
		ps.statRejected.Add(1)
		return ErrInvalidEffect
	}
	ps.profile = profile
	for _, p := range ps.particles {
		if p.Mode != profile.Mode {
			p.SetMode(profile.Mode, ps.rng)
		}
		p.Trail = profile.TrailEnabled
	}
	return nil
}

// Reset discards every live particle without pooling and rewinds the clock
func (ps *ParticleSystem) Reset() {
	for i, p := range ps.particles {
		p.Detach()
		ps.particles[i] = nil
	}
	ps.particles = ps.particles[:0]
	ps.time = 0
	ps.ctx.Frame = 0
}

// Render hands every live particle's snapshot to the renderer in array order
func (ps *ParticleSystem) Render() {
	if ps.renderer == nil {
		return
	}
	defer guard("renderer")
	for _, p := range ps.particles {
		ps.renderer.DrawParticle(p.Snapshot())
	}
}
