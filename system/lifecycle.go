package system

import (
	"math"

	"github.com/lixenwraith/pulsefield/effect"
	"github.com/lixenwraith/pulsefield/particle"
	"github.com/lixenwraith/pulsefield/vmath"
)

// Ambient spawn tuning for replenished and clicked particles
const (
	ambientSpeedMax   = 1.5
	ambientSizeMin    = 1.5
	ambientSizeMax    = 4.5
	ambientLifeMin    = 120
	ambientLifeMax    = 300
	ambientAlphaMin   = 0.6
	ambientAlphaMax   = 1.0
	ambientPulseRange = 2 * math.Pi
	clickBurst        = 5
	clickScatter      = 6.0
)

// CreateOrReset returns a particle initialized from cfg, recycled from the pool when possible
// The particle is not live until passed to AddParticle
func (ps *ParticleSystem) CreateOrReset(x, y float64, cfg particle.Config) *particle.Particle {
	if p := ps.pool.Get(); p != nil {
		p.Reset(x, y, cfg)
		ps.statRecycled.Add(1)
		return p
	}
	return particle.New(x, y, cfg)
}

// AddParticle appends p, evicting the oldest live particle first when at capacity
// Returns false for nil, dead, already live or still pooled input
func (ps *ParticleSystem) AddParticle(p *particle.Particle) bool {
	if p == nil || p.IsDead() || !p.Attach() {
		ps.statRejected.Add(1)
		return false
	}
	if len(ps.particles) >= ps.cfg.Population.MaxParticles {
		oldest := ps.particles[0]
		copy(ps.particles, ps.particles[1:])
		ps.particles[len(ps.particles)-1] = nil
		ps.particles = ps.particles[:len(ps.particles)-1]
		ps.statEvicted.Add(1)
		ps.retire(oldest)
	}
	ps.particles = append(ps.particles, p)
	ps.statSpawned.Add(1)
	return true
}

// retire returns p to the pool or drops it when the pool is full
func (ps *ParticleSystem) retire(p *particle.Particle) {
	p.Detach()
	if ps.pool.Put(p) {
		ps.statPooled.Add(1)
		return
	}
	ps.statDiscarded.Add(1)
}

// Update advances the simulation by one frame
func (ps *ParticleSystem) Update() {
	ps.time++
	ps.ctx.Frame = ps.time

	prof := ps.profile
	attract := ps.pointer.Down && prof.MouseAttractionStrength > 0

	// Write-index compaction keeps insertion order and culls in the same pass
	write := 0
	for _, p := range ps.particles {
		if prof.GravityEnabled {
			p.ApplyForce(effect.GravityField(p.Mass, ps.time))
		}
		if attract {
			p.AttractToMouse(ps.pointer.X, ps.pointer.Y, prof.MouseAttractionStrength)
		}
		if prof.Field != nil {
			p.ApplyForce(prof.Field(p.Mass, ps.time))
		}

		p.Update(&ps.ctx)

		if p.IsDead() {
			ps.statDied.Add(1)
			ps.retire(p)
			continue
		}
		ps.particles[write] = p
		write++
	}
	for i := write; i < len(ps.particles); i++ {
		ps.particles[i] = nil
	}
	ps.particles = ps.particles[:write]

	ps.replenish()
}

// replenish tops up a sparse population with a small per-frame probability
func (ps *ParticleSystem) replenish() {
	pop := ps.cfg.Population
	if len(ps.particles) >= pop.Floor || ps.rng.Float64() >= pop.ReplenishChance {
		return
	}
	n := ps.rng.IntRange(pop.ReplenishMin, pop.ReplenishMax)
	for i := 0; i < n; i++ {
		pos := ps.profile.Spawn(ps.rng, ps.ctx.Width, ps.ctx.Height)
		ps.AddParticle(ps.CreateOrReset(pos.X, pos.Y, ps.ambientConfig()))
		ps.statReplenished.Add(1)
	}
}

// Populate spawns n ambient particles using the active spawn pattern
func (ps *ParticleSystem) Populate(n int) {
	for i := 0; i < n; i++ {
		pos := ps.profile.Spawn(ps.rng, ps.ctx.Width, ps.ctx.Height)
		ps.AddParticle(ps.CreateOrReset(pos.X, pos.Y, ps.ambientConfig()))
	}
}

// SpawnAt emits a small cluster at the pointer, as on a plain click
func (ps *ParticleSystem) SpawnAt(x, y float64) error {
	if !vmath.Finite(x, y) {
		ps.statRejected.Add(1)
		return ErrInvalidCoordinate
	}
	for i := 0; i < clickBurst; i++ {
		jx := ps.rng.Range(-clickScatter, clickScatter)
		jy := ps.rng.Range(-clickScatter, clickScatter)
		ps.AddParticle(ps.CreateOrReset(x+jx, y+jy, ps.ambientConfig()))
	}
	ps.notifyInteraction(InteractionParticleCreate, x, y, 0)
	return nil
}

// ambientConfig draws a randomized configuration in the active effect's style
func (ps *ParticleSystem) ambientConfig() particle.Config {
	size := ps.rng.Range(ambientSizeMin, ambientSizeMax)
	return particle.Config{
		Velocity:      vmath.FromAngle(ps.rng.Range(0, 2*math.Pi), ps.rng.Range(0, ambientSpeedMax)),
		Hue:           ps.rng.Range(0, 360),
		Saturation:    particle.DefaultSaturation,
		Brightness:    particle.DefaultBrightness,
		Size:          size,
		Lifespan:      ps.rng.IntRange(ambientLifeMin, ambientLifeMax),
		MaxAlpha:      ps.rng.Range(ambientAlphaMin, ambientAlphaMax),
		RotationSpeed: ps.spin(),
		PulsePhase:    ps.rng.Range(0, ambientPulseRange),
		Mode:          ps.profile.Mode,
		Trail:         ps.profile.TrailEnabled,
	}
}

// spin draws a rotation speed, wider under swirl
func (ps *ParticleSystem) spin() float64 {
	if ps.profile.Mode == particle.ModeSwirl {
		return ps.rng.Range(-particle.SwirlSpinMax, particle.SwirlSpinMax)
	}
	return ps.rng.Range(-0.05, 0.05)
}
