package system

import (
	"math"

	"github.com/lixenwraith/pulsefield/particle"
	"github.com/lixenwraith/pulsefield/physics"
	"github.com/lixenwraith/pulsefield/stroke"
	"github.com/lixenwraith/pulsefield/vmath"
)

// CreateExplosion spawns a radial burst at (x, y) and pushes nearby particles outward
func (ps *ParticleSystem) CreateExplosion(x, y float64) error {
	if !vmath.Finite(x, y) {
		ps.statRejected.Add(1)
		return ErrInvalidCoordinate
	}
	ps.explode(x, y, nil)
	return nil
}

// CreatePathExplosion is CreateExplosion whose particles follow the drawn path
// A path with fewer than two finite points degrades to a plain explosion
func (ps *ParticleSystem) CreatePathExplosion(x, y float64, path []vmath.Vec2) error {
	if !vmath.Finite(x, y) {
		ps.statRejected.Add(1)
		return ErrInvalidCoordinate
	}
	pts := stroke.Simplify(stroke.Sanitize(path), ps.cfg.Explosion.PathEpsilon)
	if len(pts) < 2 {
		pts = nil
	}
	ps.explode(x, y, pts)
	return nil
}

func (ps *ParticleSystem) explode(x, y float64, path []vmath.Vec2) {
	ec := ps.cfg.Explosion
	center := vmath.V2(x, y)

	count := ps.rng.IntRange(ec.CountMin, ec.CountMax)
	force := ps.rng.Range(ec.ForceMin, ec.ForceMax)

	ps.statExplosions.Add(1)
	ps.statForce.Set(force)
	ps.statForcePeak.Max(force)
	ps.notifyEffect(x, y, vmath.Clamp(force/ec.ForceMax, 0, 1))

	// Influence pass runs over the particles alive before the burst;
	// freshly spawned ones sit on the center and would get no direction anyway
	ps.applyRadialInfluence(center, force, ec.InfluenceRadius)

	var bias vmath.Vec2
	if path != nil {
		_, bias = stroke.Sample(path, 0)
	}

	for i := 0; i < count; i++ {
		jitter := ps.rng.Range(-ec.AngleJitter, ec.AngleJitter)
		speed := ps.rng.Range(0.5*force, force)
		dir := vmath.FromAngle(2*math.Pi*float64(i)/float64(count), 1).Rotate(jitter)

		cfg := ps.burstConfig()
		if path != nil {
			// Fan folds toward the path's initial direction
			dir = dir.Add(bias).Normalize()
			if dir == (vmath.Vec2{}) {
				dir = bias
			}
			cfg.Path = particle.NewPathFollow(path, ec.PathInfluence)
		}
		cfg.Velocity = dir.Scale(speed)

		ps.AddParticle(ps.CreateOrReset(x, y, cfg))
	}
}

// applyRadialInfluence pushes particles within radius outward with linear falloff
// Magnitude is force at the center, 0 at the boundary
func (ps *ParticleSystem) applyRadialInfluence(center vmath.Vec2, force, radius float64) int {
	affected := 0
	for _, p := range ps.particles {
		falloff := physics.LinearFalloff(p.Position.Dist(center), radius)
		if falloff <= 0 {
			continue
		}
		p.Explode(center.X, center.Y, force*falloff)
		affected++
	}
	return affected
}

// burstConfig draws the per-particle visual ranges of an explosion
func (ps *ParticleSystem) burstConfig() particle.Config {
	ec := ps.cfg.Explosion
	return particle.Config{
		Hue:           ps.rng.Range(ec.HueMin, ec.HueMax),
		Saturation:    particle.DefaultSaturation,
		Brightness:    particle.DefaultBrightness,
		Size:          ps.rng.Range(ec.SizeMin, ec.SizeMax),
		Lifespan:      ps.rng.IntRange(ec.LifespanMin, ec.LifespanMax),
		MaxAlpha:      particle.DefaultMaxAlpha,
		RotationSpeed: ps.spin(),
		PulsePhase:    ps.rng.Range(0, ambientPulseRange),
		Mode:          ps.profile.Mode,
		Trail:         true,
	}
}
