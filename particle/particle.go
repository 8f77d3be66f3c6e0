package particle

import (
	"math"

	"github.com/lixenwraith/pulsefield/physics"
	"github.com/lixenwraith/pulsefield/stroke"
	"github.com/lixenwraith/pulsefield/vmath"
)

const (
	// FadeFrames is the window at the end of life over which alpha ramps to zero
	FadeFrames = 30

	MassPerSize = 0.1

	AttractMinDist = 5.0
	AttractMaxDist = 200.0

	ExplosionDecay     = 0.95
	ExplosionThreshold = 0.1

	BounceRestitution = 0.8

	RainbowHueStep = 2.0
	PulseRate      = 0.1

	SwirlSpinMax   = 0.2
	TrailDamping   = 0.95
	GravityDamping = 0.99

	PathStep             = 0.005
	PathSpeed            = 2.0
	PathPullRadius       = 100.0
	PathPull             = 0.02
	PathDefaultInfluence = 0.3
)

// Context is the per-frame simulation state injected by the owning system
type Context struct {
	Width, Height float64
	Frame         int
}

// Particle is a single simulated point
// Owned by one system while live; recycled through Pool when dead
type Particle struct {
	Position         vmath.Vec2
	PreviousPosition vmath.Vec2
	Velocity         vmath.Vec2
	Acceleration     vmath.Vec2
	Mass             float64

	Size, MinSize, MaxSize float64
	Hue                    float64 // degrees [0,360)
	Saturation             float64 // percent
	Brightness             float64 // percent
	Alpha, MaxAlpha        float64

	Lifespan    int
	MaxLifespan int
	Damping     float64

	Mode  Mode
	Trail bool

	Rotation      float64
	RotationSpeed float64
	PulsePhase    float64

	Exploding      bool
	ExplosionForce float64

	Path *PathFollow

	holder ownership
}

// ownership records which collection currently owns a particle
type ownership uint8

const (
	heldNone ownership = iota
	heldLive
	heldPool
)

// Attach marks p as owned by a live set, false if it is already live or pooled
func (p *Particle) Attach() bool {
	if p.holder != heldNone {
		return false
	}
	p.holder = heldLive
	return true
}

// Detach releases live-set ownership
func (p *Particle) Detach() {
	if p.holder == heldLive {
		p.holder = heldNone
	}
}

// Live reports whether p is currently owned by a live set
func (p *Particle) Live() bool {
	return p.holder == heldLive
}

// New constructs a particle; identical to Reset on a zero value
func New(x, y float64, cfg Config) *Particle {
	p := &Particle{}
	p.Reset(x, y, cfg)
	return p
}

// Reset re-initializes every field in place for pool reuse
// Non-finite coordinates collapse to the origin
func (p *Particle) Reset(x, y float64, cfg Config) {
	if !vmath.Finite(x, y) {
		x, y = 0, 0
	}
	c := cfg.sanitized()
	pos := vmath.V2(x, y)
	owner := p.holder

	*p = Particle{
		Position:         pos,
		PreviousPosition: pos,
		Velocity:         c.Velocity,
		Acceleration:     vmath.Vec2{},
		Mass:             c.Size * MassPerSize,

		Size:       c.Size,
		MinSize:    c.MinSize,
		MaxSize:    c.MaxSize,
		Hue:        c.Hue,
		Saturation: c.Saturation,
		Brightness: c.Brightness,
		Alpha:      c.MaxAlpha,
		MaxAlpha:   c.MaxAlpha,

		Lifespan:    c.Lifespan,
		MaxLifespan: c.Lifespan,
		Damping:     c.Damping,

		Mode:  c.Mode,
		Trail: c.Trail,

		Rotation:      0,
		RotationSpeed: c.RotationSpeed,
		PulsePhase:    c.PulsePhase,

		Exploding:      false,
		ExplosionForce: 0,

		Path: c.Path.clone(),

		holder: owner,
	}
	p.applyModeDamping()
}

// ApplyForce accumulates force/mass into acceleration until the next Update
func (p *Particle) ApplyForce(f vmath.Vec2) {
	if !f.IsFinite() || p.Mass <= 0 {
		return
	}
	p.Acceleration = p.Acceleration.Add(f.Scale(1 / p.Mass))
}

// AttractToMouse pulls toward (px, py) with inverse-square magnitude strength*mass/d²
// Only acts for AttractMinDist < d < AttractMaxDist
func (p *Particle) AttractToMouse(px, py, strength float64) {
	if !vmath.Finite(px, py, strength) {
		return
	}
	p.ApplyForce(physics.InverseSquare(p.Position, vmath.V2(px, py), strength, p.Mass, AttractMinDist, AttractMaxDist))
}

// Explode pushes the particle away from (cx, cy) with the given force
func (p *Particle) Explode(cx, cy, force float64) {
	if !vmath.Finite(cx, cy, force) {
		return
	}
	p.ApplyForce(physics.RadialImpulse(vmath.V2(cx, cy), p.Position, force))
	p.Exploding = true
	p.ExplosionForce = force
}

// Update advances one frame: path bias, integration, aging, fade, mode extras, bounce
func (p *Particle) Update(ctx *Context) {
	p.PreviousPosition = p.Position

	if p.Path != nil {
		p.followPath()
	}

	physics.Integrate(&p.Position, &p.Velocity, &p.Acceleration, p.Damping)

	p.Rotation += p.RotationSpeed

	p.Lifespan--
	if p.Lifespan < FadeFrames {
		life := math.Max(float64(p.Lifespan), 0)
		p.Alpha = vmath.Remap(life, 0, FadeFrames, 0, p.MaxAlpha)
	}

	frame := 0
	if ctx != nil {
		frame = ctx.Frame
	}
	switch p.Mode {
	case ModePulse:
		wave := 0.5 + 0.5*math.Sin(p.PulsePhase+float64(frame)*PulseRate)
		p.Size = vmath.Lerp(p.MinSize, p.MaxSize, wave)
	case ModeRainbow:
		p.Hue = vmath.WrapDegrees(p.Hue + RainbowHueStep)
	}

	if p.Exploding {
		p.ExplosionForce *= ExplosionDecay
		if p.ExplosionForce < ExplosionThreshold {
			p.Exploding = false
		}
	}

	if ctx != nil && ctx.Width > 0 && ctx.Height > 0 {
		physics.ReflectBounds(&p.Position, &p.Velocity, p.Size, ctx.Width, ctx.Height, BounceRestitution)
	}
}

func (p *Particle) followPath() {
	f := p.Path
	f.Progress += PathStep
	if f.Progress >= 1 {
		p.Path = nil
		return
	}

	point, tangent := stroke.Sample(f.Points, f.Progress)
	if !point.IsFinite() || !tangent.IsFinite() {
		p.Path = nil
		return
	}
	p.Velocity = p.Velocity.Lerp(tangent.Scale(PathSpeed), f.Influence)

	toPoint := point.Sub(p.Position)
	if d := toPoint.Mag(); d > 0 && d < PathPullRadius {
		p.ApplyForce(toPoint.Scale(PathPull))
	}
}

// IsDead reports whether the particle should be culled
func (p *Particle) IsDead() bool {
	return p.Lifespan <= 0 || p.Alpha <= 0
}

// FollowingPath reports whether the path component is attached
func (p *Particle) FollowingPath() bool {
	return p.Path != nil
}

// SetMode switches mode and applies its one-time parameter resets
// rng may be nil, in which case swirl keeps the current rotation speed
func (p *Particle) SetMode(m Mode, rng *vmath.FastRand) {
	if !m.Valid() {
		return
	}
	p.Mode = m
	p.applyModeDamping()
	if m == ModeSwirl && rng != nil {
		p.RotationSpeed = rng.Range(-SwirlSpinMax, SwirlSpinMax)
	}
}

func (p *Particle) applyModeDamping() {
	switch p.Mode {
	case ModeTrail:
		p.Damping = TrailDamping
	case ModeGravity:
		p.Damping = GravityDamping
	}
}
