package particle

import (
	"github.com/lixenwraith/pulsefield/vmath"
)

// Fallback values used when a Config field is missing or malformed
const (
	DefaultSize       = 3.0
	DefaultLifespan   = 120
	DefaultDamping    = 0.98
	DefaultMaxAlpha   = 1.0
	DefaultSaturation = 80.0
	DefaultBrightness = 100.0
)

// Config carries every value needed to (re)initialize a particle
// Random draws happen in the caller; Reset itself is deterministic
type Config struct {
	Velocity      vmath.Vec2
	Hue           float64
	Saturation    float64
	Brightness    float64
	Size          float64
	MinSize       float64 // pulse lower bound, 0 = Size*0.5
	MaxSize       float64 // pulse upper bound, 0 = Size*1.5
	Lifespan      int
	MaxAlpha      float64
	Damping       float64
	RotationSpeed float64
	PulsePhase    float64
	Mode          Mode
	Trail         bool
	Path          *PathFollow
}

// sanitized returns a copy with every invalid field replaced by its default
func (c Config) sanitized() Config {
	if !c.Velocity.IsFinite() {
		c.Velocity = vmath.Vec2{}
	}
	if !vmath.Finite(c.Hue) {
		c.Hue = 0
	}
	c.Hue = vmath.WrapDegrees(c.Hue)
	if !vmath.Finite(c.Saturation) || c.Saturation < 0 || c.Saturation > 100 {
		c.Saturation = DefaultSaturation
	}
	if !vmath.Finite(c.Brightness) || c.Brightness < 0 || c.Brightness > 100 {
		c.Brightness = DefaultBrightness
	}
	if !vmath.Finite(c.Size) || c.Size <= 0 {
		c.Size = DefaultSize
	}
	if !vmath.Finite(c.MinSize) || c.MinSize <= 0 || c.MinSize > c.Size {
		c.MinSize = c.Size * 0.5
	}
	if !vmath.Finite(c.MaxSize) || c.MaxSize < c.Size {
		c.MaxSize = c.Size * 1.5
	}
	if c.Lifespan <= 0 {
		c.Lifespan = DefaultLifespan
	}
	if !vmath.Finite(c.MaxAlpha) || c.MaxAlpha <= 0 || c.MaxAlpha > 1 {
		c.MaxAlpha = DefaultMaxAlpha
	}
	if !vmath.Finite(c.Damping) || c.Damping <= 0 || c.Damping > 1 {
		c.Damping = DefaultDamping
	}
	if !vmath.Finite(c.RotationSpeed) {
		c.RotationSpeed = 0
	}
	if !vmath.Finite(c.PulsePhase) {
		c.PulsePhase = 0
	}
	if !c.Mode.Valid() {
		c.Mode = ModeNormal
	}
	return c
}
