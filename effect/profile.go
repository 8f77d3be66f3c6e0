package effect

import (
	"math"

	"github.com/lixenwraith/pulsefield/particle"
	"github.com/lixenwraith/pulsefield/vmath"
)

// ID selects one of the five behavioral presets
type ID int

const (
	Normal ID = iota + 1
	Trail
	Rainbow
	Gravity
	Swirl
)

const (
	MinID = Normal
	MaxID = Swirl
)

// Valid reports whether id names a profile
func Valid(id ID) bool {
	return id >= MinID && id <= MaxID
}

// SpawnFunc picks a spawn position inside a width x height canvas
type SpawnFunc func(rng *vmath.FastRand, width, height float64) vmath.Vec2

// FieldFunc returns the ambient per-frame force for a particle of given mass at time t
type FieldFunc func(mass float64, t int) vmath.Vec2

// Profile is the immutable per-effect configuration
type Profile struct {
	ID                      ID
	Name                    string
	Mode                    particle.Mode
	TrailEnabled            bool
	GravityEnabled          bool
	MouseAttractionStrength float64

	Spawn SpawnFunc
	Field FieldFunc // extra ambient field on top of gravity, nil = none
}

const (
	GravityAccel = 0.15

	WindFreqX = 0.01
	WindFreqY = 0.013
	WindAmpX  = 0.05
	WindAmpY  = 0.03
)

var profiles = [MaxID + 1]Profile{
	Normal: {
		ID:                      Normal,
		Name:                    "normal",
		Mode:                    particle.ModeNormal,
		MouseAttractionStrength: 0.5,
		Spawn:                   SpawnCenter,
	},
	Trail: {
		ID:                      Trail,
		Name:                    "trail",
		Mode:                    particle.ModeTrail,
		TrailEnabled:            true,
		MouseAttractionStrength: 0.3,
		Spawn:                   SpawnEdge,
	},
	Rainbow: {
		ID:                      Rainbow,
		Name:                    "rainbow",
		Mode:                    particle.ModeRainbow,
		TrailEnabled:            true,
		MouseAttractionStrength: 0.8,
		Spawn:                   SpawnUniform,
	},
	Gravity: {
		ID:             Gravity,
		Name:           "gravity",
		Mode:           particle.ModeGravity,
		GravityEnabled: true,
		Spawn:          SpawnTop,
	},
	Swirl: {
		ID:                      Swirl,
		Name:                    "swirl",
		Mode:                    particle.ModeSwirl,
		TrailEnabled:            true,
		MouseAttractionStrength: 1.0,
		Spawn:                   SpawnRing,
		Field:                   WindField,
	},
}

// Lookup returns the profile for id
func Lookup(id ID) (Profile, bool) {
	if !Valid(id) {
		return Profile{}, false
	}
	return profiles[id], true
}

// WithMode returns a copy of p using mode m for its particles
func (p Profile) WithMode(m particle.Mode) Profile {
	if m.Valid() {
		p.Mode = m
	}
	return p
}

// GravityField is a constant downward pull yielding GravityAccel regardless of mass
func GravityField(mass float64, _ int) vmath.Vec2 {
	return vmath.V2(0, GravityAccel*mass)
}

// WindField is a slow sinusoidal drift
func WindField(mass float64, t int) vmath.Vec2 {
	ft := float64(t)
	return vmath.V2(
		math.Sin(ft*WindFreqX)*WindAmpX*mass,
		math.Cos(ft*WindFreqY)*WindAmpY*mass,
	)
}
