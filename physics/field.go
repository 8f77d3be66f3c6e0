package physics

import (
	"github.com/lixenwraith/pulsefield/vmath"
)

// LinearFalloff returns (radius-dist)/radius for dist in [0, radius), 0 otherwise
// Used by explosion influence and drag forces; distinct from inverse-square attraction
func LinearFalloff(dist, radius float64) float64 {
	if radius <= 0 || dist < 0 || dist >= radius {
		return 0
	}
	return (radius - dist) / radius
}

// InverseSquare returns the attraction force vector from pos toward target
// Magnitude strength*mass/dist², zero outside the open band (minDist, maxDist)
func InverseSquare(pos, target vmath.Vec2, strength, mass, minDist, maxDist float64) vmath.Vec2 {
	delta := target.Sub(pos)
	dist := delta.Mag()
	if dist <= minDist || dist >= maxDist {
		return vmath.Vec2{}
	}
	mag := strength * mass / (dist * dist)
	return delta.Scale(mag / dist)
}

// RadialImpulse returns the outward unit vector from center to pos scaled by force
// A body sitting exactly on the center has no defined direction and receives nothing
func RadialImpulse(center, pos vmath.Vec2, force float64) vmath.Vec2 {
	return pos.Sub(center).Normalize().Scale(force)
}
