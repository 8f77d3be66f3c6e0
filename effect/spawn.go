package effect

import (
	"math"

	"github.com/lixenwraith/pulsefield/vmath"
)

// Spawn pattern tuning, as fractions of the canvas
const (
	centerSpread = 0.2  // half-extent of the center box
	edgeBand     = 0.1  // thickness of the edge band
	topBand      = 0.15 // depth of the top band
	ringRadius   = 0.35 // ring radius relative to the smaller side
	ringJitter   = 0.05
)

// SpawnCenter favors the middle of the canvas
func SpawnCenter(rng *vmath.FastRand, w, h float64) vmath.Vec2 {
	// Sum of two uniforms gives a triangular distribution peaking at center
	u := (rng.Float64() + rng.Float64()) - 1
	v := (rng.Float64() + rng.Float64()) - 1
	return vmath.V2(w/2+u*w*centerSpread, h/2+v*h*centerSpread)
}

// SpawnEdge places particles in a band along a random edge
func SpawnEdge(rng *vmath.FastRand, w, h float64) vmath.Vec2 {
	bx, by := w*edgeBand, h*edgeBand
	switch rng.Intn(4) {
	case 0:
		return vmath.V2(rng.Range(0, w), rng.Range(0, by))
	case 1:
		return vmath.V2(rng.Range(0, w), h-rng.Range(0, by))
	case 2:
		return vmath.V2(rng.Range(0, bx), rng.Range(0, h))
	default:
		return vmath.V2(w-rng.Range(0, bx), rng.Range(0, h))
	}
}

// SpawnUniform samples the whole canvas
func SpawnUniform(rng *vmath.FastRand, w, h float64) vmath.Vec2 {
	return vmath.V2(rng.Range(0, w), rng.Range(0, h))
}

// SpawnTop favors the top band
func SpawnTop(rng *vmath.FastRand, w, h float64) vmath.Vec2 {
	return vmath.V2(rng.Range(0, w), rng.Range(0, h*topBand))
}

// SpawnRing places particles on a jittered ring around the center
func SpawnRing(rng *vmath.FastRand, w, h float64) vmath.Vec2 {
	r := math.Min(w, h) * (ringRadius + rng.Range(-ringJitter, ringJitter))
	angle := rng.Range(0, 2*math.Pi)
	return vmath.V2(w/2, h/2).Add(vmath.FromAngle(angle, r))
}
