package stroke

import (
	"math"

	"github.com/lixenwraith/pulsefield/vmath"
)

// Length returns the arc length of a polyline
func Length(points []vmath.Vec2) float64 {
	d := 0.0
	for i := 1; i < len(points); i++ {
		d += points[i-1].Dist(points[i])
	}
	return d
}

// Simplify reduces a polyline with Ramer–Douglas–Peucker
// Endpoints are always kept; result is a new slice
func Simplify(points []vmath.Vec2, epsilon float64) []vmath.Vec2 {
	if len(points) < 3 || !(epsilon > 0) {
		out := make([]vmath.Vec2, len(points))
		copy(out, points)
		return out
	}

	keep := make([]bool, len(points))
	keep[0], keep[len(points)-1] = true, true

	// Explicit stack, no recursion
	type span struct{ lo, hi int }
	stack := []span{{0, len(points) - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		maxDist, idx := 0.0, -1
		for i := s.lo + 1; i < s.hi; i++ {
			d := segmentDistance(points[i], points[s.lo], points[s.hi])
			if d > maxDist {
				maxDist, idx = d, i
			}
		}
		if idx >= 0 && maxDist > epsilon {
			keep[idx] = true
			stack = append(stack, span{s.lo, idx}, span{idx, s.hi})
		}
	}

	out := make([]vmath.Vec2, 0, len(points))
	for i, k := range keep {
		if k {
			out = append(out, points[i])
		}
	}
	return out
}

// segmentDistance returns the distance from p to segment ab
func segmentDistance(p, a, b vmath.Vec2) float64 {
	ab := b.Sub(a)
	lenSq := ab.MagSq()
	if lenSq == 0 {
		return p.Dist(a)
	}
	t := vmath.Clamp(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	return p.Dist(a.Add(ab.Scale(t)))
}

// Sample returns the point at normalized arc-length t ∈ [0,1] and the unit tangent there
// Degenerate polylines yield the single point (or origin) with a zero tangent
func Sample(points []vmath.Vec2, t float64) (vmath.Vec2, vmath.Vec2) {
	switch len(points) {
	case 0:
		return vmath.Vec2{}, vmath.Vec2{}
	case 1:
		return points[0], vmath.Vec2{}
	}

	t = vmath.Clamp(t, 0, 1)
	total := Length(points)
	if total == 0 {
		return points[0], vmath.Vec2{}
	}

	target := t * total
	walked := 0.0
	for i := 1; i < len(points); i++ {
		seg := points[i].Sub(points[i-1])
		segLen := seg.Mag()
		if segLen == 0 {
			continue
		}
		if walked+segLen >= target || i == len(points)-1 {
			local := math.Min((target-walked)/segLen, 1)
			return points[i-1].Add(seg.Scale(local)), seg.Scale(1 / segLen)
		}
		walked += segLen
	}
	last := points[len(points)-1]
	return last, vmath.Vec2{}
}

// Sanitize drops non-finite points and points whose segment would overflow the arc length
// Returns a new slice
func Sanitize(points []vmath.Vec2) []vmath.Vec2 {
	out := make([]vmath.Vec2, 0, len(points))
	total := 0.0
	for _, p := range points {
		if !p.IsFinite() {
			continue
		}
		if n := len(out); n > 0 {
			next := total + out[n-1].Dist(p)
			if math.IsInf(next, 0) {
				continue
			}
			total = next
		}
		out = append(out, p)
	}
	return out
}
