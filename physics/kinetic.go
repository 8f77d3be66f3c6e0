package physics

import (
	"github.com/lixenwraith/pulsefield/vmath"
)

// Integrate performs damped explicit Euler: v = (v + a) * damping; p = p + v
// Acceleration is consumed (reset to zero) so the next frame accumulates fresh impulses
func Integrate(pos, vel, acc *vmath.Vec2, damping float64) {
	*vel = vel.Add(*acc).Scale(damping)
	*pos = pos.Add(*vel)
	*acc = vmath.Vec2{}
}

// ReflectBoundsX handles horizontal margin collision, returns true if reflection occurred
// Velocity is inverted and scaled by restitution, position clamped onto the margin
func ReflectBoundsX(pos, vel *vmath.Vec2, minX, maxX, restitution float64) bool {
	if pos.X < minX {
		pos.X = minX
		vel.X *= -restitution
		return true
	}
	if pos.X > maxX {
		pos.X = maxX
		vel.X *= -restitution
		return true
	}
	return false
}

// ReflectBoundsY handles vertical margin collision, returns true if reflection occurred
func ReflectBoundsY(pos, vel *vmath.Vec2, minY, maxY, restitution float64) bool {
	if pos.Y < minY {
		pos.Y = minY
		vel.Y *= -restitution
		return true
	}
	if pos.Y > maxY {
		pos.Y = maxY
		vel.Y *= -restitution
		return true
	}
	return false
}

// ReflectBounds keeps a body of given margin inside [0,width]x[0,height]
// A canvas smaller than twice the margin collapses the valid range to its center
func ReflectBounds(pos, vel *vmath.Vec2, margin, width, height, restitution float64) bool {
	minX, maxX := margin, width-margin
	if maxX < minX {
		minX, maxX = width/2, width/2
	}
	minY, maxY := margin, height-margin
	if maxY < minY {
		minY, maxY = height/2, height/2
	}
	rx := ReflectBoundsX(pos, vel, minX, maxX, restitution)
	ry := ReflectBoundsY(pos, vel, minY, maxY, restitution)
	return rx || ry
}
