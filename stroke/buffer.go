package stroke

import (
	"github.com/lixenwraith/pulsefield/vmath"
)

const (
	// DefaultMinSpacing is the minimum distance between consecutive samples
	DefaultMinSpacing = 4.0
	// DefaultCapacity bounds the recorded polyline; oldest samples are dropped first
	DefaultCapacity = 256
)

// PathBuffer records pointer-drag samples as a polyline
// Owned by the host; the simulation only receives copies
type PathBuffer struct {
	points     []vmath.Vec2
	minSpacing float64
	capacity   int
}

// NewPathBuffer creates a buffer; non-positive arguments fall back to defaults
func NewPathBuffer(minSpacing float64, capacity int) *PathBuffer {
	if !(minSpacing > 0) || !vmath.Finite(minSpacing) {
		minSpacing = DefaultMinSpacing
	}
	if capacity < 2 {
		capacity = DefaultCapacity
	}
	return &PathBuffer{
		points:     make([]vmath.Vec2, 0, capacity),
		minSpacing: minSpacing,
		capacity:   capacity,
	}
}

// Add appends a sample, returns false if it was rejected
// Non-finite samples and samples closer than minSpacing to the last one are rejected
func (b *PathBuffer) Add(x, y float64) bool {
	if !vmath.Finite(x, y) {
		return false
	}
	p := vmath.V2(x, y)
	if n := len(b.points); n > 0 && b.points[n-1].Dist(p) < b.minSpacing {
		return false
	}
	if len(b.points) == b.capacity {
		copy(b.points, b.points[1:])
		b.points = b.points[:len(b.points)-1]
	}
	b.points = append(b.points, p)
	return true
}

// Points returns a copy of the recorded polyline
func (b *PathBuffer) Points() []vmath.Vec2 {
	out := make([]vmath.Vec2, len(b.points))
	copy(out, b.points)
	return out
}

func (b *PathBuffer) Len() int {
	return len(b.points)
}

func (b *PathBuffer) Clear() {
	b.points = b.points[:0]
}

// Length returns the total arc length of the recorded polyline
func (b *PathBuffer) Length() float64 {
	return Length(b.points)
}

// Simplified returns the recorded polyline reduced with Simplify(epsilon)
func (b *PathBuffer) Simplified(epsilon float64) []vmath.Vec2 {
	return Simplify(b.points, epsilon)
}
