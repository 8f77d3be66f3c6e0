package particle

import (
	"github.com/lixenwraith/pulsefield/stroke"
	"github.com/lixenwraith/pulsefield/vmath"
)

// PathFollow is the optional path-following component
// A nil *PathFollow on a Particle means the particle moves freely
type PathFollow struct {
	Points    []vmath.Vec2
	Progress  float64 // [0,1] along arc length
	Influence float64 // velocity blend factor toward the path tangent
}

// NewPathFollow copies points so the caller's buffer can be reused
// Returns nil for polylines that cannot be followed
func NewPathFollow(points []vmath.Vec2, influence float64) *PathFollow {
	pts := stroke.Sanitize(points)
	if len(pts) < 2 {
		return nil
	}
	if !vmath.Finite(influence) {
		influence = PathDefaultInfluence
	}
	return &PathFollow{
		Points:    pts,
		Influence: vmath.Clamp(influence, 0, 1),
	}
}

func (f *PathFollow) clone() *PathFollow {
	if f == nil {
		return nil
	}
	c := NewPathFollow(f.Points, f.Influence)
	if c != nil {
		c.Progress = vmath.Clamp(f.Progress, 0, 1)
	}
	return c
}
