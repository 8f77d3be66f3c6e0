package particle

import (
	"github.com/lixenwraith/pulsefield/vmath"
)

// Snapshot is the read-only visual state handed to a renderer each frame
type Snapshot struct {
	Position         vmath.Vec2
	PreviousPosition vmath.Vec2
	Hue              float64
	Saturation       float64
	Brightness       float64
	Alpha            float64
	Size             float64
	Rotation         float64
	Trail            bool
	Mode             Mode
}

func (p *Particle) Snapshot() Snapshot {
	return Snapshot{
		Position:         p.Position,
		PreviousPosition: p.PreviousPosition,
		Hue:              p.Hue,
		Saturation:       p.Saturation,
		Brightness:       p.Brightness,
		Alpha:            p.Alpha,
		Size:             p.Size,
		Rotation:         p.Rotation,
		Trail:            p.Trail,
		Mode:             p.Mode,
	}
}
