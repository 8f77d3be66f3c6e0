package system

import (
	"github.com/lixenwraith/pulsefield/physics"
	"github.com/lixenwraith/pulsefield/vmath"
)

// ForceStats reports what an enhanced drag touched
type ForceStats struct {
	DragSpeed float64
	Affected  int // received the drag contribution
	Attracted int // received the cursor pull
	Synced    int // received the near-field sync
}

// ApplyForce drags particles near (x, y) along the pointer motion with linear falloff
func (ps *ParticleSystem) ApplyForce(x, y, prevX, prevY float64) error {
	if !vmath.Finite(x, y, prevX, prevY) {
		ps.statRejected.Add(1)
		return ErrInvalidCoordinate
	}
	delta := vmath.V2(x-prevX, y-prevY)
	ps.drag(vmath.V2(x, y), delta)
	return nil
}

// drag applies the basic contribution and returns how many particles it touched
func (ps *ParticleSystem) drag(cursor, delta vmath.Vec2) int {
	fc := ps.cfg.Force
	push := delta.Scale(fc.Multiplier)
	speed := delta.Mag()

	affected := 0
	if push != (vmath.Vec2{}) {
		for _, p := range ps.particles {
			falloff := physics.LinearFalloff(p.Position.Dist(cursor), fc.Radius)
			if falloff <= 0 {
				continue
			}
			p.ApplyForce(push.Scale(falloff))
			affected++
		}
	}

	if speed > 0 {
		ps.statDrags.Add(1)
		ps.notifyInteraction(InteractionDrag, cursor.X, cursor.Y, speed)
	}
	return affected
}

// ApplyEnhancedForce adds a cursor pull on fast drags and a near-field sync to the basic drag
// The three contributions are gated independently and may stack
func (ps *ParticleSystem) ApplyEnhancedForce(x, y, prevX, prevY float64) (ForceStats, error) {
	if !vmath.Finite(x, y, prevX, prevY) {
		ps.statRejected.Add(1)
		return ForceStats{}, ErrInvalidCoordinate
	}
	fc := ps.cfg.Force
	cursor := vmath.V2(x, y)
	delta := vmath.V2(x-prevX, y-prevY)

	stats := ForceStats{DragSpeed: delta.Mag()}
	stats.Affected = ps.drag(cursor, delta)

	fast := stats.DragSpeed > fc.AttractThreshold
	for _, p := range ps.particles {
		toCursor := cursor.Sub(p.Position)
		dist := toCursor.Mag()

		if fast {
			if falloff := physics.LinearFalloff(dist, fc.Radius); falloff > 0 && dist > 0 {
				p.ApplyForce(toCursor.Scale(fc.AttractStrength * falloff * p.Mass / dist))
				stats.Attracted++
			}
		}

		if falloff := physics.LinearFalloff(dist, fc.SyncRadius); falloff > 0 && stats.DragSpeed > 0 {
			// Scaled by mass so nearby particles pick up the cursor velocity directly
			p.ApplyForce(delta.Scale(fc.SyncStrength * falloff * p.Mass))
			stats.Synced++
		}
	}
	return stats, nil
}
