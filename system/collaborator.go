package system

import (
	"log"

	"github.com/lixenwraith/pulsefield/effect"
	"github.com/lixenwraith/pulsefield/particle"
)

// InteractionKind classifies pointer-driven sound events
type InteractionKind uint8

const (
	InteractionClick InteractionKind = iota
	InteractionDrag
	InteractionParticleCreate
)

func (k InteractionKind) String() string {
	switch k {
	case InteractionClick:
		return "click"
	case InteractionDrag:
		return "drag"
	case InteractionParticleCreate:
		return "particleCreate"
	default:
		return "unknown"
	}
}

// SoundCoupler is notified of audible events, fire-and-forget
// Implementations must not block the frame
type SoundCoupler interface {
	NotifyEffect(id effect.ID, x, y, intensity float64)
	NotifyInteraction(kind InteractionKind, x, y, velocity float64)
}

// Renderer draws one particle snapshot; called once per live particle in array order
type Renderer interface {
	DrawParticle(s particle.Snapshot)
}

type nopCoupler struct{}

func (nopCoupler) NotifyEffect(effect.ID, float64, float64, float64) {}
func (nopCoupler) NotifyInteraction(InteractionKind, float64, float64, float64) {}

// guard recovers a collaborator panic so it never unwinds into the simulation
func guard(what string) {
	if r := recover(); r != nil {
		log.Printf("pulsefield: recovered %s panic: %v", what, r)
	}
}

func (ps *ParticleSystem) notifyEffect(x, y, intensity float64) {
	defer guard("sound")
	ps.sound.NotifyEffect(ps.profile.ID, x, y, intensity)
}

func (ps *ParticleSystem) notifyInteraction(kind InteractionKind, x, y, velocity float64) {
	defer guard("sound")
	ps.sound.NotifyInteraction(kind, x, y, velocity)
}
