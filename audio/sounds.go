package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/pulsefield/effect"
	"github.com/lixenwraith/pulsefield/system"
	"github.com/lixenwraith/pulsefield/vmath"
)

// Sound timing
const (
	BurstDuration   = 180 * time.Millisecond
	BurstAttack     = 2 * time.Millisecond
	BurstRelease    = 150 * time.Millisecond
	ThumpDuration   = 120 * time.Millisecond
	SweepDuration   = 250 * time.Millisecond
	SweepRelease    = 180 * time.Millisecond
	ChimeNote       = 60 * time.Millisecond
	ChimeRelease    = 45 * time.Millisecond
	DropDuration    = 350 * time.Millisecond
	DropRelease     = 250 * time.Millisecond
	ClickDuration   = 30 * time.Millisecond
	DragDuration    = 40 * time.Millisecond
	BlipDuration    = 50 * time.Millisecond
	ShortAttack     = 5 * time.Millisecond
	ShortRelease    = 20 * time.Millisecond
	DragSpeedFull   = 30.0
	IntensityFloor  = 0.4
	DragVolumeFloor = 0.1
)

// CreateBurstSound is the normal effect: noise crack over a falling thump
func CreateBurstSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, BurstDuration, WaveNoise, rate)
	crack := NewEnvelope(noise, BurstDuration, BurstAttack, BurstRelease, rate)

	thump := NewSweep(90, 45, ThumpDuration, WaveSine, rate)
	thumpShaped := NewEnvelope(thump, ThumpDuration, BurstAttack, ThumpDuration/2, rate)

	return beep.Mix(
		newVolume(crack, 0.5),
		newVolume(thumpShaped, 0.8),
	)
}

// CreateStreakSound is the trail effect: a falling saw sweep
func CreateStreakSound(rate beep.SampleRate) beep.Streamer {
	saw := NewSweep(600, 200, SweepDuration, WaveSaw, rate)
	return newVolume(NewEnvelope(saw, SweepDuration, ShortAttack, SweepRelease, rate), 0.6)
}

// CreateChimeSound is the rainbow effect: an ascending major arpeggio
func CreateChimeSound(rate beep.SampleRate) beep.Streamer {
	notes := []float64{1046.50, 1318.51, 1567.98} // C6 E6 G6
	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewOscillator(f, ChimeNote, WaveSine, rate)
		seq = append(seq, NewEnvelope(osc, ChimeNote, ShortAttack, ChimeRelease, rate))
	}
	return beep.Seq(seq...)
}

// CreateDropSound is the gravity effect: a square wave falling two octaves
func CreateDropSound(rate beep.SampleRate) beep.Streamer {
	sq := NewSweep(220, 55, DropDuration, WaveSquare, rate)
	return newVolume(NewEnvelope(sq, DropDuration, ShortAttack, DropRelease, rate), 0.4)
}

// CreateWhirlSound is the swirl effect: a rising sine with a fifth above
func CreateWhirlSound(rate beep.SampleRate) beep.Streamer {
	fund := NewSweep(300, 900, SweepDuration, WaveSine, rate)
	fifth := NewSweep(450, 1350, SweepDuration, WaveSine, rate)
	return beep.Mix(
		newVolume(NewEnvelope(fund, SweepDuration, ShortAttack, SweepRelease, rate), 0.7),
		newVolume(NewEnvelope(fifth, SweepDuration, ShortAttack, SweepRelease, rate), 0.3),
	)
}

// EffectSound returns the explosion voice for id, nil for unknown ids
func EffectSound(id effect.ID, rate beep.SampleRate) beep.Streamer {
	switch id {
	case effect.Normal:
		return CreateBurstSound(rate)
	case effect.Trail:
		return CreateStreakSound(rate)
	case effect.Rainbow:
		return CreateChimeSound(rate)
	case effect.Gravity:
		return CreateDropSound(rate)
	case effect.Swirl:
		return CreateWhirlSound(rate)
	default:
		return nil
	}
}

// CreateClickSound generates a short tick
func CreateClickSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(1200, ClickDuration, WaveSine, rate)
	return NewEnvelope(osc, ClickDuration, 0, ShortRelease, rate)
}

// CreateDragSound generates a brief hiss, louder for faster drags
func CreateDragSound(rate beep.SampleRate, velocity float64) beep.Streamer {
	noise := NewOscillator(0, DragDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, DragDuration, ShortAttack, ShortRelease, rate)
	return newVolume(shaped, vmath.Clamp(velocity/DragSpeedFull, DragVolumeFloor, 1))
}

// CreateBlipSound generates the spawn blip from a pure tone
func CreateBlipSound(rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, 880)
	if err != nil {
		return nil
	}
	tone := beep.Take(rate.N(BlipDuration), sine)
	return NewEnvelope(tone, BlipDuration, ShortAttack, ShortRelease, rate)
}

// InteractionSound returns the voice for a pointer interaction, nil for unknown kinds
func InteractionSound(kind system.InteractionKind, velocity float64, rate beep.SampleRate) beep.Streamer {
	switch kind {
	case system.InteractionClick:
		return CreateClickSound(rate)
	case system.InteractionDrag:
		return CreateDragSound(rate, velocity)
	case system.InteractionParticleCreate:
		return CreateBlipSound(rate)
	default:
		return nil
	}
}
