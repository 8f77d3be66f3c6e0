package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/pulsefield/effect"
	"github.com/lixenwraith/pulsefield/system"
	"github.com/lixenwraith/pulsefield/vmath"
)

// SoundManager turns simulation notifications into mixed beep streams
// Safe to use before Initialize or after Cleanup: every call is then a no-op
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	width       float64
	lastDrag    time.Time

	// Seams for tests
	now  func() time.Time
	sink func(beep.Streamer)
}

var _ system.SoundCoupler = (*SoundManager)(nil)

// NewSoundManager creates a sound manager; nil cfg uses defaults
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	sm := &SoundManager{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
		width: system.DefaultWidth,
		now:   time.Now,
	}
	sm.sink = sm.playOnSpeaker
	return sm
}

// Initialize opens the audio device; disabled config skips it
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything; beep has no speaker close so the mixer is just cleared
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetCanvasWidth sets the width used to map x to stereo pan
func (sm *SoundManager) SetCanvasWidth(w float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if vmath.Finite(w) && w > 0 {
		sm.width = w
	}
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

func (sm *SoundManager) SetMuted(m bool) {
	sm.mu.Lock()
	sm.muted = m
	sm.mu.Unlock()
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// NotifyEffect plays the active effect's explosion voice, louder for stronger bursts
func (sm *SoundManager) NotifyEffect(id effect.ID, x, y, intensity float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.audible() {
		return
	}
	s := EffectSound(id, sm.rate)
	if s == nil {
		return
	}
	gain := sm.cfg.EffectVolumes[id] * sm.cfg.MasterVolume *
		vmath.Lerp(IntensityFloor, 1, vmath.Clamp(intensity, 0, 1))
	sm.emit(s, gain, x)
}

// NotifyInteraction plays pointer feedback; drag sounds are rate limited
func (sm *SoundManager) NotifyInteraction(kind system.InteractionKind, x, y, velocity float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.audible() {
		return
	}
	if kind == system.InteractionDrag {
		now := sm.now()
		if now.Sub(sm.lastDrag) < sm.cfg.DragInterval {
			return
		}
		sm.lastDrag = now
	}
	s := InteractionSound(kind, velocity, sm.rate)
	if s == nil {
		return
	}
	sm.emit(s, sm.cfg.InteractionVolume*sm.cfg.MasterVolume, x)
}

func (sm *SoundManager) audible() bool {
	return sm.initialized && !sm.muted && sm.cfg.Enabled
}

// emit applies gain and pan then hands the stream to the sink; caller holds mu
func (sm *SoundManager) emit(s beep.Streamer, gain, x float64) {
	pan := 0.0
	if vmath.Finite(x) {
		pan = vmath.Remap(x, 0, sm.width, -1, 1) * sm.cfg.PanWidth
	}
	sm.sink(newPan(newVolume(s, gain), pan))
}

func (sm *SoundManager) playOnSpeaker(s beep.Streamer) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("audio: play failed: %v", r)
		}
	}()
	speaker.Lock()
	defer speaker.Unlock()
	sm.mixer.Add(s)
}
