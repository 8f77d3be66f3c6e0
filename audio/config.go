package audio

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/pulsefield/effect"
	"github.com/lixenwraith/pulsefield/vmath"
)

// Config holds audio settings
type Config struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 - 1.0
	SampleRate    int
	EffectVolumes map[effect.ID]float64
	// InteractionVolume scales click, drag and spawn blips
	InteractionVolume float64
	// DragInterval is the minimum spacing between drag sounds
	DragInterval time.Duration
	// PanWidth bounds stereo placement, 0 keeps everything centered
	PanWidth float64
}

// DefaultConfig returns the default audio configuration
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[effect.ID]float64{
			effect.Normal:  0.8,
			effect.Trail:   0.7,
			effect.Rainbow: 0.6,
			effect.Gravity: 0.9,
			effect.Swirl:   0.6,
		},
		InteractionVolume: 0.4,
		DragInterval:      60 * time.Millisecond,
		PanWidth:          0.8,
	}
}

// LoadConfig loads audio configuration from environment variables
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("PULSEFIELD_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv("PULSEFIELD_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = vmath.Clamp(float64(val)/100.0, 0, 1)
		}
	}

	// Keyed by effect name, e.g. {"gravity":1.0,"swirl":0.3}
	if effectVols := os.Getenv("PULSEFIELD_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for id := effect.MinID; id <= effect.MaxID; id++ {
				p, _ := effect.Lookup(id)
				if v, ok := volumes[p.Name]; ok {
					cfg.EffectVolumes[id] = vmath.Clamp(v, 0, 1)
				}
			}
			if v, ok := volumes["interaction"]; ok {
				cfg.InteractionVolume = vmath.Clamp(v, 0, 1)
			}
		}
	}

	if sampleRate := os.Getenv("PULSEFIELD_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	if interval := os.Getenv("PULSEFIELD_DRAG_INTERVAL"); interval != "" {
		if val, err := time.ParseDuration(interval); err == nil && val >= 0 {
			cfg.DragInterval = val
		}
	}

	return cfg
}
