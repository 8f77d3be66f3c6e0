package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lixenwraith/pulsefield/effect"
	"github.com/lixenwraith/pulsefield/particle"
)

// Environment variable names
const (
	EnvSeed         = "PULSEFIELD_SEED"
	EnvEffect       = "PULSEFIELD_EFFECT"
	EnvMaxParticles = "PULSEFIELD_MAX_PARTICLES"
	EnvPoolSize     = "PULSEFIELD_POOL_SIZE"
	EnvInitial      = "PULSEFIELD_INITIAL"
	EnvPopulation   = "PULSEFIELD_POPULATION"
	EnvExplosion    = "PULSEFIELD_EXPLOSION"
	EnvForce        = "PULSEFIELD_FORCE"
	EnvEffectModes  = "PULSEFIELD_EFFECT_MODES"
)

// Load overlays environment variables on Default and sanitizes the result
// Unparseable values are skipped and reported in the returned warnings
func Load() (*Config, []error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom is Load with an injectable lookup
func LoadFrom(getenv func(string) string) (*Config, []error) {
	cfg := Default()
	var warns []error
	warn := func(name string, err error) {
		warns = append(warns, fmt.Errorf("%s: %w", name, err))
	}

	if v := getenv(EnvSeed); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = n
		} else {
			warn(EnvSeed, err)
		}
	}
	if v := getenv(EnvEffect); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Effect = effect.ID(n)
		} else {
			warn(EnvEffect, err)
		}
	}
	for name, dst := range map[string]*int{
		EnvMaxParticles: &cfg.Population.MaxParticles,
		EnvPoolSize:     &cfg.Population.MaxPoolSize,
		EnvInitial:      &cfg.Population.Initial,
	} {
		if v := getenv(name); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			} else {
				warn(name, err)
			}
		}
	}

	// JSON blobs overlay onto the defaults; absent keys keep their default
	for name, dst := range map[string]any{
		EnvPopulation: &cfg.Population,
		EnvExplosion:  &cfg.Explosion,
		EnvForce:      &cfg.Force,
	} {
		if v := getenv(name); v != "" {
			if err := json.Unmarshal([]byte(v), dst); err != nil {
				warn(name, err)
			}
		}
	}

	if v := getenv(EnvEffectModes); v != "" {
		if err := parseEffectModes(v, cfg.EffectModes); err != nil {
			warn(EnvEffectModes, err)
		}
	}

	if n := cfg.Sanitize(); n > 0 {
		warns = append(warns, fmt.Errorf("%w: %d field(s) reset to defaults", ErrInvalidValue, n))
	}
	return cfg, warns
}

// parseEffectModes reads a JSON object such as {"3":"pulse"}
func parseEffectModes(raw string, dst map[effect.ID]particle.Mode) error {
	var modes map[string]string
	if err := json.Unmarshal([]byte(raw), &modes); err != nil {
		return err
	}
	for k, name := range modes {
		id, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil || !effect.Valid(effect.ID(id)) {
			return fmt.Errorf("%w: effect %q", ErrInvalidValue, k)
		}
		m, ok := particle.ParseMode(name)
		if !ok {
			return fmt.Errorf("%w: mode %q", ErrInvalidValue, name)
		}
		dst[effect.ID(id)] = m
	}
	return nil
}
