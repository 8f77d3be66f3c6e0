package config

import (
	"github.com/lixenwraith/pulsefield/effect"
	"github.com/lixenwraith/pulsefield/particle"
	"github.com/lixenwraith/pulsefield/vmath"
)

// Upper bounds accepted by Sanitize
const (
	MaxParticlesLimit = 100_000
	MaxPoolSizeLimit  = 100_000
	MaxBurstLimit     = 5_000
	MaxReplenishLimit = 1_000
)

// PopulationConfig bounds the live set and the recycling pool
type PopulationConfig struct {
	MaxParticles    int     `json:"max_particles"`
	MaxPoolSize     int     `json:"max_pool_size"`
	Initial         int     `json:"initial"`
	Floor           int     `json:"floor"`
	ReplenishChance float64 `json:"replenish_chance"`
	ReplenishMin    int     `json:"replenish_min"`
	ReplenishMax    int     `json:"replenish_max"`
}

// ExplosionConfig holds the ranges drawn from per burst
type ExplosionConfig struct {
	CountMin        int     `json:"count_min"`
	CountMax        int     `json:"count_max"`
	ForceMin        float64 `json:"force_min"`
	ForceMax        float64 `json:"force_max"`
	InfluenceRadius float64 `json:"influence_radius"`
	HueMin          float64 `json:"hue_min"`
	HueMax          float64 `json:"hue_max"`
	SizeMin         float64 `json:"size_min"`
	SizeMax         float64 `json:"size_max"`
	LifespanMin     int     `json:"lifespan_min"`
	LifespanMax     int     `json:"lifespan_max"`
	AngleJitter     float64 `json:"angle_jitter"`
	PathInfluence   float64 `json:"path_influence"`
	PathEpsilon     float64 `json:"path_epsilon"`
}

// ForceConfig tunes pointer-drag forces
type ForceConfig struct {
	Multiplier       float64 `json:"multiplier"`
	Radius           float64 `json:"radius"`
	AttractThreshold float64 `json:"attract_threshold"`
	AttractStrength  float64 `json:"attract_strength"`
	SyncRadius       float64 `json:"sync_radius"`
	SyncStrength     float64 `json:"sync_strength"`
}

// Config is the complete simulation configuration
type Config struct {
	Seed       uint64
	Effect     effect.ID
	Population PopulationConfig
	Explosion  ExplosionConfig
	Force      ForceConfig
	// EffectModes overrides the particle mode used by an effect
	EffectModes map[effect.ID]particle.Mode
}

// Default returns the hardcoded configuration
func Default() *Config {
	return &Config{
		Seed:   1,
		Effect: effect.Normal,
		Population: PopulationConfig{
			MaxParticles:    1500,
			MaxPoolSize:     500,
			Initial:         200,
			Floor:           50,
			ReplenishChance: 0.1,
			ReplenishMin:    1,
			ReplenishMax:    5,
		},
		Explosion: ExplosionConfig{
			CountMin:        20,
			CountMax:        40,
			ForceMin:        4,
			ForceMax:        10,
			InfluenceRadius: 150,
			HueMin:          0,
			HueMax:          360,
			SizeMin:         2,
			SizeMax:         6,
			LifespanMin:     60,
			LifespanMax:     120,
			AngleJitter:     0.3,
			PathInfluence:   0.3,
			PathEpsilon:     2,
		},
		Force: ForceConfig{
			Multiplier:       0.1,
			Radius:           120,
			AttractThreshold: 5,
			AttractStrength:  0.4,
			SyncRadius:       40,
			SyncStrength:     0.3,
		},
		EffectModes: map[effect.ID]particle.Mode{},
	}
}

// Clone returns a deep copy
func (c *Config) Clone() *Config {
	out := *c
	out.EffectModes = make(map[effect.ID]particle.Mode, len(c.EffectModes))
	for k, v := range c.EffectModes {
		out.EffectModes[k] = v
	}
	return &out
}

// Sanitize replaces every invalid field with its default and reports how many were replaced
// A running animation never fails on bad configuration
func (c *Config) Sanitize() int {
	d := Default()
	fixed := 0
	fix := func(bad bool) bool {
		if bad {
			fixed++
		}
		return bad
	}

	if fix(!effect.Valid(c.Effect)) {
		c.Effect = d.Effect
	}

	p, dp := &c.Population, d.Population
	if fix(p.MaxParticles <= 0 || p.MaxParticles > MaxParticlesLimit) {
		p.MaxParticles = dp.MaxParticles
	}
	if fix(p.MaxPoolSize < 0 || p.MaxPoolSize > MaxPoolSizeLimit) {
		p.MaxPoolSize = dp.MaxPoolSize
	}
	if fix(p.Initial < 0 || p.Initial > p.MaxParticles) {
		p.Initial = min(dp.Initial, p.MaxParticles)
	}
	if fix(p.Floor < 0) {
		p.Floor = dp.Floor
	}
	if fix(!vmath.Finite(p.ReplenishChance) || p.ReplenishChance < 0 || p.ReplenishChance > 1) {
		p.ReplenishChance = dp.ReplenishChance
	}
	if fix(p.ReplenishMin < 1 || p.ReplenishMax < p.ReplenishMin || p.ReplenishMax > MaxReplenishLimit) {
		p.ReplenishMin, p.ReplenishMax = dp.ReplenishMin, dp.ReplenishMax
	}

	e, de := &c.Explosion, d.Explosion
	if fix(e.CountMin < 1 || e.CountMax < e.CountMin || e.CountMax > MaxBurstLimit) {
		e.CountMin, e.CountMax = de.CountMin, de.CountMax
	}
	if fix(!vmath.Finite(e.ForceMin, e.ForceMax) || e.ForceMin <= 0 || e.ForceMax < e.ForceMin) {
		e.ForceMin, e.ForceMax = de.ForceMin, de.ForceMax
	}
	if fix(!vmath.Finite(e.InfluenceRadius) || e.InfluenceRadius <= 0) {
		e.InfluenceRadius = de.InfluenceRadius
	}
	if fix(!vmath.Finite(e.HueMin, e.HueMax) || e.HueMax < e.HueMin) {
		e.HueMin, e.HueMax = de.HueMin, de.HueMax
	}
	if fix(!vmath.Finite(e.SizeMin, e.SizeMax) || e.SizeMin <= 0 || e.SizeMax < e.SizeMin) {
		e.SizeMin, e.SizeMax = de.SizeMin, de.SizeMax
	}
	if fix(e.LifespanMin < 1 || e.LifespanMax < e.LifespanMin) {
		e.LifespanMin, e.LifespanMax = de.LifespanMin, de.LifespanMax
	}
	if fix(!vmath.Finite(e.AngleJitter) || e.AngleJitter < 0) {
		e.AngleJitter = de.AngleJitter
	}
	if fix(!vmath.Finite(e.PathInfluence) || e.PathInfluence < 0 || e.PathInfluence > 1) {
		e.PathInfluence = de.PathInfluence
	}
	if fix(!vmath.Finite(e.PathEpsilon) || e.PathEpsilon < 0) {
		e.PathEpsilon = de.PathEpsilon
	}

	f, df := &c.Force, d.Force
	if fix(!vmath.Finite(f.Multiplier)) {
		f.Multiplier = df.Multiplier
	}
	if fix(!vmath.Finite(f.Radius) || f.Radius <= 0) {
		f.Radius = df.Radius
	}
	if fix(!vmath.Finite(f.AttractThreshold) || f.AttractThreshold < 0) {
		f.AttractThreshold = df.AttractThreshold
	}
	if fix(!vmath.Finite(f.AttractStrength)) {
		f.AttractStrength = df.AttractStrength
	}
	if fix(!vmath.Finite(f.SyncRadius) || f.SyncRadius < 0) {
		f.SyncRadius = df.SyncRadius
	}
	if fix(!vmath.Finite(f.SyncStrength)) {
		f.SyncStrength = df.SyncStrength
	}

	if c.EffectModes == nil {
		c.EffectModes = map[effect.ID]particle.Mode{}
	}
	for id, m := range c.EffectModes {
		if fix(!effect.Valid(id) || !m.Valid()) {
			delete(c.EffectModes, id)
		}
	}
	return fixed
}

// Profile returns the effect profile for id with any configured mode override applied
func (c *Config) Profile(id effect.ID) (effect.Profile, bool) {
	p, ok := effect.Lookup(id)
	if !ok {
		return p, false
	}
	if m, ok := c.EffectModes[id]; ok {
		p = p.WithMode(m)
	}
	return p, true
}
