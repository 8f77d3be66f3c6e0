package effect

import (
	"math"
	"testing"

	"github.com/lixenwraith/pulsefield/particle"
	"github.com/lixenwraith/pulsefield/vmath"
)

// TestProfileTable verifies every id maps to a consistent profile
func TestProfileTable(t *testing.T) {
	tests := []struct {
		id      ID
		mode    particle.Mode
		trail   bool
		gravity bool
	}{
		{Normal, particle.ModeNormal, false, false},
		{Trail, particle.ModeTrail, true, false},
		{Rainbow, particle.ModeRainbow, true, false},
		{Gravity, particle.ModeGravity, false, true},
		{Swirl, particle.ModeSwirl, true, false},
	}
	for _, tt := range tests {
		p, ok := Lookup(tt.id)
		if !ok {
			t.Fatalf("Lookup(%d) failed", tt.id)
		}
		if p.ID != tt.id || p.Mode != tt.mode || p.TrailEnabled != tt.trail || p.GravityEnabled != tt.gravity {
			t.Errorf("profile %d = %+v", tt.id, p)
		}
		if p.Spawn == nil {
			t.Errorf("profile %d has no spawn pattern", tt.id)
		}
		if (p.Field != nil) != (tt.id == Swirl) {
			t.Errorf("profile %d: only swirl carries an ambient field", tt.id)
		}
	}
}

// TestLookupInvalid verifies out-of-range ids are rejected
func TestLookupInvalid(t *testing.T) {
	for _, id := range []ID{0, 6, -1} {
		if _, ok := Lookup(id); ok {
			t.Errorf("Lookup(%d) should fail", id)
		}
	}
}

// TestGravityFieldMassIndependent verifies constant acceleration under gravity
func TestGravityFieldMassIndependent(t *testing.T) {
	for _, mass := range []float64{0.2, 1, 3} {
		f := GravityField(mass, 0)
		if math.Abs(f.Y/mass-GravityAccel) > 1e-12 || f.X != 0 {
			t.Errorf("mass %f: field %v", mass, f)
		}
	}
}

// TestWindFieldVaries verifies the swirl wind changes over time
func TestWindFieldVaries(t *testing.T) {
	a := WindField(1, 0)
	b := WindField(1, 100)
	if a == b {
		t.Error("Expected time-varying wind")
	}
	if math.Abs(a.X) > WindAmpX || math.Abs(b.Y) > WindAmpY {
		t.Error("wind exceeds amplitude")
	}
}

// TestSpawnPatternsInsideCanvas verifies every pattern stays on the canvas
func TestSpawnPatternsInsideCanvas(t *testing.T) {
	rng := vmath.NewFastRand(11)
	const w, h = 800.0, 600.0
	for id := MinID; id <= MaxID; id++ {
		p := profiles[id]
		for i := 0; i < 500; i++ {
			pos := p.Spawn(rng, w, h)
			if pos.X < 0 || pos.X > w || pos.Y < 0 || pos.Y > h {
				t.Fatalf("%s spawn outside canvas: %v", p.Name, pos)
			}
		}
	}
}

// TestSpawnBias verifies each pattern's characteristic region
func TestSpawnBias(t *testing.T) {
	rng := vmath.NewFastRand(5)
	const w, h = 800.0, 600.0
	center := vmath.V2(w/2, h/2)

	for i := 0; i < 200; i++ {
		if p := SpawnTop(rng, w, h); p.Y > h*topBand {
			t.Fatalf("top spawn too low: %v", p)
		}
		if p := SpawnCenter(rng, w, h); math.Abs(p.X-center.X) > w*centerSpread || math.Abs(p.Y-center.Y) > h*centerSpread {
			t.Fatalf("center spawn outside box: %v", p)
		}
		d := SpawnRing(rng, w, h).Dist(center)
		if d < h*(ringRadius-ringJitter)-1e-9 || d > h*(ringRadius+ringJitter)+1e-9 {
			t.Fatalf("ring spawn at distance %f", d)
		}
		p := SpawnEdge(rng, w, h)
		nearEdge := p.X <= w*edgeBand || p.X >= w-w*edgeBand || p.Y <= h*edgeBand || p.Y >= h-h*edgeBand
		if !nearEdge {
			t.Fatalf("edge spawn in interior: %v", p)
		}
	}
}

// TestWithMode verifies mode overrides keep other fields
func TestWithMode(t *testing.T) {
	p := profiles[Rainbow].WithMode(particle.ModePulse)
	if p.Mode != particle.ModePulse || !p.TrailEnabled {
		t.Errorf("unexpected override result %+v", p)
	}
	q := profiles[Rainbow].WithMode(particle.Mode(200))
	if q.Mode != particle.ModeRainbow {
		t.Error("invalid override must be ignored")
	}
}
