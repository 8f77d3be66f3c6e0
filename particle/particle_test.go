package particle

import (
	"math"
	"reflect"
	"testing"

	"github.com/lixenwraith/pulsefield/vmath"
)

const eps = 1e-9

func testContext() *Context {
	return &Context{Width: 400, Height: 400}
}

// TestMassDerivedFromSize verifies mass = size * 0.1 and never zero
func TestMassDerivedFromSize(t *testing.T) {
	p := New(100, 100, Config{Size: 20})
	if math.Abs(p.Mass-2) > eps {
		t.Errorf("Expected mass 2, got %f", p.Mass)
	}

	bad := New(100, 100, Config{Size: -4})
	if bad.Mass <= 0 {
		t.Errorf("Expected positive mass for malformed size, got %f", bad.Mass)
	}
}

// TestApplyForceAccumulates verifies impulses sum before integration
func TestApplyForceAccumulates(t *testing.T) {
	p := New(100, 100, Config{Size: 10})
	p.ApplyForce(vmath.V2(1, 0))
	p.ApplyForce(vmath.V2(1, 2))

	if p.Acceleration != vmath.V2(2, 2) {
		t.Errorf("Expected acceleration {2 2}, got %v", p.Acceleration)
	}

	p.ApplyForce(vmath.V2(math.NaN(), 0))
	if p.Acceleration != vmath.V2(2, 2) {
		t.Error("NaN force must not mutate acceleration")
	}

	p.Update(testContext())
	if p.Acceleration != (vmath.Vec2{}) {
		t.Errorf("Expected acceleration reset after update, got %v", p.Acceleration)
	}
}

// TestAttractToMouseBand verifies the distance band of mouse attraction
func TestAttractToMouseBand(t *testing.T) {
	tests := []struct {
		name   string
		target vmath.Vec2
		moved  bool
	}{
		{"too close", vmath.V2(103, 100), false},
		{"in band", vmath.V2(150, 100), true},
		{"too far", vmath.V2(350, 100), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(100, 100, Config{Size: 10})
			p.AttractToMouse(tt.target.X, tt.target.Y, 1)
			got := p.Acceleration != (vmath.Vec2{})
			if got != tt.moved {
				t.Errorf("Expected attraction=%v, got acceleration %v", tt.moved, p.Acceleration)
			}
		})
	}

	p := New(100, 100, Config{Size: 10})
	p.AttractToMouse(150, 100, 2)
	// strength*mass/d² / mass = 2/2500
	if math.Abs(p.Acceleration.X-2.0/2500.0) > eps || p.Acceleration.Y != 0 {
		t.Errorf("Unexpected attraction acceleration %v", p.Acceleration)
	}
}

// TestExplodePushesOutward verifies explode direction and bookkeeping
func TestExplodePushesOutward(t *testing.T) {
	p := New(150, 100, Config{Size: 10})
	p.Explode(100, 100, 4)

	if p.Acceleration.X <= 0 || math.Abs(p.Acceleration.Y) > eps {
		t.Errorf("Expected outward +x acceleration, got %v", p.Acceleration)
	}
	if math.Abs(p.Acceleration.X-4/p.Mass) > eps {
		t.Errorf("Expected force/mass = %f, got %f", 4/p.Mass, p.Acceleration.X)
	}
	if !p.Exploding || p.ExplosionForce != 4 {
		t.Errorf("Expected exploding flag with force 4, got %v %f", p.Exploding, p.ExplosionForce)
	}
}

// TestExplosionForceDecays verifies 5%/frame decay and flag clearing
func TestExplosionForceDecays(t *testing.T) {
	p := New(200, 200, Config{Size: 10, Lifespan: 1000})
	p.Explode(0, 0, 1)
	ctx := testContext()

	p.Update(ctx)
	if math.Abs(p.ExplosionForce-0.95) > eps {
		t.Errorf("Expected 0.95 after one frame, got %f", p.ExplosionForce)
	}

	for i := 0; i < 100 && p.Exploding; i++ {
		p.Update(ctx)
	}
	if p.Exploding {
		t.Error("Expected exploding flag to clear")
	}
	if p.ExplosionForce >= ExplosionThreshold {
		t.Errorf("Expected force below threshold, got %f", p.ExplosionForce)
	}
}

// TestFadeLaw verifies the linear fade over the last FadeFrames frames
func TestFadeLaw(t *testing.T) {
	p := New(200, 200, Config{Size: 4, Lifespan: 31, MaxAlpha: 0.8})
	ctx := testContext()

	p.Update(ctx) // lifespan 30: rule not yet applied
	if p.Lifespan != 30 || p.Alpha != 0.8 {
		t.Fatalf("Expected alpha untouched at lifespan 30, got lifespan=%d alpha=%f", p.Lifespan, p.Alpha)
	}

	prev := p.Alpha
	for p.Lifespan > 0 {
		p.Update(ctx)
		want := 0.8 * float64(p.Lifespan) / FadeFrames
		if math.Abs(p.Alpha-want) > eps {
			t.Fatalf("lifespan %d: expected alpha %f, got %f", p.Lifespan, want, p.Alpha)
		}
		if p.Alpha >= prev {
			t.Fatalf("lifespan %d: alpha did not decrease (%f -> %f)", p.Lifespan, prev, p.Alpha)
		}
		if p.Lifespan > 0 && p.IsDead() {
			t.Fatalf("particle dead early at lifespan %d", p.Lifespan)
		}
		prev = p.Alpha
	}
	if p.Alpha > 0 {
		t.Errorf("Expected alpha <= 0 at end of life, got %f", p.Alpha)
	}
	if !p.IsDead() {
		t.Error("Expected particle dead at lifespan 0")
	}
}

// TestIsDeadOnAlpha verifies externally zeroed alpha kills the particle
func TestIsDeadOnAlpha(t *testing.T) {
	p := New(0, 0, Config{})
	if p.IsDead() {
		t.Fatal("fresh particle reported dead")
	}
	p.Alpha = 0
	if !p.IsDead() {
		t.Error("Expected dead when alpha is 0")
	}
}

// TestBounceAtMargin verifies lossy bounce and clamping to the size margin
func TestBounceAtMargin(t *testing.T) {
	p := New(10, 10, Config{Size: 20, Velocity: vmath.V2(-5, 0)})
	damping := p.Damping

	p.Update(testContext())

	if p.Position.X != 20 {
		t.Errorf("Expected x clamped to 20, got %f", p.Position.X)
	}
	want := -5 * damping * -0.8
	if math.Abs(p.Velocity.X-want) > eps {
		t.Errorf("Expected vel.x %f, got %f", want, p.Velocity.X)
	}
	if p.Velocity.X <= 0 {
		t.Error("Expected velocity sign flip, not zero")
	}
}

// TestUpdateStoresPreviousPosition verifies the trail anchor
func TestUpdateStoresPreviousPosition(t *testing.T) {
	p := New(100, 100, Config{Velocity: vmath.V2(3, 4), Damping: 1})
	p.Update(testContext())

	if p.PreviousPosition != vmath.V2(100, 100) {
		t.Errorf("Expected previous {100 100}, got %v", p.PreviousPosition)
	}
	if p.Position != vmath.V2(103, 104) {
		t.Errorf("Expected position {103 104}, got %v", p.Position)
	}
}

// TestRainbowHueCycles verifies 2°/frame hue advance with wrap
func TestRainbowHueCycles(t *testing.T) {
	p := New(100, 100, Config{Hue: 359, Mode: ModeRainbow})
	p.Update(testContext())
	if math.Abs(p.Hue-1) > eps {
		t.Errorf("Expected hue 1 after wrap, got %f", p.Hue)
	}
}

// TestPulseSizeBounds verifies pulse mode oscillates within [MinSize, MaxSize]
func TestPulseSizeBounds(t *testing.T) {
	p := New(200, 200, Config{Size: 4, MinSize: 2, MaxSize: 8, Mode: ModePulse, Lifespan: 500})
	ctx := testContext()
	seenLow, seenHigh := false, false
	for f := 0; f < 100; f++ {
		ctx.Frame = f
		p.Update(ctx)
		if p.Size < 2-eps || p.Size > 8+eps {
			t.Fatalf("frame %d: size %f outside [2, 8]", f, p.Size)
		}
		if p.Size < 3 {
			seenLow = true
		}
		if p.Size > 7 {
			seenHigh = true
		}
	}
	if !seenLow || !seenHigh {
		t.Error("Expected size to sweep the pulse range")
	}
}

// TestSetModeResets verifies mode-specific one-time parameter resets
func TestSetModeResets(t *testing.T) {
	p := New(0, 0, Config{Damping: 0.5})

	p.SetMode(ModeTrail, nil)
	if p.Damping != TrailDamping {
		t.Errorf("Expected trail damping %f, got %f", TrailDamping, p.Damping)
	}

	p.SetMode(ModeGravity, nil)
	if p.Damping != GravityDamping {
		t.Errorf("Expected gravity damping %f, got %f", GravityDamping, p.Damping)
	}

	rng := vmath.NewFastRand(3)
	for i := 0; i < 50; i++ {
		p.SetMode(ModeSwirl, rng)
		if math.Abs(p.RotationSpeed) > SwirlSpinMax {
			t.Fatalf("swirl rotation speed %f outside range", p.RotationSpeed)
		}
	}

	p.SetMode(Mode(99), nil)
	if p.Mode != ModeSwirl {
		t.Errorf("Invalid mode must be ignored, got %v", p.Mode)
	}
}

// TestPathFollowing verifies path progress, velocity bias and detachment
func TestPathFollowing(t *testing.T) {
	path := []vmath.Vec2{{X: 100, Y: 100}, {X: 300, Y: 100}}
	p := New(100, 100, Config{Lifespan: 1000, Path: NewPathFollow(path, 1)})
	path[0].X = -1 // caller mutation must not leak
	ctx := testContext()

	p.Update(ctx)
	if !p.FollowingPath() {
		t.Fatal("Expected path component attached")
	}
	if p.Path.Points[0].X != 100 {
		t.Error("Path points must be copied")
	}
	if p.Velocity.X <= 0 {
		t.Errorf("Expected velocity biased along +x tangent, got %v", p.Velocity)
	}

	for i := 0; i < 250 && p.FollowingPath(); i++ {
		p.Update(ctx)
	}
	if p.FollowingPath() {
		t.Error("Expected path-following to end once progress reaches 1")
	}
}

// TestExtremePathStaysFinite verifies huge but finite paths never poison motion
func TestExtremePathStaysFinite(t *testing.T) {
	if NewPathFollow([]vmath.Vec2{{X: -1e308, Y: 0}, {X: 1e308, Y: 0}}, 0.5) != nil {
		t.Error("Expected overflowing path rejected")
	}

	p := New(100, 100, Config{Lifespan: 100})
	p.Path = &PathFollow{Points: []vmath.Vec2{{X: -1e308, Y: 0}, {X: 1e308, Y: 0}}, Influence: 0.5}
	p.Update(testContext())
	if !p.Position.IsFinite() || !p.Velocity.IsFinite() {
		t.Errorf("Expected finite state, got pos=%v vel=%v", p.Position, p.Velocity)
	}
	if p.FollowingPath() {
		t.Error("Expected unusable path detached")
	}
}

// TestNewPathFollowRejectsShortPath verifies degenerate paths are not attached
func TestNewPathFollowRejectsShortPath(t *testing.T) {
	if NewPathFollow([]vmath.Vec2{{X: 1, Y: 1}}, 0.5) != nil {
		t.Error("Expected nil for single-point path")
	}
}

// TestResetMatchesFresh verifies pooled reuse leaks no prior-life state
func TestResetMatchesFresh(t *testing.T) {
	old := New(10, 10, Config{
		Hue:      123,
		Size:     9,
		Mode:     ModeSwirl,
		Trail:    true,
		Lifespan: 50,
		Path:     NewPathFollow([]vmath.Vec2{{X: 0, Y: 0}, {X: 50, Y: 50}}, 0.7),
	})
	old.Explode(0, 0, 5)
	ctx := testContext()
	for i := 0; i < 20; i++ {
		old.Update(ctx)
	}
	old.Alpha = 0

	cfg := Config{
		Velocity:      vmath.V2(1, -1),
		Hue:           42,
		Size:          3,
		Lifespan:      90,
		RotationSpeed: 0.05,
		PulsePhase:    1.5,
		Mode:          ModeNormal,
	}
	old.Reset(200, 150, cfg)
	fresh := New(200, 150, cfg)

	if !reflect.DeepEqual(old, fresh) {
		t.Errorf("Recycled particle differs from fresh:\nrecycled=%+v\nfresh=%+v", *old, *fresh)
	}
	if old.Path != nil {
		t.Error("Expected no residual path data")
	}
}

// TestResetKeepsOwnership verifies reinitializing a live particle keeps it live
func TestResetKeepsOwnership(t *testing.T) {
	p := New(0, 0, Config{})
	p.Attach()
	p.Reset(5, 5, Config{})
	if !p.Live() || p.Attach() {
		t.Error("Expected Reset to keep live ownership")
	}
}

// TestResetMalformedConfigFallsBack verifies defaults replace invalid fields
func TestResetMalformedConfigFallsBack(t *testing.T) {
	p := New(math.NaN(), 5, Config{
		Size:     math.Inf(1),
		Lifespan: -3,
		Damping:  1.5,
		MaxAlpha: -1,
		Velocity: vmath.V2(math.NaN(), 0),
		Mode:     Mode(77),
	})

	if p.Position != (vmath.Vec2{}) {
		t.Errorf("Expected origin for NaN coordinate, got %v", p.Position)
	}
	if p.Size != DefaultSize || p.Lifespan != DefaultLifespan || p.Damping != DefaultDamping {
		t.Errorf("Expected defaults, got size=%f lifespan=%d damping=%f", p.Size, p.Lifespan, p.Damping)
	}
	if p.MaxAlpha != DefaultMaxAlpha || p.Alpha != DefaultMaxAlpha {
		t.Errorf("Expected alpha default, got %f/%f", p.Alpha, p.MaxAlpha)
	}
	if p.Velocity != (vmath.Vec2{}) || p.Mode != ModeNormal {
		t.Errorf("Expected zero velocity and normal mode, got %v %v", p.Velocity, p.Mode)
	}
}

// TestModeStringRoundTrip verifies mode names parse back
func TestModeStringRoundTrip(t *testing.T) {
	for m := ModeNormal; m < modeCount; m++ {
		got, ok := ParseMode(m.String())
		if !ok || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, ok)
		}
	}
	if _, ok := ParseMode("bogus"); ok {
		t.Error("Expected unknown name to fail")
	}
}
